package config

import "github.com/alnah/palgen"

// Request converts a resolved config into a generator request for root.
func (c *Config) Request(root string) palgen.Request {
	return palgen.Request{
		Root:      root,
		SourceDir: c.Source.Dir,
		Output:    c.Output.Path,
		Target: palgen.Target{
			Language:  palgen.Language(c.Output.Language),
			Quote:     palgen.QuoteStyle(c.Output.Quote),
			Namespace: c.Output.Namespace,
			Table:     c.Output.Table,
			Header:    c.Output.Header,
			Source:    palgen.DefaultSource,
		},
	}
}
