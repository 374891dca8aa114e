package palgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// entry is one rendered key/value pair.
type entry struct {
	Name  string
	Key   string
	Value string
}

// templateData is the value templates execute against.
type templateData struct {
	Header    []string
	Namespace string
	Table     string
	Source    string
	Language  Language
	Entries   []entry
}

// Render produces the generated source for table. A nil loader uses the
// built-in templates. Rendering happens fully in memory; nothing is written.
//
// Returns ErrInvalidTarget if target fails validation and ErrRender if the
// template cannot be loaded, parsed or executed.
func Render(table Table, target Target, loader TemplateLoader) ([]byte, error) {
	target = target.withDefaults()
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if loader == nil {
		loader = defaultTemplateLoader
	}

	valueQuoter, err := NewQuoter(target.Language, target.Quote)
	if err != nil {
		return nil, err
	}
	keyQuoter, err := NewQuoter(target.Language, QuoteEscaped)
	if err != nil {
		return nil, err
	}

	data := templateData{
		Header:    headerLines(target.Header),
		Namespace: target.Namespace,
		Table:     target.Table,
		Source:    target.Source,
		Language:  target.Language,
		Entries:   make([]entry, len(table)),
	}
	for i, p := range table {
		data.Entries[i] = entry{
			Name:  p.Name,
			Key:   keyQuoter.Quote(p.Name),
			Value: valueQuoter.Quote(p.Contents),
		}
	}

	src, err := loader.LoadTemplate(target.Template)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	tmpl, err := template.New(target.Template).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing template %q: %w", ErrRender, target.Template, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: executing template %q: %w", ErrRender, target.Template, err)
	}

	out := buf.Bytes()
	if target.Language == LanguageGo {
		formatted, err := format.Source(out)
		if err != nil {
			return nil, fmt.Errorf("%w: generated Go does not parse: %w", ErrRender, err)
		}
		out = formatted
	}
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out, nil
}

// headerLines splits header text into comment lines. Comment markers already
// present are removed so a header copied from a source file is not doubled.
// Leading and trailing blank lines are dropped.
func headerLines(header string) []string {
	header = strings.ReplaceAll(header, "\r\n", "\n")
	lines := strings.Split(strings.Trim(header, "\n"), "\n")
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		return nil
	}

	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		if rest, ok := strings.CutPrefix(line, "//"); ok {
			line = strings.TrimPrefix(rest, " ")
		}
		lines[i] = line
	}
	return lines
}
