package palgen

import (
	"errors"

	"github.com/alnah/palgen/internal/assets"
)

// Re-exported template errors for callers that only import palgen.
var (
	ErrTemplateNotFound   = assets.ErrTemplateNotFound
	ErrInvalidTemplateDir = assets.ErrInvalidBasePath
)

// TemplateLoader supplies the text/template source used to render a table.
// Templates are addressed by name; the built-in names are "cpp" and "go".
type TemplateLoader interface {
	LoadTemplate(name string) (string, error)
}

// NewTemplateLoader returns a loader for the given directory. Templates found
// there ({dir}/{name}.tmpl) take precedence over the built-in ones. An empty
// dir yields the built-in templates only.
//
// Returns ErrInvalidTemplateDir if dir is set but not a readable directory.
func NewTemplateLoader(dir string) (TemplateLoader, error) {
	resolver, err := assets.NewAssetResolver(dir)
	if err != nil {
		if errors.Is(err, assets.ErrInvalidBasePath) {
			return nil, err
		}
		return nil, errors.Join(ErrInvalidTemplateDir, err)
	}
	return resolver, nil
}

// TemplateNames lists the built-in template names.
func TemplateNames() []string {
	return assets.Names()
}

// defaultTemplateLoader serves the embedded templates.
var defaultTemplateLoader TemplateLoader = assets.NewEmbeddedLoader()
