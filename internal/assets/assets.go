package assets

// Built-in template names, one per output language.
const (
	TemplateCpp = "cpp"
	TemplateGo  = "go"
)

// templateExt is the file extension of template sources.
const templateExt = ".tmpl"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplate loads a built-in template by name.
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or dots.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// Names lists the built-in template names in sorted order.
func Names() []string {
	return defaultLoader.Names()
}
