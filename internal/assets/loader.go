package assets

// TemplateLoader defines the contract for loading output templates.
type TemplateLoader interface {
	// LoadTemplate loads a template source by name (without .tmpl extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
