// Package assets provides the text/template sources used to render palette
// tables.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (cpp, go)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// A custom directory only needs the templates it overrides; anything it
// lacks falls back to the embedded copy.
//
// # Directory Structure
//
//	{basePath}/
//	├── cpp.tmpl
//	└── go.tmpl
//
// # Security
//
// Template names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
