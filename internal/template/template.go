package template

// Template describes a single discovered prompt template file.
type Template struct {
	Path        string // absolute path on disk
	RelPath     string // path relative to the templates root; unique, stable sort key
	Title       string // first "# " heading, or the filename stem
	Description string // first plain content line, truncated for display
	Extends     string // verbatim extends annotation line, if any
	IsBase      bool   // filename contains "base" (case-insensitive)
}

// ExtendsPrefix marks a template's extends annotation line.
const ExtendsPrefix = "> **Extends:**"
