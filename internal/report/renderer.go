package report

import "io"

// Renderer writes an assembled Output in one presentation format
type Renderer interface {
	Render(out Output) error
}

// New returns the renderer for format ("json", "table", or "text")
func New(format string, w io.Writer) Renderer {
	switch format {
	case "json":
		return &JSONRenderer{w: w}
	case "table":
		return &TableRenderer{w: w}
	default:
		return &TextRenderer{w: w}
	}
}
