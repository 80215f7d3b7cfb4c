// Package ui renders compilation outcomes for the command line in terminal
// (styled), text (plain) or JSON form.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/confc/pkg/core"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a compile or check outcome
	RenderResult(result *core.CompileResult) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for the format. FormatAuto inspects output
// when it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &textRenderer{out: output, styled: true}, nil
	case FormatText:
		return &textRenderer{out: output}, nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
