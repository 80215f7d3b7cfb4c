package ui

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/arthur-debert/confc/pkg/core"
	"github.com/arthur-debert/confc/pkg/errors"
	"github.com/arthur-debert/confc/pkg/ui/styles"
)

// textRenderer writes human-readable output, styled when attached to a
// color terminal.
type textRenderer struct {
	out    io.Writer
	styled bool
}

func (r *textRenderer) style(name, s string) string {
	if !r.styled {
		return s
	}
	return styles.GetStyle(name).Render(s)
}

func (r *textRenderer) field(label string, value interface{}) string {
	if r.styled {
		return fmt.Sprintf("  %s%v\n", styles.GetStyle("Label").Render(label), value)
	}
	return fmt.Sprintf("  %-12s%v\n", label, value)
}

func (r *textRenderer) RenderResult(result *core.CompileResult) error {
	var b strings.Builder

	switch {
	case result.Written:
		fmt.Fprintf(&b, "%s %s -> %s\n", r.style("Success", "✓ Compiled"),
			result.InputPath, r.style("FilePath", result.OutputPath))
	case result.Output != nil:
		fmt.Fprintf(&b, "%s %s\n", r.style("Success", "✓ Compiled"), result.InputPath)
	default:
		fmt.Fprintf(&b, "%s %s\n", r.style("Success", "✓ Valid"), result.InputPath)
	}

	b.WriteString(r.field("encoding", result.Encoding))
	b.WriteString(r.field("records", result.Document.Len()))
	b.WriteString(r.field("constants", result.Constants))

	if result.Output != nil && !result.Written {
		b.WriteString(r.style("DryRunBanner", "DRY RUN - nothing was written"))
		b.WriteString("\n\n")
		b.Write(result.Output)
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *textRenderer) RenderError(err error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %v\n", r.style("Error", "✗ Error:"), err)

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		b.WriteString(r.style("Muted", r.field(k, details[k])))
	}

	_, werr := io.WriteString(r.out, b.String())
	return werr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.out, msg)
	return err
}
