package ui_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/confc/pkg/core"
	"github.com/arthur-debert/confc/pkg/errors"
	"github.com/arthur-debert/confc/pkg/types"
	"github.com/arthur-debert/confc/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *core.CompileResult {
	doc := types.NewDocument()
	rec := types.NewRecord()
	rec.Set("port", types.Integer(443))
	doc.Append(rec)
	return &core.CompileResult{
		InputPath:  "web.conf",
		OutputPath: "/tmp/out/web.yaml",
		Encoding:   "utf-8",
		Document:   doc,
		Constants:  2,
		Output:     []byte("- port: 443\n"),
		Written:    true,
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(999), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"", ui.FormatAuto, false},
		{"auto", ui.FormatAuto, false},
		{"terminal", ui.FormatTerminal, false},
		{"TERM", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"xml", ui.FormatAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewRendererUnknownFormat(t *testing.T) {
	_, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTextRendererResult(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))
	out := buf.String()
	assert.Contains(t, out, "✓ Compiled web.conf -> /tmp/out/web.yaml")
	assert.Contains(t, out, "  encoding    utf-8\n")
	assert.Contains(t, out, "  records     1\n")
	assert.Contains(t, out, "  constants   2\n")
	assert.NotContains(t, out, "DRY RUN")
}

func TestTextRendererDryRun(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	result := sampleResult()
	result.Written = false
	require.NoError(t, r.RenderResult(result))

	out := buf.String()
	assert.Contains(t, out, "DRY RUN - nothing was written")
	assert.Contains(t, out, "- port: 443\n")
}

func TestTextRendererCheck(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	result := sampleResult()
	result.Written = false
	result.Output = nil
	result.OutputPath = ""
	require.NoError(t, r.RenderResult(result))
	assert.Contains(t, buf.String(), "✓ Valid web.conf")
}

func TestTextRendererError(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	cerr := errors.New(errors.ErrSyntax, "line 3: unrecognised line").
		WithDetail("line", 3).
		WithDetail("text", "oops")
	require.NoError(t, r.RenderError(cerr))

	out := buf.String()
	assert.Contains(t, out, "✗ Error: [SYNTAX] line 3: unrecognised line")
	assert.Contains(t, out, "  line        3\n")
	assert.Contains(t, out, "  text        oops\n")
}

func TestTerminalRendererKeepsContent(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))
	assert.Contains(t, buf.String(), "web.conf")
	assert.Contains(t, buf.String(), "utf-8")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "web.conf", got["input"])
	assert.Equal(t, "utf-8", got["encoding"])
	assert.Equal(t, float64(1), got["records"])
	assert.Equal(t, true, got["written"])
	assert.Equal(t, "- port: 443\n", got["document"])
}

func TestJSONRendererError(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrUndefinedConstant, "constant port is not defined")))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "UNDEFINED_CONSTANT", got["code"])

	buf.Reset()
	require.NoError(t, r.RenderError(stderrors.New("plain")))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "plain", got["error"])
}
