package ui

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/confc/pkg/core"
	"github.com/arthur-debert/confc/pkg/errors"
)

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(output io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

type resultJSON struct {
	Input     string `json:"input"`
	Output    string `json:"output,omitempty"`
	Encoding  string `json:"encoding"`
	Records   int    `json:"records"`
	Constants int    `json:"constants"`
	Written   bool   `json:"written"`
	Document  string `json:"document,omitempty"`
}

type errorJSON struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (r *jsonRenderer) RenderResult(result *core.CompileResult) error {
	return r.encoder.Encode(resultJSON{
		Input:     result.InputPath,
		Output:    result.OutputPath,
		Encoding:  result.Encoding,
		Records:   result.Document.Len(),
		Constants: result.Constants,
		Written:   result.Written,
		Document:  string(result.Output),
	})
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(errorJSON{
		Error:   err.Error(),
		Code:    string(errors.GetErrorCode(err)),
		Details: errors.GetErrorDetails(err),
	})
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
