package parser_test

import (
	"testing"

	"github.com/arthur-debert/confc/pkg/errors"
	"github.com/arthur-debert/confc/pkg/parser"
	"github.com/arthur-debert/confc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webServer = `{{!-- Web server settings --}}
def serverPort = 443;
def serverHost = "example.com";

begin
    server := "nginx";
    port := ![serverPort];
    host := ![serverHost];
    documentRoot := "/var/www/html";
    security := begin
        ssl := true;
        sslCertificate := "/etc/ssl/certs/server.crt";
        sslKey := "/etc/ssl/private/server.key";
        firewall := true;
    end;
    logging := begin
        accessLog := "/var/log/nginx/access.log";
        errorLog := "/var/log/nginx/error.log";
        logLevel := "warn";
    end
end

{{!-- Supported modules --}}
#( "mod_rewrite", "mod_headers", "mod_ssl" )
`

func TestParseWebServerCollapsesSections(t *testing.T) {
	p := parser.New()
	doc, err := p.Parse(webServer)
	require.NoError(t, err)

	records := doc.Records()
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, []string{
		"documentRoot", "firewall", "host", "port", "security",
		"server", "ssl", "sslCertificate", "sslKey",
	}, first.SortedKeys())
	assertField(t, first, "port", types.Integer(443))
	assertField(t, first, "host", types.Text("example.com"))
	assertField(t, first, "security", types.Section())
	assertField(t, first, "ssl", types.Boolean(true))
	assertField(t, first, "sslKey", types.Text("/etc/ssl/private/server.key"))

	second := records[1]
	assert.Equal(t, []string{"accessLog", "errorLog", "logLevel", "logging"}, second.SortedKeys())
	assertField(t, second, "logging", types.Section())
	assertField(t, second, "logLevel", types.Text("warn"))

	assert.Equal(t, []string{"serverHost", "serverPort"}, p.Env().Names())
}

func TestParseSmartHome(t *testing.T) {
	src := `{{!-- Smart home --}}
def timezone = "UTC+3";
def defaultTemperature = 22;

begin
    location := "Living Room";
    devices := #( "Thermostat", "Light", "Camera" );
    thermostat := begin
        targetTemperature := ![defaultTemperature];
        mode := "Auto";
    end;
    light := begin
        intensity := 75;
        color := "Warm White";
        schedule := #( "18:00-23:00", "06:00-08:00" );
    end;
    camera := begin
        enabled := true;
        recording := "Motion Detection";
        storage := "Cloud";
    end
end

{{!-- Rooms --}}
#( "Living Room", "Bedroom", "Kitchen", "Garage" )
`
	doc, err := parser.New().Parse(src)
	require.NoError(t, err)

	records := doc.Records()
	require.Len(t, records, 3)
	assert.Equal(t, []string{"devices", "location", "mode", "targetTemperature", "thermostat"}, records[0].SortedKeys())
	assertField(t, records[0], "targetTemperature", types.Integer(22))
	assertField(t, records[0], "devices", types.Array("Thermostat", "Light", "Camera"))
	assert.Equal(t, []string{"color", "intensity", "light", "schedule"}, records[1].SortedKeys())
	assert.Equal(t, []string{"camera", "enabled", "recording", "storage"}, records[2].SortedKeys())
}

func TestParseConstantSubstitutionPreservesType(t *testing.T) {
	tests := []struct {
		name    string
		literal string
	}{
		{"integer", "42"},
		{"text", `"hello"`},
		{"boolean", "TRUE"},
		{"array", `#( "a", b )`},
		{"bare", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "def c = " + tt.literal + ";\nbegin\nv := ![c];\nend\n"
			doc, err := parser.New().Parse(src)
			require.NoError(t, err)
			require.Equal(t, 1, doc.Len())

			want, err := parser.Coerce(tt.literal, parser.NewEnv())
			require.NoError(t, err)
			assertField(t, doc.Records()[0], "v", want)
		})
	}
}

func TestParseTopLevelArrayIsIgnored(t *testing.T) {
	doc, err := parser.New().Parse(`#( "a", "b" )`)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestParseUndefinedConstant(t *testing.T) {
	src := "begin\n  port := ![missingName];\nend\n"
	_, err := parser.New().Parse(src)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUndefinedConstant))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, 2, details["line"])
	assert.Equal(t, "missingName", details["name"])
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseSyntaxError(t *testing.T) {
	src := "begin\n\n  this is not valid\nend\n"
	_, err := parser.New().Parse(src)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, 3, details["line"])
	assert.Equal(t, "this is not valid", details["text"])
}

func TestParseEndWithoutBeginIsNoop(t *testing.T) {
	doc, err := parser.New().Parse("end\nend;\n")
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestParseUnterminatedRecordIsDiscarded(t *testing.T) {
	src := "begin\na := 1;\nend\nbegin\nb := 2;\n"
	doc, err := parser.New().Parse(src)
	require.NoError(t, err)
	require.Equal(t, 1, doc.Len())
	assert.Equal(t, []string{"a"}, doc.Records()[0].Keys())
}

func TestParseIdleAssignmentDefinesConstant(t *testing.T) {
	src := "root := \"/srv\";\nbegin\npath := ![root];\nend\n"
	p := parser.New()
	doc, err := p.Parse(src)
	require.NoError(t, err)
	require.Equal(t, 1, doc.Len())
	assertField(t, doc.Records()[0], "path", types.Text("/srv"))
	assert.Equal(t, []string{"root"}, p.Env().Names())
}

func TestParseRedefinedConstantUsesLatest(t *testing.T) {
	src := "def x = 1;\ndef x = \"two\";\nbegin\nv := ![x];\nend\n"
	doc, err := parser.New().Parse(src)
	require.NoError(t, err)
	assertField(t, doc.Records()[0], "v", types.Text("two"))
}

func TestParseSectionOpensRecordWhenIdle(t *testing.T) {
	src := "net := begin\nmtu := 1500;\nend\n"
	doc, err := parser.New().Parse(src)
	require.NoError(t, err)
	require.Equal(t, 1, doc.Len())
	assert.Equal(t, []string{"net", "mtu"}, doc.Records()[0].Keys())
}

func TestParseLastAssignmentWins(t *testing.T) {
	doc, err := parser.New().Parse("begin\na := 1;\na := 2;\nend\n")
	require.NoError(t, err)
	assertField(t, doc.Records()[0], "a", types.Integer(2))
	assert.Equal(t, 1, doc.Records()[0].Len())
}

func TestParseLineEndings(t *testing.T) {
	for name, src := range map[string]string{
		"crlf": "begin\r\na := 1;\r\nend\r\n",
		"cr":   "begin\ra := 1;\rend",
		"lf":   "begin\na := 1;\nend",
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := parser.New().Parse(src)
			require.NoError(t, err)
			require.Equal(t, 1, doc.Len())
			assertField(t, doc.Records()[0], "a", types.Integer(1))
		})
	}
}

func TestParseResetsEnvironmentBetweenRuns(t *testing.T) {
	p := parser.New()
	_, err := p.Parse("def x = 1;\n")
	require.NoError(t, err)

	_, err = p.Parse("begin\nv := ![x];\nend\n")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUndefinedConstant))
}

func TestParseEmptyInput(t *testing.T) {
	doc, err := parser.New().Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func assertField(t *testing.T, r *types.Record, name string, want types.Value) {
	t.Helper()
	got, ok := r.Get(name)
	require.True(t, ok, "field %q missing", name)
	assert.True(t, want.Equal(got), "field %q = %#v, want %#v", name, got, want)
}
