package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"syntax.md":      {Data: []byte("# Syntax\n\nbegin/end")},
		"dry-run.txt":    {Data: []byte("Nothing is written")},
		"nested/deep.md": {Data: []byte("# Deep")},
		"notes.json":     {Data: []byte("{}")},
		"legacy.txxt":    {Data: []byte("old format")},
	}
}

func TestNewScansExtensions(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m, err := New(testFS(), Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"deep", "dry-run", "syntax"}, m.List())
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := New(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"legacy"}, m.List())
	})
}

func TestGetStripsFlagDashes(t *testing.T) {
	m, err := New(testFS(), Options{})
	require.NoError(t, err)

	topic, ok := m.Get("--dry-run")
	require.True(t, ok)
	assert.Equal(t, "Nothing is written", topic.Content)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestShow(t *testing.T) {
	m, err := New(testFS(), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Show(&buf, "syntax"))
	assert.Equal(t, "# Syntax\n\nbegin/end", buf.String())

	assert.Error(t, m.Show(&buf, "missing"))
}

func TestBuiltinTopics(t *testing.T) {
	m, err := New(Builtin(), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"encodings", "settings", "syntax"}, m.List())

	syntax, ok := m.Get("syntax")
	require.True(t, ok)
	assert.Contains(t, syntax.Content, "begin")
	assert.Contains(t, syntax.Content, "![serverPort]")
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty"}
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := r.Render("# Title\n\nbody", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}

func TestInstallHelpCommand(t *testing.T) {
	m, err := New(testFS(), Options{})
	require.NoError(t, err)

	root := &cobra.Command{Use: "confc", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "check", Short: "Validate a source file", Run: func(*cobra.Command, []string) {}})
	m.Install(root)

	run := func(args ...string) string {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return buf.String()
	}

	list := run("help", "topics")
	assert.Contains(t, list, "Available help topics:")
	assert.Contains(t, list, "  syntax")
	assert.Contains(t, list, "confc help <topic>")

	assert.Equal(t, "Nothing is written", run("help", "dry-run"))

	cmdHelp := run("help", "check")
	assert.True(t, strings.Contains(cmdHelp, "Validate a source file"))
}
