package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Line
	}{
		{"blank", "   ", Line{Kind: LineEmpty}},
		{"block comment", "{{!-- Web server --}}", Line{Kind: LineComment}},
		{"unterminated block comment", "{{!-- starts here", Line{Kind: LineComment}},
		{"line comment", "# note", Line{Kind: LineComment}},
		{"top level array is a comment", `#( "a", "b" )`, Line{Kind: LineComment}},
		{"constant", "def serverPort = 443;", Line{Kind: LineConstant, Name: "serverPort", Value: "443"}},
		{"constant with spacing", "def  host=\"x\" ;", Line{Kind: LineConstant, Name: "host", Value: `"x"`}},
		{"begin", "begin", Line{Kind: LineBlockOpen}},
		{"begin with semicolon", "begin;", Line{Kind: LineBlockOpen}},
		{"end", "end", Line{Kind: LineBlockClose}},
		{"end with semicolon", "end;", Line{Kind: LineBlockClose}},
		{"field", `server := "nginx";`, Line{Kind: LineField, Name: "server", Value: `"nginx"`}},
		{"field keeps inner semicolons", `motd := "a;b";`, Line{Kind: LineField, Name: "motd", Value: `"a;b"`}},
		{"field named like keyword", "endpoint := 5;", Line{Kind: LineField, Name: "endpoint", Value: "5"}},
		{"field with begin value", "mode := begin;", Line{Kind: LineField, Name: "mode", Value: "begin"}},
		{"cyrillic field", "имя := 1;", Line{Kind: LineField, Name: "имя", Value: "1"}},
		{"section", "security := begin", Line{Kind: LineSection, Name: "security"}},
		{"section with spacing", "logging:=begin", Line{Kind: LineSection, Name: "logging"}},
		{"missing terminator", "server := nginx", Line{Kind: LineInvalid}},
		{"constant missing terminator", "def x = 1", Line{Kind: LineInvalid}},
		{"garbage", "hello world", Line{Kind: LineInvalid}},
		{"begin with trailing words", "begin now", Line{Kind: LineInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}

func TestLineKindString(t *testing.T) {
	assert.Equal(t, "section", LineSection.String())
	assert.Equal(t, "block-close", LineBlockClose.String())
	assert.Equal(t, "unknown", LineKind(99).String())
}
