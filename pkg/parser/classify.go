package parser

import (
	"regexp"
	"strings"
)

// LineKind is the outcome of classifying one trimmed source line
type LineKind int

const (
	LineEmpty LineKind = iota
	LineComment
	LineConstant
	LineBlockOpen
	LineBlockClose
	LineField
	LineSection
	LineInvalid
)

var lineKindNames = map[LineKind]string{
	LineEmpty:      "empty",
	LineComment:    "comment",
	LineConstant:   "constant",
	LineBlockOpen:  "block-open",
	LineBlockClose: "block-close",
	LineField:      "field",
	LineSection:    "section",
	LineInvalid:    "invalid",
}

// String returns the kind name used in logs
func (k LineKind) String() string {
	if s, ok := lineKindNames[k]; ok {
		return s
	}
	return "unknown"
}

const (
	commentOpen = "{{!--"
	lineComment = "#"
)

// Names are runs of letters, digits and underscores in any script.
var (
	constantRe = regexp.MustCompile(`^def\s+([\p{L}\p{N}_]+)\s*=\s*(.*);$`)
	openRe     = regexp.MustCompile(`^begin\s*;?$`)
	closeRe    = regexp.MustCompile(`^end\s*;?$`)
	fieldRe    = regexp.MustCompile(`^([\p{L}\p{N}_]+)\s*:=\s*(.*);$`)
	sectionRe  = regexp.MustCompile(`^([\p{L}\p{N}_]+)\s*:=\s*begin$`)
)

// Line is a classified source line. Name and Value are set for constants,
// fields and sections; Value is the raw, trimmed literal.
type Line struct {
	Kind  LineKind
	Name  string
	Value string
}

// Classify matches a line against the line patterns in precedence order
func Classify(text string) Line {
	text = strings.TrimSpace(text)

	switch {
	case text == "":
		return Line{Kind: LineEmpty}
	case strings.HasPrefix(text, commentOpen), strings.HasPrefix(text, lineComment):
		return Line{Kind: LineComment}
	}

	if m := constantRe.FindStringSubmatch(text); m != nil {
		return Line{Kind: LineConstant, Name: m[1], Value: strings.TrimSpace(m[2])}
	}
	if openRe.MatchString(text) {
		return Line{Kind: LineBlockOpen}
	}
	if closeRe.MatchString(text) {
		return Line{Kind: LineBlockClose}
	}
	if m := fieldRe.FindStringSubmatch(text); m != nil {
		return Line{Kind: LineField, Name: m[1], Value: strings.TrimSpace(m[2])}
	}
	if m := sectionRe.FindStringSubmatch(text); m != nil {
		return Line{Kind: LineSection, Name: m[1]}
	}

	return Line{Kind: LineInvalid}
}
