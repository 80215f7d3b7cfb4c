package parser

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/confc/pkg/errors"
	"github.com/arthur-debert/confc/pkg/logging"
	"github.com/arthur-debert/confc/pkg/types"
	"github.com/rs/zerolog"
)

// Parser compiles source text into a document. A Parser may be reused; each
// call to Parse starts with a fresh constant environment.
type Parser struct {
	env    *Env
	logger zerolog.Logger
}

// New creates a parser
func New() *Parser {
	return &Parser{
		env:    NewEnv(),
		logger: logging.GetLogger("parser"),
	}
}

// Env returns the constant environment of the most recent parse
func (p *Parser) Env() *Env {
	return p.env
}

// Parse classifies every line of text and returns the records closed by a
// block-close line. The first malformed line or undefined constant aborts
// the parse.
func (p *Parser) Parse(text string) (*types.Document, error) {
	p.env = NewEnv()
	acc := newAccumulator()

	scanner := newLineScanner(text)
	for {
		num, raw, ok := scanner.NextLine()
		if !ok {
			break
		}
		if err := p.dispatch(acc, num, raw); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to split input into lines")
	}

	doc, dropped := acc.finish()
	if dropped != nil {
		p.logger.Debug().Int("fields", dropped.Len()).Msg("Input ended with an open record, discarding it")
	}
	p.logger.Debug().
		Int("records", doc.Len()).
		Int("constants", p.env.Len()).
		Msg("Parse completed")
	return doc, nil
}

func (p *Parser) dispatch(acc *accumulator, num int, raw string) error {
	line := Classify(raw)
	p.logger.Trace().
		Int("line", num).
		Str("kind", line.Kind.String()).
		Str("state", acc.state().String()).
		Msg("Classified line")

	switch line.Kind {
	case LineEmpty, LineComment:
		return nil

	case LineConstant:
		v, err := Coerce(line.Value, p.env)
		if err != nil {
			return atLine(err, num, raw)
		}
		p.env.Define(line.Name, v)

	case LineBlockOpen:
		acc.begin()

	case LineBlockClose:
		if r := acc.end(); r != nil {
			p.logger.Debug().Int("line", num).Int("fields", r.Len()).Msg("Closed record")
		}

	case LineField:
		v, err := Coerce(line.Value, p.env)
		if err != nil {
			return atLine(err, num, raw)
		}
		if !acc.assign(line.Name, v) {
			p.env.Define(line.Name, v)
		}

	case LineSection:
		acc.section(line.Name)

	default:
		return errors.Newf(errors.ErrSyntax, "line %d: unrecognized statement %q", num, strings.TrimSpace(raw)).
			WithDetail("line", num).
			WithDetail("text", strings.TrimSpace(raw))
	}
	return nil
}

// atLine attaches the source position to an error raised while coercing
func atLine(err error, num int, raw string) error {
	var ce *errors.ConfcError
	if stderrors.As(err, &ce) {
		ce.Message = fmt.Sprintf("line %d: %s", num, ce.Message)
		ce.WithDetail("line", num).WithDetail("text", strings.TrimSpace(raw))
	}
	return err
}

// lineScanner yields physical lines with 1-based numbers. \n, \r\n and a
// lone \r all end a line.
type lineScanner struct {
	*bufio.Scanner
	lineNum int
}

func newLineScanner(text string) *lineScanner {
	s := bufio.NewScanner(strings.NewReader(text))
	s.Buffer(make([]byte, 0, 4096), len(text)+1)
	s.Split(scanLines)
	return &lineScanner{Scanner: s}
}

// NextLine advances the scanner and returns the current line number and text
func (s *lineScanner) NextLine() (int, string, bool) {
	if !s.Scan() {
		return s.lineNum, "", false
	}
	s.lineNum++
	return s.lineNum, s.Text(), true
}

func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			// a trailing \r may be the first half of \r\n
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
