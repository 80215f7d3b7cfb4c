// Package charset decodes source files by probing a fixed, ordered list of
// text encodings and keeping the first one that accepts the bytes.
package charset

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/confc/pkg/errors"
	"github.com/arthur-debert/confc/pkg/logging"
	"github.com/arthur-debert/confc/pkg/registry"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is one decoding candidate
type Encoding struct {
	Name string
	enc  encoding.Encoding
	// strict rejects input that is not valid UTF-8 before decoding
	strict bool
}

var (
	// UTF8 accepts only well-formed UTF-8
	UTF8 = Encoding{Name: "utf-8", enc: unicode.UTF8, strict: true}
	// Windows1251 is the Cyrillic code page; it rejects the one byte it leaves undefined
	Windows1251 = Encoding{Name: "windows-1251", enc: charmap.Windows1251}
	// Latin1 maps every byte to a code point and never fails
	Latin1 = Encoding{Name: "latin1", enc: charmap.ISO8859_1}
)

// DefaultCandidates is the probe order used when no other list is configured
var DefaultCandidates = []Encoding{UTF8, Windows1251, Latin1}

var known = registry.New[Encoding]()

func init() {
	known.MustRegister(UTF8.Name, UTF8, "utf8")
	known.MustRegister(Windows1251.Name, Windows1251, "cp1251")
	known.MustRegister(Latin1.Name, Latin1, "latin-1", "iso-8859-1")
}

// Names returns the canonical names of the supported encodings
func Names() []string {
	return known.Names()
}

// Lookup resolves an encoding name or alias (case-insensitive)
func Lookup(name string) (Encoding, error) {
	e, err := known.Get(name)
	if err != nil {
		return Encoding{}, errors.Newf(errors.ErrInvalidInput, "unknown encoding %q (supported: %s)", name, strings.Join(Names(), ", ")).
			WithDetail("encoding", name)
	}
	return e, nil
}

// LookupAll resolves names in order
func LookupAll(names []string) ([]Encoding, error) {
	out := make([]Encoding, 0, len(names))
	for _, n := range names {
		e, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Decode converts raw bytes to text with the first candidate that accepts
// them. With no candidates DefaultCandidates is used.
func Decode(raw []byte, candidates ...Encoding) (string, Encoding, error) {
	logger := logging.GetLogger("charset")
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}

	tried := make([]string, 0, len(candidates))
	for _, c := range candidates {
		text, ok := c.decode(raw)
		if ok {
			logger.Debug().Str("encoding", c.Name).Int("bytes", len(raw)).Msg("Decoded input")
			return text, c, nil
		}
		logger.Trace().Str("encoding", c.Name).Msg("Encoding rejected input, trying next")
		tried = append(tried, c.Name)
	}

	return "", Encoding{}, errors.Newf(errors.ErrEncoding,
		"input could not be decoded with any of: %s", strings.Join(tried, ", ")).
		WithDetail("tried", tried)
}

func (e Encoding) decode(raw []byte) (string, bool) {
	if e.enc == nil {
		return "", false
	}
	if e.strict && !utf8.Valid(raw) {
		return "", false
	}
	out, err := e.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	// Single-byte code pages decode undefined bytes to U+FFFD; a real
	// U+FFFD can only come from valid UTF-8, which the strict path handles.
	if !e.strict && strings.ContainsRune(string(out), utf8.RuneError) {
		return "", false
	}
	return string(out), true
}
