package parser

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/confc/pkg/errors"
	"github.com/arthur-debert/confc/pkg/types"
)

const (
	refOpen    = "!["
	refClose   = "]"
	arrayOpen  = "#("
	arrayClose = ")"
	quote      = `"`
)

// Coerce converts a literal token into a typed value. Checks run in order:
// constant reference, digits, quoted string, boolean, array, bare text.
func Coerce(token string, env *Env) (types.Value, error) {
	token = strings.TrimSpace(token)

	if strings.HasPrefix(token, refOpen) && strings.HasSuffix(token, refClose) {
		name := strings.TrimSpace(token[len(refOpen) : len(token)-len(refClose)])
		v, ok := env.Lookup(name)
		if !ok {
			return types.Value{}, errors.Newf(errors.ErrUndefinedConstant, "constant %q is not defined", name).
				WithDetail("name", name)
		}
		return v, nil
	}

	if isDigits(token) {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return types.Value{}, errors.Wrapf(err, errors.ErrSyntax, "integer literal %s is out of range", token).
				WithDetail("token", token)
		}
		return types.Integer(n), nil
	}

	if isQuoted(token) {
		return types.Text(token[1 : len(token)-1]), nil
	}

	switch {
	case strings.EqualFold(token, "true"):
		return types.Boolean(true), nil
	case strings.EqualFold(token, "false"):
		return types.Boolean(false), nil
	}

	if strings.HasPrefix(token, arrayOpen) && strings.HasSuffix(token, arrayClose) {
		inner := token[len(arrayOpen) : len(token)-len(arrayClose)]
		parts := strings.Split(inner, ",")
		items := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if isQuoted(p) {
				p = p[1 : len(p)-1]
			}
			items = append(items, p)
		}
		return types.Array(items...), nil
	}

	return types.Text(token), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote)
}
