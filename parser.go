package conventional

import (
	"strings"
	"unicode"
)

// TypeLookup resolves a commit type to its definition.
// *TypeTable implements it; callers may supply their own.
type TypeLookup interface {
	Lookup(t CommitType) (TypeInfo, bool)
}

// Parser parses commit headers.
// A Parser is immutable once built and safe for concurrent use.
type Parser struct {
	types         TypeLookup
	denyAdlibType bool
}

type Option func(*Parser)

// WithTypes sets the table of recognized types.
func WithTypes(types TypeLookup) Option {
	return func(p *Parser) {
		p.types = types
	}
}

// DenyAdlibType rejects types missing from the table given by WithTypes.
// Without a table it has no effect.
func DenyAdlibType() Option {
	return func(p *Parser) {
		p.denyAdlibType = true
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, o := range opts {
		o(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses line with a parser that accepts any type token.
func Parse(line string) (Header, error) {
	return defaultParser.Parse(line)
}

// Parse parses a single header line of the form
//
//	type[(scope)][!]: description
//
// The type is stored lowercase, the scope verbatim and the description
// trimmed. One trailing line terminator is ignored.
// On failure the returned error is a *ParseError.
func (p *Parser) Parse(line string) (Header, error) {
	input := line

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		return Header{}, parseErr(ErrMalformedHeader, input, i)
	}

	var h Header

	end := strings.IndexFunc(line, isTypeEnd)
	if end < 0 {
		return Header{}, parseErr(ErrMalformedHeader, input, len(line))
	}
	if line[end] != '(' && line[end] != '!' && line[end] != ':' {
		// whitespace
		return Header{}, parseErr(ErrMalformedHeader, input, end)
	}
	if end == 0 {
		return Header{}, parseErr(ErrMissingType, input, 0)
	}
	h.Type = CommitType(strings.ToLower(line[:end]))

	pos := end
	rest := line[end:]

	if rest[0] == '(' {
		closing := strings.IndexByte(rest, ')')
		if closing <= 1 {
			return Header{}, parseErr(ErrMalformedScope, input, pos)
		}
		h.Scope = rest[1:closing]
		pos += closing + 1
		rest = rest[closing+1:]
	}

	if strings.HasPrefix(rest, "!") {
		h.Breaking = true
		pos++
		rest = rest[1:]
	}

	if !strings.HasPrefix(rest, ":") {
		return Header{}, parseErr(ErrMalformedHeader, input, pos)
	}
	pos++
	rest = rest[1:]

	if strings.TrimSpace(rest) == "" {
		return Header{}, parseErr(ErrMissingDescription, input, pos)
	}
	if rest[0] != ' ' {
		return Header{}, parseErr(ErrMalformedHeader, input, pos)
	}
	h.Description = strings.TrimSpace(rest[1:])

	if p.denyAdlibType && p.types != nil {
		if _, found := p.types.Lookup(h.Type); !found {
			return Header{}, parseErr(ErrUnknownType, input, 0)
		}
	}

	return h, nil
}

func isTypeEnd(r rune) bool {
	return r == '(' || r == '!' || r == ':' || unicode.IsSpace(r)
}
