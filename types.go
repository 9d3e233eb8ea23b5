// Package conventional models Conventional Commits
// (https://www.conventionalcommits.org/en/v1.0.0/) and parses commit headers
// into them.
//
//	feat(parser)!: handle empty input
//	^--^ ^----^ ^  ^-----------------^
//	type scope  |  description
//	            breaking
package conventional

import (
	"errors"
	"strings"
	"unicode"
)

type CommitType string

const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypeDocs     CommitType = "docs"
	TypeStyle    CommitType = "style"
	TypeRefactor CommitType = "refactor"
	TypePerf     CommitType = "perf"
	TypeTest     CommitType = "test"
	TypeBuild    CommitType = "build"
	TypeCI       CommitType = "ci"
	TypeChore    CommitType = "chore"
	TypeRevert   CommitType = "revert"
)

// Valid reports whether t is a non-empty lowercase token without whitespace.
func (t CommitType) Valid() bool {
	if t == "" {
		return false
	}
	for _, r := range t {
		if unicode.IsSpace(r) || unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func (t CommitType) String() string {
	return string(t)
}

// Header is the first line of a commit message.
//
// An empty Scope means the header has no scope.
type Header struct {
	Type        CommitType `json:"type" yaml:"type"`
	Scope       string     `json:"scope,omitempty" yaml:"scope,omitempty"`
	Breaking    bool       `json:"breaking,omitempty" yaml:"breaking,omitempty"`
	Description string     `json:"description" yaml:"description"`
}

func (h Header) HasScope() bool {
	return h.Scope != ""
}

// String returns the canonical form type[(scope)][!]: description.
func (h Header) String() string {
	var b strings.Builder
	b.Grow(len(h.Type) + len(h.Scope) + len(h.Description) + 5)

	b.WriteString(string(h.Type))
	if h.HasScope() {
		b.WriteByte('(')
		b.WriteString(h.Scope)
		b.WriteByte(')')
	}
	if h.Breaking {
		b.WriteByte('!')
	}
	b.WriteString(SeparatorColon)
	b.WriteString(h.Description)

	return b.String()
}

const (
	// SeparatorColon separates a header's type from its description and most
	// footer tokens from their values.
	SeparatorColon = ": "

	// SeparatorHashtag is mostly used by footers whose value is an issue or PR
	// number (Fixes #123).
	SeparatorHashtag = " #"
)

var ErrUnknownFooterSeparator = errors.New("footer separator not recognized")

type FooterSeparator int

const (
	ColonSpace FooterSeparator = iota
	SpaceHashTag
)

func (s FooterSeparator) String() string {
	switch s {
	case SpaceHashTag:
		return SeparatorHashtag
	default:
		return SeparatorColon
	}
}

func ParseFooterSeparator(s string) (FooterSeparator, error) {
	switch s {
	case SeparatorColon:
		return ColonSpace, nil
	case SeparatorHashtag:
		return SpaceHashTag, nil
	}
	return ColonSpace, ErrUnknownFooterSeparator
}

func (s FooterSeparator) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *FooterSeparator) UnmarshalText(text []byte) error {
	sep, err := ParseFooterSeparator(string(text))
	if err != nil {
		return err
	}
	*s = sep
	return nil
}

// Footer is a trailer such as "Fixes #123" or "Signed-off-by: someone".
type Footer struct {
	Token     string          `json:"token" yaml:"token"`
	Separator FooterSeparator `json:"separator" yaml:"separator"`
	Value     string          `json:"value" yaml:"value"`
}

func (f Footer) String() string {
	return f.Token + f.Separator.String() + f.Value
}

// IsBreakingChange reports whether f is a BREAKING CHANGE (or BREAKING-CHANGE) footer.
func (f Footer) IsBreakingChange() bool {
	return f.Token == "BREAKING CHANGE" || f.Token == "BREAKING-CHANGE"
}

// Commit is a whole commit message: a header, an optional body and zero or
// more footers.
type Commit struct {
	Header  Header   `json:"header" yaml:"header"`
	Body    string   `json:"body,omitempty" yaml:"body,omitempty"`
	Footers []Footer `json:"footers,omitempty" yaml:"footers,omitempty"`
}

func NewCommit(h Header, body string, footers ...Footer) Commit {
	return Commit{
		Header:  h,
		Body:    body,
		Footers: footers,
	}
}

// IsBreakingChange reports whether the header carries the ! marker or any
// footer is a breaking change footer.
func (c Commit) IsBreakingChange() bool {
	if c.Header.Breaking {
		return true
	}
	for _, f := range c.Footers {
		if f.IsBreakingChange() {
			return true
		}
	}
	return false
}
