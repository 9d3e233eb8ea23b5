package conventional

import (
	"strings"

	"github.com/kyokomi/emoji/v2"
	"github.com/shu-go/orderedmap"
)

// Category groups commit types by their meaning for a release.
type Category string

const (
	CategoryFeature     Category = "feature"
	CategoryFix         Category = "fix"
	CategoryPerformance Category = "performance"
	CategoryDocs        Category = "docs"
	CategoryMaintenance Category = "maintenance"
	CategoryRevert      Category = "revert"
)

type TypeInfo struct {
	Desc     string   `json:"description,omitempty" yaml:"description,omitempty"`
	Emoji    string   `json:"emoji,omitempty" yaml:"emoji,omitempty" validate:"omitempty,startswith=:,endswith=:"`
	Category Category `json:"category,omitempty" yaml:"category,omitempty" validate:"omitempty,oneof=feature fix performance docs maintenance revert"`
}

// Emojized returns Emoji with :shortcode: notation replaced by unicode.
func (i TypeInfo) Emojized() string {
	if i.Emoji == "" {
		return ""
	}
	return strings.TrimSpace(emoji.Emojize(i.Emoji))
}

// TypeTable is an ordered set of recognized commit types.
// Keys starting with # are comments.
type TypeTable struct {
	types *orderedmap.OrderedMap[string, TypeInfo]
}

func NewTypeTable(m *orderedmap.OrderedMap[string, TypeInfo]) *TypeTable {
	t := &TypeTable{types: orderedmap.New[string, TypeInfo]()}
	if m == nil {
		return t
	}

	for _, k := range m.Keys() {
		info, _ := m.Get(k)
		if isComment(k) {
			t.types.Set(k, info)
			continue
		}
		t.types.Set(strings.ToLower(k), info)
	}
	return t
}

func (t *TypeTable) Lookup(typ CommitType) (TypeInfo, bool) {
	if t == nil || isComment(string(typ)) {
		return TypeInfo{}, false
	}
	return t.types.Get(strings.ToLower(string(typ)))
}

// Types returns the recognized types in table order, comments excluded.
func (t *TypeTable) Types() []CommitType {
	if t == nil {
		return nil
	}

	types := make([]CommitType, 0, len(t.types.Keys()))
	for _, k := range t.types.Keys() {
		if isComment(k) {
			continue
		}
		types = append(types, CommitType(k))
	}
	return types
}

// Map returns the underlying ordered map, comments included.
func (t *TypeTable) Map() *orderedmap.OrderedMap[string, TypeInfo] {
	return t.types
}

func isComment(key string) bool {
	return strings.HasPrefix(key, "#")
}

// DefaultTypes returns the table of the default commit types.
func DefaultTypes(emoji bool) *TypeTable {
	return NewTypeTable(DefaultTypeMap(emoji))
}

// DefaultTypeMap returns a fresh ordered map of the default commit types.
// When emoji is true each type carries an emoji shortcode.
func DefaultTypeMap(emoji bool) *orderedmap.OrderedMap[string, TypeInfo] {
	iif := func(cond bool, t, f string) string {
		if cond {
			return t
		}
		return f
	}

	ct := orderedmap.New[string, TypeInfo]()
	ct.Set("# comment1", TypeInfo{
		Desc: "comment starts with #",
	})
	ct.Set("# comment2", TypeInfo{
		Desc: "This default definition is from https://github.com/angular/angular/blob/main/CONTRIBUTING.md#-commit-message-guidelines",
	})

	ct.Set(string(TypeFeat), TypeInfo{
		Desc:     "A new feature",
		Emoji:    iif(emoji, ":sparkles:", ""),
		Category: CategoryFeature,
	})
	ct.Set(string(TypeFix), TypeInfo{
		Desc:     "A bug fix",
		Emoji:    iif(emoji, ":bug:", ""),
		Category: CategoryFix,
	})
	ct.Set(string(TypeDocs), TypeInfo{
		Desc:     "Documentation only changes",
		Emoji:    iif(emoji, ":memo:", ""),
		Category: CategoryDocs,
	})
	ct.Set(string(TypeStyle), TypeInfo{
		Desc:     "Changes that do not affect the meaning of the code (white-space, formatting, etc)",
		Emoji:    iif(emoji, ":art:", ""),
		Category: CategoryMaintenance,
	})
	ct.Set(string(TypeRefactor), TypeInfo{
		Desc:     "A code change that neither fixes a bug nor adds a feature",
		Emoji:    iif(emoji, ":recycle:", ""),
		Category: CategoryMaintenance,
	})
	ct.Set(string(TypePerf), TypeInfo{
		Desc:     "A code change that improves performance",
		Emoji:    iif(emoji, ":zap:", ""),
		Category: CategoryPerformance,
	})
	ct.Set(string(TypeTest), TypeInfo{
		Desc:     "Adding missing tests or correcting existing tests",
		Emoji:    iif(emoji, ":test_tube:", ""),
		Category: CategoryMaintenance,
	})
	ct.Set(string(TypeBuild), TypeInfo{
		Desc:     "Changes that affect the build system or external dependencies",
		Emoji:    iif(emoji, ":package:", ""),
		Category: CategoryMaintenance,
	})
	ct.Set(string(TypeCI), TypeInfo{
		Desc:     "Changes to our CI configuration files and scripts",
		Emoji:    iif(emoji, ":hammer:", ""),
		Category: CategoryMaintenance,
	})
	ct.Set(string(TypeChore), TypeInfo{
		Desc:     "Other changes that don't modify src or test files",
		Emoji:    iif(emoji, ":wrench:", ""),
		Category: CategoryMaintenance,
	})
	ct.Set(string(TypeRevert), TypeInfo{
		Desc:     "Reverts a previous commit",
		Emoji:    iif(emoji, ":rewind:", ""),
		Category: CategoryRevert,
	})
	return ct
}
