package conventional

import (
	"github.com/Masterminds/semver/v3"
)

// Increment is the semantic version component a change bumps.
type Increment int

const (
	IncrementNone Increment = iota
	IncrementPatch
	IncrementMinor
	IncrementMajor
)

func (i Increment) String() string {
	switch i {
	case IncrementPatch:
		return "patch"
	case IncrementMinor:
		return "minor"
	case IncrementMajor:
		return "major"
	default:
		return "none"
	}
}

// Apply returns v bumped by i.
func (i Increment) Apply(v semver.Version) semver.Version {
	switch i {
	case IncrementPatch:
		return v.IncPatch()
	case IncrementMinor:
		return v.IncMinor()
	case IncrementMajor:
		return v.IncMajor()
	default:
		return v
	}
}

// IncrementOf maps a header to the version bump it requires.
// Breaking changes are major; otherwise the type's category decides and
// types missing from t bump nothing.
func (t *TypeTable) IncrementOf(h Header) Increment {
	if h.Breaking {
		return IncrementMajor
	}
	return t.incrementOfType(h.Type)
}

// IncrementOfCommit is IncrementOf that also honors breaking change footers.
func (t *TypeTable) IncrementOfCommit(c Commit) Increment {
	if c.IsBreakingChange() {
		return IncrementMajor
	}
	return t.incrementOfType(c.Header.Type)
}

func (t *TypeTable) incrementOfType(typ CommitType) Increment {
	info, found := t.Lookup(typ)
	if !found {
		return IncrementNone
	}

	switch info.Category {
	case CategoryFeature:
		return IncrementMinor
	case CategoryFix, CategoryPerformance, CategoryRevert:
		return IncrementPatch
	default:
		return IncrementNone
	}
}

// NextVersion applies the highest of incs to current.
func NextVersion(current *semver.Version, incs ...Increment) *semver.Version {
	highest := IncrementNone
	for _, i := range incs {
		if i > highest {
			highest = i
		}
	}

	next := highest.Apply(*current)
	return &next
}
