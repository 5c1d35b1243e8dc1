package player

import (
	"fmt"
	"strings"
)

// AnyNation is the nation value that disables the nation predicate in a search.
const AnyNation = "Any"

// Player is one row of the roster.
type Player struct {
	ID        int64
	FirstName string
	LastName  string
	Nation    string
	Club      string
	Position  string
	Overall   int
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.FirstName == "" {
		return fmt.Errorf("player first name is required")
	}
	if p.Overall < 0 {
		return fmt.Errorf("player overall must not be negative")
	}

	return nil
}

// Filter selects roster rows. Name matches the first name only.
//
// For searches an empty Name or Position and a Nation of AnyNation leave that
// column unconstrained; MinOverall is always an inclusive lower bound.
type Filter struct {
	Name       string
	MinOverall int
	Position   string
	Nation     string
}

func NewFilter(name string, minOverall int, position, nation string) Filter {
	return Filter{
		Name:       strings.TrimSpace(name),
		MinOverall: minOverall,
		Position:   strings.TrimSpace(position),
		Nation:     strings.TrimSpace(nation),
	}
}

func (f Filter) HasName() bool {
	return f.Name != ""
}

func (f Filter) HasPosition() bool {
	return f.Position != ""
}

func (f Filter) HasNation() bool {
	return f.Nation != AnyNation
}

// Matches reports whether p satisfies the filter with search semantics.
func (f Filter) Matches(p Player) bool {
	if p.Overall < f.MinOverall {
		return false
	}
	if f.HasName() && p.FirstName != f.Name {
		return false
	}
	if f.HasPosition() && p.Position != f.Position {
		return false
	}
	if f.HasNation() && p.Nation != f.Nation {
		return false
	}

	return true
}

// MatchesExactly reports whether p satisfies every field of the filter
// literally. Empty or AnyNation values are compared as-is, not as wildcards.
func (f Filter) MatchesExactly(p Player) bool {
	return p.Overall >= f.MinOverall &&
		p.Nation == f.Nation &&
		p.Position == f.Position &&
		p.FirstName == f.Name
}

// Patch holds the columns an update overwrites.
type Patch struct {
	Overall  int
	Position string
	Nation   string
}

func NewPatch(overall int, position, nation string) Patch {
	return Patch{
		Overall:  overall,
		Position: strings.TrimSpace(position),
		Nation:   strings.TrimSpace(nation),
	}
}

func (p Patch) Validate() error {
	if p.Overall < 0 {
		return fmt.Errorf("overall must not be negative")
	}

	return nil
}

// Apply returns pl with the patched columns overwritten.
func (p Patch) Apply(pl Player) Player {
	pl.Overall = p.Overall
	pl.Position = p.Position
	pl.Nation = p.Nation
	return pl
}

// Nations lists the nation choices offered to users, AnyNation first.
func Nations() []string {
	return []string{
		AnyNation,
		"Argentine",
		"Austria",
		"Belgium",
		"Brazil",
		"Croatia",
		"England",
		"France",
		"Germany",
		"Iran",
		"Italy",
		"Norway",
		"Portugal",
		"Spain",
	}
}
