// Package pattern implements the cascading name matcher and the
// public/private visibility filter applied to extracted symbol names.
package pattern

import "strings"

// Tier is a precedence level of the cascading match; lower is more precise.
type Tier int

const (
	TierPrefix       Tier = iota // name starts with pattern, case-sensitive
	TierPrefixFold               // name starts with pattern, case-insensitive
	TierContains                 // name contains pattern, case-sensitive
	TierContainsFold             // name contains pattern, case-insensitive
	TierNone                     // no match
)

// Match reports the finest tier at which name matches pattern.
func Match(name, pattern string) Tier {
	if strings.HasPrefix(name, pattern) {
		return TierPrefix
	}

	nameFold := strings.ToLower(name)
	patternFold := strings.ToLower(pattern)

	if strings.HasPrefix(nameFold, patternFold) {
		return TierPrefixFold
	}
	if strings.Contains(name, pattern) {
		return TierContains
	}
	if strings.Contains(nameFold, patternFold) {
		return TierContainsFold
	}
	return TierNone
}

// Filter selects the names that survive cascading matching. The winning
// tier is the finest tier reached by any (name, pattern) pair across the
// whole candidate set; only names reaching that tier against at least one
// pattern are kept. Names matching solely at coarser tiers are dropped.
// An empty pattern list keeps every name.
func Filter(names []string, patterns []string) map[string]struct{} {
	keep := make(map[string]struct{}, len(names))
	if len(patterns) == 0 {
		for _, name := range names {
			keep[name] = struct{}{}
		}
		return keep
	}

	best := TierNone
	tiers := make([]Tier, len(names))
	for i, name := range names {
		tier := TierNone
		for _, p := range patterns {
			if t := Match(name, p); t < tier {
				tier = t
			}
		}
		tiers[i] = tier
		if tier < best {
			best = tier
		}
	}

	if best == TierNone {
		return map[string]struct{}{}
	}
	for i, name := range names {
		if tiers[i] == best {
			keep[name] = struct{}{}
		}
	}
	return keep
}
