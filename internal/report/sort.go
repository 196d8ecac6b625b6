package report

import (
	"sort"

	"github.com/mvp-joe/pymap/internal/analysis"
)

// SortMode selects symbol ordering within a file. File ordering in the
// final report is always alphabetical by path regardless of mode.
type SortMode int

const (
	// FileOrder sorts ascending by line, stable on declaration order.
	FileOrder SortMode = iota
	// Alphabetical sorts ascending by name, ties broken by line.
	Alphabetical
)

func sortSymbols[S any](syms []S, mode SortMode, name func(S) string, line func(S) int) {
	switch mode {
	case Alphabetical:
		sort.SliceStable(syms, func(i, j int) bool {
			ni, nj := name(syms[i]), name(syms[j])
			if ni != nj {
				return ni < nj
			}
			return line(syms[i]) < line(syms[j])
		})
	default:
		sort.SliceStable(syms, func(i, j int) bool {
			return line(syms[i]) < line(syms[j])
		})
	}
}

// SortFunctions orders functions or methods per mode, in place.
func SortFunctions(syms []analysis.FunctionSymbol, mode SortMode) {
	sortSymbols(syms, mode,
		func(s analysis.FunctionSymbol) string { return s.Name },
		func(s analysis.FunctionSymbol) int { return s.Line })
}

// SortFields orders class fields per mode, in place.
func SortFields(syms []analysis.FieldSymbol, mode SortMode) {
	sortSymbols(syms, mode,
		func(s analysis.FieldSymbol) string { return s.Name },
		func(s analysis.FieldSymbol) int { return s.Line })
}

// SortClasses orders classes per mode, in place.
func SortClasses(syms []analysis.ClassSymbol, mode SortMode) {
	sortSymbols(syms, mode,
		func(s analysis.ClassSymbol) string { return s.Name },
		func(s analysis.ClassSymbol) int { return s.Line })
}

// SortEnums orders enums per mode, in place.
func SortEnums(syms []analysis.EnumSymbol, mode SortMode) {
	sortSymbols(syms, mode,
		func(s analysis.EnumSymbol) string { return s.Name },
		func(s analysis.EnumSymbol) int { return s.Line })
}
