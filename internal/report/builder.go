package report

import (
	"path/filepath"
	"sort"

	"github.com/mvp-joe/pymap/internal/analysis"
)

// Assemble builds the final Report from per-file extraction results that
// have already been matched and filtered upstream. Files are sorted
// alphabetically by path; symbol mappings within each file follow mode.
// The module tree is built from the full discovered path set, which may
// include files that failed to parse. An empty input produces a report
// with empty mappings, never nil.
func Assemble(reports []analysis.FileReport, paths []string, mode SortMode) *Report {
	sorted := make([]analysis.FileReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	files := NewMap[*FileEntry]()
	for i := range sorted {
		files.Set(filepath.ToSlash(sorted[i].Path), buildFileEntry(&sorted[i], mode))
	}

	return &Report{Files: files, Modules: BuildModuleTree(paths)}
}

func buildFileEntry(fr *analysis.FileReport, mode SortMode) *FileEntry {
	entry := &FileEntry{
		Functions: NewMap[FunctionEntry](),
		Classes:   NewMap[*ClassEntry](),
		Enums:     NewMap[EnumEntry](),
	}

	functions := make([]analysis.FunctionSymbol, len(fr.Functions))
	copy(functions, fr.Functions)
	SortFunctions(functions, mode)
	for _, fn := range functions {
		entry.Functions.Set(fn.Name, FunctionEntry{Signature: fn.Signature, Line: fn.Line})
	}

	classes := make([]analysis.ClassSymbol, len(fr.Classes))
	copy(classes, fr.Classes)
	SortClasses(classes, mode)
	for _, cls := range classes {
		entry.Classes.Set(cls.Name, buildClassEntry(&cls, mode))
	}

	enums := make([]analysis.EnumSymbol, len(fr.Enums))
	copy(enums, fr.Enums)
	SortEnums(enums, mode)
	for _, e := range enums {
		entry.Enums.Set(e.Name, EnumEntry{Line: e.Line, Members: e.Members})
	}

	return entry
}

func buildClassEntry(cls *analysis.ClassSymbol, mode SortMode) *ClassEntry {
	entry := &ClassEntry{
		Bases:   cls.Bases,
		Line:    cls.Line,
		Fields:  NewMap[FieldEntry](),
		Methods: NewMap[FunctionEntry](),
	}

	fields := make([]analysis.FieldSymbol, len(cls.Fields))
	copy(fields, cls.Fields)
	SortFields(fields, mode)
	for _, f := range fields {
		entry.Fields.Set(f.Name, FieldEntry{Annotation: f.Annotation, Line: f.Line})
	}

	methods := make([]analysis.FunctionSymbol, len(cls.Methods))
	copy(methods, cls.Methods)
	SortFunctions(methods, mode)
	for _, m := range methods {
		entry.Methods.Set(m.Name, FunctionEntry{Signature: m.Signature, Line: m.Line})
	}

	return entry
}
