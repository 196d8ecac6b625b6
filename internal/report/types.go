// Package report turns per-file extraction results into the final keyed,
// deterministically ordered output structures and encodes them.
package report

// FunctionEntry is one function or method in the output, keyed by name in
// the enclosing mapping.
type FunctionEntry struct {
	Signature string `json:"signature" yaml:"signature"`
	Line      int    `json:"line" yaml:"line"`
}

// FieldEntry is one annotated class field.
type FieldEntry struct {
	Annotation string `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	Line       int    `json:"line" yaml:"line"`
}

// ClassEntry is one class with its bases, fields and methods.
type ClassEntry struct {
	Bases   []string            `json:"bases,omitempty" yaml:"bases,omitempty"`
	Line    int                 `json:"line" yaml:"line"`
	Fields  *Map[FieldEntry]    `json:"fields" yaml:"fields"`
	Methods *Map[FunctionEntry] `json:"methods" yaml:"methods"`
}

// EnumEntry is one enum-like class with its member names in source order.
type EnumEntry struct {
	Line    int      `json:"line" yaml:"line"`
	Members []string `json:"members" yaml:"members"`
}

// FileEntry is the full per-file report. Mapping iteration order is the
// Sorter order; a file with no symbols has empty mappings, never nil.
type FileEntry struct {
	Functions *Map[FunctionEntry] `json:"functions" yaml:"functions"`
	Classes   *Map[*ClassEntry]   `json:"classes" yaml:"classes"`
	Enums     *Map[EnumEntry]     `json:"enums" yaml:"enums"`
}

// ModuleKind distinguishes directories from files in the module tree.
type ModuleKind string

const (
	ModulePackage ModuleKind = "package"
	ModuleModule  ModuleKind = "module"
)

// ModuleNode is one node of the package/module hierarchy. Children are
// keyed by cumulative path and always sorted alphabetically; leaves have
// nil Children.
type ModuleNode struct {
	Type     ModuleKind        `json:"type" yaml:"type"`
	Children *Map[*ModuleNode] `json:"children,omitempty" yaml:"children,omitempty"`
}

// Report is the complete analysis result: per-file reports always ordered
// alphabetically by path, plus the module tree.
type Report struct {
	Files   *Map[*FileEntry]  `json:"files" yaml:"files"`
	Modules *Map[*ModuleNode] `json:"modules" yaml:"modules"`
}

// FunctionsReport is the functions facet of a Report.
type FunctionsReport struct {
	Files *Map[*Map[FunctionEntry]] `json:"files" yaml:"files"`
}

// ClassesReport is the classes facet of a Report.
type ClassesReport struct {
	Files *Map[*Map[*ClassEntry]] `json:"files" yaml:"files"`
}

// EnumsReport is the enums facet of a Report.
type EnumsReport struct {
	Files *Map[*Map[EnumEntry]] `json:"files" yaml:"files"`
}

// DumpReport is the full per-file facet of a Report.
type DumpReport struct {
	Files *Map[*FileEntry] `json:"files" yaml:"files"`
}

// ModulesReport is the module-tree facet of a Report.
type ModulesReport struct {
	Modules *Map[*ModuleNode] `json:"modules" yaml:"modules"`
}

// FunctionsView projects the functions facet.
func (r *Report) FunctionsView() *FunctionsReport {
	out := &FunctionsReport{Files: NewMap[*Map[FunctionEntry]]()}
	for _, path := range r.Files.Keys() {
		entry, _ := r.Files.Get(path)
		out.Files.Set(path, entry.Functions)
	}
	return out
}

// ClassesView projects the classes facet.
func (r *Report) ClassesView() *ClassesReport {
	out := &ClassesReport{Files: NewMap[*Map[*ClassEntry]]()}
	for _, path := range r.Files.Keys() {
		entry, _ := r.Files.Get(path)
		out.Files.Set(path, entry.Classes)
	}
	return out
}

// EnumsView projects the enums facet.
func (r *Report) EnumsView() *EnumsReport {
	out := &EnumsReport{Files: NewMap[*Map[EnumEntry]]()}
	for _, path := range r.Files.Keys() {
		entry, _ := r.Files.Get(path)
		out.Files.Set(path, entry.Enums)
	}
	return out
}

// DumpView projects the full per-file facet.
func (r *Report) DumpView() *DumpReport {
	return &DumpReport{Files: r.Files}
}

// ModulesView projects the module tree.
func (r *Report) ModulesView() *ModulesReport {
	return &ModulesReport{Modules: r.Modules}
}
