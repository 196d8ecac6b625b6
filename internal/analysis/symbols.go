package analysis

// FunctionSymbol is a top-level function or a class method.
type FunctionSymbol struct {
	Name      string
	Signature string // verbatim declaration text, without the trailing colon and body
	Line      int    // 1-indexed line of the declaration
}

// FieldSymbol is an annotated assignment directly inside a class body.
type FieldSymbol struct {
	Name       string
	Annotation string
	Line       int
}

// ClassSymbol is a top-level class that was not classified as an enum.
type ClassSymbol struct {
	Name    string
	Bases   []string // base-class expressions, verbatim, in declared order
	Line    int
	Fields  []FieldSymbol
	Methods []FunctionSymbol
}

// EnumSymbol is a class whose base list marks it as enum-like.
// It is mutually exclusive with ClassSymbol for the same declaration.
type EnumSymbol struct {
	Name    string
	Line    int
	Members []string // bare-name assignment targets, in source order
}

// FileReport holds every symbol extracted from one source file.
// Slices keep the retained declaration order; name uniqueness is enforced
// with last-write-wins during extraction.
type FileReport struct {
	Path      string
	Functions []FunctionSymbol
	Classes   []ClassSymbol
	Enums     []EnumSymbol
}
