package analysis

import "strings"

// Extract walks a lowered syntax tree into a FileReport. It is a pure
// function of the tree and path and is safe to call concurrently.
func Extract(tree *SyntaxTree, path string) FileReport {
	r := FileReport{
		Path:      path,
		Functions: []FunctionSymbol{},
		Classes:   []ClassSymbol{},
		Enums:     []EnumSymbol{},
	}

	fnIdx := map[string]int{}
	clsIdx := map[string]int{}
	enumIdx := map[string]int{}

	for _, stmt := range tree.Statements {
		switch stmt.Kind {
		case StmtFunction:
			sym := FunctionSymbol{Name: stmt.Name, Signature: stmt.Signature, Line: stmt.Line}
			if i, ok := fnIdx[sym.Name]; ok {
				r.Functions[i] = sym
			} else {
				fnIdx[sym.Name] = len(r.Functions)
				r.Functions = append(r.Functions, sym)
			}
		case StmtClass:
			if isEnumLike(stmt.Bases) {
				sym := extractEnum(stmt)
				if i, ok := enumIdx[sym.Name]; ok {
					r.Enums[i] = sym
				} else {
					enumIdx[sym.Name] = len(r.Enums)
					r.Enums = append(r.Enums, sym)
				}
			} else {
				sym := extractClass(stmt)
				if i, ok := clsIdx[sym.Name]; ok {
					r.Classes[i] = sym
				} else {
					clsIdx[sym.Name] = len(r.Classes)
					r.Classes = append(r.Classes, sym)
				}
			}
		}
	}
	return r
}

// isEnumLike classifies a class as enum-like when any rendered base text
// contains the exact substring "Enum". Purely syntactic: no import or
// alias resolution.
func isEnumLike(bases []string) bool {
	for _, base := range bases {
		if strings.Contains(base, "Enum") {
			return true
		}
	}
	return false
}

// extractEnum collects the bare-name targets of simple assignments in the
// enum body, in source order. Annotated and augmented assignments, methods
// and nested classes are not members.
func extractEnum(stmt Statement) EnumSymbol {
	sym := EnumSymbol{Name: stmt.Name, Line: stmt.Line, Members: []string{}}
	for _, s := range stmt.Body {
		if s.Kind == StmtAssign && s.Name != "" {
			sym.Members = append(sym.Members, s.Name)
		}
	}
	return sym
}

// extractClass collects annotated fields and methods exactly one level
// inside the class body. Other body statements are ignored.
func extractClass(stmt Statement) ClassSymbol {
	sym := ClassSymbol{
		Name:    stmt.Name,
		Bases:   stmt.Bases,
		Line:    stmt.Line,
		Fields:  []FieldSymbol{},
		Methods: []FunctionSymbol{},
	}

	fieldIdx := map[string]int{}
	methodIdx := map[string]int{}

	for _, s := range stmt.Body {
		switch s.Kind {
		case StmtAnnAssign:
			if s.Name == "" {
				continue
			}
			field := FieldSymbol{Name: s.Name, Annotation: s.Annotation, Line: s.Line}
			if i, ok := fieldIdx[field.Name]; ok {
				sym.Fields[i] = field
			} else {
				fieldIdx[field.Name] = len(sym.Fields)
				sym.Fields = append(sym.Fields, field)
			}
		case StmtFunction:
			method := FunctionSymbol{Name: s.Name, Signature: s.Signature, Line: s.Line}
			if i, ok := methodIdx[method.Name]; ok {
				sym.Methods[i] = method
			} else {
				methodIdx[method.Name] = len(sym.Methods)
				sym.Methods = append(sym.Methods, method)
			}
		}
	}
	return sym
}
