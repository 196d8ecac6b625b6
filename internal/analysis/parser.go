package analysis

import (
	"errors"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// ErrSyntax marks a file whose parse tree contains syntax errors.
// Such files contribute nothing to the report.
var ErrSyntax = errors.New("syntax error")

// StmtKind tags a lowered statement.
type StmtKind int

const (
	StmtFunction StmtKind = iota
	StmtClass
	StmtAssign    // name = value
	StmtAnnAssign // name: Type [= value]
	StmtOther
)

// Statement is a lowered view of one Python statement. Class bodies are
// lowered exactly one level deep: statements inside a class carry no Body
// of their own, so extraction cannot recurse further.
type Statement struct {
	Kind       StmtKind
	Line       int
	Name       string // function/class name, or assignment target when it is a bare name
	Signature  string // functions only
	Bases      []string
	Annotation string // annotated assignments only
	Body       []Statement
}

// SyntaxTree is the lowered sequence of a file's top-level statements.
type SyntaxTree struct {
	Statements []Statement
}

var pythonLanguage = sitter.NewLanguage(python.Language())

// Parse lowers Python source into a SyntaxTree. Trees containing parse
// errors are rejected whole with ErrSyntax.
func Parse(source []byte) (*SyntaxTree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(pythonLanguage)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, ErrSyntax
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, ErrSyntax
	}

	st := &SyntaxTree{Statements: []Statement{}}
	for i := uint(0); i < root.ChildCount(); i++ {
		st.Statements = append(st.Statements, lowerStatement(root.Child(i), source, true))
	}
	return st, nil
}

// lowerStatement converts one tree-sitter statement node. withBody controls
// whether class bodies are descended into; it is false when the statement
// is itself inside a class body.
func lowerStatement(node *sitter.Node, source []byte, withBody bool) Statement {
	if node.Kind() == "decorated_definition" {
		if def := node.ChildByFieldName("definition"); def != nil {
			node = def
		}
	}

	switch node.Kind() {
	case "function_definition":
		return Statement{
			Kind:      StmtFunction,
			Line:      int(node.StartPosition().Row) + 1,
			Name:      fieldText(node, "name", source),
			Signature: signatureText(node, source),
		}
	case "class_definition":
		stmt := Statement{
			Kind:  StmtClass,
			Line:  int(node.StartPosition().Row) + 1,
			Name:  fieldText(node, "name", source),
			Bases: baseTexts(node, source),
		}
		if withBody {
			stmt.Body = lowerClassBody(node.ChildByFieldName("body"), source)
		}
		return stmt
	case "expression_statement":
		return lowerExpressionStatement(node, source)
	}
	return Statement{Kind: StmtOther, Line: int(node.StartPosition().Row) + 1}
}

// lowerExpressionStatement recognizes simple and annotated assignments.
// Everything else, including augmented assignments, is StmtOther.
func lowerExpressionStatement(node *sitter.Node, source []byte) Statement {
	line := int(node.StartPosition().Row) + 1
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() != "assignment" {
			continue
		}

		stmt := Statement{Kind: StmtAssign, Line: line}
		if left := child.ChildByFieldName("left"); left != nil && left.Kind() == "identifier" {
			stmt.Name = nodeText(left, source)
		}
		if typ := child.ChildByFieldName("type"); typ != nil {
			stmt.Kind = StmtAnnAssign
			stmt.Annotation = nodeText(typ, source)
		}
		return stmt
	}
	return Statement{Kind: StmtOther, Line: line}
}

func lowerClassBody(body *sitter.Node, source []byte) []Statement {
	stmts := []Statement{}
	if body == nil {
		return stmts
	}
	for i := uint(0); i < body.ChildCount(); i++ {
		stmts = append(stmts, lowerStatement(body.Child(i), source, false))
	}
	return stmts
}

// signatureText renders a function declaration verbatim: everything from
// its first token (including any async marker) up to the colon that
// introduces the body. Stopping at the colon token keeps trailing
// comments between the colon and the body out of the signature.
func signatureText(node *sitter.Node, source []byte) string {
	end := node.EndByte()
	if body := node.ChildByFieldName("body"); body != nil {
		end = body.StartByte()
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child.Kind() == ":" {
			end = child.StartByte()
			break
		}
	}
	sig := string(source[node.StartByte():end])
	sig = strings.TrimRight(sig, " \t\r\n")
	sig = strings.TrimSuffix(sig, ":")
	return strings.TrimRight(sig, " \t")
}

// baseTexts renders the positional base-class expressions of a class in
// declared order. Keyword arguments such as metaclass=... are not bases.
func baseTexts(node *sitter.Node, source []byte) []string {
	bases := []string{}
	superclasses := node.ChildByFieldName("superclasses")
	if superclasses == nil {
		return bases
	}
	for i := uint(0); i < superclasses.NamedChildCount(); i++ {
		child := superclasses.NamedChild(i)
		switch child.Kind() {
		case "keyword_argument", "comment":
			continue
		}
		bases = append(bases, nodeText(child, source))
	}
	return bases
}

func fieldText(node *sitter.Node, field string, source []byte) string {
	return nodeText(node.ChildByFieldName(field), source)
}

func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}
