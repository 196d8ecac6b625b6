package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Extractor:
// - Extract top-level functions with verbatim signatures and line numbers
// - Preserve async markers, defaults and varargs in signatures
// - Extract classes with bases, annotated fields and methods
// - Classify enum-like classes (base text containing "Enum") as enums only
// - Collect enum members from simple bare-name assignments, source order
// - Enforce the one-level depth invariant (nested defs/classes invisible)
// - Last declaration wins for duplicate top-level names
// - Handle decorated and multi-line declarations
// - Empty files yield empty (not nil) symbol slices

func extractFixture(t *testing.T, name string) FileReport {
	t.Helper()
	path := filepath.Join("..", "..", "testdata", "python", name)
	source, err := os.ReadFile(path)
	require.NoError(t, err)

	tree, err := Parse(source)
	require.NoError(t, err)
	return Extract(tree, path)
}

func functionByName(t *testing.T, fns []FunctionSymbol, name string) FunctionSymbol {
	t.Helper()
	for _, fn := range fns {
		if fn.Name == name {
			return fn
		}
	}
	t.Fatalf("function %q not extracted", name)
	return FunctionSymbol{}
}

func classByName(t *testing.T, classes []ClassSymbol, name string) ClassSymbol {
	t.Helper()
	for _, cls := range classes {
		if cls.Name == name {
			return cls
		}
	}
	t.Fatalf("class %q not extracted", name)
	return ClassSymbol{}
}

func TestExtract_Functions(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "functions.py")
	assert.Len(t, report.Functions, 7)
	assert.Empty(t, report.Classes)
	assert.Empty(t, report.Enums)

	simple := functionByName(t, report.Functions, "simple_function")
	assert.Equal(t, "def simple_function()", simple.Signature)
	assert.Equal(t, 3, simple.Line)

	typed := functionByName(t, report.Functions, "function_with_types")
	assert.Equal(t, "def function_with_types(x: int, y: str) -> bool", typed.Signature)
	assert.Equal(t, 6, typed.Line)

	defaults := functionByName(t, report.Functions, "function_with_defaults")
	assert.Equal(t, `def function_with_defaults(a: int = 10, b: str = "hello") -> None`, defaults.Signature)
	assert.Equal(t, 9, defaults.Line)

	varargs := functionByName(t, report.Functions, "function_with_varargs")
	assert.Equal(t, "def function_with_varargs(*args: int, **kwargs: str) -> list", varargs.Signature)
}

func TestExtract_AsyncFunction(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "functions.py")
	async := functionByName(t, report.Functions, "async_function")
	assert.Equal(t, "async def async_function() -> dict", async.Signature)
	assert.Equal(t, 12, async.Line)
}

func TestExtract_PrivateAndDunderFunctions(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "functions.py")
	private := functionByName(t, report.Functions, "_private_function")
	assert.Equal(t, 18, private.Line)

	dunder := functionByName(t, report.Functions, "__dunder_function__")
	assert.Equal(t, 21, dunder.Line)
}

func TestExtract_ClassBases(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "classes.py")
	assert.Len(t, report.Classes, 6)

	plain := classByName(t, report.Classes, "PlainClass")
	assert.Empty(t, plain.Bases)
	assert.Equal(t, 3, plain.Line)

	single := classByName(t, report.Classes, "ClassWithBase")
	assert.Equal(t, []string{"object"}, single.Bases)

	multi := classByName(t, report.Classes, "ClassWithMultipleBases")
	assert.Equal(t, []string{"dict", "list"}, multi.Bases)
}

func TestExtract_ClassFields(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "classes.py")
	cls := classByName(t, report.Classes, "ClassWithFields")

	// Only annotated assignments qualify as fields.
	require.Len(t, cls.Fields, 2)
	assert.Equal(t, FieldSymbol{Name: "name", Annotation: "str", Line: 13}, cls.Fields[0])
	assert.Equal(t, FieldSymbol{Name: "value", Annotation: "int", Line: 14}, cls.Fields[1])
}

func TestExtract_ClassMethods(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "classes.py")
	cls := classByName(t, report.Classes, "ClassWithMethods")

	require.Len(t, cls.Methods, 3)
	assert.Equal(t, "def public_method(self) -> None", cls.Methods[0].Signature)
	assert.Equal(t, 18, cls.Methods[0].Line)
	assert.Equal(t, "def _private_method(self)", cls.Methods[1].Signature)
	assert.Equal(t, "async def async_method(self, url: str) -> bytes", cls.Methods[2].Signature)
	assert.Equal(t, 24, cls.Methods[2].Line)
}

func TestExtract_PrivateClassRetained(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "classes.py")
	cls := classByName(t, report.Classes, "_PrivateClass")
	require.Len(t, cls.Fields, 1)
	assert.Equal(t, "hidden", cls.Fields[0].Name)
}

func TestExtract_EnumClassification(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "enums.py")

	enumNames := make([]string, 0, len(report.Enums))
	for _, e := range report.Enums {
		enumNames = append(enumNames, e.Name)
	}
	assert.Equal(t, []string{"Color", "Status", "Weird"}, enumNames)

	// Flag has no "Enum" in its rendered base text: stays a class.
	classByName(t, report.Classes, "Permissions")
	classByName(t, report.Classes, "NotAnEnum")
}

func TestExtract_EnumAndClassMutuallyExclusive(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "enums.py")
	for _, cls := range report.Classes {
		assert.NotEqual(t, "Color", cls.Name)
		assert.NotEqual(t, "Status", cls.Name)
	}
}

func TestExtract_EnumMembers(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "enums.py")

	require.Equal(t, "Color", report.Enums[0].Name)
	assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, report.Enums[0].Members)
	assert.Equal(t, 5, report.Enums[0].Line)

	// Annotated assignments and methods in the enum body are not members.
	weird := report.Enums[2]
	require.Equal(t, "Weird", weird.Name)
	assert.Equal(t, []string{"A"}, weird.Members)
}

func TestExtract_DottedEnumBase(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "enums.py")
	require.Equal(t, "Weird", report.Enums[2].Name)
	assert.Equal(t, 21, report.Enums[2].Line)
}

func TestExtract_DuplicateNameLastWriteWins(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "edge_cases.py")
	dup := functionByName(t, report.Functions, "duplicate")
	assert.Equal(t, 7, dup.Line)

	count := 0
	for _, fn := range report.Functions {
		if fn.Name == "duplicate" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtract_DecoratedFunction(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "edge_cases.py")
	decorated := functionByName(t, report.Functions, "decorated")
	assert.Equal(t, "def decorated(x: int) -> int", decorated.Signature)
	assert.Equal(t, 11, decorated.Line)
}

func TestExtract_MultilineSignatureVerbatim(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "edge_cases.py")
	multiline := functionByName(t, report.Functions, "multiline")
	assert.Equal(t, 14, multiline.Line)
	assert.Contains(t, multiline.Signature, "def multiline(")
	assert.Contains(t, multiline.Signature, `b: str = "x",`)
	assert.Contains(t, multiline.Signature, ") -> None")
}

func TestExtract_OneLevelDepth(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "edge_cases.py")

	// conditional is declared inside an if block, nested is inside a
	// method: neither is top-level.
	for _, fn := range report.Functions {
		assert.NotEqual(t, "conditional", fn.Name)
		assert.NotEqual(t, "nested", fn.Name)
	}

	// Inner is a nested class; only Outer is extracted, and Inner is not
	// one of its members.
	require.Len(t, report.Classes, 1)
	outer := report.Classes[0]
	assert.Equal(t, "Outer", outer.Name)
	require.Len(t, outer.Methods, 1)
	assert.Equal(t, "method", outer.Methods[0].Name)
	assert.Empty(t, outer.Fields)
}

func TestExtract_ModuleLevelAssignmentsIgnored(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "edge_cases.py")
	for _, fn := range report.Functions {
		assert.NotEqual(t, "total", fn.Name)
	}
	assert.Len(t, report.Classes, 1)
}

func TestExtract_MixedFile(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "mixed.py")

	assert.Len(t, report.Functions, 2)
	assert.Len(t, report.Classes, 1)
	assert.Len(t, report.Enums, 1)

	assert.Equal(t, "Priority", report.Enums[0].Name)
	assert.Equal(t, []string{"LOW", "HIGH"}, report.Enums[0].Members)

	processor := classByName(t, report.Classes, "DataProcessor")
	assert.Equal(t, 13, processor.Line)
	require.Len(t, processor.Fields, 1)
	assert.Equal(t, "retries", processor.Fields[0].Name)
}

func TestExtract_EmptyFile(t *testing.T) {
	t.Parallel()

	report := extractFixture(t, "empty.py")
	assert.NotNil(t, report.Functions)
	assert.NotNil(t, report.Classes)
	assert.NotNil(t, report.Enums)
	assert.Empty(t, report.Functions)
	assert.Empty(t, report.Classes)
	assert.Empty(t, report.Enums)
}

func TestExtract_Idempotent(t *testing.T) {
	t.Parallel()

	first := extractFixture(t, "mixed.py")
	second := extractFixture(t, "mixed.py")
	assert.Equal(t, first, second)
}
