package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// UseJSON reports whether output should be JSON: either forced by flag, or
// stdout is not a terminal (piped to another program or an agent).
func UseJSON(jsonFlag bool) bool {
	if jsonFlag {
		return true
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Encode writes v as indented JSON or YAML. Mapping order is preserved by
// the ordered-map marshalers.
func Encode(w io.Writer, v interface{}, useJSON bool) error {
	if useJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
