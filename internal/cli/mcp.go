package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvp-joe/pymap/internal/mcpserver"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for codebase structure queries",
	Long: `Start a Model Context Protocol (MCP) server that lets LLM-powered coding
assistants query Python codebase structure without reading source files.

The server communicates via stdio (standard MCP transport) and exposes
the pymap_functions, pymap_classes, pymap_enums, pymap_modules and
pymap_dump tools. Every call analyzes the requested path fresh; no state
is kept between calls.

Example:
  pymap mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	server := mcpserver.New(eng, newLogger(), Version)
	return server.Serve(cmd.Context())
}
