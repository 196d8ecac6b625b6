package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/pymap/internal/engine"
	"github.com/mvp-joe/pymap/internal/pattern"
)

// toolArgs are the arguments shared by all pymap tools.
type toolArgs struct {
	Targets      []string
	Patterns     []string
	Visibility   pattern.Visibility
	Alphabetical bool
}

// newReportTool declares a tool carrying the shared pymap arguments.
func newReportTool(name, description string, visibility bool) mcp.Tool {
	opts := append([]mcp.ToolOption{mcp.WithDescription(description)}, withCommonArgs(visibility)...)
	return mcp.NewTool(name, opts...)
}

// AddFunctionsTool registers the pymap_functions tool with an MCP server.
func AddFunctionsTool(s *server.MCPServer, eng *engine.Engine) {
	tool := newReportTool(
		"pymap_functions",
		"List the top-level functions of a Python codebase with verbatim signatures and line numbers, keyed by file path. Deterministic and machine-parseable.",
		true,
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, errResult := parseToolArgs(request)
		if errResult != nil {
			return errResult, nil
		}
		result, err := eng.Functions(ctx, args.Targets, args.options())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(result)
	})
}

// AddClassesTool registers the pymap_classes tool with an MCP server.
func AddClassesTool(s *server.MCPServer, eng *engine.Engine) {
	tool := newReportTool(
		"pymap_classes",
		"List the classes of a Python codebase with base classes, annotated fields and methods. Enum-like classes are reported by pymap_enums instead.",
		true,
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, errResult := parseToolArgs(request)
		if errResult != nil {
			return errResult, nil
		}
		result, err := eng.Classes(ctx, args.Targets, args.options())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(result)
	})
}

// AddEnumsTool registers the pymap_enums tool with an MCP server.
func AddEnumsTool(s *server.MCPServer, eng *engine.Engine) {
	tool := newReportTool(
		"pymap_enums",
		"List the enum-like classes of a Python codebase (classes with a base containing 'Enum') and their members in source order.",
		false,
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, errResult := parseToolArgs(request)
		if errResult != nil {
			return errResult, nil
		}
		result, err := eng.Enums(ctx, args.Targets, args.options())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(result)
	})
}

// AddModulesTool registers the pymap_modules tool with an MCP server.
func AddModulesTool(s *server.MCPServer, eng *engine.Engine) {
	tool := mcp.NewTool(
		"pymap_modules",
		mcp.WithDescription("Show the package/module hierarchy of a Python codebase as a tree of packages (directories) and modules (files), always sorted alphabetically."),
		mcp.WithString("path",
			mcp.Description("File or directory to analyze (default: current directory)")),
		mcp.WithArray("patterns",
			mcp.Description("Name patterns; prefix matches beat contains matches, case-sensitive beats case-insensitive")),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, errResult := parseToolArgs(request)
		if errResult != nil {
			return errResult, nil
		}
		result, err := eng.Modules(ctx, args.Targets, args.options())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(result)
	})
}

// AddDumpTool registers the pymap_dump tool with an MCP server.
func AddDumpTool(s *server.MCPServer, eng *engine.Engine) {
	tool := newReportTool(
		"pymap_dump",
		"Full per-file structural report of a Python codebase: functions, classes and enums together. Patterns match every top-level symbol name.",
		false,
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, errResult := parseToolArgs(request)
		if errResult != nil {
			return errResult, nil
		}
		result, err := eng.Dump(ctx, args.Targets, args.options())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(result)
	})
}

// withCommonArgs builds the shared tool argument declarations.
func withCommonArgs(visibility bool) []mcp.ToolOption {
	opts := []mcp.ToolOption{
		mcp.WithString("path",
			mcp.Description("File or directory to analyze (default: current directory)")),
		mcp.WithArray("patterns",
			mcp.Description("Name patterns; prefix matches beat contains matches, case-sensitive beats case-insensitive")),
		mcp.WithBoolean("alphabetical",
			mcp.Description("Sort symbols alphabetically instead of file order")),
	}
	if visibility {
		opts = append(opts, mcp.WithString("visibility",
			mcp.Description("Filter by name prefix: 'public' (no leading _), 'private' (leading _), or 'all' (default)")))
	}
	return opts
}

// parseToolArgs extracts the shared arguments from an MCP request.
func parseToolArgs(request mcp.CallToolRequest) (*toolArgs, *mcp.CallToolResult) {
	args := &toolArgs{Targets: []string{"."}}

	argsMap, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		if request.Params.Arguments == nil {
			return args, nil
		}
		return nil, mcp.NewToolResultError("invalid arguments format")
	}

	if path, ok := argsMap["path"].(string); ok && path != "" {
		args.Targets = []string{path}
	}

	if patterns, ok := argsMap["patterns"].([]interface{}); ok {
		for _, p := range patterns {
			if s, ok := p.(string); ok {
				args.Patterns = append(args.Patterns, s)
			}
		}
	}

	if alphabetical, ok := argsMap["alphabetical"].(bool); ok {
		args.Alphabetical = alphabetical
	}

	switch vis, _ := argsMap["visibility"].(string); vis {
	case "", "all":
		args.Visibility = pattern.ShowAll
	case "public":
		args.Visibility = pattern.PublicOnly
	case "private":
		args.Visibility = pattern.PrivateOnly
	default:
		return nil, mcp.NewToolResultError("visibility must be 'public', 'private' or 'all'")
	}

	return args, nil
}

func (a *toolArgs) options() engine.Options {
	return engine.Options{
		Patterns:     a.Patterns,
		Visibility:   a.Visibility,
		Alphabetical: a.Alphabetical,
	}
}

// jsonResult marshals a report and returns it as text (mcp-go convention).
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
