package mcp

import (
	"log/slog"

	"github.com/claude/classgrid/internal/presets"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
// ps may be nil, which disables the preset tool.
func New(ds DataSource, ps *presets.Store, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("ClassGrid", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("ClassGrid fitness-class board. Filter the class schedule by search text, level, and category, inspect individual classes, and manage saved filter presets."),
	)

	h := &handlers{ds: ds, presets: ps, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolFilterClasses, Handler: h.filterClasses},
		server.ServerTool{Tool: toolGetClass, Handler: h.getClass},
		server.ServerTool{Tool: toolListLevels, Handler: h.listLevels},
		server.ServerTool{Tool: toolListCategories, Handler: h.listCategories},
		server.ServerTool{Tool: toolSavePreset, Handler: h.savePreset},
	)

	s.AddResources(
		server.ServerResource{Resource: resSchedule, Handler: h.schedule},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds      DataSource
	presets *presets.Store
	log     *slog.Logger
}

var resSchedule = mcp.NewResource(
	"classgrid://schedule",
	"Class Schedule",
	mcp.WithResourceDescription("The full class schedule with titles, levels, categories, instructors, and durations"),
	mcp.WithMIMEType("application/json"),
)
