package mcp

import (
	"context"

	"github.com/claude/classgrid/internal/catalog"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolFilterClasses = mcp.NewTool("filter_classes",
	mcp.WithDescription("Filter the class schedule. Search matches class titles case-insensitively; level and category are exact matches, with 'all' meaning no restriction. Returns the matching classes and whether the result is empty."),
	mcp.WithString("search", mcp.Description("Free-text search over class titles (substring, case-insensitive)")),
	mcp.WithString("level", mcp.Description("Exact level filter (e.g. 'Beginner', 'Advanced'). Defaults to 'all'.")),
	mcp.WithString("category", mcp.Description("Exact category filter (e.g. 'Cardio', 'Strength'). Defaults to 'all'.")),
)

var toolGetClass = mcp.NewTool("get_class",
	mcp.WithDescription("Fetch a single class by ID."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Class UUID")),
)

var toolListLevels = mcp.NewTool("list_levels",
	mcp.WithDescription("List the distinct level values present on the schedule."),
)

var toolListCategories = mcp.NewTool("list_categories",
	mcp.WithDescription("List the distinct category values present on the schedule."),
)

var toolSavePreset = mcp.NewTool("save_filter_preset",
	mcp.WithDescription("Save a named filter preset (search/level/category) for later reuse on the board."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Preset name")),
	mcp.WithString("search", mcp.Description("Search term to store")),
	mcp.WithString("level", mcp.Description("Level to store. Defaults to 'all'.")),
	mcp.WithString("category", mcp.Description("Category to store. Defaults to 'all'.")),
)

// --- Tool handlers ---

func (h *handlers) filterClasses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state := catalog.StateFromValues(
		req.GetString("search", ""),
		req.GetString("level", ""),
		req.GetString("category", ""),
	)

	// Fetch the whole schedule and run the board's own predicate over it, so
	// the tool reports exactly what the board would show.
	classes, err := h.ds.QueryClasses(ctx, "", "", "")
	if err != nil {
		h.log.Error("mcp filter_classes", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	visible := catalog.Filter(classes, state)
	result, err := mcp.NewToolResultJSON(map[string]any{
		"state":   state,
		"classes": catalog.Select(classes, visible),
		"count":   len(visible),
		"empty":   len(visible) == 0,
	})
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) getClass(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid class ID"), nil
	}

	class, err := h.ds.GetClass(ctx, id)
	if err != nil {
		return mcp.NewToolResultError("class not found"), nil
	}

	result, err := mcp.NewToolResultJSON(class)
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) listLevels(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	levels, err := h.ds.ListLevels(ctx)
	if err != nil {
		h.log.Error("mcp list_levels", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	result, err := mcp.NewToolResultJSON(levels)
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) listCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories, err := h.ds.ListCategories(ctx)
	if err != nil {
		h.log.Error("mcp list_categories", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	result, err := mcp.NewToolResultJSON(categories)
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) savePreset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.presets == nil {
		return mcp.NewToolResultError("presets are disabled"), nil
	}

	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	state := catalog.StateFromValues(
		req.GetString("search", ""),
		req.GetString("level", ""),
		req.GetString("category", ""),
	)
	if err := h.presets.Save(name, state); err != nil {
		h.log.Error("mcp save_filter_preset", "error", err)
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{"name": name, "state": state})
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}
