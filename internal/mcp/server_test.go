package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/claude/classgrid/internal/catalog"
	"github.com/claude/classgrid/internal/presets"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// fakeSource serves a fixed schedule without a database.
type fakeSource struct {
	classes []catalog.Class
}

func (f *fakeSource) QueryClasses(ctx context.Context, level, category, search string) ([]catalog.Class, error) {
	return f.classes, nil
}

func (f *fakeSource) GetClass(ctx context.Context, id uuid.UUID) (*catalog.Class, error) {
	for _, c := range f.classes {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeSource) ListLevels(ctx context.Context) ([]string, error) {
	return []string{"Advanced", "Beginner"}, nil
}

func (f *fakeSource) ListCategories(ctx context.Context) ([]string, error) {
	return []string{"Cardio", "Strength"}, nil
}

func testHandlers(t *testing.T) *handlers {
	t.Helper()
	ps, err := presets.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ps.Close() })

	return &handlers{
		ds: &fakeSource{classes: []catalog.Class{
			{ID: uuid.NewSHA1(uuid.NameSpaceOID, []byte("a")), Title: "Power Yoga", Level: "Beginner", Category: "Strength"},
			{ID: uuid.NewSHA1(uuid.NameSpaceOID, []byte("b")), Title: "HIIT Blast", Level: "Advanced", Category: "Cardio"},
		}},
		presets: ps,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// TestFilterClassesTool verifies that the tool applies the board predicate,
// including the 'all' default for absent selectors.
func TestFilterClassesTool(t *testing.T) {
	h := testHandlers(t)

	res, err := h.filterClasses(context.Background(), callRequest(map[string]any{
		"category": "Cardio",
	}))
	if err != nil {
		t.Fatalf("filterClasses: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %+v", res)
	}

	text := toolText(t, res)
	if !strings.Contains(text, "HIIT Blast") || strings.Contains(text, "Power Yoga") {
		t.Errorf("result = %s, want only HIIT Blast", text)
	}
	if !strings.Contains(text, `"empty":false`) {
		t.Errorf("result = %s, want empty:false", text)
	}
}

// TestFilterClassesToolEmpty verifies the empty flag on no matches.
func TestFilterClassesToolEmpty(t *testing.T) {
	h := testHandlers(t)

	res, err := h.filterClasses(context.Background(), callRequest(map[string]any{
		"search": "zzz",
	}))
	if err != nil {
		t.Fatalf("filterClasses: %v", err)
	}

	text := toolText(t, res)
	if !strings.Contains(text, `"empty":true`) {
		t.Errorf("result = %s, want empty:true", text)
	}
}

// TestGetClassToolBadID verifies a friendly error for malformed IDs.
func TestGetClassToolBadID(t *testing.T) {
	h := testHandlers(t)

	res, err := h.getClass(context.Background(), callRequest(map[string]any{
		"id": "not-a-uuid",
	}))
	if err != nil {
		t.Fatalf("getClass: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for bad ID")
	}
}

// TestSavePresetTool verifies the preset lands in the store with selector
// defaults applied.
func TestSavePresetTool(t *testing.T) {
	h := testHandlers(t)

	res, err := h.savePreset(context.Background(), callRequest(map[string]any{
		"name":   "strength",
		"search": "power",
	}))
	if err != nil {
		t.Fatalf("savePreset: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %+v", res)
	}

	p, ok, err := h.presets.Get("strength")
	if err != nil || !ok {
		t.Fatalf("preset not stored: ok=%v err=%v", ok, err)
	}
	if p.State.Search != "power" || p.State.Level != catalog.All || p.State.Category != catalog.All {
		t.Errorf("stored state = %+v", p.State)
	}
}

// TestSavePresetToolDisabled verifies the nil-store path.
func TestSavePresetToolDisabled(t *testing.T) {
	h := testHandlers(t)
	h.presets = nil

	res, err := h.savePreset(context.Background(), callRequest(map[string]any{"name": "x"}))
	if err != nil {
		t.Fatalf("savePreset: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result with presets disabled")
	}
}

func toolText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := mcp.AsTextContent(res.Content[0])
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return tc.Text
}

