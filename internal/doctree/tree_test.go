package doctree

import (
	"testing"

	"github.com/xelth-com/manualsgo/internal/models"
)

func ptr(s string) *string { return &s }

func TestBuildOrdersSiblingsByOrderThenID(t *testing.T) {
	sections := []models.Section{
		{ID: "b", Title: "Second", Order: 10},
		{ID: "a", Title: "AlsoTen", Order: 10},
		{ID: "c", Title: "First", Order: 1},
	}

	tree := Build(sections)
	roots := tree.Roots()

	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(roots))
	}
	if roots[0].ID != "c" {
		t.Errorf("expected lowest order first, got %s", roots[0].ID)
	}
	// Equal order ties break by id
	if roots[1].ID != "a" || roots[2].ID != "b" {
		t.Errorf("tie-break by id failed: got %s, %s", roots[1].ID, roots[2].ID)
	}
}

func TestLinearizePreOrder(t *testing.T) {
	sections := []models.Section{
		{ID: "s1", Title: "Intro", Order: 1},
		{ID: "s2", Title: "Assembly", Order: 2},
		{ID: "s1a", Title: "Safety", Order: 1, ParentID: ptr("s1")},
		{ID: "s1b", Title: "Tools", Order: 2, ParentID: ptr("s1")},
		{ID: "s1a1", Title: "Gloves", Order: 1, ParentID: ptr("s1a")},
	}

	nodes := Build(sections).Linearize()

	want := []string{"s1", "s1a", "s1a1", "s1b", "s2"}
	if len(nodes) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(nodes))
	}
	for i, id := range want {
		if nodes[i].Section.ID != id {
			t.Errorf("position %d: got %s, want %s", i, nodes[i].Section.ID, id)
		}
	}

	// Depths follow the hierarchy
	depths := []int{0, 1, 2, 1, 0}
	for i, d := range depths {
		if nodes[i].Depth != d {
			t.Errorf("position %d: depth %d, want %d", i, nodes[i].Depth, d)
		}
	}
}

func TestOrphanBecomesRoot(t *testing.T) {
	sections := []models.Section{
		{ID: "s1", Title: "Intro", Order: 1},
		{ID: "orphan", Title: "Lost", Order: 2, ParentID: ptr("gone")},
	}

	tree := Build(sections)
	roots := tree.Roots()

	if len(roots) != 2 {
		t.Fatalf("orphan should be placed among roots, got %d roots", len(roots))
	}
	if roots[1].ID != "orphan" {
		t.Errorf("expected orphan at root level, got %s", roots[1].ID)
	}
}

func TestLinearizeEmpty(t *testing.T) {
	nodes := Build(nil).Linearize()
	if len(nodes) != 0 {
		t.Errorf("expected empty linearization, got %d nodes", len(nodes))
	}
}

func TestHeadingLevelCaps(t *testing.T) {
	if HeadingLevel(0) != 1 {
		t.Errorf("root depth should map to heading 1")
	}
	if HeadingLevel(3) != 4 {
		t.Errorf("depth 3 should map to heading 4")
	}
	if HeadingLevel(9) != 5 {
		t.Errorf("deep levels should reuse the deepest heading, got %d", HeadingLevel(9))
	}
}
