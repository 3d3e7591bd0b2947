package doctree

import (
	"log"
	"sort"

	"github.com/xelth-com/manualsgo/internal/models"
)

// RootKey is the children-map key for sections without a parent
const RootKey = ""

// maxHeadingLevel caps how deep heading styles go; deeper sections
// reuse the deepest style
const maxHeadingLevel = 5

// Node is one entry of the pre-order linearization
type Node struct {
	Section models.Section
	Depth   int // 0 for roots
}

// Tree is the ordered hierarchy built from one document's flat section list
type Tree struct {
	children map[string][]models.Section
	roots    []models.Section
}

// Build partitions sections by parent id and orders every sibling group.
// A section whose declared parent does not exist in the set is treated as
// a root so one corrupt row cannot break the whole tree.
func Build(sections []models.Section) *Tree {
	byID := make(map[string]bool, len(sections))
	for _, s := range sections {
		byID[s.ID] = true
	}

	children := make(map[string][]models.Section)
	for _, s := range sections {
		key := RootKey
		if s.ParentID != nil && *s.ParentID != "" {
			if byID[*s.ParentID] {
				key = *s.ParentID
			} else {
				log.Printf("⚠️ Section %s references missing parent %s, treating as root", s.ID, *s.ParentID)
			}
		}
		children[key] = append(children[key], s)
	}

	for key := range children {
		group := children[key]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Order != group[j].Order {
				return group[i].Order < group[j].Order
			}
			return group[i].ID < group[j].ID
		})
	}

	return &Tree{
		children: children,
		roots:    children[RootKey],
	}
}

// Roots returns the ordered top-level sections
func (t *Tree) Roots() []models.Section {
	return t.roots
}

// ChildrenOf returns the ordered direct children of a section
func (t *Tree) ChildrenOf(sectionID string) []models.Section {
	return t.children[sectionID]
}

// Linearize emits the pre-order sequence: every section is immediately
// followed by all of its descendants before any sibling.
func (t *Tree) Linearize() []Node {
	var out []Node
	var walk func(parentKey string, depth int)
	walk = func(parentKey string, depth int) {
		for _, s := range t.children[parentKey] {
			out = append(out, Node{Section: s, Depth: depth})
			walk(s.ID, depth+1)
		}
	}
	walk(RootKey, 0)
	return out
}

// HeadingLevel maps a node depth to a heading level, capped at the
// deepest supported style
func HeadingLevel(depth int) int {
	level := depth + 1
	if level > maxHeadingLevel {
		return maxHeadingLevel
	}
	return level
}
