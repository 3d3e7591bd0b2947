package bom

import (
	"strings"

	"github.com/xelth-com/manualsgo/internal/models"
)

// matchThreshold: a pair counts as a match when its score exceeds this
const matchThreshold = 50

// PlaceholderCode marks an item whose component row no longer exists
const PlaceholderCode = "–"

// EnhancedItem is a BOM item with its component resolved. The matcher
// works on this shape, never on raw rows.
type EnhancedItem struct {
	Item      models.BomItem   `json:"item"`
	Component models.Component `json:"component"`
}

// Match is one above-threshold pairing between the two sides
type Match struct {
	A     EnhancedItem `json:"a"`
	B     EnhancedItem `json:"b"`
	Score int          `json:"score"`
}

// Comparison is the full report for two BOMs. Matches are fuzzy and
// informational (manual review); the unique partitions use exact
// component-id equality and drive what must be freshly authored in a
// migrated document.
type Comparison struct {
	Matches   []Match        `json:"matches"`
	UniqueToA []EnhancedItem `json:"uniqueToA"`
	UniqueToB []EnhancedItem `json:"uniqueToB"`
}

// Similarity scores how likely two components are the same physical
// part: 100 exact code, 85 code substring, 80 exact description,
// 65 description substring, else 0. Checks short-circuit in that order.
func Similarity(a, b models.Component) int {
	if a.Code != "" && a.Code == b.Code {
		return 100
	}
	if a.Code != "" && b.Code != "" &&
		(strings.Contains(a.Code, b.Code) || strings.Contains(b.Code, a.Code)) {
		return 85
	}
	if a.Description != "" && a.Description == b.Description {
		return 80
	}
	if a.Description != "" && b.Description != "" &&
		(strings.Contains(a.Description, b.Description) || strings.Contains(b.Description, a.Description)) {
		return 65
	}
	return 0
}

// Compare scans the full cross product of the two sides. Substring
// similarity cannot be indexed, so the O(n·m) scan is intrinsic.
// Matches are emitted in (A, B) iteration order without dedup: one item
// may appear in several match records.
func Compare(itemsA, itemsB []EnhancedItem) Comparison {
	result := Comparison{
		Matches:   []Match{},
		UniqueToA: []EnhancedItem{},
		UniqueToB: []EnhancedItem{},
	}

	for _, a := range itemsA {
		for _, b := range itemsB {
			if score := Similarity(a.Component, b.Component); score > matchThreshold {
				result.Matches = append(result.Matches, Match{A: a, B: b, Score: score})
			}
		}
	}

	idsA := make(map[string]bool, len(itemsA))
	for _, a := range itemsA {
		idsA[a.Item.ComponentID] = true
	}
	idsB := make(map[string]bool, len(itemsB))
	for _, b := range itemsB {
		idsB[b.Item.ComponentID] = true
	}

	for _, a := range itemsA {
		if !idsB[a.Item.ComponentID] {
			result.UniqueToA = append(result.UniqueToA, a)
		}
	}
	for _, b := range itemsB {
		if !idsA[b.Item.ComponentID] {
			result.UniqueToB = append(result.UniqueToB, b)
		}
	}

	return result
}

// Enhance resolves component ids into full components. An item whose
// component row is gone gets a placeholder component instead of failing
// the whole comparison.
func Enhance(items []models.BomItem, componentsByID map[string]models.Component) []EnhancedItem {
	out := make([]EnhancedItem, 0, len(items))
	for _, item := range items {
		component, ok := componentsByID[item.ComponentID]
		if !ok {
			component = models.Component{ID: item.ComponentID, Code: PlaceholderCode, Description: PlaceholderCode}
		}
		out = append(out, EnhancedItem{Item: item, Component: component})
	}
	return out
}
