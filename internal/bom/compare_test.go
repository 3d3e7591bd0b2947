package bom

import (
	"testing"

	"github.com/xelth-com/manualsgo/internal/models"
)

func item(componentID, code, description string) EnhancedItem {
	return EnhancedItem{
		Item:      models.BomItem{ComponentID: componentID, Level: 1, Quantity: 1},
		Component: models.Component{ID: componentID, Code: code, Description: description},
	}
}

func TestSimilarityScores(t *testing.T) {
	cases := []struct {
		name string
		a, b models.Component
		want int
	}{
		{"exact code", models.Component{Code: "A1"}, models.Component{Code: "A1"}, 100},
		{"code substring", models.Component{Code: "A1"}, models.Component{Code: "A1-EXT"}, 85},
		{"exact description", models.Component{Code: "X", Description: "Bolt"}, models.Component{Code: "Y", Description: "Bolt"}, 80},
		{"description substring", models.Component{Code: "X", Description: "Bolt"}, models.Component{Code: "Y", Description: "Bolt long"}, 65},
		{"no overlap", models.Component{Code: "X", Description: "Bolt"}, models.Component{Code: "Y", Description: "Washer"}, 0},
		// code check short-circuits before descriptions are looked at
		{"code substring beats equal descriptions", models.Component{Code: "A1", Description: "Bolt"}, models.Component{Code: "A1-EXT", Description: "Bolt"}, 85},
		{"empty codes fall through to description", models.Component{Description: "Bolt"}, models.Component{Description: "Bolt"}, 80},
	}

	for _, c := range cases {
		if got := Similarity(c.a, c.b); got != c.want {
			t.Errorf("%s: got %d, want %d", c.name, got, c.want)
		}
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]models.Component{
		{{Code: "A1"}, {Code: "A1-EXT"}},
		{{Code: "X", Description: "Bolt long"}, {Code: "Y", Description: "Bolt"}},
		{{Code: "A1", Description: "Bolt"}, {Code: "B2", Description: "Washer"}},
		{{}, {Code: "A1"}},
	}
	for _, p := range pairs {
		if Similarity(p[0], p[1]) != Similarity(p[1], p[0]) {
			t.Errorf("similarity not symmetric for %v / %v", p[0], p[1])
		}
	}
}

func TestCompareScenario(t *testing.T) {
	// A = [{A1, Bolt}], B = [{A1-EXT, Bolt long}]
	a := item("c1", "A1", "Bolt")
	b := item("c2", "A1-EXT", "Bolt long")

	result := Compare([]EnhancedItem{a}, []EnhancedItem{b})

	if len(result.Matches) != 1 {
		t.Fatalf("expected one match, got %d", len(result.Matches))
	}
	if result.Matches[0].Score != 85 {
		t.Errorf("code substring should score 85, got %d", result.Matches[0].Score)
	}
	// Fuzzy match, but different component ids: both sides stay unique
	if len(result.UniqueToA) != 1 || len(result.UniqueToB) != 1 {
		t.Errorf("identity partitioning failed: %d / %d", len(result.UniqueToA), len(result.UniqueToB))
	}
}

func TestCompareSharedComponentNotUnique(t *testing.T) {
	shared := item("c1", "A1", "Bolt")
	onlyB := item("c9", "Z9", "Gasket")

	result := Compare([]EnhancedItem{shared}, []EnhancedItem{shared, onlyB})

	if len(result.UniqueToA) != 0 {
		t.Errorf("item present on both sides must not be unique to A")
	}
	if len(result.UniqueToB) != 1 || result.UniqueToB[0].Item.ComponentID != "c9" {
		t.Errorf("unexpected uniqueToB: %v", result.UniqueToB)
	}
}

func TestComparePartitionCompleteness(t *testing.T) {
	itemsA := []EnhancedItem{
		item("c1", "A1", "Bolt"),
		item("c2", "B2", "Washer"),
		item("c3", "C3", "Gasket"),
	}
	itemsB := []EnhancedItem{
		item("c2", "B2", "Washer"),
		item("c4", "D4", "Spring"),
	}

	result := Compare(itemsA, itemsB)

	idsB := map[string]bool{}
	for _, b := range itemsB {
		idsB[b.Item.ComponentID] = true
	}
	uniqueA := map[string]bool{}
	for _, u := range result.UniqueToA {
		uniqueA[u.Item.ComponentID] = true
	}

	// Every A item is either shared with B or unique to A, never both
	for _, a := range itemsA {
		id := a.Item.ComponentID
		if idsB[id] == uniqueA[id] {
			t.Errorf("item %s must be in exactly one partition", id)
		}
	}
}

func TestCompareEmitsAllAboveThresholdPairs(t *testing.T) {
	// One A item substring-similar to two B items appears twice
	a := item("c1", "A1", "Bolt")
	b1 := item("c2", "A1-EXT", "Bolt long")
	b2 := item("c3", "A1-SHORT", "Bolt short")

	result := Compare([]EnhancedItem{a}, []EnhancedItem{b1, b2})
	if len(result.Matches) != 2 {
		t.Errorf("expected 2 match records without dedup, got %d", len(result.Matches))
	}
	// Emission follows (A, B) iteration order
	if len(result.Matches) == 2 && result.Matches[0].B.Item.ComponentID != "c2" {
		t.Errorf("matches out of iteration order")
	}
}

func TestEnhancePlaceholderForMissingComponent(t *testing.T) {
	items := []models.BomItem{
		{ID: "i1", ComponentID: "c1", Level: 1, Quantity: 2},
		{ID: "i2", ComponentID: "gone", Level: 2, Quantity: 1},
	}
	components := map[string]models.Component{
		"c1": {ID: "c1", Code: "A1", Description: "Bolt"},
	}

	enhanced := Enhance(items, components)
	if len(enhanced) != 2 {
		t.Fatalf("expected 2 enhanced items, got %d", len(enhanced))
	}
	if enhanced[0].Component.Code != "A1" {
		t.Errorf("resolved component lost: %+v", enhanced[0].Component)
	}
	if enhanced[1].Component.Code != PlaceholderCode {
		t.Errorf("missing component should resolve to placeholder, got %q", enhanced[1].Component.Code)
	}
}
