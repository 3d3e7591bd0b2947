package modules

import (
	"testing"

	"github.com/xelth-com/manualsgo/internal/models"
)

func TestNormalizeAcceptsParsedAndStringPayloads(t *testing.T) {
	parsed := Normalize(models.JSONB{"text": "hello"})
	if Str(parsed, "text") != "hello" {
		t.Errorf("parsed payload lost its field")
	}

	fromString := Normalize(`{"text":"hello"}`)
	if Str(fromString, "text") != "hello" {
		t.Errorf("string payload was not parsed")
	}

	garbage := Normalize("not json at all")
	if len(garbage) != 0 {
		t.Errorf("garbage payload should normalize to empty map")
	}

	if Normalize(nil) == nil {
		t.Errorf("nil payload should normalize to empty map, not nil")
	}
}

func TestStrSliceTreatsWrongShapeAsAbsent(t *testing.T) {
	c := models.JSONB{"headers": "not-an-array"}
	if got := StrSlice(c, "headers"); got != nil {
		t.Errorf("malformed headers should read as absent, got %v", got)
	}

	c = models.JSONB{"headers": []interface{}{"A", "B"}}
	got := StrSlice(c, "headers")
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("unexpected headers: %v", got)
	}
}

func TestAlertBodyFieldSplit(t *testing.T) {
	// warning keeps its historical "message" field; all sibling alert
	// subtypes use "description"
	if f, _ := AlertBodyField(TypeWarning); f != "message" {
		t.Errorf("warning body field: got %s, want message", f)
	}
	for _, typ := range []string{TypeDanger, TypeWarningAlert, TypeCaution, TypeNote, TypeSafetyInstructions} {
		if f, _ := AlertBodyField(typ); f != "description" {
			t.Errorf("%s body field: got %s, want description", typ, f)
		}
	}
	if _, ok := AlertBodyField(TypeText); ok {
		t.Errorf("text is not an alert type")
	}
}

func TestChecklistItemsTolerateMalformedEntries(t *testing.T) {
	c := models.JSONB{"items": []interface{}{
		map[string]interface{}{"text": "Check oil", "checked": true},
		"garbage entry",
	}}

	items := ChecklistItems(c)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Text != "Check oil" || !items[0].Checked {
		t.Errorf("first item decoded wrong: %+v", items[0])
	}
	if items[1].Text != "" {
		t.Errorf("malformed item should decode empty, got %+v", items[1])
	}
}

func TestBomVisibleCodes(t *testing.T) {
	// Filter present: it wins, even when empty
	c := models.JSONB{
		"filteredComponentCodes": []interface{}{},
		"descriptions":           map[string]interface{}{"X001": "Bolt"},
	}
	if codes := BomVisibleCodes(c); len(codes) != 0 {
		t.Errorf("empty filter should yield no visible codes, got %v", codes)
	}

	// No filter: all description keys are visible
	c = models.JSONB{"descriptions": map[string]interface{}{"X001": "Bolt", "X002": "Nut"}}
	if codes := BomVisibleCodes(c); len(codes) != 2 {
		t.Errorf("expected 2 visible codes, got %v", codes)
	}
}

func TestScalarFieldsDispatch(t *testing.T) {
	fields, ok := ScalarFields(TypeWarning)
	if !ok || len(fields) != 2 || fields[1] != "message" {
		t.Errorf("warning scalar fields wrong: %v", fields)
	}
	if _, ok := ScalarFields(TypeTable); ok {
		t.Errorf("table is not a scalar type")
	}
	if _, ok := ScalarFields(TypeBom); ok {
		t.Errorf("bom is not a scalar type")
	}
}
