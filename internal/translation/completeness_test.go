package translation

import (
	"testing"

	"github.com/xelth-com/manualsgo/internal/models"
	"github.com/xelth-com/manualsgo/internal/modules"
)

func textModule(text string) models.ContentModule {
	return models.ContentModule{ID: "m1", Type: modules.TypeText, Content: models.JSONB{"text": text}}
}

func tr(content models.JSONB) *models.ContentModuleTranslation {
	return &models.ContentModuleTranslation{Content: content}
}

func TestNoTranslationRecordIsMissing(t *testing.T) {
	if !IsModuleTranslationMissing(textModule("Hello"), nil) {
		t.Errorf("module without a translation record must be missing")
	}
}

func TestTextModuleCompleteness(t *testing.T) {
	m := textModule("Mount the bracket.")

	if IsModuleTranslationMissing(m, tr(models.JSONB{"text": "Halterung montieren."})) {
		t.Errorf("translated text module should be complete")
	}
	if !IsModuleTranslationMissing(m, tr(models.JSONB{"text": ""})) {
		t.Errorf("empty translated text should be missing")
	}

	// A field absent in the source is never required
	empty := textModule("")
	if IsModuleTranslationMissing(empty, tr(models.JSONB{})) {
		t.Errorf("empty source text requires nothing")
	}
}

func TestWarningUsesMessageField(t *testing.T) {
	warning := models.ContentModule{
		Type:    modules.TypeWarning,
		Content: models.JSONB{"title": "Hot surface", "message": "Do not touch"},
	}

	// Translating into "description" must not satisfy the warning subtype
	if !IsModuleTranslationMissing(warning, tr(models.JSONB{"title": "Heiß", "description": "Nicht berühren"})) {
		t.Errorf("warning body lives under message, description must not count")
	}
	if IsModuleTranslationMissing(warning, tr(models.JSONB{"title": "Heiß", "message": "Nicht berühren"})) {
		t.Errorf("warning with translated title+message should be complete")
	}

	// The sibling subtypes use description
	caution := models.ContentModule{
		Type:    modules.TypeCaution,
		Content: models.JSONB{"title": "Careful", "description": "Sharp edges"},
	}
	if IsModuleTranslationMissing(caution, tr(models.JSONB{"title": "Vorsicht", "description": "Scharfe Kanten"})) {
		t.Errorf("caution with translated title+description should be complete")
	}
}

func TestTableCompleteness(t *testing.T) {
	// Scenario: headers ["A","B"], rows [["1","2"]]
	table := models.ContentModule{
		Type: modules.TypeTable,
		Content: models.JSONB{
			"headers": []interface{}{"A", "B"},
			"rows":    []interface{}{[]interface{}{"1", "2"}},
		},
	}

	complete := tr(models.JSONB{
		"headers": []interface{}{"A1", "B1"},
		"rows":    []interface{}{[]interface{}{"1t", "2t"}},
	})
	if IsModuleTranslationMissing(table, complete) {
		t.Errorf("fully translated table should be complete")
	}

	emptyCell := tr(models.JSONB{
		"headers": []interface{}{"A1", "B1"},
		"rows":    []interface{}{[]interface{}{"1t", ""}},
	})
	if !IsModuleTranslationMissing(table, emptyCell) {
		t.Errorf("table with an empty translated cell must be missing")
	}

	wrongHeaderShape := tr(models.JSONB{
		"headers": "not an array",
		"rows":    []interface{}{[]interface{}{"1t", "2t"}},
	})
	if !IsModuleTranslationMissing(table, wrongHeaderShape) {
		t.Errorf("malformed headers must read as absent and flag missing")
	}

	missingRow := tr(models.JSONB{
		"headers": []interface{}{"A1", "B1"},
		"rows":    []interface{}{},
	})
	if !IsModuleTranslationMissing(table, missingRow) {
		t.Errorf("untranslated row must flag missing")
	}
}

func TestChecklistCompleteness(t *testing.T) {
	checklist := models.ContentModule{
		Type: modules.TypeChecklist,
		Content: models.JSONB{"items": []interface{}{
			map[string]interface{}{"text": "Check oil", "checked": false},
			map[string]interface{}{"text": "Check tires", "checked": false},
		}},
	}

	complete := tr(models.JSONB{"items": []interface{}{
		map[string]interface{}{"text": "Öl prüfen"},
		map[string]interface{}{"text": "Reifen prüfen"},
	}})
	if IsModuleTranslationMissing(checklist, complete) {
		t.Errorf("fully translated checklist should be complete")
	}

	short := tr(models.JSONB{"items": []interface{}{
		map[string]interface{}{"text": "Öl prüfen"},
	}})
	if !IsModuleTranslationMissing(checklist, short) {
		t.Errorf("checklist with a missing item must be missing")
	}
}

func TestBomVisibleCodesGateCompleteness(t *testing.T) {
	// Scenario: descriptions present but filter empty — only
	// title/headers/messages gate
	bom := models.ContentModule{
		Type: modules.TypeBom,
		Content: models.JSONB{
			"title":                  "Parts list",
			"headers":                map[string]interface{}{"code": "Code", "qty": "Qty"},
			"messages":               map[string]interface{}{"empty": "No rows"},
			"descriptions":           map[string]interface{}{"X001": "desc"},
			"filteredComponentCodes": []interface{}{},
		},
	}

	onlyTop := tr(models.JSONB{
		"title":    "Stückliste",
		"headers":  map[string]interface{}{"code": "Code", "qty": "Menge"},
		"messages": map[string]interface{}{"empty": "Keine Zeilen"},
	})
	if IsModuleTranslationMissing(bom, onlyTop) {
		t.Errorf("bom with no visible rows must not be gated by descriptions")
	}

	// Make X001 visible: its description now gates
	bom.Content["filteredComponentCodes"] = []interface{}{"X001"}
	if !IsModuleTranslationMissing(bom, onlyTop) {
		t.Errorf("visible untranslated description must flag missing")
	}

	withDesc := tr(models.JSONB{
		"title":        "Stückliste",
		"headers":      map[string]interface{}{"code": "Code", "qty": "Menge"},
		"messages":     map[string]interface{}{"empty": "Keine Zeilen"},
		"descriptions": map[string]interface{}{"X001": "Schraube"},
	})
	if IsModuleTranslationMissing(bom, withDesc) {
		t.Errorf("bom with visible descriptions translated should be complete")
	}
}

func TestBomVisibilityIdempotence(t *testing.T) {
	// With an empty filter the verdict must not depend on the
	// descriptions map at all
	base := models.JSONB{
		"title":                  "Parts list",
		"filteredComponentCodes": []interface{}{},
	}
	translated := tr(models.JSONB{"title": "Stückliste"})

	bom := models.ContentModule{Type: modules.TypeBom, Content: base}
	before := IsModuleTranslationMissing(bom, translated)

	base["descriptions"] = map[string]interface{}{"X001": "a", "X002": "b", "X003": "c"}
	after := IsModuleTranslationMissing(bom, translated)

	if before != after {
		t.Errorf("adding descriptions under an empty filter changed the verdict: %v -> %v", before, after)
	}
}

func TestUnknownTypeConservativeDefault(t *testing.T) {
	odd := models.ContentModule{Type: "hologram", Content: models.JSONB{"src": "x.glb"}}
	if IsModuleTranslationMissing(odd, tr(models.JSONB{})) {
		t.Errorf("unknown type without title/description requires nothing")
	}

	odd.Content["title"] = "Exploded view"
	if !IsModuleTranslationMissing(odd, tr(models.JSONB{})) {
		t.Errorf("unknown type with a source title requires a translated title")
	}
}

func TestCompletenessMonotonicity(t *testing.T) {
	m := models.ContentModule{
		Type:    modules.TypeLink,
		Content: models.JSONB{"url": "https://example.com", "text": "Manual", "description": "Online copy"},
	}

	partial := models.JSONB{"text": "Handbuch"}
	if !IsModuleTranslationMissing(m, tr(partial)) {
		t.Fatalf("partial link translation should be missing")
	}

	// Adding the remaining required field can only complete, never regress
	partial["description"] = "Online-Ausgabe"
	if IsModuleTranslationMissing(m, tr(partial)) {
		t.Errorf("adding the missing field must complete the module")
	}
}

func TestStringEncodedPayloadsAreAccepted(t *testing.T) {
	// Content stored as text round-trips through the same predicate
	m := models.ContentModule{Type: modules.TypeText, Content: models.JSONB{"text": "Hello"}}
	translated := &models.ContentModuleTranslation{Content: nil}
	if !IsModuleTranslationMissing(m, translated) {
		t.Errorf("nil translated content must read as empty, flagging missing")
	}
}
