package translation

import (
	"testing"

	"github.com/xelth-com/manualsgo/internal/doctree"
	"github.com/xelth-com/manualsgo/internal/models"
	"github.com/xelth-com/manualsgo/internal/modules"
)

func TestSectionWithoutRecordIsMissing(t *testing.T) {
	// Scenario: title "Intro", no description, no translation record
	section := models.Section{ID: "s1", Title: "Intro"}
	if !IsSectionTranslationMissing(section, nil, nil, nil) {
		t.Errorf("section without a translation record must be missing")
	}
}

func TestSectionTitleAndDescriptionGate(t *testing.T) {
	section := models.Section{ID: "s1", Title: "Intro", Description: "Overview"}

	noTitle := &models.SectionTranslation{Title: "", Description: "Überblick"}
	if !IsSectionTranslationMissing(section, noTitle, nil, nil) {
		t.Errorf("empty translated title must flag missing")
	}

	noDesc := &models.SectionTranslation{Title: "Einführung"}
	if !IsSectionTranslationMissing(section, noDesc, nil, nil) {
		t.Errorf("source description without translated description must flag missing")
	}

	// A section without a source description never requires one
	bare := models.Section{ID: "s2", Title: "Intro"}
	done := &models.SectionTranslation{Title: "Einführung"}
	if IsSectionTranslationMissing(bare, done, nil, nil) {
		t.Errorf("description must not be required when source has none")
	}
}

func TestSectionMissingWhenChildModuleMissing(t *testing.T) {
	section := models.Section{ID: "s1", Title: "Intro"}
	secTr := &models.SectionTranslation{Title: "Einführung"}
	mods := []models.ContentModule{
		{ID: "m1", Type: modules.TypeText, Content: models.JSONB{"text": "Hello"}},
	}

	if !IsSectionTranslationMissing(section, secTr, mods, map[string]*models.ContentModuleTranslation{}) {
		t.Errorf("untranslated child module must flag the section missing")
	}

	trs := map[string]*models.ContentModuleTranslation{
		"m1": {Content: models.JSONB{"text": "Hallo"}},
	}
	if IsSectionTranslationMissing(section, secTr, mods, trs) {
		t.Errorf("section with title and all modules translated should be complete")
	}
}

func TestBuildStatusAndPercent(t *testing.T) {
	sections := []models.Section{
		{ID: "s1", Title: "Intro", Order: 1},
		{ID: "s2", Title: "Assembly", Order: 2},
	}
	nodes := doctree.Build(sections).Linearize()

	modulesBySection := map[string][]models.ContentModule{
		"s1": {{ID: "m1", SectionID: "s1", Type: modules.TypeText, Content: models.JSONB{"text": "Hello"}}},
		"s2": {{ID: "m2", SectionID: "s2", Type: modules.TypeText, Content: models.JSONB{"text": "Bolt it"}}},
	}
	sectionTrs := map[string]*models.SectionTranslation{
		"s1": {Title: "Einführung"},
	}
	moduleTrs := map[string]*models.ContentModuleTranslation{
		"m1": {Content: models.JSONB{"text": "Hallo"}},
	}

	status := BuildStatus(nodes, modulesBySection, sectionTrs, moduleTrs)

	if status.TotalSections != 2 || status.TotalModules != 2 {
		t.Fatalf("unexpected totals: %+v", status)
	}
	if status.TranslatedSections != 1 || status.TranslatedModules != 1 {
		t.Errorf("unexpected translated counts: %+v", status)
	}
	if !status.MissingSections["s2"] || status.MissingSections["s1"] {
		t.Errorf("missing-section flags wrong: %v", status.MissingSections)
	}
	if got := status.Percent(); got != 50 {
		t.Errorf("percent: got %d, want 50", got)
	}
}

func TestPercentZeroOnEmptyDocument(t *testing.T) {
	var status Status
	if status.Percent() != 0 {
		t.Errorf("empty document must report 0%%, got %d", status.Percent())
	}
}
