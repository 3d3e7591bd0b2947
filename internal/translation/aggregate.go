package translation

import (
	"math"

	"github.com/xelth-com/manualsgo/internal/doctree"
	"github.com/xelth-com/manualsgo/internal/models"
)

// IsSectionTranslationMissing rolls module completeness up to section
// level: a section is missing when it has no translation record, its
// translated title is empty, its description (when present in the
// source) is untranslated, or any of its child modules is missing.
func IsSectionTranslationMissing(section models.Section, tr *models.SectionTranslation, mods []models.ContentModule, moduleTrByID map[string]*models.ContentModuleTranslation) bool {
	if tr == nil {
		return true
	}
	if tr.Title == "" {
		return true
	}
	if section.Description != "" && tr.Description == "" {
		return true
	}
	for _, m := range mods {
		if IsModuleTranslationMissing(m, moduleTrByID[m.ID]) {
			return true
		}
	}
	return false
}

// Status is the per-document translation report for one language
type Status struct {
	TotalSections      int `json:"totalSections"`
	TranslatedSections int `json:"translatedSections"`
	TotalModules       int `json:"totalModules"`
	TranslatedModules  int `json:"translatedModules"`

	// MissingSections / MissingModules flag every entity that still
	// needs work, keyed by id, for UI highlighting
	MissingSections map[string]bool `json:"missingSections"`
	MissingModules  map[string]bool `json:"missingModules"`
}

// Percent is the overall completion indicator, rounded to whole
// percent, 0 when the document is empty
func (s Status) Percent() int {
	total := s.TotalSections + s.TotalModules
	if total == 0 {
		return 0
	}
	done := s.TranslatedSections + s.TranslatedModules
	return int(math.Round(100 * float64(done) / float64(total)))
}

// BuildStatus walks the linearized section tree and applies the
// completeness predicates to every section and module. All inputs are
// pre-fetched snapshots; this performs no I/O.
func BuildStatus(
	nodes []doctree.Node,
	modulesBySection map[string][]models.ContentModule,
	sectionTrByID map[string]*models.SectionTranslation,
	moduleTrByID map[string]*models.ContentModuleTranslation,
) Status {
	status := Status{
		MissingSections: make(map[string]bool),
		MissingModules:  make(map[string]bool),
	}

	for _, node := range nodes {
		section := node.Section
		mods := modulesBySection[section.ID]

		status.TotalSections++
		missing := IsSectionTranslationMissing(section, sectionTrByID[section.ID], mods, moduleTrByID)
		status.MissingSections[section.ID] = missing
		if !missing {
			status.TranslatedSections++
		}

		for _, m := range mods {
			status.TotalModules++
			modMissing := IsModuleTranslationMissing(m, moduleTrByID[m.ID])
			status.MissingModules[m.ID] = modMissing
			if !modMissing {
				status.TranslatedModules++
			}
		}
	}

	return status
}
