package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/manualsgo/internal/doctree"
	"github.com/xelth-com/manualsgo/internal/models"
	"github.com/xelth-com/manualsgo/internal/translation"
	"github.com/xelth-com/manualsgo/internal/websocket"
	"gorm.io/gorm"
)

// getSectionTranslation returns one section/language overlay, 404 when
// the pair was never touched
func (r *Router) getSectionTranslation(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	var tr models.SectionTranslation
	err := r.db.Where("section_id = ? AND language_id = ?", vars["id"], vars["languageId"]).First(&tr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(w, http.StatusNotFound, "No translation for this section and language")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, tr)
}

// upsertSectionTranslation creates the record lazily on first write
func (r *Router) upsertSectionTranslation(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var section models.Section
	if err := r.db.First(&section, "section_id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Section not found")
		return
	}

	var payload models.SectionTranslation
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	var tr models.SectionTranslation
	err := r.db.Where("section_id = ? AND language_id = ?", vars["id"], vars["languageId"]).First(&tr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tr = models.SectionTranslation{
			SectionID:  vars["id"],
			LanguageID: vars["languageId"],
			Status:     models.TranslationStatusInProgress,
		}
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	tr.Title = payload.Title
	tr.Description = payload.Description
	if payload.Status != "" {
		tr.Status = payload.Status
	}

	if err := r.db.Save(&tr).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	r.broadcastProgress(section.DocumentID, vars["languageId"])
	respondJSON(w, http.StatusOK, tr)
}

func (r *Router) getModuleTranslation(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	var tr models.ContentModuleTranslation
	err := r.db.Where("module_id = ? AND language_id = ?", vars["id"], vars["languageId"]).First(&tr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(w, http.StatusNotFound, "No translation for this module and language")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, tr)
}

func (r *Router) upsertModuleTranslation(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var module models.ContentModule
	if err := r.db.First(&module, "module_id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Module not found")
		return
	}
	var section models.Section
	if err := r.db.First(&section, "section_id = ?", module.SectionID).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Module section missing")
		return
	}

	var payload models.ContentModuleTranslation
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	var tr models.ContentModuleTranslation
	err := r.db.Where("module_id = ? AND language_id = ?", vars["id"], vars["languageId"]).First(&tr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tr = models.ContentModuleTranslation{
			ModuleID:   vars["id"],
			LanguageID: vars["languageId"],
			Status:     models.TranslationStatusInProgress,
		}
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if payload.Content != nil {
		tr.Content = payload.Content
	}
	if payload.Status != "" {
		tr.Status = payload.Status
	}

	if err := r.db.Save(&tr).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	r.broadcastProgress(section.DocumentID, vars["languageId"])
	respondJSON(w, http.StatusOK, tr)
}

// getDocumentTranslations is the batch fetch contract: everything the
// status computation needs for one document/language in two queries,
// instead of one request per section and per module
func (r *Router) getDocumentTranslations(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	snapshot, err := r.loadTranslationSnapshot(vars["id"], vars["languageId"])
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch translations")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sections": snapshot.sectionTrs,
		"modules":  snapshot.moduleTrs,
	})
}

// getTranslationStatus computes per-entity completeness and the overall
// percentage for one document and language
func (r *Router) getTranslationStatus(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	snapshot, err := r.loadTranslationSnapshot(vars["id"], vars["languageId"])
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute status")
		return
	}

	status := translation.BuildStatus(snapshot.nodes, snapshot.modulesBySection, snapshot.sectionTrs, snapshot.moduleTrs)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  status,
		"percent": status.Percent(),
	})
}

// SuggestRequest asks the AI for a draft translation of one module
type SuggestRequest struct {
	ModuleID       string `json:"moduleId"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

func (r *Router) suggestTranslation(w http.ResponseWriter, req *http.Request) {
	if r.suggester == nil {
		respondError(w, http.StatusServiceUnavailable, "AI suggestions are not configured")
		return
	}

	var suggestReq SuggestRequest
	if err := json.NewDecoder(req.Body).Decode(&suggestReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if suggestReq.TargetLanguage == "" {
		respondError(w, http.StatusBadRequest, "targetLanguage is required")
		return
	}
	if suggestReq.SourceLanguage == "" {
		suggestReq.SourceLanguage = r.cfg.AI.DefaultLanguage
	}

	var module models.ContentModule
	if err := r.db.First(&module, "module_id = ?", suggestReq.ModuleID).Error; err != nil {
		respondError(w, http.StatusNotFound, "Module not found")
		return
	}

	draft, err := r.suggester.SuggestModule(req.Context(), module, suggestReq.SourceLanguage, suggestReq.TargetLanguage)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Suggestion failed: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"moduleId": module.ID,
		"draft":    draft,
	})
}

// translationSnapshot bundles the pre-fetched inputs the pure core
// functions operate on
type translationSnapshot struct {
	nodes            []doctree.Node
	modulesBySection map[string][]models.ContentModule
	sectionTrs       map[string]*models.SectionTranslation
	moduleTrs        map[string]*models.ContentModuleTranslation
}

func (r *Router) loadTranslationSnapshot(documentID, languageID string) (*translationSnapshot, error) {
	var sections []models.Section
	if err := r.db.Where("document_id = ?", documentID).Find(&sections).Error; err != nil {
		return nil, err
	}
	nodes := doctree.Build(sections).Linearize()

	sectionIDs := make([]string, 0, len(sections))
	for _, s := range sections {
		sectionIDs = append(sectionIDs, s.ID)
	}

	modulesBySection := make(map[string][]models.ContentModule)
	moduleIDs := []string{}
	if len(sectionIDs) > 0 {
		var mods []models.ContentModule
		if err := r.db.Where("section_id IN ?", sectionIDs).Order("sort_order ASC").Find(&mods).Error; err != nil {
			return nil, err
		}
		for _, m := range mods {
			modulesBySection[m.SectionID] = append(modulesBySection[m.SectionID], m)
			moduleIDs = append(moduleIDs, m.ID)
		}
	}

	sectionTrs := make(map[string]*models.SectionTranslation)
	if len(sectionIDs) > 0 {
		var trs []models.SectionTranslation
		if err := r.db.Where("section_id IN ? AND language_id = ?", sectionIDs, languageID).Find(&trs).Error; err != nil {
			return nil, err
		}
		for i := range trs {
			sectionTrs[trs[i].SectionID] = &trs[i]
		}
	}

	moduleTrs := make(map[string]*models.ContentModuleTranslation)
	if len(moduleIDs) > 0 {
		var trs []models.ContentModuleTranslation
		if err := r.db.Where("module_id IN ? AND language_id = ?", moduleIDs, languageID).Find(&trs).Error; err != nil {
			return nil, err
		}
		for i := range trs {
			moduleTrs[trs[i].ModuleID] = &trs[i]
		}
	}

	return &translationSnapshot{
		nodes:            nodes,
		modulesBySection: modulesBySection,
		sectionTrs:       sectionTrs,
		moduleTrs:        moduleTrs,
	}, nil
}

// broadcastProgress recomputes the document percentage and pushes it to
// websocket subscribers
func (r *Router) broadcastProgress(documentID, languageID string) {
	if r.hub == nil {
		return
	}
	snapshot, err := r.loadTranslationSnapshot(documentID, languageID)
	if err != nil {
		return
	}
	status := translation.BuildStatus(snapshot.nodes, snapshot.modulesBySection, snapshot.sectionTrs, snapshot.moduleTrs)
	r.hub.BroadcastProgress(websocket.ProgressEvent{
		DocumentID: documentID,
		LanguageID: languageID,
		Percent:    status.Percent(),
	})
}
