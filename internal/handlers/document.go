package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/manualsgo/internal/bom"
	"github.com/xelth-com/manualsgo/internal/doctree"
	"github.com/xelth-com/manualsgo/internal/models"
	"github.com/xelth-com/manualsgo/internal/modules"
	"gorm.io/gorm"
)

// listDocuments returns all documents, newest first
func (r *Router) listDocuments(w http.ResponseWriter, req *http.Request) {
	var docs []models.Document
	if err := r.db.Order("created_at DESC").Find(&docs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch documents")
		return
	}
	respondJSON(w, http.StatusOK, docs)
}

// createDocument creates a new manual
func (r *Router) createDocument(w http.ResponseWriter, req *http.Request) {
	var doc models.Document
	if err := json.NewDecoder(req.Body).Decode(&doc); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if doc.Title == "" {
		respondError(w, http.StatusBadRequest, "Document title is required")
		return
	}
	if doc.Status == "" {
		doc.Status = models.DocumentStatusDraft
	}

	if err := r.db.Create(&doc).Error; err != nil {
		log.Printf("❌ Failed to create document: %v", err)
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusCreated, doc)
}

func (r *Router) getDocument(w http.ResponseWriter, req *http.Request) {
	var doc models.Document
	if err := r.db.First(&doc, "document_id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Document not found")
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (r *Router) updateDocument(w http.ResponseWriter, req *http.Request) {
	var doc models.Document
	if err := r.db.First(&doc, "document_id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Document not found")
		return
	}

	var update models.Document
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	doc.Title = update.Title
	doc.Description = update.Description
	doc.Version = update.Version
	if update.Status != "" {
		doc.Status = update.Status
	}
	if update.ExportOverrides != nil {
		doc.ExportOverrides = update.ExportOverrides
	}

	if err := r.db.Save(&doc).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (r *Router) deleteDocument(w http.ResponseWriter, req *http.Request) {
	if err := r.db.Delete(&models.Document{}, "document_id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// getDocumentTree returns the pre-order linearization of a document's
// sections for navigation and rendering
func (r *Router) getDocumentTree(w http.ResponseWriter, req *http.Request) {
	documentID := mux.Vars(req)["id"]

	var sections []models.Section
	if err := r.db.Where("document_id = ?", documentID).Find(&sections).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch sections")
		return
	}

	nodes := doctree.Build(sections).Linearize()

	type treeEntry struct {
		Section      models.Section `json:"section"`
		Depth        int            `json:"depth"`
		HeadingLevel int            `json:"headingLevel"`
	}
	out := make([]treeEntry, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, treeEntry{Section: n.Section, Depth: n.Depth, HeadingLevel: doctree.HeadingLevel(n.Depth)})
	}
	respondJSON(w, http.StatusOK, out)
}

// MigrateRequest drives "create migrated document": a copy of the source
// manual plus a changed-parts section derived from a BOM comparison
type MigrateRequest struct {
	SourceDocumentID string `json:"sourceDocumentId"`
	Title            string `json:"title"`
	BomIDA           string `json:"bomIdA"`
	BomIDB           string `json:"bomIdB"`
}

func (r *Router) migrateDocument(w http.ResponseWriter, req *http.Request) {
	var migrateReq MigrateRequest
	if err := json.NewDecoder(req.Body).Decode(&migrateReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	var source models.Document
	if err := r.db.First(&source, "document_id = ?", migrateReq.SourceDocumentID).Error; err != nil {
		respondError(w, http.StatusNotFound, "Source document not found")
		return
	}

	comparison, err := r.loadComparison(migrateReq.BomIDA, migrateReq.BomIDB)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	title := migrateReq.Title
	if title == "" {
		title = source.Title + " (migrated)"
	}

	var created models.Document
	err = r.db.Transaction(func(tx *gorm.DB) error {
		created = models.Document{
			Title:           title,
			Description:     source.Description,
			Version:         source.Version,
			Status:          models.DocumentStatusDraft,
			ExportOverrides: source.ExportOverrides,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		if err := copySections(tx, source.ID, created.ID); err != nil {
			return err
		}

		return appendChangedPartsSection(tx, created.ID, comparison)
	})
	if err != nil {
		log.Printf("❌ Document migration failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Migration failed")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"document":   created,
		"comparison": comparison,
	})
}

// copySections clones the section tree and its modules into the target
// document, remapping parent references to the new section ids
func copySections(tx *gorm.DB, sourceDocID, targetDocID string) error {
	var sections []models.Section
	if err := tx.Where("document_id = ?", sourceDocID).Find(&sections).Error; err != nil {
		return err
	}

	idMap := make(map[string]string, len(sections))
	for _, s := range sections {
		clone := models.Section{
			DocumentID:  targetDocID,
			Order:       s.Order,
			Title:       s.Title,
			Description: s.Description,
			IsModule:    s.IsModule,
		}
		if err := tx.Create(&clone).Error; err != nil {
			return err
		}
		idMap[s.ID] = clone.ID
	}

	// Second pass: remap parents now that all new ids exist
	for _, s := range sections {
		if s.ParentID == nil {
			continue
		}
		newParent, ok := idMap[*s.ParentID]
		if !ok {
			// Orphan in the source stays a root in the copy
			continue
		}
		if err := tx.Model(&models.Section{}).
			Where("section_id = ?", idMap[s.ID]).
			Update("parent_id", newParent).Error; err != nil {
			return err
		}
	}

	for _, s := range sections {
		var mods []models.ContentModule
		if err := tx.Where("section_id = ?", s.ID).Find(&mods).Error; err != nil {
			return err
		}
		for _, m := range mods {
			clone := models.ContentModule{
				SectionID: idMap[s.ID],
				Type:      m.Type,
				Order:     m.Order,
				Content:   m.Content,
			}
			if err := tx.Create(&clone).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// appendChangedPartsSection adds a section holding a bom module whose
// rows are the parts unique to either side of the comparison — the
// content that must be freshly authored after a migration
func appendChangedPartsSection(tx *gorm.DB, documentID string, comparison bom.Comparison) error {
	var maxOrder int
	tx.Model(&models.Section{}).
		Where("document_id = ? AND parent_id IS NULL", documentID).
		Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder)

	section := models.Section{
		DocumentID: documentID,
		Order:      maxOrder + 1,
		Title:      "Changed Parts",
	}
	if err := tx.Create(&section).Error; err != nil {
		return err
	}

	descriptions := map[string]interface{}{}
	for _, item := range comparison.UniqueToB {
		descriptions[item.Component.Code] = item.Component.Description
	}
	removed := make([]string, 0, len(comparison.UniqueToA))
	for _, item := range comparison.UniqueToA {
		removed = append(removed, item.Component.Code)
	}

	module := models.ContentModule{
		SectionID: section.ID,
		Type:      modules.TypeBom,
		Order:     1,
		Content: models.JSONB{
			"title":        "New and changed parts",
			"descriptions": descriptions,
			"messages": map[string]interface{}{
				"removed": "Removed parts: " + joinCodes(removed),
			},
		},
	}
	return tx.Create(&module).Error
}

func joinCodes(codes []string) string {
	if len(codes) == 0 {
		return "none"
	}
	out := codes[0]
	for _, c := range codes[1:] {
		out += ", " + c
	}
	return out
}
