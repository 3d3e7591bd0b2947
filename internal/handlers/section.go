package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/manualsgo/internal/models"
	"gorm.io/gorm"
)

// listSections returns the flat section list of a document; ordering is
// the tree builder's job on the client of this endpoint
func (r *Router) listSections(w http.ResponseWriter, req *http.Request) {
	var sections []models.Section
	if err := r.db.Where("document_id = ?", mux.Vars(req)["id"]).Find(&sections).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch sections")
		return
	}
	respondJSON(w, http.StatusOK, sections)
}

func (r *Router) createSection(w http.ResponseWriter, req *http.Request) {
	var section models.Section
	if err := json.NewDecoder(req.Body).Decode(&section); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if section.DocumentID == "" || section.Title == "" {
		respondError(w, http.StatusBadRequest, "documentId and title are required")
		return
	}

	// A parent must belong to the same document
	if section.ParentID != nil && *section.ParentID != "" {
		var parent models.Section
		if err := r.db.First(&parent, "section_id = ?", *section.ParentID).Error; err != nil {
			respondError(w, http.StatusBadRequest, "Parent section does not exist")
			return
		}
		if parent.DocumentID != section.DocumentID {
			respondError(w, http.StatusBadRequest, "Parent section belongs to a different document")
			return
		}
	}

	if err := r.db.Create(&section).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusCreated, section)
}

func (r *Router) getSection(w http.ResponseWriter, req *http.Request) {
	var section models.Section
	if err := r.db.First(&section, "section_id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Section not found")
		return
	}
	respondJSON(w, http.StatusOK, section)
}

func (r *Router) updateSection(w http.ResponseWriter, req *http.Request) {
	var section models.Section
	if err := r.db.First(&section, "section_id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Section not found")
		return
	}

	var update models.Section
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if update.ParentID != nil && *update.ParentID != "" {
		if *update.ParentID == section.ID {
			respondError(w, http.StatusBadRequest, "Section cannot be its own parent")
			return
		}
		if r.wouldCreateCycle(section.ID, *update.ParentID) {
			respondError(w, http.StatusBadRequest, "Parent change would create a cycle")
			return
		}
		var parent models.Section
		if err := r.db.First(&parent, "section_id = ?", *update.ParentID).Error; err != nil || parent.DocumentID != section.DocumentID {
			respondError(w, http.StatusBadRequest, "Invalid parent section")
			return
		}
	}

	section.Title = update.Title
	section.Description = update.Description
	section.ParentID = update.ParentID
	section.Order = update.Order
	section.IsModule = update.IsModule

	if err := r.db.Save(&section).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, section)
}

// wouldCreateCycle walks up from the proposed parent; hitting the
// section itself means the edge would close a loop
func (r *Router) wouldCreateCycle(sectionID, parentID string) bool {
	current := parentID
	for i := 0; i < 100; i++ { // depth guard against corrupt data
		if current == sectionID {
			return true
		}
		var parent models.Section
		if err := r.db.First(&parent, "section_id = ?", current).Error; err != nil {
			return false
		}
		if parent.ParentID == nil || *parent.ParentID == "" {
			return false
		}
		current = *parent.ParentID
	}
	return true
}

func (r *Router) deleteSection(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Children move up to root rather than disappearing
		if err := tx.Model(&models.Section{}).Where("parent_id = ?", id).Update("parent_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("section_id = ?", id).Delete(&models.ContentModule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Section{}, "section_id = ?", id).Error
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ReorderRequest rewrites the order fields of a sibling set atomically
type ReorderRequest struct {
	Items []struct {
		ID    string `json:"id"`
		Order int    `json:"order"`
	} `json:"items"`
}

func (r *Router) reorderSections(w http.ResponseWriter, req *http.Request) {
	var reorder ReorderRequest
	if err := json.NewDecoder(req.Body).Decode(&reorder); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range reorder.Items {
			if err := tx.Model(&models.Section{}).
				Where("section_id = ?", item.ID).
				Update("sort_order", item.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
