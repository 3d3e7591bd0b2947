package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/manualsgo/internal/models"
	"github.com/xelth-com/manualsgo/internal/modules"
	"gorm.io/gorm"
)

// listModules returns the ordered content modules of a section
func (r *Router) listModules(w http.ResponseWriter, req *http.Request) {
	var mods []models.ContentModule
	if err := r.db.Where("section_id = ?", mux.Vars(req)["id"]).
		Order("sort_order ASC").Find(&mods).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch modules")
		return
	}
	respondJSON(w, http.StatusOK, mods)
}

func (r *Router) createModule(w http.ResponseWriter, req *http.Request) {
	var module models.ContentModule
	if err := json.NewDecoder(req.Body).Decode(&module); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if module.SectionID == "" || module.Type == "" {
		respondError(w, http.StatusBadRequest, "sectionId and type are required")
		return
	}
	if !modules.IsKnownType(module.Type) {
		// Unknown types are stored anyway (they render as placeholders),
		// but flag them: usually a client-side mistake
		log.Printf("⚠️ Creating module of unregistered type %q in section %s", module.Type, module.SectionID)
	}

	var section models.Section
	if err := r.db.First(&section, "section_id = ?", module.SectionID).Error; err != nil {
		respondError(w, http.StatusBadRequest, "Section does not exist")
		return
	}

	if err := r.db.Create(&module).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusCreated, module)
}

func (r *Router) updateModule(w http.ResponseWriter, req *http.Request) {
	var module models.ContentModule
	if err := r.db.First(&module, "module_id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Module not found")
		return
	}

	var update models.ContentModule
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if update.Content != nil {
		module.Content = update.Content
	}
	if update.Order != 0 {
		module.Order = update.Order
	}

	if err := r.db.Save(&module).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, module)
}

func (r *Router) deleteModule(w http.ResponseWriter, req *http.Request) {
	if err := r.db.Delete(&models.ContentModule{}, "module_id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (r *Router) reorderModules(w http.ResponseWriter, req *http.Request) {
	var reorder ReorderRequest
	if err := json.NewDecoder(req.Body).Decode(&reorder); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range reorder.Items {
			if err := tx.Model(&models.ContentModule{}).
				Where("module_id = ?", item.ID).
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
