package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/manualsgo/internal/models"
	"gorm.io/gorm"
)

// listLanguages returns all languages, or only active ones with ?active=true
func (r *Router) listLanguages(w http.ResponseWriter, req *http.Request) {
	query := r.db.Order("code ASC")
	if req.URL.Query().Get("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var languages []models.Language
	if err := query.Find(&languages).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch languages")
		return
	}
	respondJSON(w, http.StatusOK, languages)
}

func (r *Router) createLanguage(w http.ResponseWriter, req *http.Request) {
	var language models.Language
	if err := json.NewDecoder(req.Body).Decode(&language); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if language.Code == "" || language.Name == "" {
		respondError(w, http.StatusBadRequest, "code and name are required")
		return
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// At most one default language
		if language.IsDefault {
			if err := tx.Model(&models.Language{}).Where("is_default = ?", true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&language).Error
	})
	if err != nil {
		respondError(w, http.StatusConflict, "Language already exists")
		return
	}
	respondJSON(w, http.StatusCreated, language)
}

func (r *Router) updateLanguage(w http.ResponseWriter, req *http.Request) {
	var language models.Language
	if err := r.db.First(&language, "language_id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Language not found")
		return
	}

	var update models.Language
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if update.IsDefault && !language.IsDefault {
			if err := tx.Model(&models.Language{}).Where("is_default = ?", true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		language.Name = update.Name
		language.IsActive = update.IsActive
		language.IsDefault = update.IsDefault
		return tx.Save(&language).Error
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, language)
}

// deleteLanguage enforces the language invariants: the default language
// cannot be deleted, and neither can a language that already holds
// translations
func (r *Router) deleteLanguage(w http.ResponseWriter, req *http.Request) {
	var language models.Language
	if err := r.db.First(&language, "language_id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Language not found")
		return
	}

	if language.IsDefault {
		respondError(w, http.StatusConflict, "The default language cannot be deleted")
		return
	}

	var count int64
	r.db.Model(&models.SectionTranslation{}).Where("language_id = ?", language.ID).Count(&count)
	if count == 0 {
		r.db.Model(&models.ContentModuleTranslation{}).Where("language_id = ?", language.ID).Count(&count)
	}
	if count > 0 {
		respondError(w, http.StatusConflict, "Language has existing translations")
		return
	}

	if err := r.db.Delete(&language).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
