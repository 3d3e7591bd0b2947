package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/manualsgo/internal/bom"
	"github.com/xelth-com/manualsgo/internal/models"
)

func (r *Router) listComponents(w http.ResponseWriter, req *http.Request) {
	query := r.db.Order("code ASC")
	if search := req.URL.Query().Get("q"); search != "" {
		query = query.Where("code ILIKE ? OR description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var components []models.Component
	if err := query.Limit(200).Find(&components).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch components")
		return
	}
	respondJSON(w, http.StatusOK, components)
}

func (r *Router) createComponent(w http.ResponseWriter, req *http.Request) {
	var component models.Component
	if err := json.NewDecoder(req.Body).Decode(&component); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if component.Code == "" {
		respondError(w, http.StatusBadRequest, "code is required")
		return
	}
	if err := r.db.Create(&component).Error; err != nil {
		respondError(w, http.StatusConflict, "Component code already exists")
		return
	}
	respondJSON(w, http.StatusCreated, component)
}

func (r *Router) listBoms(w http.ResponseWriter, req *http.Request) {
	var boms []models.Bom
	if err := r.db.Order("title ASC").Find(&boms).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch BOMs")
		return
	}
	respondJSON(w, http.StatusOK, boms)
}

func (r *Router) createBom(w http.ResponseWriter, req *http.Request) {
	var b models.Bom
	if err := json.NewDecoder(req.Body).Decode(&b); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if b.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if err := r.db.Create(&b).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusCreated, b)
}

// listBomItems returns a BOM's rows with their components resolved
func (r *Router) listBomItems(w http.ResponseWriter, req *http.Request) {
	enhanced, err := r.loadEnhancedItems(mux.Vars(req)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, enhanced)
}

func (r *Router) createBomItem(w http.ResponseWriter, req *http.Request) {
	var item models.BomItem
	if err := json.NewDecoder(req.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	item.BomID = mux.Vars(req)["id"]

	var component models.Component
	if err := r.db.First(&component, "component_id = ?", item.ComponentID).Error; err != nil {
		respondError(w, http.StatusBadRequest, "Component does not exist")
		return
	}
	if item.Level < 1 {
		item.Level = 1
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if err := r.db.Create(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// CompareRequest names the two BOMs to compare
type CompareRequest struct {
	BomIDA string `json:"bomIdA"`
	BomIDB string `json:"bomIdB"`
}

// compareBoms runs the similarity matcher over two component-enhanced
// item lists
func (r *Router) compareBoms(w http.ResponseWriter, req *http.Request) {
	var compareReq CompareRequest
	if err := json.NewDecoder(req.Body).Decode(&compareReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	comparison, err := r.loadComparison(compareReq.BomIDA, compareReq.BomIDB)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, comparison)
}

// loadComparison fetches and enhances both item lists, then runs the
// pure matcher
func (r *Router) loadComparison(bomIDA, bomIDB string) (bom.Comparison, error) {
	itemsA, err := r.loadEnhancedItems(bomIDA)
	if err != nil {
		return bom.Comparison{}, err
	}
	itemsB, err := r.loadEnhancedItems(bomIDB)
	if err != nil {
		return bom.Comparison{}, err
	}
	return bom.Compare(itemsA, itemsB), nil
}

func (r *Router) loadEnhancedItems(bomID string) ([]bom.EnhancedItem, error) {
	var b models.Bom
	if err := r.db.First(&b, "bom_id = ?", bomID).Error; err != nil {
		return nil, fmt.Errorf("BOM %s not found", bomID)
	}

	var items []models.BomItem
	if err := r.db.Where("bom_id = ?", bomID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	componentIDs := make([]string, 0, len(items))
	for _, item := range items {
		componentIDs = append(componentIDs, item.ComponentID)
	}

	componentsByID := make(map[string]models.Component)
	if len(componentIDs) > 0 {
		var components []models.Component
		if err := r.db.Where("component_id IN ?", componentIDs).Find(&components).Error; err != nil {
			return nil, err
		}
		for _, c := range components {
			componentsByID[c.ID] = c
		}
	}

	return bom.Enhance(items, componentsByID), nil
}
