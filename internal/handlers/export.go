package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/manualsgo/internal/export"
	"github.com/xelth-com/manualsgo/internal/models"
	"github.com/xelth-com/manualsgo/internal/modules"
)

// exportDocumentPDF renders a manual to PDF. With ?lang={languageId}
// translations are overlaid; without it the source language is rendered.
func (r *Router) exportDocumentPDF(w http.ResponseWriter, req *http.Request) {
	documentID := mux.Vars(req)["id"]

	var doc models.Document
	if err := r.db.First(&doc, "document_id = ?", documentID).Error; err != nil {
		respondError(w, http.StatusNotFound, "Document not found")
		return
	}

	languageID := req.URL.Query().Get("lang")
	snapshot, err := r.loadTranslationSnapshot(documentID, languageID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load document")
		return
	}

	input := export.Input{
		Document:         doc,
		Nodes:            snapshot.nodes,
		ModulesBySection: snapshot.modulesBySection,
		ComponentsByID:   r.loadReferencedComponents(snapshot.modulesBySection),
		PublicBaseURL:    r.cfg.Export.PublicBaseURL,
	}
	if languageID != "" {
		input.SectionTranslations = snapshot.sectionTrs
		input.ModuleTranslations = snapshot.moduleTrs
	}

	pdfBytes, err := export.GeneratePDF(input)
	if err != nil {
		log.Printf("❌ PDF export failed for document %s: %v", documentID, err)
		respondError(w, http.StatusInternalServerError, "PDF generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Title+".pdf"))
	w.Write(pdfBytes)
}

// loadReferencedComponents resolves every component referenced by a
// component module so the renderer can print code and description
func (r *Router) loadReferencedComponents(modulesBySection map[string][]models.ContentModule) map[string]models.Component {
	ids := []string{}
	for _, mods := range modulesBySection {
		for _, m := range mods {
			if m.Type != modules.TypeComponent {
				continue
			}
			if id := modules.Str(modules.Normalize(m.Content), "componentId"); id != "" {
				ids = append(ids, id)
			}
		}
	}

	out := make(map[string]models.Component)
	if len(ids) == 0 {
		return out
	}
	var components []models.Component
	if err := r.db.Where("component_id IN ?", ids).Find(&components).Error; err != nil {
		log.Printf("⚠️ Export: failed to resolve components: %v", err)
		return out
	}
	for _, c := range components {
		out[c.ID] = c
	}
	return out
}
