package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/xelth-com/manualsgo/internal/config"
	"github.com/xelth-com/manualsgo/internal/database"
	"github.com/xelth-com/manualsgo/internal/middleware"
	"github.com/xelth-com/manualsgo/internal/translation"
	"github.com/xelth-com/manualsgo/internal/websocket"
)

// Router wraps the mux router and the shared collaborators
type Router struct {
	*mux.Router
	db        *database.DB
	cfg       *config.Config
	hub       *websocket.Hub
	suggester *translation.Suggester
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config, hub *websocket.Hub) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		db:     db,
		cfg:    cfg,
		hub:    hub,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Translation progress events
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		websocket.ServeWs(hub, w, req)
	})

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")
	auth.HandleFunc("/register", r.register).Methods("POST")

	// API routes (protected)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret))

	// Documents
	api.HandleFunc("/documents", r.listDocuments).Methods("GET")
	api.HandleFunc("/documents", r.createDocument).Methods("POST")
	api.HandleFunc("/documents/migrate", r.migrateDocument).Methods("POST")
	api.HandleFunc("/documents/{id}", r.getDocument).Methods("GET")
	api.HandleFunc("/documents/{id}", r.updateDocument).Methods("PUT")
	api.HandleFunc("/documents/{id}", r.deleteDocument).Methods("DELETE")
	api.HandleFunc("/documents/{id}/tree", r.getDocumentTree).Methods("GET")
	api.HandleFunc("/documents/{id}/sections", r.listSections).Methods("GET")
	api.HandleFunc("/documents/{id}/translations/{languageId}", r.getDocumentTranslations).Methods("GET")
	api.HandleFunc("/documents/{id}/status/{languageId}", r.getTranslationStatus).Methods("GET")
	api.HandleFunc("/documents/{id}/export/pdf", r.exportDocumentPDF).Methods("GET")

	// Sections
	api.HandleFunc("/sections", r.createSection).Methods("POST")
	api.HandleFunc("/sections/reorder", r.reorderSections).Methods("POST")
	api.HandleFunc("/sections/{id}", r.getSection).Methods("GET")
	api.HandleFunc("/sections/{id}", r.updateSection).Methods("PUT")
	api.HandleFunc("/sections/{id}", r.deleteSection).Methods("DELETE")
	api.HandleFunc("/sections/{id}/modules", r.listModules).Methods("GET")
	api.HandleFunc("/sections/{id}/translations/{languageId}", r.getSectionTranslation).Methods("GET")
	api.HandleFunc("/sections/{id}/translations/{languageId}", r.upsertSectionTranslation).Methods("PUT")

	// Content modules
	api.HandleFunc("/modules", r.createModule).Methods("POST")
	api.HandleFunc("/modules/reorder", r.reorderModules).Methods("POST")
	api.HandleFunc("/modules/{id}", r.updateModule).Methods("PUT")
	api.HandleFunc("/modules/{id}", r.deleteModule).Methods("DELETE")
	api.HandleFunc("/modules/{id}/translations/{languageId}", r.getModuleTranslation).Methods("GET")
	api.HandleFunc("/modules/{id}/translations/{languageId}", r.upsertModuleTranslation).Methods("PUT")

	// Languages
	api.HandleFunc("/languages", r.listLanguages).Methods("GET")
	api.HandleFunc("/languages", r.createLanguage).Methods("POST")
	api.HandleFunc("/languages/{id}", r.updateLanguage).Methods("PUT")
	api.HandleFunc("/languages/{id}", r.deleteLanguage).Methods("DELETE")

	// AI translation suggestions
	api.HandleFunc("/translations/suggest", r.suggestTranslation).Methods("POST")

	// Components and BOMs
	api.HandleFunc("/components", r.listComponents).Methods("GET")
	api.HandleFunc("/components", r.createComponent).Methods("POST")
	api.HandleFunc("/boms", r.listBoms).Methods("GET")
	api.HandleFunc("/boms", r.createBom).Methods("POST")
	api.HandleFunc("/boms/compare", r.compareBoms).Methods("POST")
	api.HandleFunc("/boms/{id}/items", r.listBomItems).Methods("GET")
	api.HandleFunc("/boms/{id}/items", r.createBomItem).Methods("POST")

	// Static editor UI
	frontendDir := os.Getenv("FRONTEND_DIR")
	if frontendDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(frontendDir)))
	}

	return r
}

// SetSuggester registers the optional AI translation suggester
func (r *Router) SetSuggester(s *translation.Suggester) {
	r.suggester = s
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
