package handlers

import (
	"net/http"
	"strconv"

	"github.com/Dias221467/Alumni_Connect/internal/apperrors"
	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/Dias221467/Alumni_Connect/internal/services"
	"github.com/Dias221467/Alumni_Connect/internal/session"
)

// DirectoryHandler serves the alumni directory with relationship status.
type DirectoryHandler struct {
	Sessions *session.Manager
}

func NewDirectoryHandler(sessions *session.Manager) *DirectoryHandler {
	return &DirectoryHandler{Sessions: sessions}
}

type directoryView struct {
	Entries    []services.DirectoryEntry `json:"entries"`
	Categories []string                  `json:"categories"`
}

// GET /directory?q=&category=
func (h *DirectoryHandler) GetDirectoryHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	filter := services.DirectoryFilter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	writeJSON(w, http.StatusOK, directoryView{
		Entries:    ws.Directory.Entries(filter),
		Categories: ws.Directory.Categories(),
	})
}

// GET /directory/suggest?q=&limit=
func (h *DirectoryHandler) SuggestHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	suggestions := ws.Directory.Suggest(r.URL.Query().Get("q"), limit)
	writeJSON(w, http.StatusOK, map[string][]models.AlumniProfile{"alumni": suggestions})
}

// POST /directory/refresh
func (h *DirectoryHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	if err := ws.Directory.Load(r.Context()); err != nil {
		http.Error(w, apperrors.Message(err, "Failed to load alumni directory"), apperrors.HTTPStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, directoryView{
		Entries:    ws.Directory.Entries(services.DirectoryFilter{}),
		Categories: ws.Directory.Categories(),
	})
}
