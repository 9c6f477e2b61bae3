package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Dias221467/Alumni_Connect/internal/apperrors"
	"github.com/Dias221467/Alumni_Connect/internal/session"
	"github.com/Dias221467/Alumni_Connect/pkg/logger"
	"github.com/Dias221467/Alumni_Connect/pkg/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

// workspace returns the caller's workspace, writing 401 when there is no session.
func workspace(sessions *session.Manager, w http.ResponseWriter, r *http.Request) *session.Workspace {
	sess := middleware.GetSessionFromContext(r.Context())
	if sess == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		logger.Log.Warn("Request without session reached a protected handler")
		return nil
	}
	return sessions.Get(r.Context(), *sess)
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		logger.Log.Warnf("Failed to decode request body: %v", err)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		logger.Log.Warnf("Request payload failed validation: %v", err)
		return false
	}
	return true
}

// pathID parses the {id} route variable.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeError answers with the error's user-facing text as plain text.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), apperrors.HTTPStatus(err))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorf("Failed to encode response: %v", err)
	}
}
