package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fintrack/internal/domain"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type Service interface {
	Get(ctx context.Context, userID string) (domain.UserSettings, error)
	Update(ctx context.Context, userID string, patch domain.SettingsPatch) (domain.UserSettings, error)
}

type Handler struct {
	service Service
}

func NewSettingsHandler(service Service) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

// writeJSON encodes body before touching the response, so an unencodable
// body turns into a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		logrus.WithError(err).Error("failed to encode response")
		statusCode = http.StatusInternalServerError
		payload, _ = json.Marshal(errorResponse{Error: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(append(payload, '\n'))
}

// GetSettings godoc
// @Summary Get user settings
// @Description Stored settings merged over the defaults. Users without stored settings get the defaults.
// @Tags Settings
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.UserSettings
// @Failure 500 {object} errorResponse
// @Router /users/{id}/settings [get]
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}

	settings, err := h.service.Get(r.Context(), userID)
	if err != nil {
		msg := "ups, couldn't load settings this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetSettings", "user_id": userID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Update user settings
// @Description Applies a partial update. Every given field must be a valid value; otherwise nothing is saved.
// @Tags Settings
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body domain.SettingsPatch true "Fields to change"
// @Success 200 {object} domain.UserSettings
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /users/{id}/settings [patch]
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 4<<10)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var patch domain.SettingsPatch
	if err := dec.Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.service.Update(r.Context(), userID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSettings) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		msg := "ups, couldn't save settings this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "UpdateSettings", "user_id": userID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
