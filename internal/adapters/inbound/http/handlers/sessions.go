package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/architeacher/monitoring/internal/usecases"
	"github.com/architeacher/monitoring/internal/usecases/commands"
	"github.com/architeacher/monitoring/internal/usecases/queries"
	"github.com/architeacher/monitoring/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type (
	// createSessionRequest mirrors the reporter wire format; the device id
	// arrives under the legacy "_id" key.
	createSessionRequest struct {
		DeviceID  uuid.UUID `json:"_id"`
		Name      string    `json:"name"`
		StartTime time.Time `json:"startTime"`
		EndTime   time.Time `json:"endTime"`
		Version   string    `json:"version"`
	}

	sessionData struct {
		ID        uuid.UUID `json:"id"`
		DeviceID  uuid.UUID `json:"deviceId"`
		StartTime time.Time `json:"startTime"`
		EndTime   time.Time `json:"endTime"`
		Version   string    `json:"version"`
	}

	SessionsHandler struct {
		app    *usecases.Application
		logger logger.Logger
	}
)

func NewSessionsHandler(app *usecases.Application, log logger.Logger) *SessionsHandler {
	return &SessionsHandler{
		app:    app,
		logger: log,
	}
}

func (h *SessionsHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)

		return
	}

	input := model.SessionInput{
		DeviceID:  model.DeviceID{UUID: req.DeviceID},
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Version:   req.Version,
	}

	if err := input.Validate(); err != nil {
		respondDomainError(w, r, h.logger, err)

		return
	}

	if _, err := h.app.Commands.CreateSession.Handle(r.Context(), commands.CreateSessionCommand{Input: input}); err != nil {
		respondDomainError(w, r, h.logger, err)

		return
	}

	w.WriteHeader(http.StatusCreated)
}

// ListDeviceSessions surfaces an empty result as 404: a device that has
// never reported is indistinguishable from an unknown one to the caller.
func (h *SessionsHandler) ListDeviceSessions(w http.ResponseWriter, r *http.Request) {
	deviceID, err := model.ParseDeviceID(chi.URLParam(r, "deviceID"))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidID, msgInvalidDeviceID)

		return
	}

	sessions, err := h.app.Queries.ListDeviceSessions.Execute(r.Context(), queries.ListDeviceSessionsQuery{DeviceID: deviceID})
	if err != nil {
		respondDomainError(w, r, h.logger, err)

		return
	}

	if len(sessions) == 0 {
		respondDomainError(w, r, h.logger, model.ErrSessionsNotFound)

		return
	}

	writeJSONResponse(w, http.StatusOK, toSessionListResponse(sessions))
}

func toSessionListResponse(sessions []*model.Session) []sessionData {
	response := make([]sessionData, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, sessionData{
			ID:        session.ID.UUID,
			DeviceID:  session.DeviceID.UUID,
			StartTime: session.StartTime,
			EndTime:   session.EndTime,
			Version:   session.Version,
		})
	}

	return response
}
