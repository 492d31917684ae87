package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/architeacher/monitoring/internal/usecases"
	"github.com/architeacher/monitoring/internal/usecases/commands"
	"github.com/architeacher/monitoring/internal/usecases/queries"
	"github.com/architeacher/monitoring/pkg/logger"
	"github.com/google/uuid"
)

type (
	deviceData struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}

	createDeviceRequest struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}

	DevicesHandler struct {
		app    *usecases.Application
		logger logger.Logger
	}
)

func NewDevicesHandler(app *usecases.Application, log logger.Logger) *DevicesHandler {
	return &DevicesHandler{
		app:    app,
		logger: log,
	}
}

func (h *DevicesHandler) ListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.app.Queries.ListDevices.Execute(r.Context(), queries.ListDevicesQuery{})
	if err != nil {
		respondDomainError(w, r, h.logger, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceListResponse(devices))
}

func (h *DevicesHandler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req createDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)

		return
	}

	device := model.NewDevice(model.DeviceID{UUID: req.ID}, req.Name)

	if err := device.Validate(); err != nil {
		respondDomainError(w, r, h.logger, err)

		return
	}

	cmd := commands.UpsertDeviceCommand{
		ID:   device.ID,
		Name: device.Name,
	}

	if _, err := h.app.Commands.UpsertDevice.Handle(r.Context(), cmd); err != nil {
		respondDomainError(w, r, h.logger, err)

		return
	}

	w.WriteHeader(http.StatusCreated)
}

func toDeviceListResponse(devices []*model.Device) []deviceData {
	response := make([]deviceData, 0, len(devices))
	for _, device := range devices {
		response = append(response, deviceData{
			ID:   device.ID.UUID,
			Name: device.Name,
		})
	}

	return response
}
