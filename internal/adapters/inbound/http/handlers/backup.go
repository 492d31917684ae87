package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/architeacher/monitoring/internal/usecases"
	"github.com/architeacher/monitoring/internal/usecases/queries"
	"github.com/architeacher/monitoring/pkg/logger"
)

const backupFilenameLayout = "20060102-150405"

type (
	backupDocument struct {
		CreatedAt time.Time     `json:"createdAt"`
		Devices   []deviceData  `json:"devices"`
		Sessions  []sessionData `json:"sessions"`
	}

	BackupHandler struct {
		app    *usecases.Application
		logger logger.Logger
	}
)

func NewBackupHandler(app *usecases.Application, log logger.Logger) *BackupHandler {
	return &BackupHandler{
		app:    app,
		logger: log,
	}
}

// DownloadBackup streams the full export as an indented JSON attachment.
func (h *BackupHandler) DownloadBackup(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.app.Queries.FetchBackup.Execute(r.Context(), queries.FetchBackupQuery{})
	if err != nil {
		respondDomainError(w, r, h.logger, err)

		return
	}

	document := toBackupDocument(snapshot)

	body, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		respondDomainError(w, r, h.logger, err)

		return
	}

	filename := fmt.Sprintf("backup-%s.json", time.Now().UTC().Format(backupFilenameLayout))

	w.Header().Set(contentTypeHeader, applicationJSON)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(body)

	reqLogger := h.logger.WithContext(r.Context())
	reqLogger.Info().
		Str("filename", filename).
		Int("devices", len(document.Devices)).
		Int("sessions", len(document.Sessions)).
		Msg("backup downloaded")
}

func toBackupDocument(snapshot model.BackupSnapshot) backupDocument {
	return backupDocument{
		CreatedAt: snapshot.CreatedAt,
		Devices:   toDeviceListResponse(snapshot.Devices),
		Sessions:  toSessionListResponse(snapshot.Sessions),
	}
}
