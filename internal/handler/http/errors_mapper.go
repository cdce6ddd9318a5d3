package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/katla-sections/internal/app"
	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/internal/service"
	"github.com/MKhiriev/katla-sections/internal/store"
	"github.com/MKhiriev/katla-sections/internal/utils"
	"github.com/MKhiriev/katla-sections/internal/validators"
	"github.com/MKhiriev/katla-sections/models"
)

var errorStatusMap = map[error]int{
	ErrRouteNotMatched: http.StatusNotFound,
	ErrInvalidJSON:     http.StatusBadRequest,

	validators.ErrInvalidRequest:  http.StatusBadRequest,
	validators.ErrEmptyRequest:    http.StatusBadRequest,
	validators.ErrUnsupportedType: http.StatusInternalServerError,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrStoreHiveNotFound:       http.StatusBadRequest,
	service.ErrHiveSectionNotFound:     http.StatusNotFound,
	service.ErrHiveSectionCodeConflict: http.StatusConflict,
	service.ErrHiveSectionNotDeleted:   http.StatusConflict,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,

	store.ErrHiveSectionNotFound:   http.StatusNotFound,
	store.ErrHiveSectionCodeExists: http.StatusConflict,
	store.ErrStoreHiveNotFound:     http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// publicErrors are sentinels whose own text is sent to the client; the
// wrapped causes only reach the log.
var publicErrors = []error{
	ErrInvalidJSON,
	service.ErrHiveSectionNotFound,
	service.ErrHiveSectionCodeConflict,
	service.ErrHiveSectionNotDeleted,
	service.ErrStoreHiveNotFound,
}

// statusFromError maps err to a response status. Unknown errors are 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with {"error": "..."} and the mapped
// status. Messages of 5xx errors are not exposed.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, status)
		return
	}

	log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")

	utils.WriteJSON(w, models.ErrorResponse{Error: publicMessage(err)}, status)
}

func publicMessage(err error) string {
	if errors.Is(err, ErrRouteNotMatched) {
		return app.MsgNotFound
	}

	for _, target := range publicErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return err.Error()
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgNotFound}, http.StatusNotFound)
}
