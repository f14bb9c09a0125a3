package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-grocery-list/internal/app"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/service"
	"github.com/MKhiriev/go-grocery-list/internal/store"
	"github.com/MKhiriev/go-grocery-list/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidItemID:               http.StatusBadRequest,
	ErrInvalidBody:                 http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrItemNotFound: http.StatusNotFound,

	service.ErrStorageUnavailable: http.StatusServiceUnavailable,
	store.ErrStoreNotReady:        http.StatusServiceUnavailable,
	store.ErrStoreClosed:          http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessages is checked in order: the most specific cause wins.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrEmptyName, app.MsgNameRequired},
	{validators.ErrInvalidCategory, app.MsgInvalidCategory},
	{validators.ErrInvalidPriority, app.MsgInvalidPriority},
	{validators.ErrFieldTooLong, app.MsgFieldTooLong},
	{validators.ErrInvalidID, app.MsgInvalidItemID},
	{ErrInvalidItemID, app.MsgInvalidItemID},
	{ErrInvalidBody, app.MsgInvalidDataProvided},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{store.ErrItemNotFound, app.MsgItemNotFound},
	{service.ErrStorageUnavailable, app.MsgStorageUnavailable},
	{store.ErrStoreNotReady, app.MsgStorageUnavailable},
	{store.ErrStoreClosed, app.MsgStorageUnavailable},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for err. Internal details
// never leave the server.
func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err on the request logger and answers with the mapped
// status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, messageFromError(err), status)
}
