package web

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/client"
	"github.com/sidereusnuntius/fedoraconnector/internal/db"
	"github.com/sidereusnuntius/fedoraconnector/internal/service"
)

func GetCode(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrNoImporter):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, client.ErrStatus), errors.Is(err, client.ErrTooLarge):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err with the status code it maps to. Internal errors are logged and their text is hidden.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	code := GetCode(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		msg = http.StatusText(code)
	}
	http.Error(w, msg, code)
}
