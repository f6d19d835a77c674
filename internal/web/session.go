package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/service"
)

const FlashKey = "flash"

// putFlash stores a message to be shown on the next page the user sees.
func (h *Handler) putFlash(w http.ResponseWriter, r *http.Request, msg string) {
	if h.SessionManager == nil {
		return
	}
	if err := h.SessionManager.Load(r).PutString(w, FlashKey, msg); err != nil {
		log.Error().Err(err).Msg("failed to store flash message")
	}
}

func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) string {
	if h.SessionManager == nil {
		return ""
	}
	msg, err := h.SessionManager.Load(r).PopString(w, FlashKey)
	if err != nil {
		log.Error().Err(err).Msg("failed to read flash message")
	}
	return msg
}

func urlID(r *http.Request, param string) (int64, error) {
	return parseID(param, chi.URLParam(r, param))
}

func parseID(name, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", service.ErrInvalidInput, name, value)
	}
	return id, nil
}
