package web

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"
)

// fragment writes an HTML fragment built by get from the id in the URL parameter param.
func fragment(w http.ResponseWriter, r *http.Request, param string, get func(ctx context.Context, id int64) (templ.Component, error)) {
	ctx := r.Context()
	id, err := urlID(r, param)
	if err != nil {
		fail(w, r, err)
		return
	}
	c, err := get(ctx, id)
	if err != nil {
		fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = c.Render(ctx, w); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to render fragment")
	}
}

func ItemDatastreams(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fragment(w, r, "item", h.service.ListItemDatastreams)
	}
}

// RenderDatastream displays a datastream. The query parameters are passed on to the image viewer.
func RenderDatastream(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fragment(w, r, "id", func(ctx context.Context, id int64) (templ.Component, error) {
			return h.service.RenderDatastream(ctx, id, r.URL.Query())
		})
	}
}

func PreviewDatastream(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fragment(w, r, "id", h.service.PreviewDatastream)
	}
}

func LinkDatastream(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fragment(w, r, "id", h.service.LinkDatastream)
	}
}

// ImporterLink renders the import link of a datastream, or nothing if its metadata stream has no importer.
func ImporterLink(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fragment(w, r, "id", h.service.ImporterLink)
	}
}
