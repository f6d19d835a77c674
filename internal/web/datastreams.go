package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/db"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
	"github.com/sidereusnuntius/fedoraconnector/internal/service"
	"github.com/sidereusnuntius/fedoraconnector/templates"
)

// QueryDatastreams answers the datastream picker of the item form: it lists the datastreams of the object pid on
// the given server as a JSON array of {dsid, label}.
func QueryDatastreams(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		serverId, err := parseID("server", query.Get("server"))
		if err != nil {
			fail(w, r, err)
			return
		}
		pid := strings.TrimSpace(query.Get("pid"))
		if pid == "" {
			fail(w, r, fmt.Errorf("%w: missing pid", service.ErrInvalidInput))
			return
		}

		nodes, err := h.service.QueryDatastreams(r.Context(), serverId, pid)
		if err != nil {
			code := GetCode(err)
			if code == http.StatusInternalServerError && !errors.Is(err, db.ErrInternal) {
				code = http.StatusBadGateway
			}
			if code == http.StatusInternalServerError {
				fail(w, r, err)
				return
			}
			log.Warn().Err(err).Int64("server", serverId).Str("pid", pid).Msg("datastream query failed")
			http.Error(w, err.Error(), code)
			return
		}
		if nodes == nil {
			nodes = []domain.DatastreamNode{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(nodes); err != nil {
			log.Error().Err(err).Msg("failed to write datastream list")
		}
	}
}

func ImportDatastream(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := parseID("id", r.URL.Query().Get("id"))
		if err != nil {
			fail(w, r, err)
			return
		}

		record, err := h.service.ImportMetadata(ctx, id)
		if err != nil {
			fail(w, r, err)
			return
		}
		ds, err := h.service.GetDatastream(ctx, id)
		if err != nil {
			fail(w, r, err)
			return
		}
		texts, err := h.service.ElementTexts(ctx, ds.ItemID)
		if err != nil {
			fail(w, r, err)
			return
		}
		history, err := h.service.ImportHistory(ctx, id)
		if err != nil {
			fail(w, r, err)
			return
		}

		templates.Layout(templates.PageData{
			PageTitle: "Fedora Connector | Import",
			Child:     templates.ImportResult(ds, record, texts, history),
		}).Render(ctx, w)
	}
}

func AttachDatastream(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form body", http.StatusBadRequest)
			return
		}

		itemId, err := parseID("item", r.Form.Get("item"))
		if err != nil {
			fail(w, r, err)
			return
		}
		serverId, err := parseID("server", r.Form.Get("server"))
		if err != nil {
			fail(w, r, err)
			return
		}

		ds, err := h.service.AttachDatastream(r.Context(), domain.Datastream{
			ItemID:         itemId,
			ServerID:       serverId,
			PID:            r.Form.Get("pid"),
			DSID:           r.Form.Get("dsid"),
			MetadataStream: r.Form.Get("metadata_stream"),
			MimeType:       r.Form.Get("mime_type"),
		})
		if err != nil {
			fail(w, r, err)
			return
		}

		h.putFlash(w, r, "The datastream "+ds.DSID+" was added.")
		http.Redirect(w, r, itemPath(ds.ItemID), http.StatusSeeOther)
	}
}

func DetachDatastream(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := urlID(r, "id")
		if err != nil {
			fail(w, r, err)
			return
		}
		ds, err := h.service.GetDatastream(ctx, id)
		if err != nil {
			fail(w, r, err)
			return
		}
		if err = h.service.DetachDatastream(ctx, id); err != nil {
			fail(w, r, err)
			return
		}

		h.putFlash(w, r, "The datastream "+ds.DSID+" was removed.")
		http.Redirect(w, r, itemPath(ds.ItemID), http.StatusSeeOther)
	}
}

// DetachItem removes every datastream of an item, as done when the item itself is deleted.
func DetachItem(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		itemId, err := urlID(r, "item")
		if err != nil {
			fail(w, r, err)
			return
		}
		list, err := h.service.ItemDatastreams(ctx, itemId)
		if err != nil {
			fail(w, r, err)
			return
		}
		if err = h.service.DetachItem(ctx, itemId); err != nil {
			fail(w, r, err)
			return
		}

		log.Info().Int64("item", itemId).Int("datastreams", len(list)).Msg("detached item")
		h.putFlash(w, r, strconv.Itoa(len(list))+" datastreams were removed.")
		http.Redirect(w, r, itemPath(itemId), http.StatusSeeOther)
	}
}

func itemPath(itemId int64) string {
	return "/items/" + strconv.FormatInt(itemId, 10) + "/datastreams"
}
