package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sidereusnuntius/fedoraconnector/internal/db"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
	"github.com/sidereusnuntius/fedoraconnector/templates"
)

func ServerList(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		servers, err := h.service.ListServers(ctx)
		if err != nil {
			fail(w, r, err)
			return
		}

		templates.Layout(templates.PageData{
			PageTitle: "Fedora Connector | Servers",
			Flash:     h.popFlash(w, r),
			Child:     templates.ServerList(servers, h.service.Importers()),
		}).Render(ctx, w)
	}
}

func AddServerView(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates.Layout(templates.PageData{
			PageTitle: "Fedora Connector | Add a Server",
			Child:     templates.ServerForm(ServersPath+"/add", domain.Server{Active: true}),
		}).Render(r.Context(), w)
	}
}

func AddServer(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form body", http.StatusBadRequest)
			return
		}

		form := serverFromForm(r)
		server, err := h.service.CreateServer(ctx, form.Name, form.URL, form.Version, form.Active)
		if err != nil {
			renderServerForm(w, r, "Fedora Connector | Add a Server", ServersPath+"/add", form, err)
			return
		}

		h.putFlash(w, r, "The server "+server.Name+" was added.")
		http.Redirect(w, r, ServersPath, http.StatusSeeOther)
	}
}

func EditServerView(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := urlID(r, "id")
		if err != nil {
			fail(w, r, err)
			return
		}
		server, err := h.service.GetServer(ctx, id)
		if err != nil {
			fail(w, r, err)
			return
		}

		templates.Layout(templates.PageData{
			PageTitle: "Fedora Connector | Edit " + server.Name,
			Child:     templates.ServerForm(r.URL.Path, server),
		}).Render(ctx, w)
	}
}

func EditServer(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := urlID(r, "id")
		if err != nil {
			fail(w, r, err)
			return
		}
		if err = r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form body", http.StatusBadRequest)
			return
		}

		server := serverFromForm(r)
		server.ID = id
		if err = h.service.UpdateServer(ctx, server); err != nil {
			renderServerForm(w, r, "Fedora Connector | Edit "+server.Name, r.URL.Path, server, err)
			return
		}

		h.putFlash(w, r, "The server "+server.Name+" was updated.")
		http.Redirect(w, r, ServersPath, http.StatusSeeOther)
	}
}

func DeleteServer(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := urlID(r, "id")
		if err != nil {
			fail(w, r, err)
			return
		}
		if err = h.service.DeleteServer(ctx, id); err != nil {
			fail(w, r, err)
			return
		}

		h.putFlash(w, r, "The server was deleted.")
		http.Redirect(w, r, ServersPath, http.StatusSeeOther)
	}
}

// RefreshServer asks the server for its version again.
func RefreshServer(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "id")
		if err != nil {
			fail(w, r, err)
			return
		}
		version, err := h.service.RefreshVersion(r.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) || errors.Is(err, db.ErrInternal) {
				fail(w, r, err)
				return
			}
			h.putFlash(w, r, "The server could not be reached: "+err.Error())
		} else {
			h.putFlash(w, r, "Detected Fedora "+version+".")
		}
		http.Redirect(w, r, ServersPath, http.StatusSeeOther)
	}
}

func serverFromForm(r *http.Request) domain.Server {
	active, _ := strconv.ParseBool(r.Form.Get("active"))
	return domain.Server{
		Name:    r.Form.Get("name"),
		URL:     r.Form.Get("url"),
		Version: r.Form.Get("version"),
		Active:  active,
	}
}

// renderServerForm shows the form again, with the submitted values and the error that prevented saving them.
func renderServerForm(w http.ResponseWriter, r *http.Request, title, action string, server domain.Server, err error) {
	code := GetCode(err)
	if code == http.StatusInternalServerError {
		fail(w, r, err)
		return
	}
	w.WriteHeader(code)
	templates.Layout(templates.PageData{
		PageTitle: title,
		Err:       err,
		Child:     templates.ServerForm(action, server),
	}).Render(r.Context(), w)
}
