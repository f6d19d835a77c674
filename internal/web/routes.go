package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Mount(r chi.Router) {
	r.Use(middleware.Recoverer)
	if h.Config.Debug {
		r.Use(RequestLogger)
	}

	r.Route(ServersPath, func(r chi.Router) {
		r.Get("/", ServerList(h))
		r.Get("/add", AddServerView(h))
		r.Post("/add", AddServer(h))
		r.Get("/edit/{id}", EditServerView(h))
		r.Post("/edit/{id}", EditServer(h))
		r.Post("/delete/{id}", DeleteServer(h))
		r.Post("/refresh/{id}", RefreshServer(h))
	})

	r.Route(DatastreamsPath, func(r chi.Router) {
		r.Get("/query", QueryDatastreams(h))
		r.Get("/import/", ImportDatastream(h))
		r.Post("/add", AttachDatastream(h))
		r.Post("/delete/{id}", DetachDatastream(h))
	})
	r.Post(AdminPath+"/items/{item}/datastreams/delete", DetachItem(h))

	r.Get("/items/{item}/datastreams", ItemDatastreams(h))
	r.Route("/datastreams/{id}", func(r chi.Router) {
		r.Get("/", RenderDatastream(h))
		r.Get("/preview", PreviewDatastream(h))
		r.Get("/link", LinkDatastream(h))
		r.Get("/importer", ImporterLink(h))
	})

	if h.metrics != nil {
		r.Handle(MetricsPath, h.metrics)
	}

	h.MountStaticRoutes(r)
}

func (h *Handler) MountStaticRoutes(r chi.Router) {
	wd, _ := os.Getwd()
	wd = filepath.Join(wd, h.Config.StaticDir)
	f := os.DirFS(wd)

	fileServer := http.FileServer(http.FS(f))
	r.Handle("/static/{name}", http.StripPrefix(
		"/static/",
		fileServer,
	))
}
