package core

import (
	"time"

	"codeberg.org/gruf/go-mutexes"
	"github.com/sidereusnuntius/fedoraconnector/internal/client"
	"github.com/sidereusnuntius/fedoraconnector/internal/config"
	"github.com/sidereusnuntius/fedoraconnector/internal/db"
	"github.com/sidereusnuntius/fedoraconnector/internal/importer"
	"github.com/sidereusnuntius/fedoraconnector/internal/metrics"
	"github.com/sidereusnuntius/fedoraconnector/internal/queue"
	"github.com/sidereusnuntius/fedoraconnector/internal/render"
	"github.com/sidereusnuntius/fedoraconnector/internal/service"
	"github.com/sidereusnuntius/fedoraconnector/internal/state"
)

type AppService struct {
	Config   config.Configuration
	DB       db.DB
	Fedora   client.Fedora
	Renderer *render.Renderer
	Registry *importer.Registry
	// Queue is nil when the task queue is disabled; versions are then detected synchronously.
	Queue    queue.Queue
	Observer metrics.Observer
	Now      func() time.Time
	locks    *mutexes.MutexMap
}

// New builds the application service. q and observer may be nil.
func New(state *state.State, fedora client.Fedora, importers *importer.Registry, q queue.Queue, observer metrics.Observer) service.Service {
	if observer == nil {
		observer = metrics.Nop{}
	}
	if importers == nil {
		importers = importer.Default()
	}

	var tei render.TEIDisplay
	if state.Config.TEIDisplay {
		tei = render.NewTEIText(fedora)
	}

	locks := mutexes.MutexMap{}
	return &AppService{
		Config:   state.Config,
		DB:       state.DB,
		Fedora:   fedora,
		Renderer: render.New(&state.Config, tei, importers, observer),
		Registry: importers,
		Queue:    q,
		Observer: observer,
		Now:      time.Now,
		locks:    &locks,
	}
}
