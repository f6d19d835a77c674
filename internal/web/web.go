package web

import (
	"net/http"

	"github.com/alexedwards/scs"
	"github.com/sidereusnuntius/fedoraconnector/internal/config"
	"github.com/sidereusnuntius/fedoraconnector/internal/service"
)

const (
	AdminPath       = "/admin/fedora-connector"
	ServersPath     = AdminPath + "/servers"
	DatastreamsPath = AdminPath + "/datastreams"
	MetricsPath     = "/metrics"
)

const MaxMemory = 64 * 1024

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
	// metrics serves MetricsPath; nil disables the route.
	metrics http.Handler
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager, metrics http.Handler) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
		metrics:        metrics,
	}
}
