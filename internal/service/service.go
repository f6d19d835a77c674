package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/a-h/templ"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

var (
	ErrInvalidInput = errors.New("invalid")
	// ErrNoImporter is returned when importing a datastream whose metadata stream has no registered importer.
	ErrNoImporter = errors.New("no importer for metadata stream")
)

type Service interface {
	ServerService
	DatastreamService
	RenderService
}

type ServerService interface {
	ListServers(ctx context.Context) ([]domain.Server, error)
	GetServer(ctx context.Context, id int64) (domain.Server, error)
	// CreateServer validates and stores a new server. If version is empty, the version is detected from the
	// server's description, either right away or by the task queue.
	CreateServer(ctx context.Context, name, url, version string, active bool) (domain.Server, error)
	UpdateServer(ctx context.Context, server domain.Server) error
	DeleteServer(ctx context.Context, id int64) error
	// RefreshVersion asks the server for its version and stores it.
	RefreshVersion(ctx context.Context, id int64) (string, error)
}

type DatastreamService interface {
	// QueryDatastreams lists the datastreams of a Fedora object, in the order returned by the server. Errors
	// are propagated as they are; they are never turned into an empty list.
	QueryDatastreams(ctx context.Context, serverId int64, pid string) ([]domain.DatastreamNode, error)
	GetDatastream(ctx context.Context, id int64) (domain.Datastream, error)
	ItemDatastreams(ctx context.Context, itemId int64) ([]domain.Datastream, error)
	// AttachDatastream links a Fedora datastream to an item. When the MIME type is not given, it is looked up in
	// the object's datastream listing.
	AttachDatastream(ctx context.Context, ds domain.Datastream) (domain.Datastream, error)
	DetachDatastream(ctx context.Context, id int64) error
	DetachItem(ctx context.Context, itemId int64) error
	// ImportMetadata runs the importer registered for the datastream's metadata stream, replacing the element
	// texts previously imported from it.
	ImportMetadata(ctx context.Context, id int64) (domain.ImportRecord, error)
	ElementTexts(ctx context.Context, itemId int64) ([]domain.ElementText, error)
	// ImportHistory returns the imports of a datastream, oldest first.
	ImportHistory(ctx context.Context, id int64) ([]domain.ImportRecord, error)
	Importers() []string
}

type RenderService interface {
	RenderDatastream(ctx context.Context, id int64, params url.Values) (templ.Component, error)
	PreviewDatastream(ctx context.Context, id int64) (templ.Component, error)
	LinkDatastream(ctx context.Context, id int64) (templ.Component, error)
	ListItemDatastreams(ctx context.Context, itemId int64) (templ.Component, error)
	ImporterLink(ctx context.Context, id int64) (templ.Component, error)
}
