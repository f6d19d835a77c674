package db

import (
	"context"

	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

type Servers interface {
	GetServer(ctx context.Context, id int64) (domain.Server, error)
	ListServers(ctx context.Context) ([]domain.Server, error)
	InsertServer(ctx context.Context, server domain.Server) (id int64, err error)
	UpdateServer(ctx context.Context, server domain.Server) error
	UpdateServerVersion(ctx context.Context, id int64, version string) error
	// DeleteServer removes the server. It fails with ErrConflict if datastreams still reference it.
	DeleteServer(ctx context.Context, id int64) error
}
