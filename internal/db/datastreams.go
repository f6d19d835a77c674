package db

import (
	"context"

	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

type Datastreams interface {
	GetDatastream(ctx context.Context, id int64) (domain.Datastream, error)
	// GetDatastreamsByItem returns the item's datastreams ordered by id. An item without datastreams yields an
	// empty slice, not ErrNotFound.
	GetDatastreamsByItem(ctx context.Context, itemId int64) ([]domain.Datastream, error)
	InsertDatastream(ctx context.Context, ds domain.Datastream) (id int64, err error)
	DeleteDatastream(ctx context.Context, id int64) error
	DeleteItemDatastreams(ctx context.Context, itemId int64) error
}
