package impl

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/db"
	"github.com/sidereusnuntius/fedoraconnector/internal/db/impl/queries"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

func toDatastream(ds queries.Datastream) domain.Datastream {
	return domain.Datastream{
		ID:             ds.ID,
		ItemID:         ds.ItemID,
		ServerID:       ds.ServerID,
		PID:            ds.Pid,
		DSID:           ds.Datastream,
		MetadataStream: ds.MetadataStream,
		MimeType:       ds.MimeType,
	}
}

func (d *dbImpl) GetDatastream(ctx context.Context, id int64) (domain.Datastream, error) {
	ds, err := d.queries.GetDatastream(ctx, id)
	if err != nil {
		return domain.Datastream{}, d.HandleError(err)
	}
	return toDatastream(ds), nil
}

func (d *dbImpl) GetDatastreamsByItem(ctx context.Context, itemId int64) ([]domain.Datastream, error) {
	rows, err := d.queries.GetDatastreamsByItem(ctx, itemId)
	if err != nil {
		return nil, d.HandleError(err)
	}

	list := make([]domain.Datastream, 0, len(rows))
	for _, ds := range rows {
		list = append(list, toDatastream(ds))
	}
	return list, nil
}

// InsertDatastream fails with ErrNotFound if the referenced server does not exist.
func (d *dbImpl) InsertDatastream(ctx context.Context, ds domain.Datastream) (id int64, err error) {
	log.Debug().
		Int64("item", ds.ItemID).
		Str("pid", ds.PID).
		Str("dsid", ds.DSID).
		Msg("inserting datastream")
	err = d.WithTx(func(tx *queries.Queries) error {
		exists, err := tx.ServerExists(ctx, ds.ServerID)
		if err != nil {
			return err
		}
		if exists == 0 {
			return fmt.Errorf("%w: server %d", db.ErrNotFound, ds.ServerID)
		}

		id, err = tx.InsertDatastream(ctx, queries.InsertDatastreamParams{
			ItemID:         ds.ItemID,
			ServerID:       ds.ServerID,
			Pid:            ds.PID,
			Datastream:     ds.DSID,
			MetadataStream: ds.MetadataStream,
			MimeType:       ds.MimeType,
		})
		return err
	})
	return id, err
}

// DeleteDatastream also removes the element texts and import history of the datastream.
func (d *dbImpl) DeleteDatastream(ctx context.Context, id int64) error {
	return d.WithTx(func(tx *queries.Queries) error {
		if err := tx.DeleteDatastreamTexts(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteDatastreamImports(ctx, id); err != nil {
			return err
		}
		return checkAffected(tx.DeleteDatastream(ctx, id))
	})
}

func (d *dbImpl) DeleteItemDatastreams(ctx context.Context, itemId int64) error {
	return d.WithTx(func(tx *queries.Queries) error {
		if err := tx.DeleteItemTexts(ctx, itemId); err != nil {
			return err
		}
		if err := tx.DeleteItemImports(ctx, itemId); err != nil {
			return err
		}
		return tx.DeleteItemDatastreams(ctx, itemId)
	})
}
