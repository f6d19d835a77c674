package impl

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/db"
	"github.com/sidereusnuntius/fedoraconnector/internal/db/impl/queries"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

func toServer(s queries.Server) domain.Server {
	return domain.Server{
		ID:      s.ID,
		Name:    s.Name,
		URL:     s.Url,
		Version: s.Version,
		Active:  s.Active,
	}
}

func (d *dbImpl) GetServer(ctx context.Context, id int64) (domain.Server, error) {
	s, err := d.queries.GetServer(ctx, id)
	if err != nil {
		return domain.Server{}, d.HandleError(err)
	}
	return toServer(s), nil
}

func (d *dbImpl) ListServers(ctx context.Context) ([]domain.Server, error) {
	rows, err := d.queries.ListServers(ctx)
	if err != nil {
		return nil, d.HandleError(err)
	}

	servers := make([]domain.Server, 0, len(rows))
	for _, s := range rows {
		servers = append(servers, toServer(s))
	}
	return servers, nil
}

func (d *dbImpl) InsertServer(ctx context.Context, server domain.Server) (int64, error) {
	log.Debug().
		Str("name", server.Name).
		Str("url", server.URL).
		Msg("inserting server")
	id, err := d.queries.InsertServer(ctx, queries.InsertServerParams{
		Name:    server.Name,
		Url:     server.URL,
		Version: server.Version,
		Active:  server.Active,
	})
	return id, d.HandleError(err)
}

func (d *dbImpl) UpdateServer(ctx context.Context, server domain.Server) error {
	return d.HandleError(checkAffected(d.queries.UpdateServer(ctx, queries.UpdateServerParams{
		Name:    server.Name,
		Url:     server.URL,
		Version: server.Version,
		Active:  server.Active,
		ID:      server.ID,
	})))
}

func (d *dbImpl) UpdateServerVersion(ctx context.Context, id int64, version string) error {
	return d.HandleError(checkAffected(d.queries.UpdateServerVersion(ctx, queries.UpdateServerVersionParams{
		Version: version,
		ID:      id,
	})))
}

func (d *dbImpl) DeleteServer(ctx context.Context, id int64) error {
	return d.WithTx(func(tx *queries.Queries) error {
		inUse, err := tx.ServerInUse(ctx, id)
		if err != nil {
			return err
		}
		if inUse != 0 {
			return fmt.Errorf("%w: server %d is referenced by datastreams", db.ErrConflict, id)
		}
		return checkAffected(tx.DeleteServer(ctx, id))
	})
}
