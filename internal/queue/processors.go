package queue

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/client"
	"github.com/sidereusnuntius/fedoraconnector/internal/db"
)

func (q *queueImpl) register() {
	describeQueue := backlite.NewQueue[DescribeJob](q.describe())
	q.queues.Register(describeQueue)
}

func (q *queueImpl) describe() func(context.Context, DescribeJob) error {
	return func(ctx context.Context, task DescribeJob) error {
		_, err := Refresh(ctx, q.db, q.client, task.ServerID)
		return err
	}
}

// Refresh reads the version from the server's repository description and stores it.
func Refresh(ctx context.Context, servers db.Servers, c client.Fedora, serverId int64) (string, error) {
	server, err := servers.GetServer(ctx, serverId)
	if err != nil {
		return "", err
	}

	version, err := c.Describe(ctx, server.URL)
	if err != nil {
		log.Error().Err(err).Int64("server", serverId).Msg("version detection failed")
		return "", err
	}

	log.Info().
		Int64("server", serverId).
		Str("version", version).
		Msg("detected fedora version")
	if err = servers.UpdateServerVersion(ctx, serverId, version); err != nil {
		return "", err
	}
	return version, nil
}
