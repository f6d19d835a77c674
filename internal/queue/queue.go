package queue

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/client"
	"github.com/sidereusnuntius/fedoraconnector/internal/db"
)

// Queue runs the application's background tasks.
type Queue interface {
	// RefreshVersion schedules the detection of the server's version.
	RefreshVersion(ctx context.Context, serverId int64) error
}

type queueImpl struct {
	db     db.Servers
	queues *backlite.Client
	client client.Fedora
}

// New registers the queues and starts processing tasks until ctx is done.
func New(ctx context.Context, db db.Servers, client client.Fedora, blClient *backlite.Client) Queue {
	q := &queueImpl{
		db:     db,
		queues: blClient,
		client: client,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started task queue")
	return q
}

func (q *queueImpl) RefreshVersion(ctx context.Context, serverId int64) error {
	log.Debug().Int64("server", serverId).Msg("enqueuing describe task")
	_, err := q.queues.Add(DescribeJob{ServerID: serverId}).Save()
	return err
}
