package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	DescribeQueue = "Describe"
)

// DescribeJob detects the version of a server from its repository description.
type DescribeJob struct {
	ServerID int64
}

func (j DescribeJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        DescribeQueue,
		MaxAttempts: 3,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
