package queue

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-pgmq/pkg/queue/schema"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Metrics returns a point-in-time snapshot of one queue's counters and
// message ages. Returns ErrNotFound if the queue does not exist.
func (client *Client) Metrics(ctx context.Context, name string) (*schema.Metrics, error) {
	var metrics schema.Metrics
	if err := client.conn.Get(ctx, &metrics, schema.MetricsRequest{Queue: name}); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// MetricsAll returns a metrics snapshot for every queue. The snapshots are
// taken per-queue, not atomically across queues.
func (client *Client) MetricsAll(ctx context.Context) ([]schema.Metrics, error) {
	var list schema.MetricsList
	if err := client.conn.List(ctx, &list, schema.MetricsListRequest{}); err != nil {
		return nil, err
	}
	return list.Body, nil
}
