package queue

import (
	"context"

	// Packages
	pgmq "github.com/mutablelogic/go-pgmq"
	schema "github.com/mutablelogic/go-pgmq/pkg/queue/schema"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - QUEUE

// CreateQueue creates a new queue with backing storage in the extension.
func (client *Client) CreateQueue(ctx context.Context, meta schema.QueueMeta) error {
	return client.conn.Insert(ctx, nil, meta)
}

// DropQueue destroys a queue and its backing storage, including the archive.
func (client *Client) DropQueue(ctx context.Context, name string) error {
	var dropped schema.QueueDropped
	if err := client.conn.Delete(ctx, &dropped, schema.QueueName(name)); err != nil {
		return err
	}
	if !dropped {
		return pgmq.ErrUnexpectedResponse.Withf("queue %q was not dropped", name)
	}
	return nil
}

// ListQueues returns descriptors for all queues, ordered by name.
func (client *Client) ListQueues(ctx context.Context, req schema.QueueListRequest) (*schema.QueueList, error) {
	var list schema.QueueList
	if err := client.conn.List(ctx, &list, req); err != nil {
		return nil, err
	}
	return &list, nil
}

// QueueDepth returns the number of messages currently in the active queue.
func (client *Client) QueueDepth(ctx context.Context, name string) (uint64, error) {
	metrics, err := client.Metrics(ctx, name)
	if err != nil {
		return 0, err
	}
	return metrics.QueueLength, nil
}

// ArchiveDepth returns the number of messages in the queue archive.
// This is a diagnostic helper which counts the archive table directly.
func (client *Client) ArchiveDepth(ctx context.Context, name string) (uint64, error) {
	var count schema.ArchiveCount
	if err := client.conn.Get(ctx, &count, schema.ArchiveCountRequest{Queue: name}); err != nil {
		return 0, err
	}
	return uint64(count), nil
}
