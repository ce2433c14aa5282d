package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	// Packages
	pgmq "github.com/mutablelogic/go-pgmq"
	schema "github.com/mutablelogic/go-pgmq/pkg/queue/schema"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SEND

// Send inserts one message into a queue and returns its id.
func (client *Client) Send(ctx context.Context, queue string, meta schema.MessageMeta) (uint64, error) {
	var id schema.MessageId
	if err := client.conn.Insert(ctx, &id, schema.SendRequest{Queue: queue, MessageMeta: meta}); err != nil {
		if errors.Is(err, pgmq.ErrNotFound) {
			return 0, pgmq.ErrUnexpectedResponse.With("send did not return a message id")
		}
		return 0, err
	}
	if id == 0 {
		return 0, pgmq.ErrUnexpectedResponse.With("send did not return a message id")
	}
	return uint64(id), nil
}

// SendBatch inserts an ordered sequence of messages into a queue in one
// call, all hidden with the same delay. The ids are returned in input order.
func (client *Client) SendBatch(ctx context.Context, queue string, bodies []json.RawMessage, delay time.Duration) ([]uint64, error) {
	var ids schema.MessageIdList
	if err := client.conn.Insert(ctx, &ids, schema.SendBatchRequest{Queue: queue, Bodies: bodies, Delay: delay}); err != nil {
		if errors.Is(err, pgmq.ErrNotFound) {
			return nil, pgmq.ErrUnexpectedResponse.With("send did not return message ids")
		}
		return nil, err
	}
	if len(ids) != len(bodies) {
		return nil, pgmq.ErrUnexpectedResponse.Withf("sent %d messages but received %d ids", len(bodies), len(ids))
	}
	return []uint64(ids), nil
}

// SendSequence pipelines several single sends into one network round trip,
// which allows a different delay for each message. The ids are returned in
// input order.
func (client *Client) SendSequence(ctx context.Context, queue string, meta ...schema.MessageMeta) ([]uint64, error) {
	if len(meta) == 0 {
		return nil, pgmq.ErrBadParameter.With("missing messages")
	}

	ids := make([]schema.MessageId, len(meta))
	if err := client.conn.Bulk(ctx, func(conn pgmq.Conn) error {
		for i, m := range meta {
			if err := conn.Insert(ctx, &ids[i], schema.SendRequest{Queue: queue, MessageMeta: m}); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	result := make([]uint64, len(ids))
	for i, id := range ids {
		if id == 0 {
			return nil, pgmq.ErrUnexpectedResponse.Withf("send did not return a message id at index %d", i)
		}
		result[i] = uint64(id)
	}
	return result, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - READ

// Read returns the next visible message from a queue, hiding it from other
// readers for the visibility timeout. Returns nil if no message is available.
func (client *Client) Read(ctx context.Context, queue string, vt time.Duration) (*schema.Message, error) {
	messages, err := client.ReadBatch(ctx, queue, vt, 1)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, nil
	}
	return &messages[0], nil
}

// ReadBatch returns up to count visible messages from a queue, hiding each
// from other readers for the visibility timeout. Returns an empty list when
// no messages are available.
func (client *Client) ReadBatch(ctx context.Context, queue string, vt time.Duration, count uint64) ([]schema.Message, error) {
	var list schema.MessageList
	if err := client.conn.List(ctx, &list, schema.ReadRequest{Queue: queue, VisibilityTimeout: vt, Count: count}); err != nil {
		return nil, err
	}
	return list.Body, nil
}

// ReadWithPoll is ReadBatch, but when no messages are visible the call
// blocks server-side until one arrives or the poll timeout elapses. The
// underlying connection is held for the duration of the call, so size the
// pool accordingly. Returns whatever arrived, possibly an empty list.
func (client *Client) ReadWithPoll(ctx context.Context, queue string, vt time.Duration, count uint64, opt ...Opt) ([]schema.Message, error) {
	o, err := applyOpts(opt)
	if err != nil {
		return nil, err
	}

	var list schema.MessageList
	if err := client.conn.List(ctx, &list, schema.PollRequest{
		ReadRequest: schema.ReadRequest{Queue: queue, VisibilityTimeout: vt, Count: count},
		Timeout:     o.pollTimeout,
		Interval:    o.pollInterval,
	}); err != nil {
		return nil, err
	}
	return list.Body, nil
}

// Pop atomically reads and deletes the next message from a queue.
// Returns nil if no message is available.
func (client *Client) Pop(ctx context.Context, queue string) (*schema.Message, error) {
	var message schema.Message
	if err := client.conn.Get(ctx, &message, schema.PopRequest{Queue: queue}); errors.Is(err, pgmq.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &message, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - MESSAGE LIFECYCLE

// SetVisibilityTimeout hides a message from readers for the given duration
// from now, or makes it immediately visible when the duration is zero.
// Returns the updated message.
func (client *Client) SetVisibilityTimeout(ctx context.Context, queue string, id uint64, vt time.Duration) (*schema.Message, error) {
	var message schema.Message
	if err := client.conn.Update(ctx, &message, schema.VisibilityRequest{Queue: queue, Id: id, VisibilityTimeout: vt}, nil); err != nil {
		return nil, err
	}
	return &message, nil
}

// Archive moves messages from the active queue to its archive. Returns the
// ids which were archived; ids not present in the active queue are ignored.
func (client *Client) Archive(ctx context.Context, queue string, ids ...uint64) ([]uint64, error) {
	var archived schema.MessageIdList
	if err := client.conn.Update(ctx, &archived, schema.ArchiveRequest{Queue: queue, Ids: ids}, nil); err != nil {
		if errors.Is(err, pgmq.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []uint64(archived), nil
}

// ArchiveMessages archives by record, normalizing to ids first.
func (client *Client) ArchiveMessages(ctx context.Context, queue string, messages []schema.Message) ([]uint64, error) {
	return client.Archive(ctx, queue, schema.MessageIds(messages)...)
}

// Delete permanently removes messages from a queue. Returns the ids which
// were deleted; ids not present in the active queue are ignored.
func (client *Client) Delete(ctx context.Context, queue string, ids ...uint64) ([]uint64, error) {
	var deleted schema.MessageIdList
	if err := client.conn.Delete(ctx, &deleted, schema.DeleteRequest{Queue: queue, Ids: ids}); err != nil {
		if errors.Is(err, pgmq.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []uint64(deleted), nil
}

// DeleteMessages deletes by record, normalizing to ids first.
func (client *Client) DeleteMessages(ctx context.Context, queue string, messages []schema.Message) ([]uint64, error) {
	return client.Delete(ctx, queue, schema.MessageIds(messages)...)
}
