package schema_test

import (
	"encoding/json"
	"testing"
	"time"

	// Packages
	schema "github.com/mutablelogic/go-pgmq/pkg/queue/schema"
	assert "github.com/stretchr/testify/assert"
)

// fakeRow scans canned values into the reader's destinations
type fakeRow []any

func (r fakeRow) Scan(dest ...any) error {
	for i, v := range r {
		if i >= len(dest) {
			break
		}
		switch dst := dest[i].(type) {
		case *uint64:
			*dst = v.(uint64)
		case **uint64:
			if v == nil {
				*dst = nil
			} else {
				value := v.(uint64)
				*dst = &value
			}
		case **int64:
			if v == nil {
				*dst = nil
			} else {
				value := v.(int64)
				*dst = &value
			}
		case *bool:
			*dst = v.(bool)
		case *string:
			*dst = v.(string)
		case *time.Time:
			*dst = v.(time.Time)
		case *json.RawMessage:
			*dst = v.(json.RawMessage)
		}
	}
	return nil
}

func Test_Scan_001(t *testing.T) {
	assert := assert.New(t)
	now := time.Now()

	t.Run("Message", func(t *testing.T) {
		var message schema.Message
		err := message.Scan(fakeRow{
			uint64(42), uint64(2), now, now.Add(30 * time.Second), json.RawMessage(`{"a": 1}`),
		})
		assert.NoError(err)
		assert.Equal(uint64(42), message.Id)
		assert.Equal(uint64(2), message.ReadCount)
		assert.Equal(now, message.EnqueuedAt)
		assert.Equal(now.Add(30*time.Second), message.VisibilityTimeout)
		assert.JSONEq(`{"a": 1}`, string(message.Body))
	})

	t.Run("MessageList", func(t *testing.T) {
		var list schema.MessageList
		assert.NoError(list.Scan(fakeRow{uint64(1), uint64(0), now, now, json.RawMessage(`{}`)}))
		assert.NoError(list.Scan(fakeRow{uint64(2), uint64(0), now, now, json.RawMessage(`{}`)}))
		assert.Len(list.Body, 2)
		assert.Equal(uint64(1), list.Body[0].Id)
		assert.Equal(uint64(2), list.Body[1].Id)
	})

	t.Run("MessageId", func(t *testing.T) {
		var id schema.MessageId
		assert.NoError(id.Scan(fakeRow{uint64(42)}))
		assert.Equal(schema.MessageId(42), id)
	})

	t.Run("MessageIdNull", func(t *testing.T) {
		var id schema.MessageId
		assert.NoError(id.Scan(fakeRow{nil}))
		assert.Zero(id)
	})

	t.Run("MessageIdList", func(t *testing.T) {
		var ids schema.MessageIdList
		assert.NoError(ids.Scan(fakeRow{uint64(1)}))
		assert.NoError(ids.Scan(fakeRow{uint64(2)}))
		assert.Equal(schema.MessageIdList{1, 2}, ids)
	})

	t.Run("Queue", func(t *testing.T) {
		var queue schema.Queue
		err := queue.Scan(fakeRow{"emails", false, true, now})
		assert.NoError(err)
		assert.Equal("emails", queue.Queue)
		assert.False(queue.Partitioned)
		assert.True(queue.Unlogged)
		assert.Equal(now, queue.CreatedAt)
	})

	t.Run("QueueDropped", func(t *testing.T) {
		var dropped schema.QueueDropped
		assert.NoError(dropped.Scan(fakeRow{true}))
		assert.True(bool(dropped))
	})

	t.Run("Metrics", func(t *testing.T) {
		var metrics schema.Metrics
		err := metrics.Scan(fakeRow{"emails", uint64(3), int64(1), int64(60), uint64(100), now})
		assert.NoError(err)
		assert.Equal("emails", metrics.Queue)
		assert.Equal(uint64(3), metrics.QueueLength)
		assert.Equal(int64(1), *metrics.NewestMsgAgeSec)
		assert.Equal(int64(60), *metrics.OldestMsgAgeSec)
		assert.Equal(uint64(100), metrics.TotalMessages)
	})

	t.Run("MetricsEmptyQueue", func(t *testing.T) {
		var metrics schema.Metrics
		err := metrics.Scan(fakeRow{"emails", uint64(0), nil, nil, uint64(0), now})
		assert.NoError(err)
		assert.Nil(metrics.NewestMsgAgeSec)
		assert.Nil(metrics.OldestMsgAgeSec)
	})

	t.Run("Version", func(t *testing.T) {
		var version schema.Version
		assert.NoError(version.Scan(fakeRow{"1.5.1"}))
		assert.Equal("1.5.1", string(version))
	})
}
