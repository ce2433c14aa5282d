package schema

import (
	"encoding/json"
	"time"

	// Packages
	pgmq "github.com/mutablelogic/go-pgmq"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is one queue entry as read back from the extension. It is a
// value object; the id is only meaningful relative to the queue it was
// read from.
type Message struct {
	Id                uint64          `json:"id"`
	ReadCount         uint64          `json:"read_count"`
	EnqueuedAt        time.Time       `json:"enqueued_at"`
	VisibilityTimeout time.Time       `json:"visibility_timeout"`
	Body              json.RawMessage `json:"body,omitempty"`
}

type MessageId uint64

type MessageIdList []uint64

type MessageList struct {
	Body []Message `json:"body,omitempty"`
}

// MessageMeta describes a message to be sent. The body is an opaque,
// pre-encoded JSON payload. The optional delay hides the message from
// readers after sending, rounded down to whole seconds.
type MessageMeta struct {
	Body  json.RawMessage `json:"body"`
	Delay time.Duration   `json:"delay,omitempty"`
}

type SendRequest struct {
	Queue string
	MessageMeta
}

type SendBatchRequest struct {
	Queue  string
	Bodies []json.RawMessage
	Delay  time.Duration
}

type ReadRequest struct {
	Queue             string
	VisibilityTimeout time.Duration
	Count             uint64
}

type PollRequest struct {
	ReadRequest
	Timeout  time.Duration
	Interval time.Duration
}

type PopRequest struct {
	Queue string
}

type VisibilityRequest struct {
	Queue             string
	Id                uint64
	VisibilityTimeout time.Duration
}

type ArchiveRequest struct {
	Queue string
	Ids   []uint64
}

type DeleteRequest struct {
	Queue string
	Ids   []uint64
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return stringify(m)
}

func (m MessageMeta) String() string {
	return stringify(m)
}

func (l MessageList) String() string {
	return stringify(l)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// MessageIds projects a list of messages to their ids, for archive and
// delete operations.
func MessageIds(messages []Message) []uint64 {
	ids := make([]uint64, len(messages))
	for i, message := range messages {
		ids[i] = message.Id
	}
	return ids
}

////////////////////////////////////////////////////////////////////////////////
// READER

func (m *Message) Scan(row pgmq.Row) error {
	return row.Scan(&m.Id, &m.ReadCount, &m.EnqueuedAt, &m.VisibilityTimeout, &m.Body)
}

func (m *MessageId) Scan(row pgmq.Row) error {
	var id *uint64
	if err := row.Scan(&id); err != nil {
		return err
	}
	if id != nil {
		*m = MessageId(*id)
	}
	return nil
}

func (l *MessageIdList) Scan(row pgmq.Row) error {
	var id uint64
	if err := row.Scan(&id); err != nil {
		return err
	}
	*l = append(*l, id)
	return nil
}

func (l *MessageList) Scan(row pgmq.Row) error {
	var message Message
	if err := message.Scan(row); err != nil {
		return err
	}
	l.Body = append(l.Body, message)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// SELECTOR

func (r ReadRequest) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	if err := r.bind(bind); err != nil {
		return "", err
	}

	switch op {
	case pgmq.List:
		return bind.Query("pgmq.read"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported ReadRequest operation %q", op)
	}
}

func (r PollRequest) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	if err := r.bind(bind); err != nil {
		return "", err
	}

	// Apply poll defaults
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	bind.Set("max_poll_seconds", seconds(timeout))
	bind.Set("poll_interval_ms", int64(interval/time.Millisecond))

	switch op {
	case pgmq.List:
		return bind.Query("pgmq.read-poll"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported PollRequest operation %q", op)
	}
}

func (r PopRequest) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	if name, err := QueueName(r.Queue).queueName(); err != nil {
		return "", err
	} else {
		bind.Set("queue", name)
	}

	switch op {
	case pgmq.Get:
		return bind.Query("pgmq.pop"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported PopRequest operation %q", op)
	}
}

func (r VisibilityRequest) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	if name, err := QueueName(r.Queue).queueName(); err != nil {
		return "", err
	} else {
		bind.Set("queue", name)
	}
	if r.VisibilityTimeout < 0 {
		return "", pgmq.ErrBadParameter.With("visibility timeout cannot be negative")
	}
	bind.Set("id", int64(r.Id))
	bind.Set("vt", seconds(r.VisibilityTimeout))

	switch op {
	case pgmq.Update:
		return bind.Query("pgmq.set-vt"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported VisibilityRequest operation %q", op)
	}
}

func (r ArchiveRequest) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	if err := bindIds(bind, r.Queue, r.Ids); err != nil {
		return "", err
	}

	switch op {
	case pgmq.Update:
		return bind.Query("pgmq.archive"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported ArchiveRequest operation %q", op)
	}
}

func (r DeleteRequest) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	if err := bindIds(bind, r.Queue, r.Ids); err != nil {
		return "", err
	}

	switch op {
	case pgmq.Delete:
		return bind.Query("pgmq.delete"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported DeleteRequest operation %q", op)
	}
}

////////////////////////////////////////////////////////////////////////////////
// WRITER

// Insert returns the send statement for a single message.
func (r SendRequest) Insert(bind *pgmq.Bind) (string, error) {
	if name, err := QueueName(r.Queue).queueName(); err != nil {
		return "", err
	} else {
		bind.Set("queue", name)
	}
	if len(r.Body) == 0 {
		return "", pgmq.ErrBadParameter.With("missing message body")
	}
	if r.Delay < 0 {
		return "", pgmq.ErrBadParameter.With("delay cannot be negative")
	}
	bind.Set("body", string(r.Body))
	bind.Set("delay", seconds(r.Delay))
	return bind.Query("pgmq.send"), nil
}

func (r SendRequest) Update(bind *pgmq.Bind) error {
	return pgmq.ErrNotImplemented.With("messages cannot be updated")
}

// Insert returns the send statement for an ordered batch of messages,
// all hidden with the same delay.
func (r SendBatchRequest) Insert(bind *pgmq.Bind) (string, error) {
	if name, err := QueueName(r.Queue).queueName(); err != nil {
		return "", err
	} else {
		bind.Set("queue", name)
	}
	if len(r.Bodies) == 0 {
		return "", pgmq.ErrBadParameter.With("missing message bodies")
	}
	if r.Delay < 0 {
		return "", pgmq.ErrBadParameter.With("delay cannot be negative")
	}

	bodies := make([]string, len(r.Bodies))
	for i, body := range r.Bodies {
		if len(body) == 0 {
			return "", pgmq.ErrBadParameter.Withf("missing message body at index %d", i)
		}
		bodies[i] = string(body)
	}
	bind.Set("bodies", bodies)
	bind.Set("delay", seconds(r.Delay))
	return bind.Query("pgmq.send-batch"), nil
}

func (r SendBatchRequest) Update(bind *pgmq.Bind) error {
	return pgmq.ErrNotImplemented.With("messages cannot be updated")
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (r ReadRequest) bind(bind *pgmq.Bind) error {
	if name, err := QueueName(r.Queue).queueName(); err != nil {
		return err
	} else {
		bind.Set("queue", name)
	}
	if r.VisibilityTimeout < 0 {
		return pgmq.ErrBadParameter.With("visibility timeout cannot be negative")
	}
	bind.Set("vt", seconds(r.VisibilityTimeout))
	bind.Set("qty", int64(r.Count))
	return nil
}

func bindIds(bind *pgmq.Bind, queue string, ids []uint64) error {
	if name, err := QueueName(queue).queueName(); err != nil {
		return err
	} else {
		bind.Set("queue", name)
	}
	if len(ids) == 0 {
		return pgmq.ErrBadParameter.With("missing message ids")
	}

	// Bind as int8[] for the driver
	ids_ := make([]int64, len(ids))
	for i, id := range ids {
		ids_[i] = int64(id)
	}
	bind.Set("ids", ids_)
	return nil
}

// Whole seconds, rounded down
func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
