package schema

import (
	"strings"
	"time"

	// Packages
	pgmq "github.com/mutablelogic/go-pgmq"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type QueueName string

// QueueMeta describes a queue to be created. A queue is either plain,
// unlogged or partitioned; partitioned queues require a partition and a
// retention interval, which are passed to the extension verbatim.
type QueueMeta struct {
	Queue             string `json:"queue" arg:"" help:"Queue name"`
	Unlogged          bool   `json:"unlogged,omitempty" help:"Create an unlogged queue"`
	Partitioned       bool   `json:"partitioned,omitempty" help:"Create a partitioned queue"`
	PartitionInterval string `json:"partition_interval,omitempty" help:"Partition interval, in messages or as a duration"`
	RetentionInterval string `json:"retention_interval,omitempty" help:"Retention interval, in messages or as a duration"`
}

// Queue is a queue descriptor as returned by the extension.
type Queue struct {
	Queue       string    `json:"queue"`
	Partitioned bool      `json:"is_partitioned"`
	Unlogged    bool      `json:"is_unlogged"`
	CreatedAt   time.Time `json:"created_at"`
}

type QueueListRequest struct {
	pgmq.OffsetLimit
}

type QueueList struct {
	QueueListRequest
	Count uint64  `json:"count"`
	Body  []Queue `json:"body,omitempty"`
}

// QueueDropped reads the boolean result of a drop operation.
type QueueDropped bool

// ArchiveCountRequest counts messages in a queue archive. This reads the
// archive table directly by naming convention, for diagnostics only; every
// other operation goes through the extension's function interface.
type ArchiveCountRequest struct {
	Queue string
}

// ArchiveCount is the number of archived messages.
type ArchiveCount uint64

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (q Queue) String() string {
	return stringify(q)
}

func (q QueueMeta) String() string {
	return stringify(q)
}

func (q QueueList) String() string {
	return stringify(q)
}

////////////////////////////////////////////////////////////////////////////////
// READER

// Queue
func (q *Queue) Scan(row pgmq.Row) error {
	return row.Scan(&q.Queue, &q.Partitioned, &q.Unlogged, &q.CreatedAt)
}

// QueueList
func (l *QueueList) Scan(row pgmq.Row) error {
	var queue Queue
	if err := queue.Scan(row); err != nil {
		return err
	}
	l.Body = append(l.Body, queue)
	return nil
}

// QueueListCount
func (l *QueueList) ScanCount(row pgmq.Row) error {
	return row.Scan(&l.Count)
}

// QueueDropped
func (q *QueueDropped) Scan(row pgmq.Row) error {
	return row.Scan((*bool)(q))
}

// ArchiveCount
func (c *ArchiveCount) Scan(row pgmq.Row) error {
	return row.Scan((*uint64)(c))
}

////////////////////////////////////////////////////////////////////////////////
// SELECTOR

func (q QueueName) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	// Set queue name
	if name, err := q.queueName(); err != nil {
		return "", err
	} else {
		bind.Set("queue", name)
	}

	switch op {
	case pgmq.Delete:
		return bind.Query("pgmq.drop"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported QueueName operation %q", op)
	}
}

func (l QueueListRequest) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	l.OffsetLimit.Bind(bind, QueueListLimit)

	switch op {
	case pgmq.List:
		return bind.Query("pgmq.list"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported QueueListRequest operation %q", op)
	}
}

func (r ArchiveCountRequest) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	// Set archive table name from the extension's naming convention
	if name, err := QueueName(r.Queue).queueName(); err != nil {
		return "", err
	} else {
		bind.Set("archive_table", "a_"+name)
	}

	switch op {
	case pgmq.Get:
		return bind.Query("pgmq.archive-count"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported ArchiveCountRequest operation %q", op)
	}
}

////////////////////////////////////////////////////////////////////////////////
// WRITER

// Insert returns the create statement for the queue described by the meta.
func (q QueueMeta) Insert(bind *pgmq.Bind) (string, error) {
	// Queue name
	if name, err := QueueName(q.Queue).queueName(); err != nil {
		return "", err
	} else {
		bind.Set("queue", name)
	}

	// A queue is plain, unlogged or partitioned
	switch {
	case q.Unlogged && q.Partitioned:
		return "", pgmq.ErrBadParameter.With("queue cannot be both unlogged and partitioned")
	case q.Partitioned:
		if q.PartitionInterval == "" || q.RetentionInterval == "" {
			return "", pgmq.ErrBadParameter.With("partitioned queue requires partition and retention intervals")
		}
		bind.Set("partition_interval", q.PartitionInterval)
		bind.Set("retention_interval", q.RetentionInterval)
		return bind.Query("pgmq.create-partitioned"), nil
	case q.PartitionInterval != "" || q.RetentionInterval != "":
		return "", pgmq.ErrBadParameter.With("intervals are only valid for partitioned queues")
	case q.Unlogged:
		return bind.Query("pgmq.create-unlogged"), nil
	default:
		return bind.Query("pgmq.create"), nil
	}
}

// Update is not supported for queues.
func (q QueueMeta) Update(bind *pgmq.Bind) error {
	return pgmq.ErrNotImplemented.With("queues cannot be updated")
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Normalize and validate the queue name
func (q QueueName) queueName() (string, error) {
	name := strings.ToLower(strings.TrimSpace(string(q)))
	if name == "" {
		return "", pgmq.ErrBadParameter.With("missing queue name")
	}
	if len(name) > QueueNameMaxLen || !reQueueName.MatchString(name) {
		return "", pgmq.ErrBadParameter.Withf("invalid queue name: %q", name)
	}
	return name, nil
}
