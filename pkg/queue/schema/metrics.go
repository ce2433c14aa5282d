package schema

import (
	"time"

	// Packages
	pgmq "github.com/mutablelogic/go-pgmq"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Metrics is a point-in-time snapshot of one queue. Message ages are nil
// when the queue is empty.
type Metrics struct {
	Queue           string    `json:"queue"`
	QueueLength     uint64    `json:"queue_length"`
	NewestMsgAgeSec *int64    `json:"newest_msg_age_sec,omitempty"`
	OldestMsgAgeSec *int64    `json:"oldest_msg_age_sec,omitempty"`
	TotalMessages   uint64    `json:"total_messages"`
	ScrapeTime      time.Time `json:"scrape_time"`
}

type MetricsRequest struct {
	Queue string
}

type MetricsListRequest struct{}

type MetricsList struct {
	Body []Metrics `json:"body,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Metrics) String() string {
	return stringify(m)
}

func (l MetricsList) String() string {
	return stringify(l)
}

////////////////////////////////////////////////////////////////////////////////
// READER

func (m *Metrics) Scan(row pgmq.Row) error {
	return row.Scan(&m.Queue, &m.QueueLength, &m.NewestMsgAgeSec, &m.OldestMsgAgeSec, &m.TotalMessages, &m.ScrapeTime)
}

func (l *MetricsList) Scan(row pgmq.Row) error {
	var metrics Metrics
	if err := metrics.Scan(row); err != nil {
		return err
	}
	l.Body = append(l.Body, metrics)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// SELECTOR

func (r MetricsRequest) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	if name, err := QueueName(r.Queue).queueName(); err != nil {
		return "", err
	} else {
		bind.Set("queue", name)
	}

	switch op {
	case pgmq.Get:
		return bind.Query("pgmq.metrics"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported MetricsRequest operation %q", op)
	}
}

func (r MetricsListRequest) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	switch op {
	case pgmq.List:
		return bind.Query("pgmq.metrics-all"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported MetricsListRequest operation %q", op)
	}
}
