package queue

import (
	"context"
	"time"

	// Packages
	prometheus "github.com/prometheus/client_golang/prometheus"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Collector exposes a metrics snapshot for every queue as prometheus
// gauges, labelled by queue name. Each scrape performs one round trip
// to the database.
type Collector struct {
	client  *Client
	timeout time.Duration

	queueLength   *prometheus.Desc
	newestMsgAge  *prometheus.Desc
	oldestMsgAge  *prometheus.Desc
	totalMessages *prometheus.Desc
}

// Ensure interfaces are satisfied
var _ prometheus.Collector = (*Collector)(nil)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	collectorNamespace = "pgmq"
	collectorTimeout   = 10 * time.Second
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCollector returns a prometheus collector over the client.
func NewCollector(client *Client) *Collector {
	labels := []string{"queue"}
	return &Collector{
		client:  client,
		timeout: collectorTimeout,
		queueLength: prometheus.NewDesc(
			prometheus.BuildFQName(collectorNamespace, "", "queue_length"),
			"Number of messages currently in the queue", labels, nil,
		),
		newestMsgAge: prometheus.NewDesc(
			prometheus.BuildFQName(collectorNamespace, "", "newest_msg_age_seconds"),
			"Age of the newest message in the queue", labels, nil,
		),
		oldestMsgAge: prometheus.NewDesc(
			prometheus.BuildFQName(collectorNamespace, "", "oldest_msg_age_seconds"),
			"Age of the oldest message in the queue", labels, nil,
		),
		totalMessages: prometheus.NewDesc(
			prometheus.BuildFQName(collectorNamespace, "", "total_messages"),
			"Messages sent to the queue over its lifetime", labels, nil,
		),
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.queueLength
	ch <- c.newestMsgAge
	ch <- c.oldestMsgAge
	ch <- c.totalMessages
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	metrics, err := c.client.MetricsAll(ctx)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.queueLength, err)
		return
	}

	for _, m := range metrics {
		ch <- prometheus.MustNewConstMetric(c.queueLength, prometheus.GaugeValue, float64(m.QueueLength), m.Queue)
		ch <- prometheus.MustNewConstMetric(c.totalMessages, prometheus.GaugeValue, float64(m.TotalMessages), m.Queue)
		if m.NewestMsgAgeSec != nil {
			ch <- prometheus.MustNewConstMetric(c.newestMsgAge, prometheus.GaugeValue, float64(*m.NewestMsgAgeSec), m.Queue)
		}
		if m.OldestMsgAgeSec != nil {
			ch <- prometheus.MustNewConstMetric(c.oldestMsgAge, prometheus.GaugeValue, float64(*m.OldestMsgAgeSec), m.Queue)
		}
	}
}
