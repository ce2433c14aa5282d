package queue_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	queue "github.com/mutablelogic/go-pgmq/pkg/queue"
	schema "github.com/mutablelogic/go-pgmq/pkg/queue/schema"
	assert "github.com/stretchr/testify/assert"
	prometheus "github.com/prometheus/client_golang/prometheus"
)

func Test_Collector_001(t *testing.T) {
	assert := assert.New(t)
	client := newClient(t)
	createQueue(t, client, "test_collector")

	_, err := client.Send(context.TODO(), "test_collector", schema.MessageMeta{Body: json.RawMessage(`{}`)})
	assert.NoError(err)

	registry := prometheus.NewRegistry()
	assert.NoError(registry.Register(queue.NewCollector(client)))

	families, err := registry.Gather()
	assert.NoError(err)

	// Each queue reports its length, labelled by queue name
	var found bool
	for _, family := range families {
		if family.GetName() != "pgmq_queue_length" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "queue" && label.GetValue() == "test_collector" {
					found = true
					assert.Equal(float64(1), metric.GetGauge().GetValue())
				}
			}
		}
	}
	assert.True(found)
}
