/*
Package queue provides a client for the PGMQ message queue extension for
PostgreSQL, with visibility timeouts, batch operations, server-side
polling reads and per-queue metrics.

# Client

Create a client from a connection pool. The client verifies that a
compatible version of the extension is installed:

	pool, err := pgmq.NewPool(ctx, pgmq.WithHostPort("localhost", "5432"))
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	client, err := queue.New(ctx, pool)
	if err != nil {
		panic(err)
	}

# Queues

Create, list and drop queues:

	err := client.CreateQueue(ctx, schema.QueueMeta{
		Queue: "emails",
	})

	list, err := client.ListQueues(ctx, schema.QueueListRequest{})

	err = client.DropQueue(ctx, "emails")

# Messages

Send and consume messages. A read hides the message from other readers
for the visibility timeout; the message becomes visible again unless it
is archived or deleted first:

	// Send a message, optionally delayed
	id, err := client.Send(ctx, "emails", schema.MessageMeta{
		Body:  json.RawMessage(`{"to": "user@example.com"}`),
		Delay: time.Minute,
	})

	// Read the next message, hidden for 30 seconds
	message, err := client.Read(ctx, "emails", 30*time.Second)

	// Block server-side until a message arrives
	messages, err := client.ReadWithPoll(ctx, "emails", 30*time.Second, 1,
		queue.WithPollTimeout(10*time.Second),
	)

	// Archive after successful processing
	archived, err := client.ArchiveMessages(ctx, "emails", messages)

# Metrics

Inspect queue depth and message ages, or register a prometheus collector
which snapshots every queue on scrape:

	metrics, err := client.Metrics(ctx, "emails")

	prometheus.MustRegister(queue.NewCollector(client))

# Subpackages

  - schema: Data types, request/response structures and result readers
  - sql: Named statements for the extension's SQL API
*/
package queue
