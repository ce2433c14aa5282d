// Package sql contains the named statements which form the wire contract
// with the pgmq extension. The function names and parameter order are those
// of the namespaced pgmq interface (extension version 1.0 and later); the
// unprefixed pre-1.0 naming scheme is not supported.
package sql

const Queries = `
-- pgmq.create
SELECT pgmq.create(@queue)

-- pgmq.create-unlogged
SELECT pgmq.create_unlogged(@queue)

-- pgmq.create-partitioned
SELECT pgmq.create_partitioned(@queue, @partition_interval, @retention_interval)

-- pgmq.drop
SELECT pgmq.drop_queue(@queue)

-- pgmq.list
SELECT "queue_name", "is_partitioned", "is_unlogged", "created_at" FROM pgmq.list_queues() ORDER BY "queue_name"

-- pgmq.send
SELECT * FROM pgmq.send(@queue, @body::jsonb, @delay)

-- pgmq.send-batch
SELECT * FROM pgmq.send_batch(@queue, @bodies::jsonb[], @delay)

-- pgmq.read
SELECT "msg_id", "read_ct", "enqueued_at", "vt", "message" FROM pgmq.read(@queue, @vt, @qty)

-- pgmq.read-poll
SELECT "msg_id", "read_ct", "enqueued_at", "vt", "message" FROM pgmq.read_with_poll(@queue, @vt, @qty, @max_poll_seconds, @poll_interval_ms)

-- pgmq.pop
SELECT "msg_id", "read_ct", "enqueued_at", "vt", "message" FROM pgmq.pop(@queue)

-- pgmq.set-vt
SELECT "msg_id", "read_ct", "enqueued_at", "vt", "message" FROM pgmq.set_vt(@queue, @id, @vt)

-- pgmq.archive
SELECT * FROM pgmq.archive(@queue, @ids)

-- pgmq.delete
SELECT * FROM pgmq.delete(@queue, @ids)

-- pgmq.metrics
SELECT "queue_name", "queue_length", "newest_msg_age_sec", "oldest_msg_age_sec", "total_messages", "scrape_time" FROM pgmq.metrics(@queue)

-- pgmq.metrics-all
SELECT "queue_name", "queue_length", "newest_msg_age_sec", "oldest_msg_age_sec", "total_messages", "scrape_time" FROM pgmq.metrics_all()

-- pgmq.version
SELECT "extversion" FROM "pg_catalog"."pg_extension" WHERE "extname" = 'pgmq'

-- pgmq.archive-count
SELECT COUNT(*) AS "count" FROM "pgmq".${"archive_table"}
`
