package schema_test

import (
	"strings"
	"testing"

	// Packages
	pgmq "github.com/mutablelogic/go-pgmq"
	schema "github.com/mutablelogic/go-pgmq/pkg/queue/schema"
	sql "github.com/mutablelogic/go-pgmq/pkg/queue/sql"
	assert "github.com/stretchr/testify/assert"
)

// Return a bind preloaded with the named statements
func newBind(t *testing.T) *pgmq.Bind {
	t.Helper()
	queries, err := pgmq.NewQueries(strings.NewReader(sql.Queries))
	if err != nil {
		t.Fatal(err)
	}
	bind := pgmq.NewBind()
	for _, key := range queries.Keys() {
		bind.Set(key, queries.Get(key))
	}
	return bind
}

////////////////////////////////////////////////////////////////////////////////
// QUEUE NAME TESTS

func Test_QueueName_001(t *testing.T) {
	assert := assert.New(t)

	t.Run("Valid", func(t *testing.T) {
		for _, name := range []string{"q", "emails", "email_queue_2", "a_b_c"} {
			bind := newBind(t)
			statement, err := schema.QueueName(name).Select(bind, pgmq.Delete)
			assert.NoError(err)
			assert.NotEmpty(statement)
			assert.Equal(name, bind.Get("queue"))
		}
	})

	t.Run("Normalized", func(t *testing.T) {
		bind := newBind(t)
		_, err := schema.QueueName("  Emails ").Select(bind, pgmq.Delete)
		assert.NoError(err)
		assert.Equal("emails", bind.Get("queue"))
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, name := range []string{
			"",
			" ",
			"9queue",
			"_queue",
			"queue-name",
			"queue name",
			`queue"; DROP TABLE users; --`,
			strings.Repeat("q", 48),
		} {
			bind := newBind(t)
			_, err := schema.QueueName(name).Select(bind, pgmq.Delete)
			assert.Error(err, "expected error for %q", name)
			assert.ErrorIs(err, pgmq.ErrBadParameter)
		}
	})

	t.Run("MaxLength", func(t *testing.T) {
		bind := newBind(t)
		_, err := schema.QueueName(strings.Repeat("q", 47)).Select(bind, pgmq.Delete)
		assert.NoError(err)
	})

	t.Run("UnsupportedOp", func(t *testing.T) {
		bind := newBind(t)
		_, err := schema.QueueName("emails").Select(bind, pgmq.Insert)
		assert.Error(err)
	})
}

////////////////////////////////////////////////////////////////////////////////
// QUEUE META TESTS

func Test_QueueMeta_001(t *testing.T) {
	assert := assert.New(t)

	t.Run("Plain", func(t *testing.T) {
		bind := newBind(t)
		statement, err := schema.QueueMeta{Queue: "emails"}.Insert(bind)
		assert.NoError(err)
		assert.Contains(statement, "pgmq.create(")
	})

	t.Run("Unlogged", func(t *testing.T) {
		bind := newBind(t)
		statement, err := schema.QueueMeta{Queue: "emails", Unlogged: true}.Insert(bind)
		assert.NoError(err)
		assert.Contains(statement, "pgmq.create_unlogged(")
	})

	t.Run("Partitioned", func(t *testing.T) {
		bind := newBind(t)
		statement, err := schema.QueueMeta{
			Queue:             "emails",
			Partitioned:       true,
			PartitionInterval: "10000",
			RetentionInterval: "100000",
		}.Insert(bind)
		assert.NoError(err)
		assert.Contains(statement, "pgmq.create_partitioned(")
		assert.Equal("10000", bind.Get("partition_interval"))
		assert.Equal("100000", bind.Get("retention_interval"))
	})

	t.Run("UnloggedAndPartitioned", func(t *testing.T) {
		bind := newBind(t)
		_, err := schema.QueueMeta{Queue: "emails", Unlogged: true, Partitioned: true}.Insert(bind)
		assert.ErrorIs(err, pgmq.ErrBadParameter)
	})

	t.Run("PartitionedWithoutIntervals", func(t *testing.T) {
		bind := newBind(t)
		_, err := schema.QueueMeta{Queue: "emails", Partitioned: true}.Insert(bind)
		assert.ErrorIs(err, pgmq.ErrBadParameter)
	})

	t.Run("IntervalsWithoutPartitioned", func(t *testing.T) {
		bind := newBind(t)
		_, err := schema.QueueMeta{Queue: "emails", PartitionInterval: "10000"}.Insert(bind)
		assert.ErrorIs(err, pgmq.ErrBadParameter)
	})

	t.Run("Update", func(t *testing.T) {
		bind := newBind(t)
		err := schema.QueueMeta{Queue: "emails"}.Update(bind)
		assert.ErrorIs(err, pgmq.ErrNotImplemented)
	})
}

////////////////////////////////////////////////////////////////////////////////
// ARCHIVE COUNT TESTS

func Test_ArchiveCount_001(t *testing.T) {
	assert := assert.New(t)

	t.Run("TableName", func(t *testing.T) {
		bind := newBind(t)
		statement, err := schema.ArchiveCountRequest{Queue: "emails"}.Select(bind, pgmq.Get)
		assert.NoError(err)
		assert.Equal("a_emails", bind.Get("archive_table"))
		assert.Equal(`SELECT COUNT(*) AS "count" FROM "pgmq"."a_emails"`, bind.Replace(statement))
	})

	t.Run("InvalidName", func(t *testing.T) {
		bind := newBind(t)
		_, err := schema.ArchiveCountRequest{Queue: "not a queue"}.Select(bind, pgmq.Get)
		assert.ErrorIs(err, pgmq.ErrBadParameter)
	})
}
