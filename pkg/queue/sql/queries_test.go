package sql_test

import (
	"strings"
	"testing"

	// Packages
	pgmq "github.com/mutablelogic/go-pgmq"
	sql "github.com/mutablelogic/go-pgmq/pkg/queue/sql"
	assert "github.com/stretchr/testify/assert"
)

func Test_Queries_001(t *testing.T) {
	assert := assert.New(t)

	queries, err := pgmq.NewQueries(strings.NewReader(sql.Queries))
	assert.NoError(err)
	assert.NotNil(queries)

	// Every statement the client executes must be present
	for _, key := range []string{
		"pgmq.create",
		"pgmq.create-unlogged",
		"pgmq.create-partitioned",
		"pgmq.drop",
		"pgmq.list",
		"pgmq.send",
		"pgmq.send-batch",
		"pgmq.read",
		"pgmq.read-poll",
		"pgmq.pop",
		"pgmq.set-vt",
		"pgmq.archive",
		"pgmq.delete",
		"pgmq.metrics",
		"pgmq.metrics-all",
		"pgmq.version",
		"pgmq.archive-count",
	} {
		assert.NotEmpty(queries.Get(key), "missing statement %q", key)
	}
}

func Test_Queries_002(t *testing.T) {
	assert := assert.New(t)

	queries, err := pgmq.NewQueries(strings.NewReader(sql.Queries))
	assert.NoError(err)

	// Statements pass values as named arguments, never by substitution,
	// with the archive count table name as the one exception
	for _, key := range queries.Keys() {
		statement := queries.Get(key)
		if key == "pgmq.archive-count" {
			assert.Contains(statement, `${"archive_table"}`)
			continue
		}
		assert.NotContains(statement, "$", "statement %q contains a substitution", key)
	}
}
