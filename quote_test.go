package pgmq_test

import (
	"testing"

	// Packages
	"github.com/mutablelogic/go-pgmq"
	"github.com/stretchr/testify/assert"
)

func Test_Quote_001(t *testing.T) {
	assert := assert.New(t)

	t.Run("Quote", func(t *testing.T) {
		assert.Equal(`'a'`, pgmq.Quote("a"))
		assert.Equal(`''`, pgmq.Quote(""))
		assert.Equal(`'it''s'`, pgmq.Quote("it's"))
		assert.Equal(`'''; DROP TABLE x; --'`, pgmq.Quote(`'; DROP TABLE x; --`))
	})

	t.Run("DoubleQuote", func(t *testing.T) {
		assert.Equal(`"a"`, pgmq.DoubleQuote("a"))
		assert.Equal(`""`, pgmq.DoubleQuote(""))
		assert.Equal(`"a""b"`, pgmq.DoubleQuote(`a"b`))
	})
}

func Test_Errors_001(t *testing.T) {
	assert := assert.New(t)

	t.Run("Sentinel", func(t *testing.T) {
		assert.Equal("not found", pgmq.ErrNotFound.Error())
		assert.Equal("bad parameter", pgmq.ErrBadParameter.Error())
	})

	t.Run("With", func(t *testing.T) {
		err := pgmq.ErrBadParameter.With("missing queue name")
		assert.ErrorIs(err, pgmq.ErrBadParameter)
		assert.Equal("bad parameter: missing queue name", err.Error())
	})

	t.Run("Withf", func(t *testing.T) {
		err := pgmq.ErrNotFound.Withf("queue %q", "emails")
		assert.ErrorIs(err, pgmq.ErrNotFound)
		assert.Equal(`not found: queue "emails"`, err.Error())
	})
}
