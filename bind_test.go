package pgmq_test

import (
	"testing"

	// Packages
	"github.com/mutablelogic/go-pgmq"
	"github.com/stretchr/testify/assert"
)

func Test_Bind_001(t *testing.T) {
	assert := assert.New(t)

	t.Run("1", func(t *testing.T) {
		bind := pgmq.NewBind("a", "b")
		assert.NotNil(bind)
		assert.True(bind.Has("a"))
		assert.Equal("b", bind.Get("a"))
	})

	t.Run("2", func(t *testing.T) {
		bind := pgmq.NewBind("a", "b", "c")
		assert.Nil(bind)
	})

	t.Run("3", func(t *testing.T) {
		bind := pgmq.NewBind("a", 100)
		assert.NotNil(bind)
		assert.True(bind.Has("a"))
		assert.Equal(100, bind.Get("a"))
	})

	t.Run("4", func(t *testing.T) {
		bind := pgmq.NewBind()
		assert.NotNil(bind)
		assert.Equal("@a", bind.Set("a", "b"))
		assert.True(bind.Has("a"))
		assert.Equal("b", bind.Get("a"))
	})

	t.Run("5", func(t *testing.T) {
		bind := pgmq.NewBind("", "b")
		assert.Nil(bind)
	})

	t.Run("6", func(t *testing.T) {
		bind := pgmq.NewBind()
		assert.NotNil(bind)
		assert.Equal("", bind.Set("", "b"))
	})
}

func Test_Bind_002(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		In  string
		Out string
	}{
		{In: `$queue`, Out: "queue"},
		{In: `${'queue'}`, Out: "'queue'"},
		{In: `${"queue"}`, Out: `"queue"`},
		{In: `$1`, Out: `$1`},
		{In: `${1}`, Out: `$1`},
		{In: `$$`, Out: `$$`},
		{In: `${'single'}`, Out: `'''single'''`},
		{In: `${"single"}`, Out: `"'single'"`},
		{In: `${'double'}`, Out: `'"double"'`},
		{In: `${"double"}`, Out: `"""double"""`},
	}

	bind := pgmq.NewBind(
		"queue", "queue",
		"single", "'single'",
		"double", "\"double\"",
	)

	for _, test := range tests {
		t.Run(test.In, func(t *testing.T) {
			assert.Equal(test.Out, bind.Replace(test.In))
		})
	}
}

func Test_Bind_003(t *testing.T) {
	assert := assert.New(t)

	bind := pgmq.NewBind(
		"list", []string{"a", "b", "c"},
	)
	assert.Equal("IN ('a','b','c')", bind.Replace("IN (${'list'})"))
}

func Test_Bind_004(t *testing.T) {
	assert := assert.New(t)

	// The Query method resolves a named statement and tags the span name
	bind := pgmq.NewBind("pgmq.pop", `SELECT * FROM "pgmq".pop(@queue)`)
	sql := bind.Query("pgmq.pop")
	assert.Equal(`SELECT * FROM "pgmq".pop(@queue)`, sql)
	assert.Equal("pgmq.pop", bind.Get(pgmq.TraceSpanNameArg))
}
