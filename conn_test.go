package pgmq

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	// Packages
	pgx "github.com/jackc/pgx/v5"
	pgconn "github.com/jackc/pgx/v5/pgconn"
	assert "github.com/stretchr/testify/assert"
)

////////////////////////////////////////////////////////////////////////////////
// FAKES

// capturingTx records the named arguments each statement was executed with
type capturingTx struct {
	sync.Mutex
	executed []pgx.NamedArgs
}

func (t *capturingTx) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	t.Lock()
	defer t.Unlock()
	if len(args) > 0 {
		if named, ok := args[0].(pgx.NamedArgs); ok {
			snapshot := make(pgx.NamedArgs, len(named))
			for k, v := range named {
				snapshot[k] = v
			}
			t.executed = append(t.executed, snapshot)
		}
	}
	return pgconn.CommandTag{}, nil
}

func (t *capturingTx) Begin(context.Context) (pgx.Tx, error) { return t, nil }
func (t *capturingTx) Commit(context.Context) error          { return nil }
func (t *capturingTx) Rollback(context.Context) error        { return nil }
func (t *capturingTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *capturingTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (t *capturingTx) LargeObjects() pgx.LargeObjects                         { return pgx.LargeObjects{} }
func (t *capturingTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *capturingTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}
func (t *capturingTx) QueryRow(context.Context, string, ...any) pgx.Row { return nil }
func (t *capturingTx) Conn() *pgx.Conn                                  { return nil }

// sendWriter binds a queue and body, like a message send
type sendWriter struct {
	queue string
	body  string
}

func (w sendWriter) Insert(bind *Bind) (string, error) {
	bind.Set("queue", w.queue)
	bind.Set("body", w.body)
	return "SELECT send(@queue, @body)", nil
}

func (w sendWriter) Update(*Bind) error {
	return ErrNotImplemented
}

////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Conn_001(t *testing.T) {
	assert := assert.New(t)

	// Each operation binds against its own snapshot; the connection's
	// bind never sees operation parameters
	tx := new(capturingTx)
	bind := NewBind()
	assert.NoError(insert(context.TODO(), tx, bind, nil, sendWriter{"alpha", `{"op": "a"}`}))

	assert.False(bind.Has("queue"))
	assert.False(bind.Has("body"))
	assert.Len(tx.executed, 1)
	assert.Equal("alpha", tx.executed[0]["queue"])
	assert.Equal(`{"op": "a"}`, tx.executed[0]["body"])
}

func Test_Conn_002(t *testing.T) {
	assert := assert.New(t)

	// Concurrent operations on one connection each execute with the
	// parameters they bound, never another operation's
	tx := new(capturingTx)
	bind := NewBind()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			queue := fmt.Sprintf("queue_%d", i)
			body := fmt.Sprintf(`{"n": %d}`, i)
			assert.NoError(insert(context.TODO(), tx, bind, nil, sendWriter{queue, body}))
		}(i)
	}
	wg.Wait()

	assert.Len(tx.executed, 50)
	for _, args := range tx.executed {
		queue, _ := args["queue"].(string)
		body, _ := args["body"].(string)
		n := strings.TrimPrefix(queue, "queue_")
		assert.Equal(fmt.Sprintf(`{"n": %s}`, n), body)
	}
}
