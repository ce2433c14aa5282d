package pgmq

import (
	"context"

	// Packages
	pgx "github.com/jackc/pgx/v5"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type bulkconn struct {
	conn  pgx.Tx
	batch pgx.Batch
	bind  *Bind
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return a new connection with bound parameters
func (conn *bulkconn) With(params ...any) Conn {
	return &bulkconn{conn.conn, conn.batch, conn.bind.Copy(params...)}
}

// Return a new connection with bound named statements
func (conn *bulkconn) WithQueries(queries ...*Queries) Conn {
	return &bulkconn{conn.conn, conn.batch, conn.bind.withQueries(queries...)}
}

// Perform a transaction within a function
func (conn *bulkconn) Tx(context.Context, func(Conn) error) error {
	return ErrNotImplemented
}

// Perform a bulk operation within a function
func (conn *bulkconn) Bulk(context.Context, func(Conn) error) error {
	return ErrNotImplemented
}

// Execute a query
func (conn *bulkconn) Exec(context.Context, string) error {
	return ErrNotImplemented
}

// Queue an insert into the batch
func (conn *bulkconn) Insert(ctx context.Context, reader Reader, writer Writer) error {
	if query, err := writer.Insert(conn.bind); err != nil {
		return err
	} else {
		conn.bind.Copy().queuerow(&conn.batch, query, reader)
	}
	return nil
}

// Perform an update
func (conn *bulkconn) Update(context.Context, Reader, Selector, Writer) error {
	return ErrNotImplemented
}

// Perform a delete
func (conn *bulkconn) Delete(context.Context, Reader, Selector) error {
	return ErrNotImplemented
}

// Perform a get
func (conn *bulkconn) Get(context.Context, Reader, Selector) error {
	return ErrNotImplemented
}

// Perform a list
func (conn *bulkconn) List(context.Context, Reader, Selector) error {
	return ErrNotImplemented
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func bulk(ctx context.Context, tx pgx.Tx, bind *Bind, fn func(Conn) error) error {
	// Queue against a snapshot of the bind, as tx() does
	tx_ := new(bulkconn)
	tx_.conn = tx
	tx_.bind = bind.Copy()
	if err := fn(tx_); err != nil {
		return pgerror(err)
	}

	// Send the batch
	return pgerror(tx_.conn.SendBatch(ctx, &tx_.batch).Close())
}
