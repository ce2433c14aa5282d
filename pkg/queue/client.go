package queue

import (
	"context"
	"errors"
	"strconv"
	"strings"

	// Packages
	pgmq "github.com/mutablelogic/go-pgmq"
	schema "github.com/mutablelogic/go-pgmq/pkg/queue/schema"
	sql "github.com/mutablelogic/go-pgmq/pkg/queue/sql"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Client translates queue operations into calls against the pgmq extension.
// It holds no state beyond the injected connection; every operation is one
// query invocation.
type Client struct {
	conn pgmq.PoolConn
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client from a connection. The installed extension
// version is verified against the supported contract unless disabled
// with WithoutVersionCheck.
func New(ctx context.Context, conn pgmq.PoolConn, opt ...Opt) (*Client, error) {
	self := new(Client)

	o, err := applyOpts(opt)
	if err != nil {
		return nil, err
	}

	// Parse the named statements
	queries, err := pgmq.NewQueries(strings.NewReader(sql.Queries))
	if err != nil {
		return nil, err
	}

	// Check and set connection
	if conn == nil {
		return nil, pgmq.ErrBadParameter.With("connection is nil")
	} else {
		self.conn = conn.WithQueries(queries).(pgmq.PoolConn)
	}

	// Verify the extension is installed and supported
	if o.versionCheck {
		version, err := self.Version(ctx)
		if err != nil {
			return nil, err
		} else if err := checkVersion(version); err != nil {
			return nil, err
		}
	}

	// Return success
	return self, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (client *Client) Conn() pgmq.PoolConn {
	return client.conn
}

// Version returns the installed pgmq extension version.
func (client *Client) Version(ctx context.Context) (string, error) {
	var version schema.Version
	if err := client.conn.Get(ctx, &version, schema.VersionRequest{}); errors.Is(err, pgmq.ErrNotFound) {
		return "", pgmq.ErrNotFound.With("pgmq extension is not installed")
	} else if err != nil {
		return "", err
	}
	return string(version), nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// The client speaks the namespaced function interface of pgmq 1.x
func checkVersion(version string) error {
	major, _, _ := strings.Cut(version, ".")
	if n, err := strconv.Atoi(major); err != nil {
		return pgmq.ErrUnexpectedResponse.Withf("pgmq version %q", version)
	} else if n < 1 {
		return pgmq.ErrBadParameter.Withf("unsupported pgmq version %q", version)
	}
	return nil
}
