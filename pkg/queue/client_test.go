package queue_test

import (
	"context"
	"errors"
	"testing"

	// Packages
	pgmq "github.com/mutablelogic/go-pgmq"
	queue "github.com/mutablelogic/go-pgmq/pkg/queue"
	test "github.com/mutablelogic/go-pgmq/pkg/test"
	assert "github.com/stretchr/testify/assert"
)

// Global connection variable
var conn test.Conn

// Connect to the test database
func TestMain(m *testing.M) {
	test.Main(m, &conn)
}

// Return a client, or skip the test when the extension is not installed
func newClient(t *testing.T) *queue.Client {
	t.Helper()
	conn := conn.Begin(t)
	client, err := queue.New(context.TODO(), conn)
	if errors.Is(err, pgmq.ErrNotFound) || errors.Is(err, pgmq.ErrBadParameter) {
		t.Skip("pgmq extension not available:", err)
	}
	if err != nil {
		t.Fatal(err)
	}
	return client
}

////////////////////////////////////////////////////////////////////////////////
// CLIENT LIFECYCLE TESTS

func Test_Client_001(t *testing.T) {
	assert := assert.New(t)

	t.Run("NilConnection", func(t *testing.T) {
		_, err := queue.New(context.TODO(), nil)
		assert.Error(err)
		assert.ErrorIs(err, pgmq.ErrBadParameter)
	})

	t.Run("ValidConnection", func(t *testing.T) {
		client := newClient(t)
		assert.NotNil(client)
		assert.NotNil(client.Conn())
	})

	t.Run("Version", func(t *testing.T) {
		client := newClient(t)
		version, err := client.Version(context.TODO())
		assert.NoError(err)
		assert.NotEmpty(version)
	})

	t.Run("WithoutVersionCheck", func(t *testing.T) {
		conn := conn.Begin(t)
		client, err := queue.New(context.TODO(), conn, queue.WithoutVersionCheck())
		assert.NoError(err)
		assert.NotNil(client)
	})
}

////////////////////////////////////////////////////////////////////////////////
// OPTION TESTS

func Test_Opts_001(t *testing.T) {
	assert := assert.New(t)

	t.Run("InvalidPollTimeout", func(t *testing.T) {
		client := newClient(t)
		_, err := client.ReadWithPoll(context.TODO(), "emails", 0, 1, queue.WithPollTimeout(0))
		assert.ErrorIs(err, queue.ErrInvalidPollTimeout)
	})

	t.Run("InvalidPollInterval", func(t *testing.T) {
		client := newClient(t)
		_, err := client.ReadWithPoll(context.TODO(), "emails", 0, 1, queue.WithPollInterval(0))
		assert.ErrorIs(err, queue.ErrInvalidPollInterval)
	})
}
