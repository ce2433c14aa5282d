package schema

import (
	"encoding/json"
	"regexp"
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// SchemaName is the PostgreSQL schema owned by the pgmq extension
	SchemaName = "pgmq"

	// QueueNameMaxLen leaves room for the extension's table prefix
	// within the PostgreSQL identifier limit
	QueueNameMaxLen = 47

	// QueueListLimit is the default limit for queue listing
	QueueListLimit = 100

	// DefaultPollTimeout is how long a poll-read blocks server-side
	// before returning an empty result
	DefaultPollTimeout = 5 * time.Second

	// DefaultPollInterval is how often the extension re-checks for
	// visible messages during a poll-read
	DefaultPollInterval = 250 * time.Millisecond
)

var (
	// Queue names are lowercase identifiers, assigned by the caller
	reQueueName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
