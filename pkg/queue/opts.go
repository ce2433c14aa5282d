package queue

import (
	"errors"
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for client and poll-read configuration.
type Opt func(*opts) error

type opts struct {
	versionCheck bool
	pollTimeout  time.Duration
	pollInterval time.Duration
}

////////////////////////////////////////////////////////////////////////////////
// ERRORS

var (
	ErrInvalidPollTimeout  = errors.New("poll timeout must be >= 1s")
	ErrInvalidPollInterval = errors.New("poll interval must be >= 1ms")
)

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithoutVersionCheck disables verification of the installed extension
// version when creating a client.
func WithoutVersionCheck() Opt {
	return func(o *opts) error {
		o.versionCheck = false
		return nil
	}
}

// WithPollTimeout sets how long a poll-read blocks server-side before
// returning an empty result. The connection is held for the full duration.
// Returns ErrInvalidPollTimeout if d < 1s.
func WithPollTimeout(d time.Duration) Opt {
	return func(o *opts) error {
		if d < time.Second {
			return ErrInvalidPollTimeout
		}
		o.pollTimeout = d
		return nil
	}
}

// WithPollInterval sets how often the extension re-checks for visible
// messages during a poll-read. Returns ErrInvalidPollInterval if d < 1ms.
func WithPollInterval(d time.Duration) Opt {
	return func(o *opts) error {
		if d < time.Millisecond {
			return ErrInvalidPollInterval
		}
		o.pollInterval = d
		return nil
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyOpts(opt []Opt) (opts, error) {
	// Set defaults
	o := opts{
		versionCheck: true,
	}

	// Apply options
	for _, fn := range opt {
		if err := fn(&o); err != nil {
			return opts{}, err
		}
	}

	// Return success
	return o, nil
}
