package schema

import (
	// Packages
	pgmq "github.com/mutablelogic/go-pgmq"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Version is the installed pgmq extension version, read from the catalog.
type Version string

type VersionRequest struct{}

////////////////////////////////////////////////////////////////////////////////
// READER

func (v *Version) Scan(row pgmq.Row) error {
	return row.Scan((*string)(v))
}

////////////////////////////////////////////////////////////////////////////////
// SELECTOR

func (r VersionRequest) Select(bind *pgmq.Bind, op pgmq.Op) (string, error) {
	switch op {
	case pgmq.Get:
		return bind.Query("pgmq.version"), nil
	default:
		return "", pgmq.ErrInternal.Withf("unsupported VersionRequest operation %q", op)
	}
}
