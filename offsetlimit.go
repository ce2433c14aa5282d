package pgmq

import (
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// OffsetLimit is embedded in list requests to paginate results.
type OffsetLimit struct {
	Offset uint64  `json:"offset,omitempty"`
	Limit  *uint64 `json:"limit,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Bind sets the offsetlimit variable for a list query. If no limit is set,
// then the default limit is applied. A zero default means no limit.
func (o OffsetLimit) Bind(bind *Bind, defaultLimit uint64) {
	limit := defaultLimit
	if o.Limit != nil {
		limit = *o.Limit
	}

	var parts []string
	if limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT %d", limit))
	}
	if o.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET %d", o.Offset))
	}
	bind.Set("offsetlimit", strings.Join(parts, " "))
}
