package pgmq

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strings"
	"sync"

	// Packages
	pgx "github.com/jackc/pgx/v5"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Bind represents a set of variables and arguments to be used in a query.
// The vars are substituted in the query string itself, while the args are
// passed as arguments to the query.
type Bind struct {
	sync.RWMutex
	vars pgx.NamedArgs
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewBind creates a new Bind object with the given name/value pairs.
// Returns nil if the number of arguments is not even.
func NewBind(pairs ...any) *Bind {
	if len(pairs)%2 != 0 {
		return nil
	}

	// Populate the vars map
	vars := make(pgx.NamedArgs, len(pairs)>>1)
	for i := 0; i < len(pairs); i += 2 {
		if key, ok := pairs[i].(string); !ok || key == "" {
			return nil
		} else {
			vars[key] = pairs[i+1]
		}
	}

	// Return the Bind object
	return &Bind{vars: vars}
}

// Copy creates a copy of the bind object with additional name/value pairs.
func (bind *Bind) Copy(pairs ...any) *Bind {
	if len(pairs)%2 != 0 {
		return nil
	}

	// Lock before copying
	varsCopy := func() pgx.NamedArgs {
		bind.RLock()
		defer bind.RUnlock()
		c := make(pgx.NamedArgs, len(bind.vars)+(len(pairs)>>1))
		maps.Copy(c, bind.vars)
		return c
	}()

	for i := 0; i < len(pairs); i += 2 {
		if key, ok := pairs[i].(string); !ok || key == "" {
			return nil
		} else {
			varsCopy[key] = pairs[i+1]
		}
	}

	// Return the copied Bind object
	return &Bind{vars: varsCopy}
}

// Return a new bind object with one or more sets of named statements
func (bind *Bind) withQueries(queries ...*Queries) *Bind {
	if len(queries) == 0 {
		return bind
	}

	// Make a copy of the bind vars
	varsCopy := make(pgx.NamedArgs, len(bind.vars))
	maps.Copy(varsCopy, bind.vars)

	// Iterate through queries
	for _, q := range queries {
		for _, key := range q.Keys() {
			varsCopy[key] = q.Get(key)
		}
	}

	// Return the copied Bind object
	return &Bind{vars: varsCopy}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (bind *Bind) MarshalJSON() ([]byte, error) {
	return json.Marshal(bind.vars)
}

func (bind *Bind) String() string {
	data, err := json.MarshalIndent(bind.vars, "", "  ")
	if err != nil {
		return err.Error()
	} else {
		return string(data)
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set sets a bind var and returns the parameter name.
func (bind *Bind) Set(key string, value any) string {
	bind.Lock()
	defer bind.Unlock()

	if key == "" {
		return ""
	}
	bind.vars[key] = value
	return "@" + key
}

// Get returns a bind var by key.
func (bind *Bind) Get(key string) any {
	bind.RLock()
	defer bind.RUnlock()
	return bind.vars[key]
}

// Has returns true if there is a bind var with the given key.
func (bind *Bind) Has(key string) bool {
	bind.RLock()
	defer bind.RUnlock()

	_, ok := bind.vars[key]
	return ok
}

// Del deletes a bind var.
func (bind *Bind) Del(key string) {
	bind.Lock()
	defer bind.Unlock()
	delete(bind.vars, key)
}

// Query returns a named statement by key, and tags subsequent execution
// with the key for tracing. Returns an empty string if the statement
// does not exist.
func (bind *Bind) Query(key string) string {
	statement, _ := bind.Get(key).(string)
	bind.Set(TraceSpanNameArg, key)
	return statement
}

// Replace returns a query string with ${substitution} replaced by the values:
//   - ${key} => value
//   - ${'key'} => 'value'
//   - ${"key"} => "value"
//   - ${1} => $1
//   - $$ => $$
func (bind *Bind) Replace(query string) string {
	bind.RLock()
	defer bind.RUnlock()
	return replace(query, bind.vars)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS - QUERY

// Query a single row and return the result
func (bind *Bind) queryRow(ctx context.Context, conn pgx.Tx, query string) pgx.Row {
	bind.RLock()
	defer bind.RUnlock()
	return conn.QueryRow(ctx, replace(query, bind.vars), bind.vars)
}

// Query a set of rows and return the result
func (bind *Bind) query(ctx context.Context, conn pgx.Tx, query string) (pgx.Rows, error) {
	bind.RLock()
	defer bind.RUnlock()
	return conn.Query(ctx, replace(query, bind.vars), bind.vars)
}

// Execute a query without returning rows
func (bind *Bind) exec(ctx context.Context, conn pgx.Tx, query string) error {
	bind.RLock()
	defer bind.RUnlock()
	_, err := conn.Exec(ctx, replace(query, bind.vars), bind.vars)
	return err
}

// Queue a query - for bulk operations
func (bind *Bind) queuerow(batch *pgx.Batch, query string, reader Reader) {
	bind.RLock()
	defer bind.RUnlock()
	queuedquery := batch.Queue(replace(query, bind.vars), bind.vars)
	queuedquery.QueryRow(func(row pgx.Row) error {
		return reader.Scan(row)
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func replace(query string, vars pgx.NamedArgs) string {
	fetch := func(key string) string {
		return fmt.Sprint(vars[key])
	}
	return os.Expand(query, func(key string) string {
		if key == "$" { // $$ => $$
			return "$$"
		}
		if isNumeric(key) {
			return "$" + key // ${1} => $1
		}
		if isSingleQuoted(key) { // ${'key'} => 'value'
			// Special case where value is []string and single quote for IN (${'key'})
			key := strings.Trim(key, "'")
			value := vars[key]
			switch v := value.(type) {
			case []string:
				result := make([]string, len(v))
				for i, s := range v {
					result[i] = Quote(s)
				}
				return strings.Join(result, ",")
			default:
				return Quote(fetch(key))
			}
		}
		if isDoubleQuoted(key) { // ${"key"} => "value"
			return DoubleQuote(fetch(strings.Trim(key, "\"")))
		}
		return fetch(key) // ${key} => value
	})
}
