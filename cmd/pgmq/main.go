package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	// Packages
	kong "github.com/alecthomas/kong"
	pgmq "github.com/mutablelogic/go-pgmq"
	queue "github.com/mutablelogic/go-pgmq/pkg/queue"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debug option
	Debug   bool             `name:"debug" help:"Enable query logging"`
	Version kong.VersionFlag `name:"version" help:"Print version and exit"`

	// Database connection options
	PG struct {
		URL      string `name:"url" env:"PGMQ_URL" help:"Connection URL, overrides other connection flags"`
		Host     string `name:"host" env:"PGHOST" default:"localhost" help:"Database host"`
		Port     uint16 `name:"port" env:"PGPORT" default:"5432" help:"Database port"`
		Database string `name:"database" env:"PGDATABASE" default:"postgres" help:"Database name"`
		User     string `name:"user" env:"PGUSER" default:"postgres" help:"Database user"`
		Password string `name:"password" env:"PGPASSWORD" help:"Database password"`
		SSLMode  string `name:"sslmode" env:"PGSSLMODE" help:"Connection SSL mode"`
	} `embed:"" prefix:"pg."`

	// Private fields
	ctx context.Context
}

type CLI struct {
	Globals
	QueueCommands
	MessageCommands
	ServerCommands
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func main() {
	cli := new(CLI)
	ctx := kong.Parse(cli,
		kong.Name("pgmq"),
		kong.Description("pgmq command line interface"),
		kong.Vars{
			"version": VersionJSON(),
		},
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	// Create the context and cancel function
	var cancel context.CancelFunc
	cli.Globals.ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Call the Run() method of the selected parsed command.
	if err := ctx.Run(&cli.Globals); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Client connects to the database and returns a queue client. Call the
// returned function to release the connection pool.
func (g *Globals) Client() (*queue.Client, func(), error) {
	opts := []pgmq.Opt{}
	if g.PG.URL != "" {
		opts = append(opts, pgmq.WithURL(g.PG.URL))
	} else {
		opts = append(opts,
			pgmq.WithHostPort(g.PG.Host, strconv.Itoa(int(g.PG.Port))),
			pgmq.WithCredentials(g.PG.User, g.PG.Password),
			pgmq.WithDatabase(g.PG.Database),
		)
		if g.PG.SSLMode != "" {
			opts = append(opts, pgmq.WithSSLMode(g.PG.SSLMode))
		}
	}
	if g.Debug {
		opts = append(opts, pgmq.WithTrace(func(_ context.Context, query string, args any, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "QUERY %q <= %v (error: %v)\n", query, args, err)
			} else {
				fmt.Fprintf(os.Stderr, "QUERY %q <= %v\n", query, args)
			}
		}))
	}

	pool, err := pgmq.NewPool(g.ctx, opts...)
	if err != nil {
		return nil, nil, err
	}

	client, err := queue.New(g.ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	return client, pool.Close, nil
}
