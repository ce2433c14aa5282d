package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	// Packages
	prometheus "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"

	queue "github.com/mutablelogic/go-pgmq/pkg/queue"
	version "github.com/mutablelogic/go-pgmq/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCommands struct {
	Exporter ExporterCommand `cmd:"" name:"exporter" help:"Serve queue metrics for prometheus." group:"SERVER"`
}

type ExporterCommand struct {
	Addr string `name:"addr" env:"PGMQ_EXPORTER_ADDR" default:":9187" help:"Listen address"`
	Path string `name:"path" default:"/metrics" help:"Metrics path"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ExporterCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// Register the collector
	registry := prometheus.NewRegistry()
	if err := registry.Register(queue.NewCollector(client)); err != nil {
		return err
	}

	// Create the HTTP server
	router := http.NewServeMux()
	router.Handle(cmd.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:    cmd.Addr,
		Handler: router,
	}

	// Shut down when the context is cancelled
	errs := make(chan error, 1)
	go func() {
		<-ctx.ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errs <- server.Shutdown(shutdown)
	}()

	// Serve until interrupted
	fmt.Println(version.ExecName(), version.Version())
	fmt.Println("...listening on", cmd.Addr+cmd.Path)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-errs
}
