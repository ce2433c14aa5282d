package main

import (
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-pgmq/pkg/queue/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type QueueCommands struct {
	ListQueues  ListQueuesCommand  `cmd:"" name:"queues" help:"List queues." group:"QUEUE"`
	CreateQueue CreateQueueCommand `cmd:"" name:"create-queue" help:"Create queue." group:"QUEUE"`
	DropQueue   DropQueueCommand   `cmd:"" name:"drop-queue" help:"Drop queue and its archive." group:"QUEUE"`
	Metrics     MetricsCommand     `cmd:"" name:"metrics" help:"Show queue metrics." group:"QUEUE"`
}

type ListQueuesCommand struct {
	Offset uint64  `name:"offset" help:"Offset for pagination"`
	Limit  *uint64 `name:"limit" help:"Limit for pagination"`
}

type CreateQueueCommand struct {
	schema.QueueMeta
}

type DropQueueCommand struct {
	Name string `arg:"" name:"name" help:"Queue name"`
}

type MetricsCommand struct {
	Name string `arg:"" optional:"" name:"name" help:"Queue name, or all queues when omitted"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListQueuesCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// List queues
	request := schema.QueueListRequest{}
	request.Offset = cmd.Offset
	request.Limit = cmd.Limit
	queues, err := client.ListQueues(ctx.ctx, request)
	if err != nil {
		return err
	}

	// Print
	fmt.Println(queues)
	return nil
}

func (cmd *CreateQueueCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// Create queue
	if err := client.CreateQueue(ctx.ctx, cmd.QueueMeta); err != nil {
		return err
	}

	// Print
	fmt.Println("created queue", cmd.QueueMeta.Queue)
	return nil
}

func (cmd *DropQueueCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// Drop queue
	if err := client.DropQueue(ctx.ctx, cmd.Name); err != nil {
		return err
	}

	// Print
	fmt.Println("dropped queue", cmd.Name)
	return nil
}

func (cmd *MetricsCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// One queue, or all queues
	if cmd.Name != "" {
		metrics, err := client.Metrics(ctx.ctx, cmd.Name)
		if err != nil {
			return err
		}
		fmt.Println(metrics)
		return nil
	}

	metrics, err := client.MetricsAll(ctx.ctx)
	if err != nil {
		return err
	}
	for _, m := range metrics {
		fmt.Println(m)
	}
	return nil
}
