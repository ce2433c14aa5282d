package main

import (
	"encoding/json"
	"fmt"
	"time"

	// Packages
	queue "github.com/mutablelogic/go-pgmq/pkg/queue"
	schema "github.com/mutablelogic/go-pgmq/pkg/queue/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type MessageCommands struct {
	Send    SendCommand    `cmd:"" name:"send" help:"Send a message to a queue." group:"MESSAGE"`
	Read    ReadCommand    `cmd:"" name:"read" help:"Read messages, hiding them for the visibility timeout." group:"MESSAGE"`
	Poll    PollCommand    `cmd:"" name:"poll" help:"Read messages, blocking until one arrives." group:"MESSAGE"`
	Pop     PopCommand     `cmd:"" name:"pop" help:"Read and delete the next message." group:"MESSAGE"`
	SetVT   SetVTCommand   `cmd:"" name:"set-vt" help:"Set the visibility timeout of a message." group:"MESSAGE"`
	Archive ArchiveCommand `cmd:"" name:"archive" help:"Move messages to the queue archive." group:"MESSAGE"`
	Delete  DeleteCommand  `cmd:"" name:"delete" help:"Permanently delete messages." group:"MESSAGE"`
}

type SendCommand struct {
	Queue string        `arg:"" name:"queue" help:"Queue name"`
	Body  string        `arg:"" name:"body" help:"Message body, as JSON"`
	Delay time.Duration `name:"delay" help:"Hide the message for a duration after sending"`
}

type ReadCommand struct {
	Queue string        `arg:"" name:"queue" help:"Queue name"`
	VT    time.Duration `name:"vt" default:"30s" help:"Visibility timeout"`
	Count uint64        `name:"count" default:"1" help:"Maximum number of messages"`
}

type PollCommand struct {
	ReadCommand
	Timeout  time.Duration `name:"timeout" help:"Give up after this duration"`
	Interval time.Duration `name:"interval" help:"Server-side polling interval"`
}

type PopCommand struct {
	Queue string `arg:"" name:"queue" help:"Queue name"`
}

type SetVTCommand struct {
	Queue string        `arg:"" name:"queue" help:"Queue name"`
	Id    uint64        `arg:"" name:"id" help:"Message id"`
	VT    time.Duration `name:"vt" help:"New visibility timeout, from now"`
}

type ArchiveCommand struct {
	Queue string   `arg:"" name:"queue" help:"Queue name"`
	Ids   []uint64 `arg:"" name:"ids" help:"Message ids"`
}

type DeleteCommand struct {
	Queue string   `arg:"" name:"queue" help:"Queue name"`
	Ids   []uint64 `arg:"" name:"ids" help:"Message ids"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *SendCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// Send one message
	id, err := client.Send(ctx.ctx, cmd.Queue, schema.MessageMeta{
		Body:  json.RawMessage(cmd.Body),
		Delay: cmd.Delay,
	})
	if err != nil {
		return err
	}

	// Print
	fmt.Println("sent message", id)
	return nil
}

func (cmd *ReadCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// Read messages
	messages, err := client.ReadBatch(ctx.ctx, cmd.Queue, cmd.VT, cmd.Count)
	if err != nil {
		return err
	}

	// Print
	for _, message := range messages {
		fmt.Println(message)
	}
	return nil
}

func (cmd *PollCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// Poll options
	opts := []queue.Opt{}
	if cmd.Timeout > 0 {
		opts = append(opts, queue.WithPollTimeout(cmd.Timeout))
	}
	if cmd.Interval > 0 {
		opts = append(opts, queue.WithPollInterval(cmd.Interval))
	}

	// Read messages, blocking server-side
	messages, err := client.ReadWithPoll(ctx.ctx, cmd.Queue, cmd.VT, cmd.Count, opts...)
	if err != nil {
		return err
	}

	// Print
	for _, message := range messages {
		fmt.Println(message)
	}
	return nil
}

func (cmd *PopCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// Pop one message
	message, err := client.Pop(ctx.ctx, cmd.Queue)
	if err != nil {
		return err
	}
	if message == nil {
		fmt.Println("no messages")
		return nil
	}

	// Print
	fmt.Println(message)
	return nil
}

func (cmd *SetVTCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// Update the visibility timeout
	message, err := client.SetVisibilityTimeout(ctx.ctx, cmd.Queue, cmd.Id, cmd.VT)
	if err != nil {
		return err
	}

	// Print
	fmt.Println(message)
	return nil
}

func (cmd *ArchiveCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// Archive messages
	archived, err := client.Archive(ctx.ctx, cmd.Queue, cmd.Ids...)
	if err != nil {
		return err
	}

	// Print
	fmt.Println("archived messages", archived)
	return nil
}

func (cmd *DeleteCommand) Run(ctx *Globals) error {
	client, closer, err := ctx.Client()
	if err != nil {
		return err
	}
	defer closer()

	// Delete messages
	deleted, err := client.Delete(ctx.ctx, cmd.Queue, cmd.Ids...)
	if err != nil {
		return err
	}

	// Print
	fmt.Println("deleted messages", deleted)
	return nil
}
