package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/qrfeedback/internal/client/iocli"
	"github.com/iudanet/qrfeedback/internal/client/outbox"
	"github.com/iudanet/qrfeedback/internal/client/storage"
	"github.com/iudanet/qrfeedback/pkg/api"
)

// ErrUnknownCommand возвращается Run для неизвестной команды
var ErrUnknownCommand = errors.New("unknown command")

// ServerAPI методы сервера, нужные командам
type ServerAPI interface {
	Health(ctx context.Context) error
	ListAreas(ctx context.Context) (*api.ListAreasResponse, error)
}

// OutboxService очередь неотправленных отзывов
type OutboxService interface {
	Enqueue(ctx context.Context, slug string, req api.SubmitFeedbackRequest) (*storage.PendingFeedback, error)
	Pending(ctx context.Context) ([]*storage.PendingFeedback, error)
	LastSync(ctx context.Context) (time.Time, error)
	Flush(ctx context.Context) (*outbox.FlushResult, error)
}

type Cli struct {
	io     iocli.IO
	server ServerAPI
	outbox OutboxService
}

func New(io iocli.IO, server ServerAPI, outbox OutboxService) *Cli {
	return &Cli{
		io:     io,
		server: server,
		outbox: outbox,
	}
}

// Run выполняет команду args[0] с аргументами args[1:]
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("no command given")
	}

	command, rest := args[0], args[1:]
	switch command {
	case "mask":
		return c.runMask(rest)
	case "strip":
		return c.runStrip(rest)
	case "validate":
		return c.runValidate(rest)
	case "areas":
		return c.runAreas(ctx)
	case "submit":
		return c.runSubmit(ctx, rest)
	case "outbox":
		return c.runOutbox(ctx)
	case "sync":
		return c.runSync(ctx)
	case "status":
		return c.runStatus(ctx)
	case "help":
		c.PrintUsage()
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// IsOffline сообщает, может ли команда работать без сервера и локальной БД
func IsOffline(command string) bool {
	switch command {
	case "mask", "strip", "validate", "help":
		return true
	}
	return false
}

func (c *Cli) PrintUsage() {
	c.io.Println("QR Feedback Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  qrfeedback [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version                    Show version information")
	c.io.Println("  --server URL                 Server URL (default: http://localhost:8080, env QRFEEDBACK_SERVER)")
	c.io.Println("  --db PATH                    Path to local outbox database (default: qrfeedback-client.db)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  mask <value>            Format a phone number as (DD) NNNNN-NNNN")
	c.io.Println("  strip <value>           Print only the digits of a phone number")
	c.io.Println("  validate <value>        Check that a phone number has 10 or 11 digits")
	c.io.Println("  areas                   List feedback areas")
	c.io.Println("  submit <slug>           Leave feedback for an area")
	c.io.Println("  outbox                  Show feedback waiting to be delivered")
	c.io.Println("  sync                    Deliver pending feedback to the server")
	c.io.Println("  status                  Show server availability and outbox size")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  qrfeedback mask 11987654321")
	c.io.Println("  qrfeedback validate '(11) 3333-4444'")
	c.io.Println("  qrfeedback --server https://feedback.example.com submit front-desk")
}
