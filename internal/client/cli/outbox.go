package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/qrfeedback/internal/client/outbox"
	"github.com/iudanet/qrfeedback/internal/phonemask"
)

func (c *Cli) runOutbox(ctx context.Context) error {
	items, err := c.outbox.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to read outbox: %w", err)
	}

	lastSync, err := c.outbox.LastSync(ctx)
	if err != nil {
		return fmt.Errorf("failed to read last sync time: %w", err)
	}
	if lastSync.IsZero() {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s\n", lastSync.Local().Format("2006-01-02 15:04:05"))
	}

	if len(items) == 0 {
		c.io.Println("Outbox is empty.")
		return nil
	}

	c.io.Printf("=== Pending feedback (%d) ===\n", len(items))
	for _, item := range items {
		c.io.Println()
		c.io.Printf("  ID:       %s\n", item.ID)
		c.io.Printf("  Area:     %s\n", item.AreaSlug)
		c.io.Printf("  Rating:   %d\n", item.Request.Rating)
		if item.Request.Phone != "" {
			c.io.Printf("  Phone:    %s\n", phonemask.ApplyMask(item.Request.Phone))
		}
		c.io.Printf("  Created:  %s\n", item.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		if item.Attempts > 0 {
			c.io.Printf("  Attempts: %d (last error: %s)\n", item.Attempts, item.LastError)
		}
	}
	return nil
}

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	if err := c.server.Health(ctx); err != nil {
		return fmt.Errorf("server unavailable: %w", err)
	}

	result, err := c.outbox.Flush(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.printFlushResult(result)
	if result.Failed > 0 {
		return fmt.Errorf("%d feedback item(s) could not be delivered", result.Failed)
	}
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	if err := c.server.Health(ctx); err != nil {
		c.io.Printf("Server:    ✗ unavailable (%v)\n", err)
	} else {
		c.io.Println("Server:    ✓ online")
	}

	items, err := c.outbox.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to read outbox: %w", err)
	}
	c.io.Printf("Pending:   %d\n", len(items))

	lastSync, err := c.outbox.LastSync(ctx)
	if err != nil {
		return fmt.Errorf("failed to read last sync time: %w", err)
	}
	if lastSync.IsZero() {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s\n", lastSync.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (c *Cli) printFlushResult(result *outbox.FlushResult) {
	if result.Sent > 0 {
		c.io.Printf("✓ Delivered: %d\n", result.Sent)
	}
	if result.Dropped > 0 {
		c.io.Printf("✗ Rejected by server: %d\n", result.Dropped)
	}
	if result.Failed > 0 {
		c.io.Printf("⚠ Kept in outbox: %d\n", result.Failed)
	}
	if result.Sent+result.Dropped+result.Failed == 0 {
		c.io.Println("Nothing to deliver.")
	}
}
