package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runAreas(ctx context.Context) error {
	resp, err := c.server.ListAreas(ctx)
	if err != nil {
		return fmt.Errorf("failed to list areas: %w", err)
	}

	if len(resp.Areas) == 0 {
		c.io.Println("No areas found.")
		return nil
	}

	c.io.Printf("=== Areas (%d) ===\n", len(resp.Areas))
	for _, area := range resp.Areas {
		c.io.Println()
		c.io.Printf("  %s (%s)\n", area.Name, area.Slug)
		if area.Description != "" {
			c.io.Printf("    %s\n", area.Description)
		}
		c.io.Printf("    Feedback URL: %s\n", area.FeedbackURL)
	}
	return nil
}
