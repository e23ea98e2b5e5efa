package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/qrfeedback/internal/phonemask"
	"github.com/iudanet/qrfeedback/internal/validation"
	"github.com/iudanet/qrfeedback/pkg/api"
)

// maxPromptAttempts сколько раз переспрашивать в интерактивном режиме
const maxPromptAttempts = 3

func (c *Cli) runSubmit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: qrfeedback submit <slug>")
	}
	slug := args[0]
	if err := validation.ValidateSlug(slug); err != nil {
		return fmt.Errorf("invalid area: %w", err)
	}

	c.io.Printf("=== Feedback for %s ===\n", slug)
	c.io.Println()

	ratingStr, err := c.prompt("Rating (1-5): ", func(s string) error {
		rating, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("rating must be a number")
		}
		return validation.ValidateRating(rating)
	})
	if err != nil {
		return err
	}
	rating, _ := strconv.Atoi(ratingStr)

	comment, err := c.prompt("Comment (optional): ", validation.ValidateComment)
	if err != nil {
		return err
	}

	name, err := c.prompt("Your name (optional): ", func(s string) error {
		if s == "" {
			return nil
		}
		return validation.ValidateName(s)
	})
	if err != nil {
		return err
	}

	phone, err := c.prompt("Phone (optional): ", validation.ValidateOptionalPhone)
	if err != nil {
		return err
	}
	if phone != "" {
		c.io.Printf("Phone: %s\n", phonemask.ApplyMask(phone))
	}

	item, err := c.outbox.Enqueue(ctx, slug, api.SubmitFeedbackRequest{
		Rating:  rating,
		Comment: comment,
		Name:    name,
		Phone:   phone,
	})
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	c.io.Println()
	c.io.Printf("Feedback saved (ID: %s)\n", item.ID)

	// Недоступный сервер не должен увеличивать счетчик попыток у всей очереди
	if err := c.server.Health(ctx); err != nil {
		c.io.Printf("⚠ Server unavailable: %v\n", err)
		c.io.Println("Your feedback is kept locally. Run 'qrfeedback sync' to retry.")
		return nil
	}

	result, err := c.outbox.Flush(ctx)
	if err != nil {
		c.io.Printf("⚠ Delivery interrupted: %v\n", err)
		c.io.Println("Your feedback is kept locally. Run 'qrfeedback sync' to retry.")
		return nil
	}

	c.printFlushResult(result)
	if result.Failed > 0 {
		c.io.Println("Some feedback could not be delivered. Run 'qrfeedback sync' to retry.")
	}
	return nil
}

// prompt читает значение и проверяет его через check.
// Без терминала первая же ошибка проверки возвращается сразу.
func (c *Cli) prompt(label string, check func(string) error) (string, error) {
	attempts := 1
	if c.io.IsInteractive() {
		attempts = maxPromptAttempts
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		value, err := c.io.ReadInput(label)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if lastErr = check(value); lastErr == nil {
			return value, nil
		}
		c.io.Printf("✗ %v\n", lastErr)
	}
	return "", lastErr
}
