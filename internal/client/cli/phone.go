package cli

import (
	"fmt"
	"strings"

	"github.com/iudanet/qrfeedback/internal/phonemask"
)

// phoneArg склеивает аргументы: номер часто передают с пробелами без кавычек
func phoneArg(command string, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: qrfeedback %s <value>", command)
	}
	return strings.Join(args, " "), nil
}

func (c *Cli) runMask(args []string) error {
	value, err := phoneArg("mask", args)
	if err != nil {
		return err
	}
	c.io.Println(phonemask.ApplyMask(value))
	return nil
}

func (c *Cli) runStrip(args []string) error {
	value, err := phoneArg("strip", args)
	if err != nil {
		return err
	}
	c.io.Println(phonemask.StripMask(value))
	return nil
}

// runValidate печатает результат проверки; невалидный номер возвращает ошибку
// чтобы команду можно было использовать в скриптах
func (c *Cli) runValidate(args []string) error {
	value, err := phoneArg("validate", args)
	if err != nil {
		return err
	}

	masked := phonemask.ApplyMask(value)
	if !phonemask.Validate(value) {
		c.io.Printf("✗ %q is not a valid phone number (%d digits)\n", masked, len(phonemask.StripMask(value)))
		return phonemask.ErrInvalidPhone
	}

	c.io.Printf("✓ %s is valid\n", masked)
	if e164, err := phonemask.ToE164(value); err == nil {
		c.io.Printf("  E.164: %s\n", e164)
	}
	return nil
}
