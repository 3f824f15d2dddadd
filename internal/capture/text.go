package capture

import (
	"context"
	"fmt"
	"strings"

	app_errors "agribrain/backend/internal/errors"
)

// Text captures typed input.
type Text struct {
	Value string
}

// Capture returns the trimmed text, or ErrValidation when nothing is left.
func (t Text) Capture(_ context.Context) (string, error) {
	value := strings.TrimSpace(t.Value)
	if value == "" {
		return "", fmt.Errorf("%w: message cannot be empty", app_errors.ErrValidation)
	}
	return value, nil
}
