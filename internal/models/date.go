package models

import (
	"strings"
	"time"

	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

// DateLayout is the layout of every snapshot, change and metrics date.
const DateLayout = "2006-01-02"

// ParseDate validates a YYYY-MM-DD date string and returns it normalized.
func ParseDate(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", srvErrors.NewValidationError(field, "date is required")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", srvErrors.NewValidationErrorf(field, "expected YYYY-MM-DD, got %q", s)
	}
	return t.Format(DateLayout), nil
}
