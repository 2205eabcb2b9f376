package rate

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Parse errors, one per token category.
var (
	ErrInvalidNumber = errors.New("not a valid number")
	ErrInvalidUnit   = errors.New("not a recognized unit (" + strings.Join(Units, " ") + ")")
	ErrInvalidPeriod = errors.New("not a recognized time period (" + strings.Join(PeriodNames, " ") + ")")
)

// UnexpectedCharError reports a required literal character that was not
// found at the cursor. Actual is 0 when the input ended instead.
type UnexpectedCharError struct {
	Expected byte
	Actual   byte
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("expected %q, found %q", e.Expected, e.Actual)
}
