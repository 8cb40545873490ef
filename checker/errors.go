package checker

import (
	"errors"
	"fmt"
)

// ErrColumnMismatch means the result file's parameter header line does not
// match the SUT being checked against, by count or by name/order.
var ErrColumnMismatch = errors.New("checker: result file's parameter header does not match the system under test")

// ErrMalformedRow means a body row had a different cell count than the
// header, or referenced a value name its parameter does not declare.
var ErrMalformedRow = errors.New("checker: malformed row")

// ErrConstraintViolation means a row failed the SUT's own constraint
// solver, so the result file could not have been generated from it.
var ErrConstraintViolation = errors.New("checker: row violates constraints")

// NotCoveringError reports the first interaction CheckFile found with no
// covering row, identified by parameter indices and the value each holds.
type NotCoveringError struct {
	Parameters []int
	Values     []int
}

func (e *NotCoveringError) Error() string {
	return fmt.Sprintf("checker: interaction over parameters %v with values %v is not covered by any row", e.Parameters, e.Values)
}
