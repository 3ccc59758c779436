package generator

import (
	"errors"
	"fmt"

	"github.com/pyama86/incidentseed/domain/entity"
)

// ErrExhausted signals that a uniqueness loop or an eligibility filter ran out of
// candidates. Generation never continues past it.
var ErrExhausted = errors.New("condition not satisfiable")

type ExhaustionError struct {
	Table  entity.TableName
	Reason string
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Table, ErrExhausted.Error(), e.Reason)
}

func (e *ExhaustionError) Unwrap() error {
	return ErrExhausted
}

func exhausted(table entity.TableName, format string, args ...any) error {
	return &ExhaustionError{Table: table, Reason: fmt.Sprintf(format, args...)}
}
