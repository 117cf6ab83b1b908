package registry

import (
	"errors"
	"fmt"
)

// ErrValidation is the kind for all registry invariant violations.
var ErrValidation = errors.New("invalid topic registry")

// ValidationError identifies the offending record and field.
type ValidationError struct {
	TopicIndex int    // 0 when the violation is not tied to one topic
	TopicSlug  string // may be empty for section-level violations
	Field      string
	Msg        string
}

func (e *ValidationError) Error() string {
	where := e.Field
	if e.TopicSlug != "" {
		where = fmt.Sprintf("topic %d (%s) %s", e.TopicIndex, e.TopicSlug, e.Field)
	} else if e.TopicIndex != 0 {
		where = fmt.Sprintf("topic %d %s", e.TopicIndex, e.Field)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), where, e.Msg)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalidf(rec recordRef, field, format string, args ...any) error {
	return &ValidationError{
		TopicIndex: rec.index,
		TopicSlug:  rec.slug,
		Field:      field,
		Msg:        fmt.Sprintf(format, args...),
	}
}

// recordRef pins an error to a record without dragging the whole record in.
type recordRef struct {
	index int
	slug  string
}
