package handlers

import (
	"fmt"
)

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

type FieldTypeError struct {
	Field string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %s is not a string", e.Field)
}
