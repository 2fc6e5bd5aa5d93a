package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAlreadyDeclared is matched by AlreadyDeclaredError via errors.Is.
var ErrAlreadyDeclared = errors.New("already declared")

// AlreadyDeclaredError is returned when a single-use factory is asked to
// create a second definition.
type AlreadyDeclaredError struct {
	Type string
}

func (e *AlreadyDeclaredError) Error() string {
	return fmt.Sprintf("a %s has already been declared", e.Type)
}

// Is reports whether target is ErrAlreadyDeclared.
func (e *AlreadyDeclaredError) Is(target error) bool {
	return target == ErrAlreadyDeclared
}

// ParseError represents a record that does not follow the declaration grammar
// or carries a body value of the wrong shape.
type ParseError struct {
	Type        string
	Declaration string
	Field       string
	Message     string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Type != "" {
		b.WriteString(e.Type)
		b.WriteString(": ")
	}
	switch {
	case e.Field != "":
		fmt.Fprintf(&b, "field %q: %s", e.Field, e.Message)
	case e.Declaration != "":
		fmt.Fprintf(&b, "invalid declaration %q: %s", e.Declaration, e.Message)
	default:
		b.WriteString(e.Message)
	}
	return b.String()
}

// UnknownTypeError is returned when no factory handles a record's type.
type UnknownTypeError struct {
	Type      string
	Available []string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown declaration type %q\nAvailable types: %v", e.Type, e.Available)
}

// DuplicateDefinitionError is returned when one document declares the same
// type and name twice.
type DuplicateDefinitionError struct {
	Type string
	Name string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("%s %q is declared more than once", e.Type, e.Name)
}
