package core

// Definition is the common view of a parsed definition of any declared type.
// Concrete types (e.g. workspace.Definition) expose their own attributes.
type Definition interface {
	Type() string
	Name() string
	Path() string
	Scope() Scope
}

// Factory turns records of the types it handles into definitions.
// A registry dispatches on Types() instead of switching on type keywords.
type Factory interface {
	// Types returns the declaration keywords this factory is responsible for.
	Types() []string

	// Create builds a Definition from a record whose Type is one of Types().
	Create(record Record) (Definition, error)
}
