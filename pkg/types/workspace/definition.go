package workspace

import "github.com/leapstack-labs/workspace/pkg/core"

// TypeName is the declaration keyword handled by this package.
const TypeName = "workspace"

// Definition is an immutable workspace definition.
type Definition struct {
	name        string
	description *string
	harnessName *string
	path        string
	overlay     *string
	scope       core.Scope
}

var _ core.Definition = (*Definition)(nil)

// Option sets an optional attribute on a Definition under construction.
type Option func(*Definition)

// WithDescription sets the free-form description.
func WithDescription(description string) Option {
	return func(d *Definition) { d.description = &description }
}

// WithHarness names the harness implementation to apply.
func WithHarness(harnessName string) Option {
	return func(d *Definition) { d.harnessName = &harnessName }
}

// WithOverlay names the definition this one is merged over.
func WithOverlay(overlay string) Option {
	return func(d *Definition) { d.overlay = &overlay }
}

// NewDefinition builds a Definition from explicit values.
// Optional attributes left unset are absent.
func NewDefinition(name, path string, scope core.Scope, opts ...Option) *Definition {
	d := &Definition{
		name:  name,
		path:  path,
		scope: scope,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Type returns "workspace".
func (d *Definition) Type() string { return TypeName }

// Name returns the name taken from the declaration header.
func (d *Definition) Name() string { return d.name }

// Path returns the directory the definition was loaded from.
func (d *Definition) Path() string { return d.path }

// Scope returns the loader-supplied scope.
func (d *Definition) Scope() core.Scope { return d.scope }

// Description returns the description and whether one was declared.
func (d *Definition) Description() (string, bool) { return deref(d.description) }

// HarnessName returns the harness name and whether one was declared.
// No harness means the workspace is not standardised by any harness.
func (d *Definition) HarnessName() (string, bool) { return deref(d.harnessName) }

// Overlay returns the overlay name and whether one was declared.
func (d *Definition) Overlay() (string, bool) { return deref(d.overlay) }

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
