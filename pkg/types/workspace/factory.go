package workspace

import (
	"errors"
	"regexp"
	"sync"

	"github.com/leapstack-labs/workspace/pkg/core"
)

// Body keys read by the factory.
const (
	keyDescription = "description"
	keyHarness     = "harness"
	keyOverlay     = "overlay"
)

// Factory creates at most one workspace Definition over its lifetime.
// Create one Factory per parsed document.
type Factory struct {
	mu       sync.Mutex
	declared bool
}

var _ core.Factory = (*Factory)(nil)

// NewFactory returns a Factory that has not declared a workspace yet.
func NewFactory() *Factory {
	return &Factory{}
}

// Types returns the declaration keywords handled by the factory.
func (f *Factory) Types() []string {
	return []string{TypeName}
}

// Create parses record into a Definition.
// Only the first successful call yields a Definition; every later call fails
// with *core.AlreadyDeclaredError. A call that fails to parse does not
// consume the factory.
func (f *Factory) Create(record core.Record) (core.Definition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.declared {
		return nil, &core.AlreadyDeclaredError{Type: TypeName}
	}

	def, err := Parse(record)
	if err != nil {
		return nil, err
	}

	f.declared = true
	return def, nil
}

// Parse builds a Definition from record without any single-use bookkeeping.
func Parse(record core.Record) (*Definition, error) {
	name, err := ParseDeclaration(record.Declaration)
	if err != nil {
		return nil, err
	}

	var opts []Option
	for _, field := range []struct {
		key  string
		with func(string) Option
	}{
		{keyDescription, WithDescription},
		{keyHarness, WithHarness},
		{keyOverlay, WithOverlay},
	} {
		value, ok, err := record.Body.String(field.key)
		if err != nil {
			return nil, withType(err)
		}
		if ok {
			opts = append(opts, field.with(value))
		}
	}

	return NewDefinition(name, record.Metadata.Path, record.Metadata.Scope, opts...), nil
}

// declarationPattern matches `workspace('<name>')` with an optional trailing
// colon. The name holds no quote and no whitespace.
var declarationPattern = regexp.MustCompile(`^workspace\('([^'\s]+)'\):?$`)

// ParseDeclaration extracts the name from a declaration header such as
// `workspace('app'):`. The header must match byte for byte; anything else is
// a *core.ParseError naming the offending text.
func ParseDeclaration(declaration string) (string, error) {
	m := declarationPattern.FindStringSubmatch(declaration)
	if m == nil {
		return "", &core.ParseError{
			Type:        TypeName,
			Declaration: declaration,
			Message:     "expected workspace('<name>'):",
		}
	}
	return m[1], nil
}

func withType(err error) error {
	var pe *core.ParseError
	if errors.As(err, &pe) && pe.Type == "" {
		pe.Type = TypeName
	}
	return err
}
