package registry

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/workspace/pkg/core"
)

// Session routes the records of a single document.
// It holds one factory per declaration type, so single-declaration types such
// as workspace are enforced per document. A Session is not safe for
// concurrent use.
type Session struct {
	factories   map[string]core.Factory
	seen        map[string]struct{}
	definitions []core.Definition
	logger      *slog.Logger
}

// NewSession creates a session for one document.
func NewSession(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		factories: make(map[string]core.Factory),
		seen:      make(map[string]struct{}),
		logger:    logger,
	}
}

// Create routes record to the factory registered for record.Type.
func (s *Session) Create(record core.Record) (core.Definition, error) {
	factory, err := s.factoryFor(record.Type)
	if err != nil {
		return nil, err
	}

	def, err := factory.Create(record)
	if err != nil {
		s.logger.Debug("Definition rejected.", "type", record.Type, "declaration", record.Declaration, "error", err)
		return nil, err
	}

	key := def.Type() + "\x00" + def.Name()
	if _, dup := s.seen[key]; dup {
		return nil, &core.DuplicateDefinitionError{Type: def.Type(), Name: def.Name()}
	}
	s.seen[key] = struct{}{}
	s.definitions = append(s.definitions, def)

	s.logger.Debug("Definition created.", "type", def.Type(), "name", def.Name(), "path", def.Path())
	return def, nil
}

// CreateAll routes records in order and stops at the first error.
func (s *Session) CreateAll(records []core.Record) ([]core.Definition, error) {
	defs := make([]core.Definition, 0, len(records))
	for _, record := range records {
		def, err := s.Create(record)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", record.Declaration, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Definitions returns every definition created so far, in creation order.
func (s *Session) Definitions() []core.Definition {
	out := make([]core.Definition, len(s.definitions))
	copy(out, s.definitions)
	return out
}

func (s *Session) factoryFor(keyword string) (core.Factory, error) {
	if f, ok := s.factories[keyword]; ok {
		return f, nil
	}
	newFactory, ok := Get(keyword)
	if !ok {
		return nil, &core.UnknownTypeError{Type: keyword, Available: ListTypes()}
	}
	f := newFactory()
	s.factories[keyword] = f
	return f, nil
}
