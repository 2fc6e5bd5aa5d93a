// Package loader reads workspace documents and splits them into definition
// records for the registry.
//
// A document is a YAML mapping whose keys are declarations:
//
//	workspace('app'):
//	  description: An example
//	  harness: magento2
package loader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/leapstack-labs/workspace/pkg/core"
	"gopkg.in/yaml.v3"
)

// Load reads the document at path and returns its records in document order.
// Every record carries the absolute directory of path and the given scope.
func Load(path string, scope core.Scope, logger *slog.Logger) ([]core.Record, error) {
	if logger == nil {
		logger = slog.Default()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory of %s: %w", path, err)
	}

	records, err := Parse(content, dir, scope)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
		}
		return nil, err
	}

	logger.Info("Document loaded.", "file", path, "records", len(records))
	return records, nil
}

// Parse splits YAML content into records rooted at dir.
// An empty document yields no records.
func Parse(content []byte, dir string, scope core.Scope) ([]core.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := resolve(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &LoadError{Line: root.Line, Message: "document must be a mapping of declarations"}
	}

	records := make([]core.Record, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		record, err := parseEntry(root.Content[i], resolve(root.Content[i+1]))
		if err != nil {
			return nil, err
		}
		record.Metadata = core.Metadata{Path: dir, Scope: scope}
		records = append(records, record)
	}
	return records, nil
}

func parseEntry(key, value *yaml.Node) (core.Record, error) {
	if key.Kind != yaml.ScalarNode {
		return core.Record{}, &LoadError{Line: key.Line, Message: "declaration must be a scalar key"}
	}

	declaration := key.Value
	keyword, _, found := strings.Cut(declaration, "(")
	if !found || keyword == "" || strings.ContainsFunc(keyword, unicode.IsSpace) {
		return core.Record{}, &LoadError{
			Line:    key.Line,
			Message: fmt.Sprintf("%q is not a declaration, expected <type>('<name>')", declaration),
		}
	}

	body := core.Body{}
	switch {
	case value.Kind == yaml.ScalarNode && value.Tag == "!!null":
	case value.Kind == yaml.MappingNode:
		if err := value.Decode(&body); err != nil {
			return core.Record{}, &LoadError{Line: value.Line, Message: fmt.Sprintf("invalid body for %s: %v", declaration, err)}
		}
		keepScalarText(body, value)
	default:
		return core.Record{}, &LoadError{
			Line:    value.Line,
			Message: fmt.Sprintf("body of %s must be a mapping", declaration),
		}
	}

	return core.Record{
		Type:        keyword,
		Declaration: declaration,
		Body:        body,
	}, nil
}

// keepScalarText replaces decoded scalars with their source text so that
// values such as 1.0 or 2024-01-01 reach the factories as written.
func keepScalarText(body core.Body, mapping *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], resolve(mapping.Content[i+1])
		if key.Kind != yaml.ScalarNode || key.Tag == "!!merge" {
			continue
		}
		if value.Kind == yaml.ScalarNode && value.Tag != "!!null" {
			body[key.Value] = value.Value
		}
	}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// LoadError represents a document that cannot be split into records.
type LoadError struct {
	File    string
	Line    int
	Message string
}

func (e *LoadError) Error() string {
	if e.File != "" {
		if e.Line > 0 {
			return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}
