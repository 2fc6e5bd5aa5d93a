package workspace

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/leapstack-labs/workspace/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func exampleRecord() core.Record {
	return core.Record{
		Type:        TypeName,
		Metadata:    core.Metadata{Path: "/ws/app", Scope: "project"},
		Declaration: "workspace('app'):",
		Body: core.Body{
			"description": "An example",
			"harness":     "magento2",
		},
	}
}

func TestFactory_Create_Example(t *testing.T) {
	def, err := NewFactory().Create(exampleRecord())
	require.NoError(t, err)

	ws, ok := def.(*Definition)
	require.True(t, ok, "expected *Definition, got %T", def)

	assert.Equal(t, "workspace", ws.Type())
	assert.Equal(t, "app", ws.Name())
	assert.Equal(t, "/ws/app", ws.Path())
	assert.Equal(t, core.Scope("project"), ws.Scope())

	description, ok := ws.Description()
	assert.True(t, ok)
	assert.Equal(t, "An example", description)

	harness, ok := ws.HarnessName()
	assert.True(t, ok)
	assert.Equal(t, "magento2", harness)

	_, ok = ws.Overlay()
	assert.False(t, ok, "overlay should be absent")
}

func TestFactory_Create_EmptyBody(t *testing.T) {
	record := exampleRecord()
	record.Body = core.Body{}

	def, err := NewFactory().Create(record)
	require.NoError(t, err)
	ws := def.(*Definition)

	assert.Equal(t, "app", ws.Name())
	assert.Equal(t, "/ws/app", ws.Path())
	assert.Equal(t, core.Scope("project"), ws.Scope())

	_, ok := ws.Description()
	assert.False(t, ok, "description should be absent")
	_, ok = ws.HarnessName()
	assert.False(t, ok, "harness should be absent")
	_, ok = ws.Overlay()
	assert.False(t, ok, "overlay should be absent")
}

func TestFactory_Create_NilBody(t *testing.T) {
	record := exampleRecord()
	record.Body = nil

	def, err := Parse(record)
	require.NoError(t, err)

	_, ok := def.Description()
	assert.False(t, ok)
}

func TestFactory_Create_Overlay(t *testing.T) {
	record := exampleRecord()
	record.Body["overlay"] = "../base"

	def, err := Parse(record)
	require.NoError(t, err)

	overlay, ok := def.Overlay()
	assert.True(t, ok)
	assert.Equal(t, "../base", overlay)
}

func TestFactory_Create_BodyValuesVerbatim(t *testing.T) {
	record := exampleRecord()
	record.Body = core.Body{"description": "  padded  ", "harness": ""}

	def, err := Parse(record)
	require.NoError(t, err)

	description, _ := def.Description()
	assert.Equal(t, "  padded  ", description)

	harness, ok := def.HarnessName()
	assert.True(t, ok, "an explicit empty string is present, not absent")
	assert.Equal(t, "", harness)
}

func TestFactory_Create_NonStringBodyValue(t *testing.T) {
	record := exampleRecord()
	record.Body["harness"] = []any{"magento2"}

	_, err := NewFactory().Create(record)

	var pe *core.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "harness", pe.Field)
	assert.Equal(t, TypeName, pe.Type)
}

func TestFactory_Create_SecondCallFails(t *testing.T) {
	f := NewFactory()

	first, err := f.Create(exampleRecord())
	require.NoError(t, err)

	other := exampleRecord()
	other.Declaration = "workspace('other'):"
	second, err := f.Create(other)
	assert.Nil(t, second)

	var ade *core.AlreadyDeclaredError
	require.ErrorAs(t, err, &ade)
	assert.True(t, errors.Is(err, core.ErrAlreadyDeclared))
	assert.Equal(t, "a workspace has already been declared", err.Error())

	assert.Equal(t, "app", first.Name(), "first definition must be unaffected")

	// The factory stays unusable.
	_, err = f.Create(exampleRecord())
	assert.ErrorIs(t, err, core.ErrAlreadyDeclared)
}

func TestFactory_Create_ParseErrorDoesNotConsume(t *testing.T) {
	f := NewFactory()

	bad := exampleRecord()
	bad.Declaration = "workspace(app):"
	_, err := f.Create(bad)
	var pe *core.ParseError
	require.ErrorAs(t, err, &pe)

	def, err := f.Create(exampleRecord())
	require.NoError(t, err)
	assert.Equal(t, "app", def.Name())
}

func TestFactory_Create_SharedAcrossGoroutines(t *testing.T) {
	f := NewFactory()

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		declared  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Create(exampleRecord())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, core.ErrAlreadyDeclared):
				declared++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, declared)
}

func TestFactory_Types(t *testing.T) {
	a, b := NewFactory(), NewFactory()

	assert.Equal(t, []string{"workspace"}, a.Types())
	assert.Equal(t, a.Types(), a.Types())
	assert.Equal(t, a.Types(), b.Types())

	// Callers cannot mutate what later calls return.
	types := a.Types()
	types[0] = "mutated"
	assert.Equal(t, []string{"workspace"}, a.Types())

	// Types does not depend on factory state.
	_, err := a.Create(exampleRecord())
	require.NoError(t, err)
	assert.Equal(t, []string{"workspace"}, a.Types())
}

func TestParseDeclaration(t *testing.T) {
	tests := []struct {
		name        string
		declaration string
		want        string
		wantErr     bool
	}{
		{name: "with colon", declaration: "workspace('app'):", want: "app"},
		{name: "yaml key form", declaration: "workspace('app')", want: "app"},
		{name: "punctuation in name", declaration: "workspace('my-app.v2_x'):", want: "my-app.v2_x"},
		{name: "parenthesis in name", declaration: "workspace('a)b'):", want: "a)b"},
		{name: "empty name", declaration: "workspace(''):", wantErr: true},
		{name: "unquoted", declaration: "workspace(app):", wantErr: true},
		{name: "double quotes", declaration: `workspace("app"):`, wantErr: true},
		{name: "quote in name", declaration: "workspace('a'b'):", wantErr: true},
		{name: "space in name", declaration: "workspace('my app'):", wantErr: true},
		{name: "leading whitespace", declaration: " workspace('app'):", wantErr: true},
		{name: "space before paren", declaration: "workspace ('app'):", wantErr: true},
		{name: "trailing whitespace", declaration: "workspace('app'): ", wantErr: true},
		{name: "multi-line", declaration: "workspace('app'):\n", wantErr: true},
		{name: "double colon", declaration: "workspace('app')::", wantErr: true},
		{name: "other type", declaration: "harness('app'):", wantErr: true},
		{name: "uppercase keyword", declaration: "Workspace('app'):", wantErr: true},
		{name: "empty", declaration: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeclaration(tt.declaration)
			if tt.wantErr {
				var pe *core.ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, tt.declaration, pe.Declaration)
				if tt.declaration != "" {
					assert.Contains(t, err.Error(), strconv.Quote(tt.declaration))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// nameGen draws names that never contain the declaration delimiters.
var nameGen = rapid.StringMatching(`[A-Za-z0-9_.\-()/]{1,40}`)

func TestProperty_NameRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := nameGen.Draw(rt, "name")
		suffix := rapid.SampledFrom([]string{"", ":"}).Draw(rt, "suffix")

		record := core.Record{
			Type:        TypeName,
			Declaration: "workspace('" + name + "')" + suffix,
		}
		def, err := NewFactory().Create(record)
		if err != nil {
			rt.Fatalf("unexpected error for %q: %v", record.Declaration, err)
		}
		if def.Name() != name {
			rt.Fatalf("name = %q, want %q", def.Name(), name)
		}
	})
}

func TestProperty_MetadataPassThrough(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		path := rapid.String().Draw(rt, "path")
		scope := core.Scope(rapid.String().Draw(rt, "scope"))

		record := core.Record{
			Type:        TypeName,
			Metadata:    core.Metadata{Path: path, Scope: scope},
			Declaration: "workspace('app'):",
		}
		def, err := Parse(record)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if def.Path() != path {
			rt.Fatalf("path = %q, want %q", def.Path(), path)
		}
		if def.Scope() != scope {
			rt.Fatalf("scope = %q, want %q", def.Scope(), scope)
		}
	})
}

func TestProperty_NameIgnoresBodyAndMetadata(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := nameGen.Draw(rt, "name")
		other := rapid.String().Draw(rt, "other")

		record := core.Record{
			Type:        TypeName,
			Metadata:    core.Metadata{Path: other, Scope: core.Scope(other)},
			Declaration: "workspace('" + name + "'):",
			Body:        core.Body{"name": other, "description": other},
		}
		def, err := Parse(record)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if def.Name() != name {
			rt.Fatalf("name = %q, want %q", def.Name(), name)
		}
	})
}

func TestProperty_OmittedOptionalsAreAbsent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		body := core.Body{}
		keys := []string{"description", "harness", "overlay"}
		present := make(map[string]bool, len(keys))
		for _, key := range keys {
			if rapid.Bool().Draw(rt, key) {
				body[key] = rapid.String().Draw(rt, key+"-value")
				present[key] = true
			}
		}

		def, err := Parse(core.Record{Type: TypeName, Declaration: "workspace('app'):", Body: body})
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}

		got := map[string]func() (string, bool){
			"description": def.Description,
			"harness":     def.HarnessName,
			"overlay":     def.Overlay,
		}
		for _, key := range keys {
			value, ok := got[key]()
			if ok != present[key] {
				rt.Fatalf("%s present = %v, want %v", key, ok, present[key])
			}
			if ok && value != body[key] {
				rt.Fatalf("%s = %q, want %q", key, value, body[key])
			}
		}
	})
}
