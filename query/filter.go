package query

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/bionetkit/interactome/attrs"
	"github.com/bionetkit/interactome/direction"
	"github.com/bionetkit/interactome/graph"
)

// ErrNotBoolean indicates an expression whose result type is not boolean.
var ErrNotBoolean = errors.New("query: expression must evaluate to a boolean")

// Filter is a compiled edge predicate. A Filter is immutable and safe to
// reuse across stores.
type Filter struct {
	prg cel.Program
}

// Compile parses and type-checks a CEL expression against the edge
// environment.
func Compile(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Variable("id_a", cel.StringType),
		cel.Variable("id_b", cel.StringType),
		cel.Variable("type", cel.StringType),
		cel.Variable("directed", cel.BoolType),
		cel.Variable("mutual", cel.BoolType),
		cel.Variable("resources", cel.ListType(cel.StringType)),
		cel.Variable("taxon_a", cel.IntType),
		cel.Variable("taxon_b", cel.IntType),
		cel.Variable("attrs", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("build expression environment: %w", err)
	}
	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, fmt.Errorf("compile expression: %w", iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w, got %s", ErrNotBoolean, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("plan expression: %w", err)
	}
	return &Filter{prg: prg}, nil
}

// Match evaluates the filter against one edge view.
func (f *Filter) Match(view map[string]any) (bool, error) {
	out, _, err := f.prg.Eval(view)
	if err != nil {
		return false, fmt.Errorf("evaluate expression: %w", err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, ErrNotBoolean
	}
	return b, nil
}

// Select returns the handles of all edges matching the filter, in creation
// order.
func (f *Filter) Select(store *graph.Store) ([]graph.EdgeHandle, error) {
	var out []graph.EdgeHandle
	for _, eh := range store.Edges() {
		view := edgeView(store, eh)
		if view == nil {
			continue
		}
		ok, err := f.Match(view)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, eh)
		}
	}
	return out, nil
}

// edgeView projects one edge into the variables the expression environment
// declares.
func edgeView(store *graph.Store, eh graph.EdgeHandle) map[string]any {
	e := store.EdgeAt(eh)
	if e == nil {
		return nil
	}
	all := make(direction.Resources)
	for _, k := range []direction.Key{direction.KeyStraight, direction.KeyReverse, direction.KeyUndirected} {
		all.Union(e.Direction.Sources(k))
	}

	taxonA, taxonB := 0, 0
	if h, ok := store.Node(e.Endpoints[0]); ok {
		if n := store.NodeAt(h); n != nil {
			taxonA = n.Taxon
		}
	}
	if h, ok := store.Node(e.Endpoints[1]); ok {
		if n := store.NodeAt(h); n != nil {
			taxonB = n.Taxon
		}
	}

	return map[string]any{
		"id_a":      e.Endpoints[0],
		"id_b":      e.Endpoints[1],
		"type":      string(e.Type),
		"directed":  e.Direction.IsDirected(),
		"mutual":    e.Direction.IsMutual(nil),
		"resources": all.Sorted(),
		"taxon_a":   taxonA,
		"taxon_b":   taxonB,
		"attrs":     attrs.MapToNative(e.Attrs),
	}
}
