package registry

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/gmetric"
	"github.com/viant/vpath/chain"
	"github.com/viant/vpath/config"
	"github.com/viant/vpath/logger"
	"github.com/viant/vpath/metric"
	"github.com/viant/vpath/node"
	"sort"
	"strings"
	"testing"
)

func isPrefix(prefix, path string) bool {
	return prefix == path || strings.HasPrefix(path, prefix+".")
}

func permutations(values []string) [][]string {
	if len(values) <= 1 {
		return [][]string{append([]string{}, values...)}
	}
	var result [][]string
	for i := range values {
		rest := make([]string, 0, len(values)-1)
		rest = append(rest, values[:i]...)
		rest = append(rest, values[i+1:]...)
		for _, perm := range permutations(rest) {
			result = append(result, append([]string{values[i]}, perm...))
		}
	}
	return result
}

func TestRegistry_Register(t *testing.T) {
	var testCases = []struct {
		description string
		paths       []string
		expectTails []string
		expectNodes int
	}{
		{description: "deeper path subsumes prefixes", paths: []string{"a.b.c", "a.b", "a.b.c.d"}, expectTails: []string{"a.b.c.d"}, expectNodes: 4},
		{description: "siblings", paths: []string{"a.b.c", "a.x.y"}, expectTails: []string{"a.b.c", "a.x.y"}, expectNodes: 5},
		{description: "duplicate path", paths: []string{"a.b", "a.b"}, expectTails: []string{"a.b"}, expectNodes: 2},
		{description: "covered prefix", paths: []string{"a.b.c", "a"}, expectTails: []string{"a.b.c"}, expectNodes: 3},
		{description: "subsumed tail replaced in order", paths: []string{"a.b", "x", "a.b.c"}, expectTails: []string{"x", "a.b.c"}, expectNodes: 4},
		{description: "segment prefix is not string prefix", paths: []string{"a.b", "a.bc"}, expectTails: []string{"a.b", "a.bc"}, expectNodes: 3},
		{description: "dynamic segment", paths: []string{"list.(idx)", "list"}, expectTails: []string{"list.(idx)"}, expectNodes: 2},
	}

	for _, testCase := range testCases {
		registry := New()
		for _, path := range testCase.paths {
			terminal, err := registry.Register(path)
			if !assert.Nil(t, err, testCase.description) {
				continue
			}
			assert.EqualValues(t, path, terminal.Path(), testCase.description)
		}
		assert.EqualValues(t, testCase.expectTails, registry.TailPaths(), testCase.description)
		assert.EqualValues(t, testCase.expectNodes, registry.Len(), testCase.description)
		for _, tail := range registry.Tails() {
			assert.True(t, tail.IsTail(), testCase.description)
		}
	}
}

func TestRegistry_Build(t *testing.T) {
	registry := New()
	_, err := registry.Build()
	assert.NotNil(t, err, "empty registry")

	_, err = registry.RegisterAll("a.b.c", "a.b", "a.b.c.d")
	require.Nil(t, err)
	invoker, err := registry.Build()
	require.Nil(t, err)
	assert.EqualValues(t, 1, invoker.Len())
	single, ok := invoker.(*chain.Single)
	require.True(t, ok)
	assert.EqualValues(t, "a.b.c.d", single.Node().Path())
	ab, ok := registry.Lookup("a.b")
	require.True(t, ok)
	assert.False(t, ab.IsTail())
}

func TestRegistry_SharedPrefix(t *testing.T) {
	accesses := metric.NewAccesses()
	registry := New(WithAccesses(accesses))
	_, err := registry.RegisterAll("a.b.c", "a.x.y")
	require.Nil(t, err)
	assert.EqualValues(t, []string{"a.b.c", "a.x.y"}, registry.TailPaths())

	invoker, err := registry.Build()
	require.Nil(t, err)
	_, ok := invoker.(*chain.Chain)
	assert.True(t, ok)
	ctx := map[string]interface{}{
		"a": map[string]interface{}{
			"b": map[string]interface{}{"c": 5},
			"x": map[string]interface{}{"y": 7},
		},
	}
	actual, err := invoker.Value(ctx)
	require.Nil(t, err)
	assert.EqualValues(t, 7, actual)
	assert.EqualValues(t, 5, accesses.Total())
	assert.EqualValues(t, 1, accesses.Count("a"))

	ab, ok := registry.Lookup("a.b")
	require.True(t, ok)
	actual, err = ab.Value(ctx)
	require.Nil(t, err)
	assert.EqualValues(t, map[string]interface{}{"c": 5}, actual)
	assert.EqualValues(t, 5, accesses.Total(), "cached prefix is not resolved again")

	registry.Reset()
	_, cached := ab.Cached()
	assert.False(t, cached)
}

func TestRegistry_NullTarget(t *testing.T) {
	registry := New()
	terminal, err := registry.Register("a.b")
	require.Nil(t, err)
	_, err = terminal.Value(map[string]interface{}{"a": nil})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, node.ErrNullTarget))
	nullTarget := &node.NullTargetError{}
	require.True(t, errors.As(err, &nullTarget))
	assert.EqualValues(t, "a.b", nullTarget.Path)
}

func TestRegistry_Antichain(t *testing.T) {
	var testCases = []struct {
		description string
		paths       []string
	}{
		{description: "nested chain", paths: []string{"a.b.c", "a.b", "a.b.c.d"}},
		{description: "wide tree", paths: []string{"a.b", "a.c", "a.b.d", "a", "e.f", "a.c.g.h"}},
		{description: "dynamic", paths: []string{"list.(idx)", "list", "list.(idx).name", "idx"}},
	}

	for _, testCase := range testCases {
		for _, perm := range permutations(testCase.paths) {
			registry := New()
			_, err := registry.RegisterAll(perm...)
			if !assert.Nil(t, err, testCase.description) {
				continue
			}
			tails := registry.TailPaths()
			for i, tail := range tails {
				for j, other := range tails {
					if i != j {
						assert.False(t, isPrefix(tail, other), "%v: %v covers %v", testCase.description, tail, other)
					}
				}
			}
			for _, path := range perm {
				covered := false
				for _, tail := range tails {
					covered = covered || isPrefix(path, tail)
				}
				assert.True(t, covered, "%v: %v is not covered", testCase.description, path)
			}
		}

		expect := New()
		_, _ = expect.RegisterAll(testCase.paths...)
		expectTails := expect.TailPaths()
		sort.Strings(expectTails)
		for _, perm := range permutations(testCase.paths) {
			registry := New()
			_, _ = registry.RegisterAll(perm...)
			actual := registry.TailPaths()
			sort.Strings(actual)
			assert.EqualValues(t, expectTails, actual, testCase.description)
		}
	}
}

func TestRegistry_Dynamic(t *testing.T) {
	var testCases = []struct {
		description string
		idx         interface{}
		expect      interface{}
		expectErr   error
	}{
		{description: "integer index", idx: 2, expect: "c"},
		{description: "int32 index", idx: int32(1), expect: "b"},
		{description: "attribute name", idx: "len", expectErr: node.ErrMissingField},
		{description: "out of range", idx: 5, expectErr: node.ErrIndexOutOfRange},
		{description: "unsupported key", idx: 1.5, expectErr: node.ErrBadDynamicKey},
	}

	for _, testCase := range testCases {
		registry := New()
		terminal, err := registry.Register("list.(idx)")
		require.Nil(t, err, testCase.description)
		assert.True(t, terminal.IsDynamic(), testCase.description)
		ctx := map[string]interface{}{"list": []string{"a", "b", "c"}, "idx": testCase.idx}
		actual, err := terminal.Value(ctx)
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}

	registry := New()
	terminal, err := registry.Register("users.(field)")
	require.Nil(t, err)
	actual, err := terminal.Value(map[string]interface{}{
		"users": map[string]interface{}{"bob": 3},
		"field": "bob",
	})
	require.Nil(t, err)
	assert.EqualValues(t, 3, actual)
	assert.EqualValues(t, 2, registry.Len(), "sub expression nodes stay outside of the registry")
}

func TestRegistry_RegisterAll(t *testing.T) {
	registry := New()
	nodes, err := registry.RegisterAll("a.b", "a..b", "c", "d.(")
	assert.EqualValues(t, 2, len(nodes))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "a..b")
	assert.Contains(t, err.Error(), "d.(")
	assert.EqualValues(t, []string{"a.b", "c"}, registry.TailPaths())
}

func TestRegistry_Lookup(t *testing.T) {
	registry := New()
	_, err := registry.Register("order.customer.( key ).city")
	require.Nil(t, err)
	for _, path := range []string{"order", "order.customer", "order . customer", "order.customer.(key)", "order.customer.(key).city"} {
		_, ok := registry.Lookup(path)
		assert.True(t, ok, path)
	}
	_, ok := registry.Lookup("order.city")
	assert.False(t, ok)
	_, ok = registry.Lookup("order..city")
	assert.False(t, ok)
	assert.EqualValues(t, []string{"order", "order.customer", "order.customer.(key)", "order.customer.(key).city"}, registry.Paths())
}

func TestRegistry_Logger(t *testing.T) {
	var created []string
	var tails []string
	var bound []string
	registry := New(WithLogger(&logger.Funcs{
		OnNodeCreated: func(path string, dynamic bool) {
			created = append(created, path)
		},
		OnTailChanged: func(path string, added bool) {
			if added {
				tails = append(tails, "+"+path)
				return
			}
			tails = append(tails, "-"+path)
		},
		OnAccessorBound: func(path, shape, kind string) {
			bound = append(bound, path+":"+kind)
		},
	}))
	_, err := registry.RegisterAll("a.b", "a.b.c", "a")
	require.Nil(t, err)
	assert.EqualValues(t, []string{"a", "a.b", "a.b.c"}, created)
	assert.EqualValues(t, []string{"+a.b", "-a.b", "+a.b.c"}, tails)

	invoker, err := registry.Build()
	require.Nil(t, err)
	_, err = invoker.Value(map[string]interface{}{"a": map[string]interface{}{"b": map[string]interface{}{"c": 1}}})
	require.Nil(t, err)
	assert.EqualValues(t, []string{"a:map", "a.b:map", "a.b.c:map"}, bound)
}

func TestRegistry_WithConfig(t *testing.T) {
	cfg := config.New()
	cfg.Positional = true
	cfg.DisableGetters = true
	registry := New(WithConfig(cfg))
	assert.True(t, registry.Config() == cfg)
	_, err := registry.RegisterAll("a.b.c", "a.x.y")
	require.Nil(t, err)
	invoker, err := registry.Build()
	require.Nil(t, err)
	slots := invoker.Slots()
	assert.EqualValues(t, 5, len(slots))
	actual, err := invoker.ValueAt(map[string]interface{}{
		"a": map[string]interface{}{
			"b": map[string]interface{}{"c": 5},
			"x": map[string]interface{}{"y": 7},
		},
	}, slots)
	require.Nil(t, err)
	assert.EqualValues(t, 7, actual)
	assert.EqualValues(t, 5, slots[0].Value)
}

func TestRegistry_WithMetrics(t *testing.T) {
	service := gmetric.New()
	cfg := config.New()
	cfg.MetricName = "orders"
	registry := New(WithConfig(cfg), WithMetrics(service))
	terminal, err := registry.Register("order.id")
	require.Nil(t, err)
	actual, err := terminal.Value(map[string]interface{}{"order": map[string]interface{}{"id": 10}})
	require.Nil(t, err)
	assert.EqualValues(t, 10, actual)
	assert.NotNil(t, service.LookupOperation("orders"))
}
