package registry

import (
	"github.com/pkg/errors"
	"github.com/viant/gmetric"
	"github.com/viant/vpath/chain"
	"github.com/viant/vpath/config"
	"github.com/viant/vpath/metric"
	"github.com/viant/vpath/node"
	"github.com/viant/vpath/shared"
	"sort"
)

// Registry builds resolution nodes for dotted paths. Nodes are shared by prefix,
// so paths with a common prefix resolve it through the same node. Registry tracks
// covering tails: registered paths that are not a prefix of any other registered path.
//
// Registry is owned by one compilation unit and is not safe for concurrent registration.
type Registry struct {
	nodes   map[string]*node.Node
	tails   map[string]*node.Node
	order   []string
	options *node.Options
	config  *config.Config
	metrics *gmetric.Service
}

//Register returns terminal node for supplied path
func (r *Registry) Register(path string) (*node.Node, error) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid path: %q", path)
	}
	var parent *node.Node
	prefix := ""
	for i, seg := range segments {
		if i > 0 {
			prefix += "."
		}
		prefix += seg.String()
		aNode, ok := r.nodes[prefix]
		if !ok {
			aNode = r.newNode(seg, parent)
			r.nodes[prefix] = aNode
			r.options.Logger.NodeCreated(prefix, seg.dynamic)
		}
		parent = aNode
	}
	r.cover(prefix, parent)
	return parent, nil
}

//RegisterAll registers paths, all paths are attempted, errors are collected
func (r *Registry) RegisterAll(paths ...string) ([]*node.Node, error) {
	result := make([]*node.Node, 0, len(paths))
	errs := shared.NewErrors()
	for _, path := range paths {
		aNode, err := r.Register(path)
		if err != nil {
			errs.Append(err)
			continue
		}
		result = append(result, aNode)
	}
	return result, errs.Err()
}

func (r *Registry) newNode(seg *segment, parent *node.Node) *node.Node {
	if seg.dynamic {
		return node.NewDynamic(seg.key, parent, r.parse, r.options)
	}
	return node.New(seg.key, parent, r.options)
}

//parse compiles dynamic segment expression into an isolated node graph
func (r *Registry) parse(expr string) (node.Evaluator, error) {
	sub := &Registry{nodes: map[string]*node.Node{}, tails: map[string]*node.Node{}, options: r.options}
	terminal, err := sub.Register(expr)
	if err != nil {
		return nil, err
	}
	return terminal, nil
}

func (r *Registry) cover(path string, terminal *node.Node) {
	for _, tailPath := range r.order {
		if terminal.Covers(r.tails[tailPath]) {
			return
		}
	}
	kept := make([]string, 0, len(r.order)+1)
	for _, tailPath := range r.order {
		tail := r.tails[tailPath]
		if tail.Covers(terminal) {
			delete(r.tails, tailPath)
			tail.SetTail(false)
			r.options.Logger.TailChanged(tailPath, false)
			continue
		}
		kept = append(kept, tailPath)
	}
	r.order = append(kept, path)
	r.tails[path] = terminal
	terminal.SetTail(true)
	r.options.Logger.TailChanged(path, true)
}

//Lookup returns registered node for supplied path
func (r *Registry) Lookup(path string) (*node.Node, bool) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, false
	}
	aNode, ok := r.nodes[canonical(segments)]
	return aNode, ok
}

//Tails returns covering tail nodes in registration order
func (r *Registry) Tails() []*node.Node {
	result := make([]*node.Node, len(r.order))
	for i, path := range r.order {
		result[i] = r.tails[path]
	}
	return result
}

//TailPaths returns covering tail paths in registration order
func (r *Registry) TailPaths() []string {
	result := make([]string, len(r.order))
	copy(result, r.order)
	return result
}

//Paths returns sorted prefixes of all registered nodes
func (r *Registry) Paths() []string {
	result := make([]string, 0, len(r.nodes))
	for path := range r.nodes {
		result = append(result, path)
	}
	sort.Strings(result)
	return result
}

//Len returns number of nodes
func (r *Registry) Len() int {
	return len(r.nodes)
}

//Reset clears cached values of all nodes
func (r *Registry) Reset() {
	for _, aNode := range r.nodes {
		aNode.Reset()
	}
}

//Build builds call chain from covering tails
func (r *Registry) Build(opts ...chain.Option) (chain.Invoker, error) {
	if r.config != nil && r.config.Positional {
		opts = append([]chain.Option{chain.WithPositional()}, opts...)
	}
	return chain.Build(r.Tails(), opts...)
}

//Config returns registry config
func (r *Registry) Config() *config.Config {
	return r.config
}

//New creates registry
func New(opts ...Option) *Registry {
	result := &Registry{
		nodes:   map[string]*node.Node{},
		tails:   map[string]*node.Node{},
		options: newNodeOptions(),
	}
	for _, opt := range opts {
		opt(result)
	}
	if result.metrics != nil {
		name := "vpath"
		if result.config != nil {
			name = result.config.MetricName
		}
		result.options.Counter = metric.NewCounter(result.metrics, name)
	}
	return result
}
