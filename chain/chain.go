package chain

import (
	"github.com/pkg/errors"
	"github.com/viant/vpath/node"
)

const (
	singleKind = "single"
	chainKind  = "chain"
)

type (
	// Invoker evaluates every member node against a context and returns the last member value.
	//
	// Value uses node caches (self cached mode, not safe for concurrent use, Reset before the next pass).
	// ValueAt uses caller owned slots (positional mode, requires WithPositional build).
	// Direct evaluates without any cache and is supported by a single member invoker only.
	Invoker interface {
		Value(ctx interface{}) (interface{}, error)
		ValueAt(ctx interface{}, slots node.Slots) (interface{}, error)
		Direct(ctx interface{}) (interface{}, error)
		Reset()
		Len() int
		Slots() node.Slots
		Members() []*node.Node
	}

	//Single wraps one member node
	Single struct {
		node       *node.Node
		positional bool
		slots      int
	}

	//Chain links many member nodes
	Chain struct {
		head       link
		members    []*node.Node
		positional bool
		slots      int
	}
)

func (s *Single) Value(ctx interface{}) (interface{}, error) {
	return s.node.Value(ctx)
}

func (s *Single) ValueAt(ctx interface{}, slots node.Slots) (interface{}, error) {
	if err := checkSlots(singleKind, s.positional, s.slots, slots); err != nil {
		return nil, err
	}
	return s.node.ValueAt(ctx, slots)
}

func (s *Single) Direct(ctx interface{}) (interface{}, error) {
	return s.node.Direct(ctx)
}

func (s *Single) Reset() {
	s.node.ResetAll()
}

func (s *Single) Len() int {
	return 1
}

func (s *Single) Slots() node.Slots {
	return node.NewSlots(s.slots)
}

func (s *Single) Members() []*node.Node {
	return []*node.Node{s.node}
}

//Node returns wrapped node
func (s *Single) Node() *node.Node {
	return s.node
}

func (c *Chain) Value(ctx interface{}) (interface{}, error) {
	return c.head.value(ctx)
}

func (c *Chain) ValueAt(ctx interface{}, slots node.Slots) (interface{}, error) {
	if err := checkSlots(chainKind, c.positional, c.slots, slots); err != nil {
		return nil, err
	}
	return c.head.valueAt(ctx, slots)
}

func (c *Chain) Direct(ctx interface{}) (interface{}, error) {
	return nil, &node.UnsupportedOperationError{Chain: chainKind, Operation: "direct evaluation"}
}

func (c *Chain) Reset() {
	for _, member := range c.members {
		member.ResetAll()
	}
}

func (c *Chain) Len() int {
	return len(c.members)
}

func (c *Chain) Slots() node.Slots {
	return node.NewSlots(c.slots)
}

func (c *Chain) Members() []*node.Node {
	return c.members
}

func checkSlots(kind string, positional bool, expected int, slots node.Slots) error {
	if !positional {
		return &node.UnsupportedOperationError{Chain: kind, Operation: "positional evaluation without positional build"}
	}
	if len(slots) < expected {
		return errors.Errorf("failed to evaluate %v: expected %v slots but had %v", kind, expected, len(slots))
	}
	return nil
}

//Build creates invoker for supplied members, single member is returned without links
func Build(members []*node.Node, opts ...Option) (Invoker, error) {
	if len(members) == 0 {
		return nil, errors.New("failed to build chain: members were empty")
	}
	buildOptions := newOptions(opts)
	slots := 0
	if buildOptions.positional {
		slots = assignSlots(members)
	}
	if len(members) == 1 {
		return &Single{node: members[0], positional: buildOptions.positional, slots: slots}, nil
	}
	var next link = &returnLink{node: members[len(members)-1]}
	for i := len(members) - 2; i >= 0; i-- {
		next = &discardLink{node: members[i], next: next}
	}
	linked := make([]*node.Node, len(members))
	copy(linked, members)
	return &Chain{head: next, members: linked, positional: buildOptions.positional, slots: slots}, nil
}

//assignSlots assigns 0..N-1 to members, then subsequent indexes to their ancestors
func assignSlots(members []*node.Node) int {
	for _, member := range members {
		for aNode := member; aNode != nil; aNode = aNode.Parent() {
			aNode.ClearSlot()
		}
	}
	for i, member := range members {
		member.SetSlot(i)
	}
	next := len(members)
	for _, member := range members {
		for aNode := member.Parent(); aNode != nil; aNode = aNode.Parent() {
			if _, ok := aNode.SlotIndex(); ok {
				break
			}
			aNode.SetSlot(next)
			next++
		}
	}
	return next
}
