package node

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/viant/vpath/shared"
	"reflect"
	"sync/atomic"
	"time"
)

const noSlot = -1

// Node resolves one path segment against its parent value or the root context.
//
// Value caches the resolved value on the node for the current pass; it is not safe
// for concurrent use and Reset must be called before the next pass, otherwise the
// previous pass value is returned. ValueAt keeps values in caller owned Slots instead,
// so one node graph can be evaluated concurrently, each caller using its own Slots.
type Node struct {
	key     string
	expr    *Expression
	parent  *Node
	value   interface{}
	cached  bool
	binding atomic.Pointer[binding]
	slot    int
	tail    bool
	options *Options
}

//Key returns segment key, dynamic segment key is enclosed with parentheses
func (n *Node) Key() string {
	if n.expr != nil {
		return "(" + n.expr.Text + ")"
	}
	return n.key
}

//Path returns full dotted path reconstructed from parent links
func (n *Node) Path() string {
	if n.parent == nil {
		return n.Key()
	}
	return n.parent.Path() + "." + n.Key()
}

//Parent returns parent node, nil for root
func (n *Node) Parent() *Node {
	return n.parent
}

//IsRoot returns true if node resolves directly against context
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

//IsDynamic returns true if segment key is computed
func (n *Node) IsDynamic() bool {
	return n.expr != nil
}

//Expression returns dynamic segment expression
func (n *Node) Expression() *Expression {
	return n.expr
}

//IsTail returns true if node is the deepest point of a registered path
func (n *Node) IsTail() bool {
	return n.tail
}

func (n *Node) SetTail(tail bool) {
	n.tail = tail
}

//SlotIndex returns positional slot index
func (n *Node) SlotIndex() (int, bool) {
	return n.slot, n.slot != noSlot
}

func (n *Node) SetSlot(index int) {
	n.slot = index
}

func (n *Node) ClearSlot() {
	n.slot = noSlot
}

//Covers returns true if node is other node or its ancestor
func (n *Node) Covers(other *Node) bool {
	for candidate := other; candidate != nil; candidate = candidate.parent {
		if candidate == n {
			return true
		}
	}
	return false
}

//Cached returns value cached in the current pass
func (n *Node) Cached() (interface{}, bool) {
	return n.value, n.cached
}

//Reset clears node cached value
func (n *Node) Reset() {
	n.value = nil
	n.cached = false
}

//ResetAll clears cached values up to the root
func (n *Node) ResetAll() {
	for node := n; node != nil; node = node.parent {
		node.Reset()
	}
}

//Value resolves node in self cached mode
func (n *Node) Value(ctx interface{}) (interface{}, error) {
	if n.cached {
		return n.value, nil
	}
	base := ctx
	if n.parent != nil {
		var err error
		if base, err = n.parent.Value(ctx); err != nil {
			return nil, err
		}
	}
	value, err := n.resolve(ctx, base)
	if err != nil {
		return nil, err
	}
	n.value = value
	n.cached = true
	return value, nil
}

//ValueAt resolves node in positional mode, values are read from and written to slots
func (n *Node) ValueAt(ctx interface{}, slots Slots) (interface{}, error) {
	hasSlot := n.slot != noSlot
	if hasSlot {
		if n.slot >= len(slots) {
			return nil, errors.Errorf("failed to resolve %v: slot %v out of range [0:%v]", n.Path(), n.slot, len(slots))
		}
		if slot := slots[n.slot]; slot.Set {
			return slot.Value, nil
		}
	}
	base := ctx
	if n.parent != nil {
		var err error
		if base, err = n.parent.ValueAt(ctx, slots); err != nil {
			return nil, err
		}
	}
	value, err := n.resolve(ctx, base)
	if err != nil {
		return nil, err
	}
	if hasSlot {
		slots[n.slot] = Slot{Value: value, Set: true}
	}
	return value, nil
}

//Direct resolves node without reading or writing any cache
func (n *Node) Direct(ctx interface{}) (interface{}, error) {
	base := ctx
	if n.parent != nil {
		var err error
		if base, err = n.parent.Direct(ctx); err != nil {
			return nil, err
		}
	}
	return n.resolve(ctx, base)
}

func (n *Node) resolve(ctx, base interface{}) (interface{}, error) {
	if base == nil {
		return nil, &NullTargetError{Path: n.Path()}
	}
	if n.expr != nil {
		return n.resolveDynamic(ctx, base)
	}
	anAccessor, err := n.accessor(base, n.key)
	if err != nil {
		return nil, err
	}
	return n.invoke(anAccessor, base, 0)
}

func (n *Node) resolveDynamic(ctx, base interface{}) (interface{}, error) {
	evaluator, err := n.expr.Evaluator()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile dynamic key: %v", n.Path())
	}
	key, err := evaluator.Direct(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to evaluate dynamic key: %v", n.Path())
	}
	if name, ok := key.(string); ok {
		anAccessor, err := n.accessor(base, name)
		if err != nil {
			return nil, err
		}
		return n.invoke(anAccessor, base, 0)
	}
	index, ok := shared.AsIndex(key)
	if !ok {
		return nil, &BadDynamicKeyError{Path: n.Path(), Type: fmt.Sprintf("%T", key)}
	}
	anAccessor, err := n.indexAccessor(base, index)
	if err != nil {
		return nil, err
	}
	return n.invoke(anAccessor, base, index)
}

func (n *Node) accessor(base interface{}, key string) (*accessor, error) {
	rType := reflect.TypeOf(base)
	if bound := n.binding.Load(); bound != nil && bound.rType == rType && !bound.index && bound.key == key {
		return bound.accessor, nil
	}
	anAccessor := newAccessor(rType, key, n.options)
	if anAccessor == nil {
		return nil, &MissingFieldError{Path: n.Path(), Key: key, Type: rType.String()}
	}
	n.bind(&binding{rType: rType, key: key, accessor: anAccessor})
	return anAccessor, nil
}

func (n *Node) indexAccessor(base interface{}, index int) (*accessor, error) {
	rType := reflect.TypeOf(base)
	if bound := n.binding.Load(); bound != nil && bound.rType == rType && bound.index {
		return bound.accessor, nil
	}
	anAccessor := newIndexAccessor(rType)
	if anAccessor == nil {
		return nil, &MissingFieldError{Path: n.Path(), Key: fmt.Sprintf("[%v]", index), Type: rType.String()}
	}
	n.bind(&binding{rType: rType, index: true, accessor: anAccessor})
	return anAccessor, nil
}

func (n *Node) bind(aBinding *binding) {
	n.binding.Store(aBinding)
	n.options.Logger.AccessorBound(n.Path(), aBinding.rType.String(), aBinding.accessor.kind.String())
}

func (n *Node) invoke(anAccessor *accessor, base interface{}, index int) (value interface{}, err error) {
	options := n.options
	if options.Counter.Enabled() {
		onDone := options.Counter.Begin(time.Now())
		defer func() {
			if err != nil {
				onDone(time.Now(), err)
				return
			}
			onDone(time.Now())
		}()
	}
	if options.Metrics != nil {
		options.Metrics.Add(n.Path())
	}
	if anAccessor.kind == indexAccessor {
		value, err = anAccessor.valueAt(base, index)
	} else {
		value, err = anAccessor.value(base)
	}
	if err != nil {
		return nil, n.annotate(err)
	}
	return value, nil
}

func (n *Node) annotate(err error) error {
	switch actual := err.(type) {
	case *MissingFieldError:
		actual.Path = n.Path()
	case *IndexOutOfRangeError:
		actual.Path = n.Path()
	default:
		if err == errNilTarget {
			return &NullTargetError{Path: n.Path()}
		}
	}
	return err
}

//New creates literal segment node, root node when parent is nil
func New(key string, parent *Node, options *Options) *Node {
	return &Node{key: key, parent: parent, slot: noSlot, options: inherit(parent, options)}
}

//NewDynamic creates node with key computed by expression evaluated against root context
func NewDynamic(expr string, parent *Node, parser Parser, options *Options) *Node {
	return &Node{expr: NewExpression(expr, parser), parent: parent, slot: noSlot, options: inherit(parent, options)}
}

func inherit(parent *Node, options *Options) *Options {
	if options != nil {
		return options
	}
	if parent != nil {
		return parent.options
	}
	return NewOptions()
}
