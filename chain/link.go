package chain

import "github.com/viant/vpath/node"

type (
	link interface {
		value(ctx interface{}) (interface{}, error)
		valueAt(ctx interface{}, slots node.Slots) (interface{}, error)
	}

	//discardLink evaluates its node, then delegates to the next link
	discardLink struct {
		node *node.Node
		next link
	}

	//returnLink evaluates its node and returns the value
	returnLink struct {
		node *node.Node
	}
)

func (l *discardLink) value(ctx interface{}) (interface{}, error) {
	if _, err := l.node.Value(ctx); err != nil {
		return nil, err
	}
	return l.next.value(ctx)
}

func (l *discardLink) valueAt(ctx interface{}, slots node.Slots) (interface{}, error) {
	if _, err := l.node.ValueAt(ctx, slots); err != nil {
		return nil, err
	}
	return l.next.valueAt(ctx, slots)
}

func (l *returnLink) value(ctx interface{}) (interface{}, error) {
	return l.node.Value(ctx)
}

func (l *returnLink) valueAt(ctx interface{}, slots node.Slots) (interface{}, error) {
	return l.node.ValueAt(ctx, slots)
}
