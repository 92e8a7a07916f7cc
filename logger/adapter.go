package logger

import (
	"github.com/viant/vpath/shared"
	"os"
)

//Adapter dispatches events to logger hooks, nil adapter is a valid noop logger
type Adapter struct {
	nodeCreated   NodeCreated
	tailChanged   TailChanged
	accessorBound AccessorBound
	log           Log
}

func (l *Adapter) NodeCreated(path string, dynamic bool) {
	if l == nil || l.nodeCreated == nil {
		return
	}
	l.nodeCreated(path, dynamic)
}

func (l *Adapter) TailChanged(path string, added bool) {
	if l == nil || l.tailChanged == nil {
		return
	}
	l.tailChanged(path, added)
}

func (l *Adapter) AccessorBound(path, shape, kind string) {
	if l == nil || l.accessorBound == nil {
		return
	}
	l.accessorBound(path, shape, kind)
}

func (l *Adapter) Log(message string, args ...interface{}) {
	if l == nil || l.log == nil {
		return
	}
	l.log(message, args...)
}

func NewLogger(logger Logger) *Adapter {
	if logger == nil {
		return &Adapter{}
	}

	return &Adapter{
		nodeCreated:   logger.NodeCreated(),
		tailChanged:   logger.TailChanged(),
		accessorBound: logger.AccessorBound(),
		log:           logger.Log(),
	}
}

//Default returns printing adapter when VPATH_DEBUG is set, noop adapter otherwise
func Default() *Adapter {
	if os.Getenv(shared.DebugEnvKey) == "" {
		return NewLogger(nil)
	}
	return Debug()
}

//Debug returns printing adapter
func Debug() *Adapter {
	return NewLogger(&defaultLogger{})
}
