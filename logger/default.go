package logger

import (
	"fmt"
)

type defaultLogger struct {
}

func (d *defaultLogger) NodeCreated() NodeCreated {
	return func(path string, dynamic bool) {
		fmt.Printf("[LOGGER] node created: %v, dynamic: %v \n", path, dynamic)
	}
}

func (d *defaultLogger) TailChanged() TailChanged {
	return func(path string, added bool) {
		if added {
			fmt.Printf("[LOGGER] covering tail added: %v \n", path)
			return
		}
		fmt.Printf("[LOGGER] covering tail evicted: %v \n", path)
	}
}

func (d *defaultLogger) AccessorBound() AccessorBound {
	return func(path, shape, kind string) {
		fmt.Printf("[LOGGER] accessor bound: %v, shape: %v, kind: %v \n", path, shape, kind)
	}
}

func (d *defaultLogger) Log() Log {
	return func(message string, args ...interface{}) {
		fmt.Printf("[LOGGER] "+message+"\n", args...)
	}
}
