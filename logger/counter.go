package logger

import (
	"github.com/viant/gmetric/counter"
	"time"
)

type Counter interface {
	Begin(started time.Time) counter.OnDone
	IncrementValue(value interface{}) int64
}

func NewCounter(counter Counter) *CounterAdapter {
	return &CounterAdapter{
		counter: counter,
	}
}

//CounterAdapter wraps optional counter, nil adapter is a valid noop counter
type CounterAdapter struct {
	counter Counter
}

func (c *CounterAdapter) Enabled() bool {
	return c != nil && c.counter != nil
}

func (c *CounterAdapter) Begin(started time.Time) counter.OnDone {
	if !c.Enabled() {
		return nopOnDone
	}
	return c.counter.Begin(started)
}

func (c *CounterAdapter) IncrementValue(value interface{}) int64 {
	if !c.Enabled() {
		return 0
	}
	return c.counter.IncrementValue(value)
}

func nopOnDone(_ time.Time, _ ...interface{}) int64 {
	return 0
}
