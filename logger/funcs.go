package logger

//Funcs adapts plain functions to Logger, handy for collecting events in tests
type Funcs struct {
	OnNodeCreated   NodeCreated
	OnTailChanged   TailChanged
	OnAccessorBound AccessorBound
	OnLog           Log
}

func (f *Funcs) NodeCreated() NodeCreated {
	return f.OnNodeCreated
}

func (f *Funcs) TailChanged() TailChanged {
	return f.OnTailChanged
}

func (f *Funcs) AccessorBound() AccessorBound {
	return f.OnAccessorBound
}

func (f *Funcs) Log() Log {
	return f.OnLog
}
