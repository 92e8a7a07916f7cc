package logger

type NodeCreated func(path string, dynamic bool)
type TailChanged func(path string, added bool)
type AccessorBound func(path, shape, kind string)
type Log func(message string, args ...interface{})

//Logger provides optional diagnostics hooks, nil hook disables given event
type Logger interface {
	NodeCreated() NodeCreated
	TailChanged() TailChanged
	AccessorBound() AccessorBound
	Log() Log
}
