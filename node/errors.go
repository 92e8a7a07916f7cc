package node

import (
	"fmt"
	"github.com/pkg/errors"
)

var (
	ErrMissingField              = errors.New("missing field")
	ErrNullTarget                = errors.New("null target")
	ErrBadDynamicKey             = errors.New("bad dynamic key")
	ErrIndexOutOfRange           = errors.New("index out of range")
	ErrUnsupportedChainOperation = errors.New("unsupported chain operation")
)

type (
	//MissingFieldError reports key without accessor on a given type
	MissingFieldError struct {
		Path string
		Key  string
		Type string
	}

	//NullTargetError reports navigation through a nil intermediate value
	NullTargetError struct {
		Path string
	}

	//BadDynamicKeyError reports computed segment producing neither string nor integer
	BadDynamicKeyError struct {
		Path string
		Type string
	}

	//IndexOutOfRangeError reports computed index outside of sequence bounds
	IndexOutOfRangeError struct {
		Path  string
		Index int
		Len   int
	}

	//UnsupportedOperationError reports evaluation mode not supported by a chain
	UnsupportedOperationError struct {
		Chain     string
		Operation string
	}
)

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("failed to lookup field: %v on %v, path: %v", e.Key, e.Type, e.Path)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func (e *NullTargetError) Error() string {
	return fmt.Sprintf("failed to resolve %v: target was nil", e.Path)
}

func (e *NullTargetError) Is(target error) bool {
	return target == ErrNullTarget
}

func (e *BadDynamicKeyError) Error() string {
	return fmt.Sprintf("failed to resolve %v: unsupported dynamic key type: %v, expected string or integer", e.Path, e.Type)
}

func (e *BadDynamicKeyError) Is(target error) bool {
	return target == ErrBadDynamicKey
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("failed to resolve %v: index %v out of range [0:%v]", e.Path, e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation: %v on %v", e.Operation, e.Chain)
}

func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedChainOperation
}
