package node

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/viant/vpath/shared"
	"github.com/viant/xreflect"
	"github.com/viant/xunsafe"
	"reflect"
)

type accessorKind int

const (
	mapAccessor accessorKind = iota
	propertyAccessor
	fieldAccessor
	getterAccessor
	indexAccessor
)

func (k accessorKind) String() string {
	switch k {
	case mapAccessor:
		return "map"
	case propertyAccessor:
		return "property"
	case fieldAccessor:
		return "field"
	case getterAccessor:
		return "getter"
	case indexAccessor:
		return "index"
	}
	return "unknown"
}

//Properties represents named property access capability
type Properties interface {
	Property(name string) (interface{}, bool)
}

var propertiesType = reflect.TypeOf((*Properties)(nil)).Elem()

type (
	accessor struct {
		kind   accessorKind
		key    string
		rType  reflect.Type
		isPtr  bool
		xField *xunsafe.Field
		method reflect.Method
		xSlice *xunsafe.Slice
	}

	//binding memoizes accessor chosen for the last seen shape
	binding struct {
		rType    reflect.Type
		key      string
		index    bool
		accessor *accessor
	}
)

//errNilTarget signals typed nil base, node converts it into NullTargetError
var errNilTarget = errors.New("nil target")

func newAccessor(rType reflect.Type, key string, options *Options) *accessor {
	if rType.Kind() == reflect.Map && rType.Key().Kind() == reflect.String {
		return &accessor{kind: mapAccessor, key: key, rType: rType}
	}
	if rType.Implements(propertiesType) {
		return &accessor{kind: propertyAccessor, key: key, rType: rType}
	}
	isPtr := rType.Kind() == reflect.Ptr
	structType := rType
	if isPtr {
		structType = rType.Elem()
	}
	if structType.Kind() == reflect.Struct {
		if xField := shared.MatchField(structType, key, options.CaseFormat); xField != nil {
			return &accessor{kind: fieldAccessor, key: key, rType: rType, isPtr: isPtr, xField: xField}
		}
	}
	if options.Getters {
		if method, ok := shared.MatchGetter(rType, key, options.CaseFormat); ok {
			return &accessor{kind: getterAccessor, key: key, rType: rType, isPtr: isPtr, method: method}
		}
	}
	return nil
}

func newIndexAccessor(rType reflect.Type) *accessor {
	switch rType.Kind() {
	case reflect.Slice:
		return &accessor{kind: indexAccessor, rType: rType, xSlice: xunsafe.NewSlice(rType)}
	case reflect.Array:
		return &accessor{kind: indexAccessor, rType: rType}
	}
	return nil
}

func (a *accessor) value(base interface{}) (interface{}, error) {
	switch a.kind {
	case mapAccessor:
		return a.mapValue(base)
	case propertyAccessor:
		if isNilPointer(base) {
			return nil, errNilTarget
		}
		value, ok := base.(Properties).Property(a.key)
		if !ok {
			return nil, &MissingFieldError{Key: a.key, Type: a.rType.String()}
		}
		return value, nil
	case fieldAccessor:
		if !a.isPtr {
			return reflect.ValueOf(base).FieldByName(a.xField.Name).Interface(), nil
		}
		ptr := xunsafe.AsPointer(base)
		if ptr == nil {
			return nil, errNilTarget
		}
		return a.xField.Value(ptr), nil
	case getterAccessor:
		return a.call(base)
	}
	return nil, fmt.Errorf("unsupported accessor kind: %v", a.kind)
}

func (a *accessor) mapValue(base interface{}) (interface{}, error) {
	if aMap, ok := base.(map[string]interface{}); ok {
		if aMap == nil {
			return nil, errNilTarget
		}
		return aMap[a.key], nil
	}
	mapValue := reflect.ValueOf(base)
	if mapValue.IsNil() {
		return nil, errNilTarget
	}
	key := reflect.ValueOf(a.key)
	if keyType := a.rType.Key(); keyType != xreflect.StringType {
		key = key.Convert(keyType)
	}
	value := mapValue.MapIndex(key)
	if !value.IsValid() {
		return nil, nil
	}
	return value.Interface(), nil
}

func (a *accessor) call(base interface{}) (interface{}, error) {
	receiver := reflect.ValueOf(base)
	if a.isPtr && receiver.IsNil() {
		return nil, errNilTarget
	}
	output := a.method.Func.Call([]reflect.Value{receiver})
	if len(output) == 2 && !output[1].IsNil() {
		return nil, errors.Wrapf(output[1].Interface().(error), "failed to call %v.%v", a.rType.String(), a.method.Name)
	}
	return output[0].Interface(), nil
}

func (a *accessor) valueAt(base interface{}, index int) (interface{}, error) {
	var length int
	if a.xSlice != nil {
		ptr := xunsafe.AsPointer(base)
		length = a.xSlice.Len(ptr)
		if index < 0 || index >= length {
			return nil, &IndexOutOfRangeError{Index: index, Len: length}
		}
		return a.xSlice.ValueAt(ptr, index), nil
	}
	array := reflect.ValueOf(base)
	length = array.Len()
	if index < 0 || index >= length {
		return nil, &IndexOutOfRangeError{Index: index, Len: length}
	}
	return array.Index(index).Interface(), nil
}

func isNilPointer(value interface{}) bool {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rValue.IsNil()
	}
	return false
}
