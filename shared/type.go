package shared

import (
	"math"
	"reflect"
)

//AsIndex returns int for any go integer kind value
func AsIndex(value interface{}) (int, bool) {
	switch actual := value.(type) {
	case int:
		return actual, true
	case int64:
		return int(actual), true
	case int32:
		return int(actual), true
	case int16:
		return int(actual), true
	case int8:
		return int(actual), true
	case uint:
		return asUint(uint64(actual))
	case uint64:
		return asUint(actual)
	case uint32:
		return int(actual), true
	case uint16:
		return int(actual), true
	case uint8:
		return int(actual), true
	}
	if value == nil {
		return 0, false
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rValue.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return asUint(rValue.Uint())
	}
	return 0, false
}

func asUint(value uint64) (int, bool) {
	if value > math.MaxInt {
		return 0, false
	}
	return int(value), true
}
