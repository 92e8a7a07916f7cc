package shared

import "reflect"

//Elem returns the underlying non pointer type
func Elem(rType reflect.Type) reflect.Type {
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	return rType
}
