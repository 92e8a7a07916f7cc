package shared

import (
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"reflect"
	"strings"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

//MatchField returns exported struct field matching key, nil if none
func MatchField(rType reflect.Type, key string, sourceCase text.CaseFormat) *xunsafe.Field {
	rType = Elem(rType)
	if rType.Kind() != reflect.Struct || key == "" {
		return nil
	}
	upperCamelName := upperCamel(key, sourceCase)
	if sField, ok := rType.FieldByName(upperCamelName); ok && sField.IsExported() && len(sField.Index) == 1 {
		return xunsafe.NewField(sField)
	}
	name := strings.ToLower(key)
	for i := 0; i < rType.NumField(); i++ {
		sField := rType.Field(i)
		if !sField.IsExported() {
			continue
		}
		if doesTagMatch(sField.Tag, name) {
			return xunsafe.NewField(sField)
		}
	}
	for i := 0; i < rType.NumField(); i++ {
		sField := rType.Field(i)
		if !sField.IsExported() {
			continue
		}
		if strings.ToLower(sField.Name) == name {
			return xunsafe.NewField(sField)
		}
	}
	return nil
}

//MatchGetter returns no argument method named after key (Key or GetKey)
func MatchGetter(rType reflect.Type, key string, sourceCase text.CaseFormat) (reflect.Method, bool) {
	if key == "" {
		return reflect.Method{}, false
	}
	name := upperCamel(key, sourceCase)
	for _, candidate := range []string{name, "Get" + name} {
		method, ok := rType.MethodByName(candidate)
		if !ok {
			continue
		}
		if isGetter(method.Type) {
			return method, true
		}
	}
	return reflect.Method{}, false
}

func isGetter(fnType reflect.Type) bool {
	if fnType.NumIn() != 1 || fnType.IsVariadic() {
		return false
	}
	switch fnType.NumOut() {
	case 1:
		return true
	case 2:
		return fnType.Out(1) == errorType
	}
	return false
}

func upperCamel(key string, sourceCase text.CaseFormat) string {
	if !sourceCase.IsDefined() {
		sourceCase = text.DetectCaseFormat(key)
	}
	if !sourceCase.IsDefined() {
		return key
	}
	return sourceCase.Format(key, text.CaseFormatUpperCamel)
}

func doesTagMatch(tag reflect.StructTag, name string) bool {
	jsonTag, ok := tag.Lookup("json")
	if !ok {
		return false
	}
	if index := strings.Index(jsonTag, ","); index != -1 {
		jsonTag = jsonTag[:index]
	}
	if jsonTag == "" || jsonTag == "-" {
		return false
	}
	return strings.ToLower(jsonTag) == name
}
