package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// ModelValues maps the `query`-tagged exported fields of a struct to their
// raw values. Pointer fields are passed through untouched so callers can tell
// "unset" from zero.
func ModelValues(model any) (map[string]any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	out := make(map[string]any, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("query"))
		if tag == "" || tag == "-" {
			continue
		}
		key := strings.TrimSpace(strings.Split(tag, ",")[0])
		if key == "" || key == "-" {
			continue
		}
		out[key] = value.Field(i).Interface()
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("model has no query fields")
	}
	return out, nil
}
