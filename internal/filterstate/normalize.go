package filterstate

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Normalize turns raw filter values into query parameters. Unset values are
// dropped: nil, nil pointers, blank strings and plain zero numbers or false.
// A zero reached through a non-nil pointer was set on purpose and is kept.
func Normalize(values map[string]any) url.Values {
	out := url.Values{}
	for key, raw := range values {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if text, ok := encode(raw); ok {
			out.Set(key, text)
		}
	}
	return out
}

func encode(raw any) (string, bool) {
	if raw == nil {
		return "", false
	}

	v := reflect.ValueOf(raw)
	explicit := false
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
		explicit = true
	}

	if s, ok := v.Interface().(fmt.Stringer); ok && v.Kind() != reflect.String {
		text := strings.TrimSpace(s.String())
		return text, text != ""
	}

	switch v.Kind() {
	case reflect.String:
		text := strings.TrimSpace(v.String())
		return text, text != ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() == 0 && !explicit {
			return "", false
		}
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() == 0 && !explicit {
			return "", false
		}
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		if v.Float() == 0 && !explicit {
			return "", false
		}
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	case reflect.Bool:
		if !v.Bool() && !explicit {
			return "", false
		}
		return strconv.FormatBool(v.Bool()), true
	default:
		text := strings.TrimSpace(fmt.Sprint(v.Interface()))
		return text, text != ""
	}
}
