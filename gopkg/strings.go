package gopkg

import (
	"reflect"
	"strings"
)

func init() {
	Packages["strings"] = map[string]reflect.Value{
		"Join":      reflect.ValueOf(strings.Join),
		"Repeat":    reflect.ValueOf(strings.Repeat),
		"ToLower":   reflect.ValueOf(strings.ToLower),
		"ToUpper":   reflect.ValueOf(strings.ToUpper),
		"TrimSpace": reflect.ValueOf(strings.TrimSpace),
	}
}
