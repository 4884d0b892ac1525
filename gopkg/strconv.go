package gopkg

import (
	"reflect"
	"strconv"
)

func init() {
	Packages["strconv"] = map[string]reflect.Value{
		"FormatInt": reflect.ValueOf(strconv.FormatInt),
		"Itoa":      reflect.ValueOf(strconv.Itoa),
		"Atoi":      reflect.ValueOf(strconv.Atoi),
		"ParseInt":  reflect.ValueOf(strconv.ParseInt),
		"Quote":     reflect.ValueOf(strconv.Quote),
	}
}
