package gopkg

import (
	"math"
	"reflect"
)

func init() {
	Packages["math"] = map[string]reflect.Value{
		"Abs":   reflect.ValueOf(math.Abs),
		"Ceil":  reflect.ValueOf(math.Ceil),
		"Floor": reflect.ValueOf(math.Floor),
		"Max":   reflect.ValueOf(math.Max),
		"Min":   reflect.ValueOf(math.Min),
	}
}
