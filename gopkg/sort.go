package gopkg

import (
	"reflect"
	"sort"
)

func init() {
	Packages["sort"] = map[string]reflect.Value{
		"Ints":          reflect.ValueOf(sort.Ints),
		"IntsAreSorted": reflect.ValueOf(sort.IntsAreSorted),
		"Slice":         reflect.ValueOf(sort.Slice),
		"SliceStable":   reflect.ValueOf(sort.SliceStable),
	}
}
