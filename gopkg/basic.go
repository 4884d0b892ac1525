// Package gopkg holds the Go functions exposed to dice scripts, keyed by
// package name.
package gopkg

import (
	"reflect"
)

var Packages = map[string]map[string]reflect.Value{}

// Functions returns the functions of pkg as plain values, ready to be
// defined in a script environment.
func Functions(pkg string) (map[string]interface{}, bool) {
	values, ok := Packages[pkg]
	if !ok {
		return nil, false
	}
	fns := make(map[string]interface{}, len(values))
	for name, v := range values {
		fns[name] = v.Interface()
	}
	return fns, true
}

// Names returns the registered package names.
func Names() []string {
	names := make([]string, 0, len(Packages))
	for name := range Packages {
		names = append(names, name)
	}
	return names
}
