package gopkg

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNames(t *testing.T) {
	got := Names()
	sort.Strings(got)
	want := []string{"math", "sort", "strconv", "strings"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestFunctions(t *testing.T) {
	fns, ok := Functions("strconv")
	if !ok {
		t.Fatal("strconv not registered")
	}
	itoa, ok := fns["Itoa"].(func(int) string)
	if !ok {
		t.Fatalf("Itoa has type %T", fns["Itoa"])
	}
	if got := itoa(42); got != "42" {
		t.Errorf("Itoa(42) = %q", got)
	}
	if _, ok := Functions("os"); ok {
		t.Error("os should not be exposed to scripts")
	}
}
