package godice

import (
	"errors"
	"fmt"
	"testing"
)

func TestRunScript(t *testing.T) {
	tests := []struct {
		src   string
		faces []int
		want  string
	}{
		{src: `roll("2d6+2")`, faces: []int{3, 4}, want: "9"},
		{src: `roll("1d20") + 5`, faces: []int{10}, want: "15"},
		{src: `crit("1d8+1")`, faces: []int{2, 7}, want: "10"},
		{src: `advantage("1d20")[0]`, faces: []int{4, 17}, want: "17"},
		{src: `disadvantage("1d20")[0]`, faces: []int{4, 17}, want: "4"},
		{src: `len(array("3d4"))`, faces: []int{1}, want: "3"},
		{src: `len(scores())`, faces: []int{1}, want: "6"},
		{src: `die(6)`, faces: []int{5}, want: "5"},
		{src: `strings.ToUpper(parse("d6+1"))`, faces: []int{1}, want: "1D6+1"},
		{src: `parse("D20 - 1")`, faces: []int{1}, want: "1d20-1"},
		{src: "r = roll(\"1d20+3\")\nr >= 15", faces: []int{12}, want: "true"},
	}
	for _, test := range tests {
		ret, err := RunScript(fixed(test.faces...), test.src)
		if err != nil {
			t.Errorf("RunScript(%q) returned error: %v", test.src, err)
			continue
		}
		if got := fmt.Sprint(ret); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.src, got)
		}
	}
}

func TestRunScriptErrors(t *testing.T) {
	tests := []struct {
		src  string
		want error
	}{
		{src: `roll("no dice")`, want: ErrMissingFaces},
		{src: `roll("1d6/0")`, want: ErrDivisionByZero},
		{src: `array("2d6÷0")`, want: ErrDivisionByZero},
		{src: `crit("1d6+")`, want: ErrMissingModifier},
		{src: `die(0)`, want: ErrInvalidSpec},
		{src: `parse("1d6 extra")`, want: ErrUnexpectedToken},
	}
	for _, test := range tests {
		_, err := RunScript(NewRoller(NewSource(1)), test.src)
		if !errors.Is(err, test.want) {
			t.Errorf("RunScript(%q) error = %v, want %v", test.src, err, test.want)
		}
	}
}

func TestRunScriptSyntaxError(t *testing.T) {
	if _, err := RunScript(NewRoller(NewSource(1)), `roll(`); err == nil {
		t.Error("RunScript accepted a broken script")
	}
}
