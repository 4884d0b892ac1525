package godice

import (
	"fmt"

	"github.com/mattn/anko/env"
	"github.com/mattn/anko/vm"
	"github.com/mattn/godice/gopkg"
)

// scriptHost keeps the first dice error raised by a script function.
// anko reports a failed call with its own error type, so the original
// error is returned from here instead.
type scriptHost struct {
	r   *Roller
	err error
}

func (h *scriptHost) must(err error) {
	if err == nil {
		return
	}
	if h.err == nil {
		h.err = err
	}
	panic(err)
}

func toInt64s(values []int) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}

// newScriptEnv returns an anko environment with the dice functions and
// the gopkg tables defined. All draws go through h.r.
func newScriptEnv(h *scriptHost) (*env.Env, error) {
	r, must := h.r, h.must
	e := env.NewEnv()
	fns := map[string]interface{}{
		"roll": func(notation string) int64 {
			v, err := r.TotalString(notation)
			must(err)
			return int64(v)
		},
		"crit": func(notation string) int64 {
			v, err := r.CriticalString(notation)
			must(err)
			return int64(v)
		},
		"advantage": func(notation string) []int64 {
			v, err := r.AdvantageString(notation)
			must(err)
			return toInt64s(v[:])
		},
		"disadvantage": func(notation string) []int64 {
			v, err := r.DisadvantageString(notation)
			must(err)
			return toInt64s(v[:])
		},
		"array": func(notation string) []int64 {
			v, err := r.ArrayString(notation)
			must(err)
			return toInt64s(v)
		},
		"scores": func() []int64 {
			v := r.AbilityScores()
			return toInt64s(v[:])
		},
		"die": func(faces int64) int64 {
			if faces < 1 {
				must(fmt.Errorf("%w: d%d", ErrInvalidSpec, faces))
			}
			return int64(r.Die(int(faces)))
		},
		"parse": func(notation string) string {
			spec, err := Parse(notation)
			must(err)
			return spec.String()
		},
	}
	for name, fn := range fns {
		if err := e.Define(name, fn); err != nil {
			return nil, fmt.Errorf("define %s: %w", name, err)
		}
	}
	for _, pkg := range gopkg.Names() {
		values, _ := gopkg.Functions(pkg)
		if err := e.Define(pkg, values); err != nil {
			return nil, fmt.Errorf("define %s: %w", pkg, err)
		}
	}
	return e, nil
}

// RunScript executes src and returns the value of its last expression.
// An error from a dice function is returned as is.
func RunScript(r *Roller, src string) (interface{}, error) {
	h := &scriptHost{r: r}
	e, err := newScriptEnv(h)
	if err != nil {
		return nil, err
	}
	ret, err := vm.Execute(e, nil, src)
	if err != nil {
		if h.err != nil {
			return nil, h.err
		}
		return nil, err
	}
	return ret, nil
}
