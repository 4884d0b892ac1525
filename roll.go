package godice

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidSpec    = errors.New("invalid dice spec")
	ErrUnknownKind    = errors.New("unknown roll kind")
	ErrOverflow       = errors.New("roll total overflows int")
)

// Kind selects how a Spec is evaluated.
type Kind int

const (
	Standard Kind = iota
	Critical
	Advantage
	Disadvantage
	Array
	Scores
)

var kindNames = [...]string{
	Standard:     "standard",
	Critical:     "critical",
	Advantage:    "advantage",
	Disadvantage: "disadvantage",
	Array:        "array",
	Scores:       "scores",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

type Policy func(*Roller, Spec) (*Result, error)

var (
	kinds    map[string]Kind
	policies map[Kind]Policy
)

func init() {
	kinds = make(map[string]Kind)
	for k, name := range kindNames {
		kinds[name] = Kind(k)
	}
	kinds["stand"] = Standard
	kinds["crit"] = Critical
	kinds["advan"] = Advantage
	kinds["disad"] = Disadvantage

	policies = make(map[Kind]Policy)
	policies[Standard] = doStandard
	policies[Critical] = doCritical
	policies[Advantage] = doAdvantage
	policies[Disadvantage] = doDisadvantage
	policies[Array] = doArray
	policies[Scores] = doScores
}

// ParseKind looks up a roll kind by name. Both the full names and the
// short forms (stand, crit, advan, disad) are accepted.
func ParseKind(name string) (Kind, error) {
	k, ok := kinds[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Result is the outcome of a single Roll call.
//
// Dice holds the raw draws of every evaluation group and Values the
// matching totals after the operator was applied, in the same order.
type Result struct {
	Spec   Spec
	Kind   Kind
	Dice   [][]int
	Values []int
}

// AllDice returns every draw in a single slice.
func (r *Result) AllDice() []int {
	var all []int
	for _, d := range r.Dice {
		all = append(all, d...)
	}
	return all
}

func (r *Result) Sum() int {
	total := 0
	for _, v := range r.Values {
		total += v
	}
	return total
}

// Roller evaluates specs against a Source.
type Roller struct {
	src Source
}

// NewRoller returns a Roller drawing from src. A nil src gets a source
// seeded from crypto/rand.
func NewRoller(src Source) *Roller {
	if src == nil {
		seed, err := NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		src = NewSource(seed)
	}
	return &Roller{src: src}
}

// Die rolls a single die and returns a value in [1, faces]. faces must be
// positive.
func (r *Roller) Die(faces int) int {
	return r.src.Intn(faces) + 1
}

func (r *Roller) dice(count, faces int) []int {
	results := make([]int, count)
	for i := range results {
		results[i] = r.Die(faces)
	}
	return results
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func apply(op Operator, total, modifier int) (int, error) {
	switch op {
	case Subtract:
		if (modifier < 0 && total > math.MaxInt+modifier) || (modifier > 0 && total < math.MinInt+modifier) {
			return 0, ErrOverflow
		}
		return total - modifier, nil
	case Multiply:
		if total == 0 || modifier == 0 {
			return 0, nil
		}
		v := total * modifier
		if v/modifier != total || (total == -1 && modifier == math.MinInt) || (modifier == -1 && total == math.MinInt) {
			return 0, ErrOverflow
		}
		return v, nil
	case Divide:
		if modifier == 0 {
			return 0, ErrDivisionByZero
		}
		if modifier == -1 && total == math.MinInt {
			return 0, ErrOverflow
		}
		return floorDiv(total, modifier), nil
	default:
		if (modifier > 0 && total > math.MaxInt-modifier) || (modifier < 0 && total < math.MinInt-modifier) {
			return 0, ErrOverflow
		}
		return total + modifier, nil
	}
}

// floorDiv rounds toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Roll evaluates spec under the given kind.
func (r *Roller) Roll(kind Kind, spec Spec) (*Result, error) {
	fn, ok := policies[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if kind != Scores && (spec.Count < 1 || spec.Faces < 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, spec)
	}
	return fn(r, spec)
}

// RollString parses notation and evaluates it under kind.
func (r *Roller) RollString(kind Kind, notation string) (*Result, error) {
	if kind == Scores {
		return r.Roll(kind, Spec{})
	}
	spec, err := Parse(notation)
	if err != nil {
		return nil, err
	}
	return r.Roll(kind, spec)
}

func doStandard(r *Roller, spec Spec) (*Result, error) {
	rolled := r.dice(spec.Count, spec.Faces)
	v, err := apply(spec.Operator, sum(rolled), spec.Modifier)
	if err != nil {
		return nil, err
	}
	return &Result{
		Spec:   spec,
		Kind:   Standard,
		Dice:   [][]int{rolled},
		Values: []int{v},
	}, nil
}

// doCritical doubles the dice pool, not the total: the operator is
// applied once to the combined sum.
func doCritical(r *Roller, spec Spec) (*Result, error) {
	first := r.dice(spec.Count, spec.Faces)
	second := r.dice(spec.Count, spec.Faces)
	v, err := apply(spec.Operator, sum(first)+sum(second), spec.Modifier)
	if err != nil {
		return nil, err
	}
	return &Result{
		Spec:   spec,
		Kind:   Critical,
		Dice:   [][]int{append(first, second...)},
		Values: []int{v},
	}, nil
}

func rollTwice(r *Roller, spec Spec, kind Kind, less func(a, b int) bool) (*Result, error) {
	res := &Result{Spec: spec, Kind: kind}
	for i := 0; i < 2; i++ {
		one, err := doStandard(r, spec)
		if err != nil {
			return nil, err
		}
		res.Dice = append(res.Dice, one.Dice[0])
		res.Values = append(res.Values, one.Values[0])
	}
	sortGroups(res, less)
	return res, nil
}

func doAdvantage(r *Roller, spec Spec) (*Result, error) {
	return rollTwice(r, spec, Advantage, func(a, b int) bool { return a > b })
}

func doDisadvantage(r *Roller, spec Spec) (*Result, error) {
	return rollTwice(r, spec, Disadvantage, func(a, b int) bool { return a < b })
}

// doArray rolls Count single dice and applies the operator to each one
// separately. Values keep draw order.
func doArray(r *Roller, spec Spec) (*Result, error) {
	single := spec
	single.Count = 1
	res := &Result{
		Spec:   spec,
		Kind:   Array,
		Dice:   make([][]int, 0, spec.Count),
		Values: make([]int, 0, spec.Count),
	}
	for i := 0; i < spec.Count; i++ {
		one, err := doStandard(r, single)
		if err != nil {
			return nil, err
		}
		res.Dice = append(res.Dice, one.Dice[0])
		res.Values = append(res.Values, one.Values[0])
	}
	return res, nil
}

var abilitySpec = Spec{Count: 4, Faces: 6, Operator: Add}

const abilityGroups = 6

// doScores rolls six groups of 4d6 and keeps the best three dice of
// each group. The spec argument is ignored.
func doScores(r *Roller, _ Spec) (*Result, error) {
	res := &Result{
		Spec:   abilitySpec,
		Kind:   Scores,
		Dice:   make([][]int, 0, abilityGroups),
		Values: make([]int, 0, abilityGroups),
	}
	for i := 0; i < abilityGroups; i++ {
		group, err := doArray(r, abilitySpec)
		if err != nil {
			return nil, err
		}
		rolled := group.Values
		res.Dice = append(res.Dice, rolled)
		res.Values = append(res.Values, dropLowest(rolled))
	}
	sortGroups(res, func(a, b int) bool { return a > b })
	return res, nil
}

func dropLowest(rolled []int) int {
	if len(rolled) == 0 {
		return 0
	}
	lowest := rolled[0]
	for _, v := range rolled[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return sum(rolled) - lowest
}

type groupSorter struct {
	res  *Result
	less func(a, b int) bool
}

func (s groupSorter) Len() int           { return len(s.res.Values) }
func (s groupSorter) Less(i, j int) bool { return s.less(s.res.Values[i], s.res.Values[j]) }
func (s groupSorter) Swap(i, j int) {
	s.res.Values[i], s.res.Values[j] = s.res.Values[j], s.res.Values[i]
	s.res.Dice[i], s.res.Dice[j] = s.res.Dice[j], s.res.Dice[i]
}

// sortGroups orders Values by less and keeps Dice aligned with them.
func sortGroups(res *Result, less func(a, b int) bool) {
	sort.Stable(groupSorter{res: res, less: less})
}

// Total rolls Count dice and applies the operator once to their sum.
func (r *Roller) Total(spec Spec) (int, error) {
	res, err := r.Roll(Standard, spec)
	if err != nil {
		return 0, err
	}
	return res.Values[0], nil
}

// Critical rolls twice the dice pool and applies the operator once.
func (r *Roller) Critical(spec Spec) (int, error) {
	res, err := r.Roll(Critical, spec)
	if err != nil {
		return 0, err
	}
	return res.Values[0], nil
}

// Advantage returns two independent totals, highest first.
func (r *Roller) Advantage(spec Spec) ([2]int, error) {
	return r.pair(Advantage, spec)
}

// Disadvantage returns two independent totals, lowest first.
func (r *Roller) Disadvantage(spec Spec) ([2]int, error) {
	return r.pair(Disadvantage, spec)
}

func (r *Roller) pair(kind Kind, spec Spec) ([2]int, error) {
	res, err := r.Roll(kind, spec)
	if err != nil {
		return [2]int{}, err
	}
	return [2]int{res.Values[0], res.Values[1]}, nil
}

// Array returns Count single-die totals in draw order, each with the
// operator applied.
func (r *Roller) Array(spec Spec) ([]int, error) {
	res, err := r.Roll(Array, spec)
	if err != nil {
		return nil, err
	}
	return res.Values, nil
}

// AbilityScores returns six 4d6-drop-lowest scores, highest first.
func (r *Roller) AbilityScores() [6]int {
	var scores [6]int
	// 4d6 with no modifier cannot fail.
	res, _ := r.Roll(Scores, Spec{})
	copy(scores[:], res.Values)
	return scores
}

// AbilityGroup is one ability score with the four dice it came from.
type AbilityGroup struct {
	Dice  []int
	Score int
}

// AbilityGroups rolls ability scores like AbilityScores and keeps the raw
// dice of every group, highest score first.
func (r *Roller) AbilityGroups() []AbilityGroup {
	res, _ := r.Roll(Scores, Spec{})
	groups := make([]AbilityGroup, len(res.Values))
	for i, v := range res.Values {
		groups[i] = AbilityGroup{Dice: res.Dice[i], Score: v}
	}
	return groups
}

func (r *Roller) TotalString(notation string) (int, error) {
	spec, err := Parse(notation)
	if err != nil {
		return 0, err
	}
	return r.Total(spec)
}

func (r *Roller) CriticalString(notation string) (int, error) {
	spec, err := Parse(notation)
	if err != nil {
		return 0, err
	}
	return r.Critical(spec)
}

func (r *Roller) AdvantageString(notation string) ([2]int, error) {
	spec, err := Parse(notation)
	if err != nil {
		return [2]int{}, err
	}
	return r.Advantage(spec)
}

func (r *Roller) DisadvantageString(notation string) ([2]int, error) {
	spec, err := Parse(notation)
	if err != nil {
		return [2]int{}, err
	}
	return r.Disadvantage(spec)
}

func (r *Roller) ArrayString(notation string) ([]int, error) {
	spec, err := Parse(notation)
	if err != nil {
		return nil, err
	}
	return r.Array(spec)
}
