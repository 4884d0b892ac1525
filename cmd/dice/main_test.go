package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(config{Kind: "standard"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRollStandard(t *testing.T) {
	got, err := run(t, "", "--seed", "1", "2d1+3")
	if err != nil {
		t.Fatal(err)
	}
	want := "Rolling: 2d1+3 (standard)\nAllDice: [1 1]\nRollSum: 5\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRollKinds(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{kind: "crit", want: "Rolling: 1d1+1 (critical)\nAllDice: [1 1]\nRollSum: 3\n"},
		{kind: "advan", want: "Rolling: 1d1+1 (advantage)\nAllDice: [1 1]\nRollSum: [2 2]\n"},
		{kind: "disadvantage", want: "Rolling: 1d1+1 (disadvantage)\nAllDice: [1 1]\nRollSum: [2 2]\n"},
		{kind: "array", want: "Rolling: 1d1+1 (array)\nAllDice: [1]\nRollSum: [2]\n"},
	}
	for _, test := range tests {
		got, err := run(t, "", "-k", test.kind, "1d1+1")
		if err != nil {
			t.Errorf("kind %s: %v", test.kind, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("kind %s output mismatch (-want +got):\n%s", test.kind, diff)
		}
	}
}

func TestRollScores(t *testing.T) {
	got, err := run(t, "", "--seed", "5", "scores")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	if lines[0] != "Rolling: 6 (4d6 - lowest die)" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "AllDice: [[") || !strings.HasPrefix(lines[2], "RollSum: [") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestRollPreset(t *testing.T) {
	got, err := run(t, "", "--seed", "2", "fireball")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "Rolling: fireball (standard)\n") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestRollSeedIsReproducible(t *testing.T) {
	first, err := run(t, "", "--seed", "42", "4d20+2")
	if err != nil {
		t.Fatal(err)
	}
	second, err := run(t, "", "--seed", "42", "4d20+2")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same seed produced different output:\n%s\n%s", first, second)
	}
}

func TestRollLinesFromStdin(t *testing.T) {
	got, err := run(t, "1d1\n\n1d1x4\n")
	if err != nil {
		t.Fatal(err)
	}
	want := "Rolling: 1d1 (standard)\nAllDice: [1]\nRollSum: 1\n" +
		"Rolling: 1d1x4 (standard)\nAllDice: [1]\nRollSum: 4\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRollErrors(t *testing.T) {
	for _, args := range [][]string{
		{"no dice here"},
		{"1d6/0"},
		{"-k", "exploding", "1d6"},
		{"1d6", "1d8"},
	} {
		if _, err := run(t, "", args...); err == nil {
			t.Errorf("dice %q returned no error", args)
		}
	}
}

func TestEval(t *testing.T) {
	got, err := run(t, "", "-e", `roll("3d1+1")`)
	if err != nil {
		t.Fatal(err)
	}
	if got != "4\n" {
		t.Errorf("got %q, want %q", got, "4\n")
	}
}

func TestListPresets(t *testing.T) {
	got, err := run(t, "", "--list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "fireball\t8d6\n") {
		t.Errorf("fireball missing from:\n%s", got)
	}
}

func TestRollKindScores(t *testing.T) {
	got, err := run(t, "", "--seed", "5", "-k", "scores", "1d6")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "Rolling: 6 (4d6 - lowest die)\nAllDice: [[") {
		t.Errorf("unexpected output:\n%s", got)
	}
	usage := newRootCmd(config{Kind: "standard"}).Flags().Lookup("kind").Usage
	if !strings.Contains(usage, "scores") {
		t.Errorf("--kind usage %q does not list scores", usage)
	}
}
