package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/godice"
	"github.com/spf13/cobra"
)

type app struct {
	roller  *godice.Roller
	presets godice.Presets
	kind    godice.Kind
	out     io.Writer
}

func newRootCmd(cfg config) *cobra.Command {
	var (
		kindName    string
		seed        int64
		presetsFile string
		script      string
		list        bool
	)
	cmd := &cobra.Command{
		Use:   "dice [notation|preset|scores]",
		Short: "Roll tabletop dice",
		Long: `Roll dice written as XdY?Z, where:
  X  is the number of dice to roll (default 1)
  dY is the kind of die, Y being the number of faces
  ?  is an optional operator (+ - x * / ÷) applied to the total
  Z  is the modifier used with the operator

If the argument is 'scores', six ability scores (4d6 - the lowest die)
are rolled. A preset name rolls the notation stored under that name.
Without an argument, notations are read one per line from stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := godice.ParseKind(kindName)
			if err != nil {
				return err
			}
			presets, err := godice.LoadPresets()
			if err != nil {
				return fmt.Errorf("load presets: %w", err)
			}
			if presetsFile != "" {
				if err := presets.LoadFile(presetsFile); err != nil {
					return fmt.Errorf("load presets: %w", err)
				}
			}
			var src godice.Source
			if seed != 0 {
				src = godice.NewSource(seed)
			}
			a := &app{
				roller:  godice.NewRoller(src),
				presets: presets,
				kind:    kind,
				out:     cmd.OutOrStdout(),
			}

			switch {
			case list:
				a.listPresets()
				return nil
			case script != "":
				ret, err := godice.RunScript(a.roller, script)
				if err != nil {
					return err
				}
				if ret != nil {
					fmt.Fprintln(a.out, ret)
				}
				return nil
			case len(args) == 1:
				return a.roll(args[0])
			}

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				a.repl(in)
				return nil
			}
			return a.rollLines(in)
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", cfg.Kind, "kind of roll: standard, critical, advantage, disadvantage, array, scores")
	cmd.Flags().Int64Var(&seed, "seed", cfg.Seed, "seed for reproducible rolls (0 means random)")
	cmd.Flags().StringVar(&presetsFile, "presets", cfg.Presets, "TOML file with extra presets")
	cmd.Flags().StringVarP(&script, "eval", "e", "", "run a dice script")
	cmd.Flags().BoolVar(&list, "list", false, "list presets")
	return cmd
}

func (a *app) roll(input string) error {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "scores") {
		res, err := a.roller.Roll(godice.Scores, godice.Spec{})
		if err != nil {
			return err
		}
		writeResult(a.out, input, res)
		return nil
	}
	spec, err := a.presets.Resolve(input)
	if err != nil {
		return err
	}
	res, err := a.roller.Roll(a.kind, spec)
	if err != nil {
		return err
	}
	writeResult(a.out, input, res)
	return nil
}

func (a *app) rollLines(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := a.roll(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (a *app) repl(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := a.roll(line); err != nil {
			log.Print(err)
		}
	}
}

func (a *app) listPresets() {
	for _, name := range a.presets.Names() {
		spec, _ := a.presets.Lookup(name)
		fmt.Fprintf(a.out, "%s\t%v\n", name, spec)
	}
}

func writeResult(w io.Writer, input string, res *godice.Result) {
	switch res.Kind {
	case godice.Scores:
		fmt.Fprintf(w, "Rolling: 6 (4d6 - lowest die)\nAllDice: %v\nRollSum: %v\n", res.Dice, res.Values)
	case godice.Standard, godice.Critical:
		fmt.Fprintf(w, "Rolling: %s (%v)\nAllDice: %v\nRollSum: %d\n", input, res.Kind, res.AllDice(), res.Values[0])
	default:
		fmt.Fprintf(w, "Rolling: %s (%v)\nAllDice: %v\nRollSum: %v\n", input, res.Kind, res.AllDice(), res.Values)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("dice: ")

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		log.Fatal(err)
	}
}
