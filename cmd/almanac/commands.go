package main

import (
	"fmt"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"almanac/internal/almanac"
	"almanac/internal/puzzle"
)

func (c *cli) addRouteFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.config.From, "from", "", "Source category (default: first in the chain)")
	cmd.Flags().StringVar(&c.config.To, "to", "", "Target category (default: last in the chain)")
}

func (c *cli) options() almanac.Options {
	opts := almanac.DefaultOptions()
	opts.From = c.config.From
	opts.To = c.config.To

	if c.config.Workers > 0 {
		opts.Workers = c.config.Workers
	}

	return opts
}

// load reads an almanac and logs its warnings.
func (c *cli) load(path string) (*almanac.Almanac, error) {
	a, err := almanac.LoadAny(path)
	if err != nil {
		return nil, err
	}

	for _, w := range a.Diagnostics.Warnings {
		c.logger.Warn("Almanac warning", zap.String("file", path), zap.String("detail", w.String()))
	}

	for _, n := range a.Diagnostics.Infos {
		c.logger.Debug("Almanac note", zap.String("file", path), zap.String("detail", n.String()))
	}

	c.logger.Debug("Almanac loaded",
		zap.String("file", path),
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("blocks", len(a.Sections)))

	return a, nil
}

func (c *cli) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <day>.<part>",
		Short: "Run a registered puzzle against its input file",
		Long: `Runs the solver registered for <day>.<part> against
<data-dir>/dayNN/input.txt (or --input).

Example:
  almanac run 5.2 --data-dir data`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := puzzle.ParseSelector(args[0])
			if err != nil {
				return err
			}

			runner := puzzle.NewRunner(puzzle.Default(), c.config, c.logger)

			answer, err := runner.Run(cmd.Context(), sel)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Day %d part %d result: %d\n", sel.Day, sel.Part, answer)

			return nil
		},
	}

	cmd.Flags().StringVarP(&c.config.Input, "input", "i", "", "Input file (overrides --data-dir)")
	cmd.Flags().IntVarP(&c.config.Workers, "workers", "w", 1, "Goroutines used for range resolution")
	c.addRouteFlags(cmd)

	return cmd
}

func (c *cli) solveCmd() *cobra.Command {
	var part int

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Print the lowest location for an almanac file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.load(args[0])
			if err != nil {
				return err
			}

			var answer int64

			switch part {
			case 1:
				answer, err = almanac.SolvePart1(a, c.options())
			case 2:
				answer, err = almanac.SolvePart2(cmd.Context(), a, c.options())
			default:
				return fmt.Errorf("part must be 1 or 2, got %d", part)
			}

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer)

			return nil
		},
	}

	cmd.Flags().IntVarP(&part, "part", "p", 1, "Puzzle part: 1 (single seeds) or 2 (seed ranges)")
	cmd.Flags().IntVarP(&c.config.Workers, "workers", "w", 1, "Goroutines used for range resolution")
	c.addRouteFlags(cmd)

	return cmd
}

func (c *cli) lookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <file> <value>...",
		Short: "Trace values through every block of the route",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.load(args[0])
			if err != nil {
				return err
			}

			p, err := a.Route(c.config.From, c.config.To)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, arg := range args[1:] {
				v, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("value %q is not an integer: %w", arg, err)
				}

				fmt.Fprint(out, v)

				for _, step := range p.Trace(v) {
					fmt.Fprintf(out, " -> %d", step)
				}

				fmt.Fprintln(out)
			}

			return nil
		},
	}

	c.addRouteFlags(cmd)

	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Convert an almanac to YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.load(args[0])
			if err != nil {
				return err
			}

			if output != "" {
				return almanac.WriteYAMLFile(a, output)
			}

			data, err := almanac.Marshal(a)
			if err != nil {
				return fmt.Errorf("failed to marshal almanac: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write YAML to this file instead of stdout")

	return cmd
}

func (c *cli) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the parsed almanac structure for debugging",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.load(args[0])
			if err != nil {
				return err
			}

			cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
			cfg.Fdump(cmd.OutOrStdout(), a)

			return nil
		},
	}
}
