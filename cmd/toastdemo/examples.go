package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/toastkit/internal/gallery"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

func examplesCmd() *cobra.Command {
	var (
		simulate bool
		step     time.Duration
		steps    int
	)

	cmd := &cobra.Command{
		Use:   "examples [slug...]",
		Short: "Print the usage examples",
		Long: `Print every gallery example with its code sample, or only the named
ones. With --simulate the examples are shown on an in-memory provider driven
by a manual clock and the visible toasts are printed after each step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := gallery.Load()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				selected := make(gallery.Catalog, 0, len(args))
				for _, slug := range args {
					e, err := catalog.Find(slug)
					if err != nil {
						return err
					}
					selected = append(selected, e)
				}
				catalog = selected
			}

			out := cmd.OutOrStdout()
			if simulate {
				return simulateExamples(out, catalog, step, steps)
			}
			printExamples(out, catalog)
			return nil
		},
	}

	cmd.Flags().BoolVar(&simulate, "simulate", false, "Run the examples on a manual clock")
	cmd.Flags().DurationVar(&step, "step", time.Second, "Clock step for --simulate")
	cmd.Flags().IntVar(&steps, "steps", 10, "Number of steps for --simulate")
	return cmd
}

func printExamples(out io.Writer, c gallery.Catalog) {
	for i, e := range c {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (%s)\n", e.Name, e.Slug)
		fmt.Fprintf(out, "  %s\n\n", e.Description)
		for _, line := range strings.Split(strings.TrimRight(e.Code, "\n"), "\n") {
			fmt.Fprintf(out, "    %s\n", line)
		}
	}
}

func simulateExamples(out io.Writer, c gallery.Catalog, step time.Duration, steps int) error {
	sched := toast.NewManualScheduler()
	p := toast.NewProvider(toast.DefaultConfig(),
		toast.WithScheduler(sched),
		toast.WithLogger(logger.Discard()),
	)
	defer p.Close()

	for _, e := range c {
		opts, err := e.Options()
		if err != nil {
			return err
		}
		if _, err := p.Show(opts); err != nil {
			return fmt.Errorf("example %q: %w", e.Slug, err)
		}
	}

	printSnapshot(out, sched.Elapsed(), p.Snapshot())
	for range steps {
		sched.Advance(step)
		printSnapshot(out, sched.Elapsed(), p.Snapshot())
	}
	return nil
}

func printSnapshot(out io.Writer, at time.Duration, snap toast.Snapshot) {
	fmt.Fprintf(out, "t=%-6s visible=%d\n", at, snap.Len())
	for _, pos := range toast.Positions() {
		toasts := snap.At(pos)
		if len(toasts) == 0 {
			continue
		}
		msgs := make([]string, len(toasts))
		for i, t := range toasts {
			msgs[i] = fmt.Sprintf("%s %q", t.Type, t.Message)
		}
		fmt.Fprintf(out, "  %-13s %s\n", pos, strings.Join(msgs, ", "))
	}
}
