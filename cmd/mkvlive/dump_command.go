package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"mkvlive/internal/element"
	"mkvlive/internal/parser"
)

type dumpOptions struct {
	quiet bool
}

func newDumpCommand(ctx *commandContext) *cobra.Command {
	var opts dumpOptions

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Parse a Matroska file and render its element tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, ctx, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the parse trace and tree render; print only the summary")
	return cmd
}

func runDump(cmd *cobra.Command, ctx *commandContext, location string, opts dumpOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	src, err := openSource(cmd, location)
	if err != nil {
		return err
	}
	defer src.Close()

	parserOpts := parser.Options{
		MaxRepeated: cfg.Trace.MaxRepeatedElements,
	}
	if !opts.quiet {
		// The trace narrates the parse as it happens; the rendered tree
		// on stdout comes afterwards.
		parserOpts.Trace = cmd.ErrOrStderr()
	}

	p := parser.New(src, logger, parserOpts)
	root, err := p.Parse()
	if err != nil {
		return fmt.Errorf("parse %s: %w", location, err)
	}

	out := cmd.OutOrStdout()
	if !opts.quiet {
		fmt.Fprintln(out, renderTree(root))
	}
	fmt.Fprintln(out, renderSummary(root))
	return nil
}

// renderSummary builds the element-count table for one parsed tree.
func renderSummary(root *element.Master) string {
	counts := map[string]int{}
	var walk func(el element.Element)
	walk = func(el element.Element) {
		if m, ok := el.(*element.Master); ok {
			for _, child := range m.Children() {
				walk(child)
			}
			if m.ID() == 0 {
				return
			}
		}
		counts[el.Name()]++
	}
	walk(root)

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	total := 0
	for _, name := range names {
		rows = append(rows, []string{name, fmt.Sprintf("%d", counts[name])})
		total += counts[name]
	}
	rows = append(rows, []string{"total", fmt.Sprintf("%d", total)})

	return renderTable(
		[]string{"Element", "Count"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	)
}
