package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/spf13/cobra"

	"mkvlive/internal/element"
	"mkvlive/internal/parser"
)

// Matroska's default when the Info element carries no TimecodeScale.
const defaultTimecodeScale = 1_000_000

func newTagsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tags <file>",
		Short: "Print the stream length and Tags subtree of a Matroska file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTags(cmd, ctx, args[0])
		},
	}
}

func runTags(cmd *cobra.Command, ctx *commandContext, location string) error {
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	src, err := openSource(cmd, location)
	if err != nil {
		return err
	}
	defer src.Close()

	p := parser.New(src, logger, parser.Options{})
	root, err := p.Parse()
	if err != nil {
		return fmt.Errorf("parse %s: %w", location, err)
	}

	segment := root.FindMaster("Segment")
	if segment == nil {
		return fmt.Errorf("%s has no Segment element", location)
	}

	out := cmd.OutOrStdout()

	scale := int64(defaultTimecodeScale)
	if info := segment.FindMaster("Info"); info != nil {
		if el, ok := info.Find("TimecodeScale").(*element.Int); ok {
			scale = int64(el.Value)
		}
	}
	if duration, ok := p.SourceDuration(); ok {
		fmt.Fprintf(out, "Length: %.3f seconds\n", duration*float64(scale)/1e9)
	} else {
		fmt.Fprintln(out, "Length: unknown (no Duration element)")
	}

	tags := segment.FindMaster("Tags")
	if tags == nil {
		fmt.Fprintln(out, "No Tags element")
		return nil
	}

	lw := list.NewWriter()
	lw.SetStyle(list.StyleConnectedLight)
	appendTreeItem(lw, tags)
	fmt.Fprintln(out, lw.Render())
	return nil
}
