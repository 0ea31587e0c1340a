package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"mkvlive/internal/parser"
	"mkvlive/internal/source"
)

// streamOptions are per-invocation overrides on top of the config file.
// Negative padding values mean "no override".
type streamOptions struct {
	outputPath         string
	clustersPerPadding int
	paddingSize        int
}

func defaultStreamOptions() streamOptions {
	return streamOptions{clustersPerPadding: -1, paddingSize: -1}
}

func newStreamCommand(ctx *commandContext) *cobra.Command {
	opts := defaultStreamOptions()

	cmd := &cobra.Command{
		Use:   "stream [file|-]",
		Short: "Rewrite a Matroska stream for sequential live consumption",
		Long: "Stream parses the input and re-emits it with an unknown-length Segment,\n" +
			"a placeholder Duration, SeekHead removed, and Void padding injected\n" +
			"among Clusters, so a sequential consumer can play a file that is still\n" +
			"being written.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := "-"
			if len(args) == 1 {
				location = args[0]
			}
			return runStream(cmd, ctx, location, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the rewritten stream to a file instead of stdout")
	cmd.Flags().IntVar(&opts.clustersPerPadding, "clusters-per-padding", -1, "Pad every n-th Cluster (overrides config; 0 disables)")
	cmd.Flags().IntVar(&opts.paddingSize, "padding-size", -1, "Injected Void payload size in bytes (overrides config)")
	return cmd
}

func runStream(cmd *cobra.Command, ctx *commandContext, location string, opts streamOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	clustersPerPadding := cfg.Filter.ClustersPerPadding
	if opts.clustersPerPadding >= 0 {
		clustersPerPadding = opts.clustersPerPadding
	}
	paddingSize := cfg.Filter.PaddingSizeBytes
	if opts.paddingSize >= 0 {
		paddingSize = opts.paddingSize
	}
	if clustersPerPadding > 0 && paddingSize <= 0 {
		return fmt.Errorf("padding size must be positive when padding is enabled")
	}

	src, err := openSource(cmd, location)
	if err != nil {
		return err
	}
	defer src.Close()

	out := cmd.OutOrStdout()
	if opts.outputPath != "" {
		file, lock, err := openLockedOutput(opts.outputPath)
		if err != nil {
			return err
		}
		defer func() {
			_ = lock.Unlock()
			file.Close()
		}()
		out = file
	}

	logger.Info("live rewrite starting",
		"input", location,
		"clusters_per_padding", clustersPerPadding,
		"padding_size", paddingSize)

	p := parser.New(src, logger, parser.Options{
		Live:               out,
		ClustersPerPadding: clustersPerPadding,
		PaddingSize:        paddingSize,
	})
	if _, err := p.Parse(); err != nil {
		return fmt.Errorf("rewrite %s: %w", location, err)
	}
	logger.Info("live rewrite finished", "input", location)
	return nil
}

// openLockedOutput creates the output file after checking the directory is
// writable and taking an exclusive advisory lock, so two rewrites cannot
// interleave bytes into the same file.
func openLockedOutput(path string) (*os.File, *flock.Flock, error) {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("output directory %s is not a directory", dir)
	}
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return nil, nil, fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, nil, fmt.Errorf("another writer holds %s", path)
	}

	file, err := os.Create(path)
	if err != nil {
		_ = lock.Unlock()
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return file, lock, nil
}

// openSource maps the location argument to an input source: `-` reads the
// forward-only standard input, anything else is opened as a seekable file.
func openSource(cmd *cobra.Command, location string) (source.Source, error) {
	if location == "-" {
		return source.NewPipe(cmd.InOrStdin()), nil
	}
	src, err := source.OpenFile(location)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return src, nil
}
