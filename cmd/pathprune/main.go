// Command pathprune collapses multi-valued folders in generated rename
// paths to a single value.
//
// It reads candidate destination paths (arguments, --from file, or stdin),
// prunes comma-joined components within the configured window, and prints
// the result as plain paths, a diff, JSON, or a folder tree.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/pathprune/internal/check"
	"github.com/backmassage/pathprune/internal/config"
	"github.com/backmassage/pathprune/internal/display"
	"github.com/backmassage/pathprune/internal/logging"
	"github.com/backmassage/pathprune/internal/pipeline"
	"github.com/backmassage/pathprune/internal/term"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries state shared by the commands of one invocation.
type app struct {
	cfg    config.Config
	flags  *config.Flags
	log    *logging.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{cfg: config.DefaultConfig(), stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	// Cancel on SIGINT/SIGTERM so a batch or watch loop stops cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)
	if a.log != nil {
		_ = a.log.Close()
	}
	if err != nil {
		// The logger may not exist yet, so errors go straight to stderr.
		fmt.Fprintf(stderr, "pathprune: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathprune [flags] [path ...]",
		Short: "Pick one value for multi-valued folders in rename paths",
		Long: `pathprune rewrites generated destination paths whose folders hold
comma-joined tag values (e.g. "Rock, Pop/Live/Artist/Album/01.flac") so that
each folder gets a single value.

Preferred values win first, in the order given; otherwise the first value
that is not avoided is kept; if every value is avoided, the first is kept.

  -n N   N > 0: process the first N folders
         N < 0: protect the last |N| folders
         N = 0: only folders before a // marker in the path or template

Paths come from the arguments, from --from FILE, or from stdin.`,
		Example: `  pathprune -p rock -a live "Pop,Rock/Live,Studio/Artist/01.flac"
  find-tagged-paths | pathprune -n -1 --format diff
  pathprune -t "<genre>/<grouping>//<artist>/<album>" -f paths.txt --format tree`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRewrite,
	}
	a.flags = config.DefineFlags(root.PersistentFlags(), &a.cfg)
	root.AddCommand(a.checkCmd(), a.watchCmd(), a.versionCmd())
	return root
}

// setup resolves configuration and opens the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.Resolve(cmd.Flags(), &a.cfg, a.flags, args); err != nil {
		return err
	}
	log, err := logging.New(&a.cfg, a.stderr)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

func (a *app) runRewrite(cmd *cobra.Command, args []string) error {
	_, err := pipeline.Run(cmd.Context(), &a.cfg, a.log, a.stdin, a.stdout)
	return err
}

func (a *app) checkCmd() *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "check [flags] [sample-path ...]",
		Short: "Show the effective settings and how sample paths would be pruned",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _ := a.stderr.(*os.File)
			display.PrintBanner(a.stderr, term.NewPalette(a.cfg.ColorMode, f))
			ok := check.RunCheck(&a.cfg, a.log)
			if save != "" {
				if err := a.cfg.Save(save); err != nil {
					return err
				}
				a.log.Info("Saved settings to %s", save)
			}
			if !ok {
				return fmt.Errorf("invalid settings")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "Write the effective settings to a YAML file")
	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch --config FILE [flags] [path ...]",
		Short: "Re-run the batch each time the config file changes",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := pipeline.LoadInput(&a.cfg, a.stdin)
			if err != nil {
				return err
			}
			// Flags typed on the command line keep winning over the file.
			reload := func() (*config.Config, error) {
				if err := config.Resolve(cmd.Flags(), &a.cfg, a.flags, args); err != nil {
					return nil, err
				}
				return &a.cfg, nil
			}
			return pipeline.Watch(cmd.Context(), a.log, a.cfg.ConfigFile, reload, paths, a.stdout)
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version and exit",
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "pathprune v%s (%s)\n", version, commit)
		},
	}
}
