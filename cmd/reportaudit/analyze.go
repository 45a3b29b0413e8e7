package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/reportaudit/internal/app/audit"
	"github.com/alexisbeaulieu97/reportaudit/internal/engine"
	"github.com/alexisbeaulieu97/reportaudit/internal/logger"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	"github.com/alexisbeaulieu97/reportaudit/internal/output"
	"github.com/alexisbeaulieu97/reportaudit/internal/tui"
)

type analyzeOptions struct {
	DocumentPath string
	ConfigPath   string
	RulesPath    string
	BaselinePath string
	Format       string
	Timeout      time.Duration
	NoTUI        bool
	Verbose      bool
	Interactive  bool
}

var analyzeCmdRunner = runAnalyze

func newAnalyzeCmd(root *rootFlags) *cobra.Command {
	opts := analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <document>",
		Short: "Analyze a report document for accessibility issues",
		Long: "Analyze a report document (YAML or JSON) and print its accessibility issues.\n\n" +
			"Exit codes: 0 no errors, 1 error issues found, 2 invalid input or settings, 3 analysis failure.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DocumentPath = args[0]
			opts.Verbose = root.verbose
			opts.Interactive = !opts.NoTUI && term.IsTerminal(int(os.Stderr.Fd()))

			if err := validateAnalyzeOptions(opts); err != nil {
				return inputError(err)
			}

			return analyzeCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a settings file")
	cmd.Flags().StringVar(&opts.RulesPath, "rules", "", "Path to a rule table overriding the built-in rules")
	cmd.Flags().StringVar(&opts.BaselinePath, "baseline", "", "Previous JSON or YAML result to compare against")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", string(output.FormatText), "Output format: text, json or yaml")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Abort the analysis after this duration (0 disables)")
	cmd.Flags().BoolVar(&opts.NoTUI, "no-tui", false, "Disable the interactive progress view")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts analyzeOptions) error {
	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return inputError(err)
	}

	svc := audit.NewService()
	prepared, err := svc.Prepare(audit.PrepareRequest{
		DocumentPath: opts.DocumentPath,
		ConfigPath:   opts.ConfigPath,
		RulesPath:    opts.RulesPath,
		BaselinePath: opts.BaselinePath,
	})
	if err != nil {
		return inputError(err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	logOpts := logger.Options{Level: "warn", HumanReadable: true, Writer: cmd.ErrOrStderr(), Component: "engine"}
	if opts.Verbose {
		logOpts.Level = "debug"
	}
	if opts.Interactive {
		// Log lines would tear the progress view.
		logOpts.Writer = io.Discard
	}

	var outcome *audit.Outcome
	analyze := func(ctx context.Context, progress engine.ProgressFunc) (*model.AnalysisResult, error) {
		var runErr error
		outcome, runErr = svc.Analyze(ctx, audit.AnalyzeRequest{
			Prepared:      prepared,
			LoggerOptions: logOpts,
			Progress:      progress,
		})
		if outcome == nil {
			return nil, runErr
		}
		return outcome.Result, runErr
	}

	var runErr error
	if opts.Interactive {
		_, runErr = tui.Run(ctx, prepared.Document.ReportName, cmd.ErrOrStderr(), analyze)
	} else {
		_, runErr = analyze(ctx, nil)
	}
	if outcome == nil {
		return runtimeError(runErr)
	}

	out := cmd.OutOrStdout()
	if err := output.Render(out, outcome.Result, format); err != nil {
		return runtimeError(fmt.Errorf("render result: %w", err))
	}
	if outcome.Delta != nil {
		writeDelta(cmd, format, opts.BaselinePath, outcome)
	}

	if runErr != nil {
		return runtimeError(runErr)
	}
	if outcome.HasErrors() {
		return errIssuesFound
	}
	return nil
}

// writeDelta prints the baseline comparison. Machine readable formats keep
// stdout clean, so the diff goes to stderr for them.
func writeDelta(cmd *cobra.Command, format output.Format, baselinePath string, outcome *audit.Outcome) {
	w := cmd.OutOrStdout()
	if format != output.FormatText {
		w = cmd.ErrOrStderr()
	}

	delta := outcome.Delta
	if delta.Empty() {
		fmt.Fprintf(w, "\nNo changes since baseline %s\n", baselinePath)
		return
	}
	fmt.Fprintf(w, "\nChanges since baseline: %d new, %d resolved\n", len(delta.Added), len(delta.Removed))
	fmt.Fprint(w, delta.Unified(baselinePath, "current"))
}
