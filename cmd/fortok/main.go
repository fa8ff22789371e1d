// fortok prescans Fortran source files and runs the token recognizers over them.
//
// Usage:
//
//	fortok [flags] scan file.f90 [file2.f90 ...]
//	fortok [flags] prescan file.f90 [file2.f90 ...]
//
// Flags:
//
//	--config path   session configuration file (.toml, .yaml or .yml)
//	--strict        disable nonstandard extensions
//	--backslash     enable backslash escapes in character literals
//	-v, --verbose   debug logging
//
// Without --config the file named by the FORTOK_CONFIG environment variable is used.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/soypat/fortparse/config"
	"github.com/soypat/fortparse/prescan"
)

var (
	flagConfig    string
	flagStrict    bool
	flagBackslash bool
	flagVerbose   bool
)

var errDiagnostics = errors.New("diagnostics reported")

// app holds state shared by subcommands, set up before any of them run.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

var theApp app

var rootCmd = &cobra.Command{
	Use:   "fortok",
	Short: "Fortran token recognizer driver",
	Long: `fortok prescans free-form Fortran source and drives the token
recognizers over it, printing tokens with their source locations and
any diagnostics posted along the way.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var scanCmd = &cobra.Command{
	Use:   "scan FILE...",
	Short: "Print the tokens and diagnostics of each file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

var prescanCmd = &cobra.Command{
	Use:   "prescan FILE...",
	Short: "Print the cooked character stream of each file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPrescan,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "session configuration file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "disable nonstandard extensions")
	rootCmd.PersistentFlags().BoolVar(&flagBackslash, "backslash", false, "enable backslash escapes in character literals")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(scanCmd, prescanCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "fortok:", err)
		}
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var cfg config.Config
	var err error
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.StrictConformance = flagStrict
	}
	if flags.Changed("backslash") {
		cfg.BackslashEscapes = flagBackslash
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	if flagVerbose {
		level = slog.LevelDebug
	}
	theApp = app{
		cfg:    cfg,
		logger: newLogger(cmd.ErrOrStderr(), level),
	}
	theApp.logger.Debug("configured",
		slog.Bool("strict", cfg.StrictConformance),
		slog.Bool("backslash", cfg.BackslashEscapes),
		slog.Int("maxMessages", cfg.MaxMessages),
	)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := slog.HandlerOptions{Level: level}
	return slog.New(slog.NewTextHandler(w, &opts)).With(slog.String("run", uuid.NewString()))
}

func runScan(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	total := 0
	for _, filename := range args {
		n, err := scanPath(out, filename)
		if err != nil {
			theApp.logger.Error("scan failed", slog.String("file", filename), slog.Any("error", err))
			total++
			continue
		}
		total += n
	}
	if total > 0 {
		return errDiagnostics
	}
	return nil
}

func scanPath(w io.Writer, filename string) (int, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	return scanFile(w, filename, fp, theApp.cfg, theApp.logger)
}

func runPrescan(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := false
	for _, filename := range args {
		if err := prescanPath(out, filename); err != nil {
			theApp.logger.Error("prescan failed", slog.String("file", filename), slog.Any("error", err))
			failed = true
		}
	}
	if failed {
		return errDiagnostics
	}
	return nil
}

func prescanPath(w io.Writer, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	res, err := prescan.Prescan(filename, fp)
	if err != nil {
		return err
	}
	_, err = w.Write(res.Cooked)
	return err
}
