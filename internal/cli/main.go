package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/partbill/internal/config"
	"github.com/idilsaglam/partbill/internal/obs"
	"github.com/idilsaglam/partbill/internal/ui"
)

// Main parses root flags, loads configuration and runs the subcommand in
// args. It is shared by every entrypoint.
func Main(args []string) int {
	fs := flag.NewFlagSet("partbill", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { PrintHelp(os.Stderr) }

	// Root flags (apply to every subcommand)
	catalogPath := fs.String("catalog", "", "path to the parts catalog")
	theme := fs.String("theme", "", "output theme: classic, neon or mono")
	noColor := fs.Bool("no-color", false, "disable colored output")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		return 1
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	ui.SetColorForcing(false, *noColor)
	ui.SetTheme(cfg.Theme)

	formLog, closeLog, err := openFormLog(cfg)
	if err != nil {
		ui.Fail(os.Stderr, "log file: "+err.Error())
		return 1
	}
	defer closeLog()

	code := Run(fs.Args(), Options{
		Config:  cfg,
		Log:     obs.NewLogger(os.Stderr, cfg.LogFormat, cfg.LogLevel),
		FormLog: formLog,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Now:     time.Now,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}

// openFormLog returns the logger used while the form is on screen: the
// configured log file, or a no-op logger when none is set.
func openFormLog(cfg *config.Config) (zerolog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open: %w", err)
	}
	return obs.NewLogger(f, cfg.LogFormat, cfg.LogLevel), func() { _ = f.Close() }, nil
}
