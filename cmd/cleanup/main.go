package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/akuntansi/swagger-cleanup/internal/cleanup"
	"github.com/akuntansi/swagger-cleanup/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	specFile   string
	backupDir  string
	reportFile string
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "swagger-cleanup",
		Short: "Remove unused endpoints from the swagger document",
		Long: "swagger-cleanup deletes the endpoints identified as unused by the\n" +
			"frontend usage analysis from the swagger YAML file, backs the file up\n" +
			"first and writes a markdown report of the outcome.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.specFile, "spec", "", "path to the swagger yaml file")
	flags.StringVar(&opts.backupDir, "backup-dir", "", "directory for timestamped backups (default: the spec file's directory)")
	flags.StringVar(&opts.reportFile, "report", "", "path of the markdown report")
	flags.StringVar(&opts.configFile, "config", "", "path to a yaml config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func run(opts *options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	baseDir, err := os.Getwd()
	if err != nil {
		return err
	}
	_ = godotenv.Load(filepath.Join(baseDir, ".env"))

	cfg := config.NewConfigFromFile(opts.configFile, baseDir)
	if opts.specFile != "" {
		cfg.SpecFile = opts.specFile
		if opts.backupDir == "" {
			cfg.BackupDir = filepath.Dir(opts.specFile)
		}
	}
	if opts.backupDir != "" {
		cfg.BackupDir = opts.backupDir
	}
	if opts.reportFile != "" {
		cfg.ReportFile = opts.reportFile
	}

	_, err = cleanup.New(cfg, logger).Run()
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			_, _ = fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}
