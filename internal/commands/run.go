package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recon-dev/recon/internal/config"
	"github.com/recon-dev/recon/internal/loader"
	"github.com/recon-dev/recon/internal/logging"
	"github.com/recon-dev/recon/internal/recon"
	"github.com/recon-dev/recon/internal/report"
)

type runOptions struct {
	bankPath   string
	disbPath   string
	outputDir  string
	configPath string
	format     string
	gui        bool
}

func newRunCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reconcile a bank statement against a disbursement report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(opts)
		},
	}

	cmd.Flags().StringVar(&opts.bankPath, "bank", "", "bank statement file (csv or xlsx)")
	cmd.Flags().StringVar(&opts.disbPath, "disbursement", "", "disbursement report file (csv or xlsx)")
	cmd.Flags().StringVar(&opts.outputDir, "output", "", "output directory (default: next to the disbursement report)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to recon.yaml")
	cmd.Flags().StringVar(&opts.format, "format", "", "report format: csv or xlsx (default from config)")
	cmd.Flags().BoolVar(&opts.gui, "gui", false, "pick input files interactively instead of via flags")

	return cmd
}

func runReconcile(opts runOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if opts.gui {
		if opts.bankPath == "" {
			opts.bankPath, err = pickFile("Select the bank statement")
			if err != nil {
				return err
			}
		}
		if opts.disbPath == "" {
			opts.disbPath, err = pickFile("Select the disbursement report")
			if err != nil {
				return err
			}
		}
	}

	if opts.bankPath == "" || opts.disbPath == "" {
		return errors.New("both --bank and --disbursement are required (or use --gui)")
	}

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = filepath.Dir(opts.disbPath)
	}

	format := opts.format
	if format == "" {
		format = cfg.Output.Format
	}
	writer, err := report.NewWriter(format)
	if err != nil {
		return err
	}

	start := time.Now()
	registry := loader.DefaultRegistry()

	bank, err := registry.LoadFile(opts.bankPath, loader.Options{SkipRows: cfg.Bank.SkipRows})
	if err != nil {
		return fmt.Errorf("bank statement: %w", err)
	}
	if err := recon.RequireColumns(bank, cfg.Bank.DescriptionColumn, cfg.Bank.DateColumn, cfg.Bank.AmountColumn); err != nil {
		return fmt.Errorf("bank statement: %w", err)
	}

	disb, err := registry.LoadFile(opts.disbPath, loader.Options{SkipRows: cfg.Disbursement.SkipRows})
	if err != nil {
		return fmt.Errorf("disbursement report: %w", err)
	}
	if err := recon.RequireColumns(disb, cfg.Disbursement.NarrationColumn, cfg.Disbursement.DateColumn,
		cfg.Disbursement.LoanColumn, cfg.Disbursement.AmountColumn); err != nil {
		return fmt.Errorf("disbursement report: %w", err)
	}

	logger.Info("loaded inputs",
		zap.String("bank", opts.bankPath),
		zap.Int("bank_records", len(bank)),
		zap.String("disbursement", opts.disbPath),
		zap.Int("disbursement_records", len(disb)))

	bank = recon.Filter(bank, cfg.Bank.DescriptionColumn, cfg.Bank.Exclude)
	disb = recon.Filter(disb, cfg.Disbursement.NarrationColumn, cfg.Disbursement.Exclude)
	disb = recon.DropMissing(disb, cfg.Disbursement.LoanColumn, cfg.Disbursement.AmountColumn)

	result := recon.Reconcile(bank, disb,
		recon.BankKey(cfg.Bank.DescriptionColumn, cfg.Bank.AmountColumn),
		recon.DisbursementKey(cfg.Disbursement.LoanColumn, cfg.Disbursement.AmountColumn),
		recon.Options{
			BankDateColumn:         cfg.Bank.DateColumn,
			DisbursementDateColumn: cfg.Disbursement.DateColumn,
			DateToleranceDays:      cfg.Match.DateToleranceDays,
		})

	now := time.Now()
	bankReport, err := writer.Write(outputDir, report.BankReportName, result.UnmatchedBank, now)
	if err != nil {
		return err
	}
	disbReport, err := writer.Write(outputDir, report.DisbursementReportName, result.UnmatchedDisbursement, now)
	if err != nil {
		return err
	}

	logger.Info("reconciliation complete",
		zap.Int("matched", len(result.Matched)),
		zap.Int("unmatched_bank", len(result.UnmatchedBank)),
		zap.Int("unmatched_disbursement", len(result.UnmatchedDisbursement)),
		zap.Duration("elapsed", time.Since(start)))

	fmt.Printf("Unmatched bank records: %s\n", bankReport)
	fmt.Printf("Unmatched disbursement records: %s\n", disbReport)
	return nil
}

// loadConfig reads the config at path, or recon.yaml in the working
// directory if present, or the built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(config.FileName); errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(config.FileName)
}
