package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/peter-kozarec/plutus/internal/source"
	"github.com/peter-kozarec/plutus/pkg/data/db/psql"
	"github.com/peter-kozarec/plutus/pkg/performance"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reportCmd = &cobra.Command{
	Use:   "report [symbol...]",
	Short: "Print a performance report per symbol",
	Long: `Loads the returns of every symbol from the configured source and
logs one performance report per symbol. Symbols given as arguments
replace the symbols of the config file.

Example:
  plutus report --config plutus.yaml
  plutus report EURUSD GBPUSD --workers 2`,
	RunE: runReport,
}

var reportWorkers int

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntVar(&reportWorkers, "workers", 0, "number of parallel evaluations, overrides workers")
}

func runReport(cmd *cobra.Command, args []string) error {
	config, logger, err := setup()
	if err != nil {
		return err
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	if len(args) > 0 {
		config.Symbols = args
	}
	if reportWorkers > 0 {
		config.Workers = reportWorkers
	}
	if len(config.Symbols) == 0 {
		return fmt.Errorf("no symbols configured")
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loader := source.NewLoader(logger, config)
	if err := loader.Open(ctx); err != nil {
		return err
	}
	defer loader.Close()

	jobs, loadErrs := loader.Jobs(ctx)
	for _, err := range loadErrs {
		logger.Warn("unable to load instrument", zap.Error(err))
	}

	evaluator := performance.NewEvaluator(logger, config.Parameters, performance.WithWorkers(config.Workers))
	batch := evaluator.Evaluate(ctx, jobs)

	for _, result := range batch.Results {
		if result.Err != nil {
			continue
		}
		result.Report.Print(logger.With(zap.String("symbol", result.Symbol), zap.Stringer("run_id", batch.RunID)))
	}

	if config.StoreDSN != "" {
		if err := storeBatch(ctx, logger, config.StoreDSN, batch); err != nil {
			return err
		}
	}

	if failed := len(batch.Failed()) + len(loadErrs); failed > 0 {
		return fmt.Errorf("%d of %d instruments failed", failed, len(config.Symbols))
	}
	return ctxErr(ctx)
}

func storeBatch(ctx context.Context, logger *zap.Logger, dsn string, batch performance.Batch) error {
	db, err := psql.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("unable to connect to report store: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	stored := 0
	for _, result := range batch.Results {
		if result.Err != nil {
			continue
		}
		if err := psql.InsertReport(ctx, db, batch.RunID, result.Symbol, result.Report); err != nil {
			return fmt.Errorf("unable to store report of %s: %w", result.Symbol, err)
		}
		stored++
	}

	logger.Info("reports stored", zap.Stringer("run_id", batch.RunID), zap.Int("count", stored))
	return nil
}

func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("report interrupted: %w", err)
	}
	return nil
}
