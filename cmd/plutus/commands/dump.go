package commands

import (
	"github.com/peter-kozarec/plutus/pkg/data/duckdb"
	"github.com/peter-kozarec/plutus/pkg/data/mapper"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <csv> <bin>",
	Short: "Convert a CSV return file to the binary format",
	Long: `Reads a CSV file with ts and ret columns and writes it as a binary
return file that the binary source kind memory maps.

Example:
  plutus dump data/EURUSD.csv data/EURUSD.bin`,
	Args: cobra.ExactArgs(2),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	reader := duckdb.NewReader("")
	if err := reader.Connect(); err != nil {
		return err
	}
	defer reader.Close()

	writer, err := mapper.Create(args[1])
	if err != nil {
		return err
	}

	err = reader.LoadReturnsCSV(cmd.Context(), args[0], writer.Write)
	if closeErr := writer.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	logger.Info("returns dumped",
		zap.String("from", args[0]),
		zap.String("to", args[1]),
		zap.Int64("records", writer.Count()))
	return nil
}
