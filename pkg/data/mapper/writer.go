package mapper

import (
	"bufio"
	"fmt"
	"os"

	"github.com/peter-kozarec/plutus/pkg/common"
)

// Writer appends BinaryReturn records to a file readable by Reader.
type Writer struct {
	file   *os.File
	buffer *bufio.Writer
	count  int64
}

func Create(dataSourceName string) (*Writer, error) {
	file, err := os.Create(dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("unable to create data source %q: %w", dataSourceName, err)
	}
	return &Writer{file: file, buffer: bufio.NewWriter(file)}, nil
}

func (w *Writer) Write(period common.PeriodPerformance) error {
	record, err := FromPeriod(period)
	if err != nil {
		return err
	}
	data, _ := record.MarshalBinary()
	if _, err := w.buffer.Write(data); err != nil {
		return fmt.Errorf("unable to write record %d: %w", w.count, err)
	}
	w.count++
	return nil
}

func (w *Writer) Count() int64 { return w.count }

func (w *Writer) Close() error {
	if err := w.buffer.Flush(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("unable to flush records: %w", err)
	}
	return w.file.Close()
}
