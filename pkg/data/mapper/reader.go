package mapper

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/peter-kozarec/plutus/pkg/common"
	"golang.org/x/exp/mmap"
)

var ErrEof = errors.New("EOF")

// Reader reads BinaryReturn records from a memory mapped file.
type Reader struct {
	dataSourceName string
	reader         *mmap.ReaderAt
	bufferPool     *sync.Pool
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, BinaryReturnSize)
				return &buffer
			},
		},
	}
}

func (r *Reader) Open() error {
	var err error
	r.reader, err = mmap.Open(r.dataSourceName)
	if err != nil {
		return fmt.Errorf("unable to open data source %q: %w", r.dataSourceName, err)
	}
	return nil
}

func (r *Reader) Close() {
	if r.reader != nil {
		_ = r.reader.Close()
	}
}

func (r *Reader) Read(index int64, data *BinaryReturn) error {
	buffer := r.bufferPool.Get().(*[]byte)
	defer r.bufferPool.Put(buffer)

	offset := index * BinaryReturnSize

	n, err := r.reader.ReadAt(*buffer, offset)
	if err != nil && err != io.EOF {
		return fmt.Errorf("unable to read: %w", err)
	}
	if n < BinaryReturnSize {
		return ErrEof
	}

	return data.UnmarshalBinary(*buffer)
}

func (r *Reader) EntryCount() (int64, error) {
	fileInfo, err := os.Stat(r.dataSourceName)
	if err != nil {
		return 0, fmt.Errorf("unable to get data source %q stats: %w", r.dataSourceName, err)
	}

	totalSize := fileInfo.Size()
	if totalSize%BinaryReturnSize != 0 {
		return 0, fmt.Errorf("file size is not a multiple of entry size")
	}

	return totalSize / BinaryReturnSize, nil
}

// ReadAll passes every record to handler in file order, chaining period
// boundaries so each period starts where the previous one ended.
func (r *Reader) ReadAll(handler func(common.PeriodPerformance) error) error {
	count, err := r.EntryCount()
	if err != nil {
		return err
	}

	var (
		record BinaryReturn
		start  time.Time
	)

	for index := int64(0); index < count; index++ {
		if err := r.Read(index, &record); err != nil {
			return err
		}

		period, err := record.ToPeriod(start)
		if err != nil {
			return fmt.Errorf("record %d: %w", index, err)
		}
		if err := handler(period); err != nil {
			return fmt.Errorf("error processing return: %w", err)
		}
		start = period.End
	}

	return nil
}
