package mapper

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/peter-kozarec/plutus/pkg/common"
	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
)

// BinaryReturnSize is the on-disk size of one BinaryReturn record.
const BinaryReturnSize = 24

// BinaryReturn is one little-endian record of a return file: the period end
// in unix nanoseconds followed by the return as coefficient and scale, so
// Coef = 125, Scale = 4 encodes 0.0125 exactly.
type BinaryReturn struct {
	TimeStamp int64
	Coef      int64
	Scale     int64
}

func (b BinaryReturn) ToPeriod(start time.Time) (common.PeriodPerformance, error) {
	value, err := decimalOf(b.Coef, b.Scale)
	if err != nil {
		return common.PeriodPerformance{}, err
	}
	return common.PeriodPerformance{
		Start:  start,
		End:    time.Unix(0, b.TimeStamp).UTC(),
		Return: value,
	}, nil
}

func (b BinaryReturn) MarshalBinary() ([]byte, error) {
	buffer := make([]byte, BinaryReturnSize)
	binary.LittleEndian.PutUint64(buffer[0:8], uint64(b.TimeStamp))
	binary.LittleEndian.PutUint64(buffer[8:16], uint64(b.Coef))
	binary.LittleEndian.PutUint64(buffer[16:24], uint64(b.Scale))
	return buffer, nil
}

func (b *BinaryReturn) UnmarshalBinary(data []byte) error {
	if len(data) < BinaryReturnSize {
		return ErrEof
	}
	b.TimeStamp = int64(binary.LittleEndian.Uint64(data[0:8]))
	b.Coef = int64(binary.LittleEndian.Uint64(data[8:16]))
	b.Scale = int64(binary.LittleEndian.Uint64(data[16:24]))
	return nil
}

func decimalOf(coef, scale int64) (fixed.Point, error) {
	if scale < 0 || scale > 19 {
		return fixed.Zero, fmt.Errorf("invalid return record: scale %d out of range", scale)
	}
	return fixed.FromInt64(coef, int(scale)), nil
}

func FromPeriod(period common.PeriodPerformance) (BinaryReturn, error) {
	coef, scale, ok := period.Return.Coef()
	if !ok {
		return BinaryReturn{}, fmt.Errorf("return %s does not fit a binary record", period.Return)
	}
	return BinaryReturn{
		TimeStamp: period.End.UnixNano(),
		Coef:      coef,
		Scale:     int64(scale),
	}, nil
}
