package directory

import (
	"strconv"
	"time"
)

// TimestampLayout is the local time format of FileAttr.LastModified.
const TimestampLayout = "2006-01-02 15:04:05"

type sizeUnit struct {
	threshold uint64
	label     string
}

var sizeUnits = []sizeUnit{
	{1 << 40, "TB"},
	{1 << 30, "GB"},
	{1 << 20, "MB"},
	{1 << 10, "KB"},
}

// CommaSeparatedNumber formats n with a comma between every group of three
// digits, counted from the right.
func CommaSeparatedNumber(n uint64) string {
	digits := strconv.FormatUint(n, 10)
	if len(digits) <= 3 {
		return digits
	}

	out := make([]byte, 0, len(digits)+(len(digits)-1)/3)
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, digits[:lead]...)
	for i := lead; i < len(digits); i += 3 {
		out = append(out, ',')
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}

// HumanReadableSize renders size with the largest 1024-based unit it reaches.
// Plain byte counts have no fraction; larger units always carry two decimal
// digits, truncated rather than rounded.
func HumanReadableSize(size uint64) string {
	for _, unit := range sizeUnits {
		if size < unit.threshold {
			continue
		}
		whole := size / unit.threshold
		// size%threshold < threshold <= 2^40, so the product cannot overflow.
		hundredths := size % unit.threshold * 100 / unit.threshold
		return CommaSeparatedNumber(whole) + "." + twoDigits(hundredths) + " " + unit.label
	}
	return CommaSeparatedNumber(size) + " bytes"
}

// FormatTimestamp renders t in the local time zone.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

func twoDigits(n uint64) string {
	if n < 10 {
		return "0" + strconv.FormatUint(n, 10)
	}
	return strconv.FormatUint(n, 10)
}
