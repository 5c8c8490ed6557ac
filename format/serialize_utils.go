// Package format contains fixed width column formatting for serialized
// data files.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FloatToFixedWidthString renders n right aligned in a column of width w,
// trimming trailing zeros. Scientific notation is used when the plain form
// does not fit, which happens routinely for SI field values.
func FloatToFixedWidthString(n float64, w int) string {
	wStr := strconv.Itoa(w)
	s := fmt.Sprintf("%"+wStr+"."+wStr+"f", n)
	if dot := strings.IndexByte(s, '.'); dot >= w {
		// integer part alone does not fit the column
		s = strconv.FormatFloat(n, 'e', -1, 64)
		if len(s) > w {
			s = strconv.FormatFloat(n, 'e', w-8, 64)
		}
		return strings.Repeat(" ", w-len(s)) + s
	}
	trimed := strings.TrimRight(s[:w], "0")
	if n != 0 && (trimed == "0." || trimed == "-0.") {
		// value too small for the column precision
		s = strconv.FormatFloat(n, 'e', -1, 64)
		if len(s) > w {
			s = strconv.FormatFloat(n, 'e', w-8, 64)
		}
		return strings.Repeat(" ", w-len(s)) + s
	}
	return strings.Repeat(" ", w-len(trimed)) + trimed
}

// IntToFixedWidthString renders n right aligned in a column of width w.
func IntToFixedWidthString(n int64, w int) string {
	s := strconv.FormatInt(n, 10)
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}
