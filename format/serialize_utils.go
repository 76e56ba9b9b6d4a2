// Package format provide fixed width field helpers for text based
// interchange formats (connection tables, coordinate files).
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FloatToFixedWidthString renders n right justified in a field of width w,
// trimming trailing zeros from the fraction.
func FloatToFixedWidthString(n float64, w int) string {
	wStr := strconv.Itoa(w)
	s := fmt.Sprintf("%"+wStr+"."+wStr+"f", n)
	trimed := strings.TrimRight(s[:w], "0")
	return strings.Repeat(" ", w-len(trimed)) + trimed
}

// FloatToCoordinateString renders n right justified in a field of width w
// with exactly p fraction digits, the molfile coordinate column layout.
func FloatToCoordinateString(n float64, w, p int) string {
	return fmt.Sprintf("%*.*f", w, p, n)
}

// IntToFixedWidthString renders n right justified in a field of width w.
func IntToFixedWidthString(n int, w int) string {
	return fmt.Sprintf("%*d", w, n)
}
