package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatToFixedWidthString(t *testing.T) {
	assert.Equal(t, "  1.5", FloatToFixedWidthString(1.5, 5))
	assert.Equal(t, "   10", FloatToFixedWidthString(10, 5))
	assert.Equal(t, "-2.25", FloatToFixedWidthString(-2.25, 5))
}

func TestFloatToCoordinateString(t *testing.T) {
	assert.Equal(t, "    1.5000", FloatToCoordinateString(1.5, 10, 4))
	assert.Equal(t, "   -0.3300", FloatToCoordinateString(-0.33, 10, 4))
	assert.Len(t, FloatToCoordinateString(123.456789, 14, 6), 14)
}

func TestIntToFixedWidthString(t *testing.T) {
	assert.Equal(t, "  7", IntToFixedWidthString(7, 3))
	assert.Equal(t, " 42", IntToFixedWidthString(42, 3))
	assert.Equal(t, "100", IntToFixedWidthString(100, 3))
}
