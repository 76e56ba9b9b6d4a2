package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, NewColor(0xFF, 0x0D, 0x0D), ParseHexColor("#FF0D0D"))
	assert.Equal(t, White, ParseHexColor("#FFFFFF"))
}

func TestParseHexColorMalformedFallsBackToGray(t *testing.T) {
	for _, malformed := range []string{"", "red", "#12", "#GGGGGG"} {
		assert.Equal(t, Gray, ParseHexColor(malformed), malformed)
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	assert.Equal(t, "#909090", ParseHexColor("#909090").Hex())
}
