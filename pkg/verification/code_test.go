package verification

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesSixDigitCodes(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, CodeLength)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "exact code", raw: "123456", want: "123456"},
		{name: "surrounding whitespace", raw: "  654321\n", want: "654321"},
		{name: "too short", raw: "12345", wantErr: true},
		{name: "too long", raw: "1234567", wantErr: true},
		{name: "mixed letters rejected", raw: "12ab56", wantErr: true},
		{name: "unicode digits rejected", raw: "１２３４５６", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInput(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePasted(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "exact code", raw: "123456", want: "123456"},
		{name: "longer paste truncated", raw: "1234567890", want: "123456"},
		{name: "trailing junk past six kept out", raw: "123456abc", want: "123456"},
		{name: "non-digit inside rejects whole paste", raw: "12a4567890", wantErr: true},
		{name: "too short", raw: "1234", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePasted(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("123456", "123456"))
	assert.False(t, Match("123456", "654321"))
	assert.False(t, Match("123456", ""))
	assert.False(t, Match("", ""))
}
