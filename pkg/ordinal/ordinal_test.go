package ordinal_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kyckit/pkg/ordinal"
)

func TestAppend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    int
		expected string
	}{
		{0, "0th"},
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{5, "5th"},
		{6, "6th"},
		{7, "7th"},
		{8, "8th"},
		{9, "9th"},
		{10, "10th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{14, "14th"},
		{20, "20th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{31, "31st"},
		{32, "32nd"},
		{33, "33rd"},
		{101, "101st"},
		{111, "111th"},
		{112, "112th"},
		{113, "113th"},
		{1012, "1012th"},
		{1022, "1022nd"},
		{math.MaxInt32, "2147483647th"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			result, err := ordinal.Append(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAppend_Negative(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-1, -11, math.MinInt32} {
		result, err := ordinal.Append(n)
		require.Error(t, err)
		assert.ErrorIs(t, err, ordinal.ErrNegativeInteger)
		assert.Contains(t, err.Error(), strconv.Itoa(n))
		assert.Empty(t, result)
	}
}

func TestAppend_Property(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 10000; n++ {
		result, err := ordinal.Append(n)
		require.NoError(t, err)

		digits := strconv.Itoa(n)
		require.True(t, strings.HasPrefix(result, digits), result)

		suffix := strings.TrimPrefix(result, digits)
		require.Contains(t, []string{"st", "nd", "rd", "th"}, suffix)

		if tens := n % 100; tens >= 11 && tens <= 13 {
			require.Equal(t, "th", suffix, result)
		}
	}
}

func TestSuffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "st", ordinal.Suffix(1))
	assert.Equal(t, "th", ordinal.Suffix(11))
	assert.Equal(t, "nd", ordinal.Suffix(-2))
	assert.Equal(t, "th", ordinal.Suffix(-212))
}
