package day01

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	testCases := []struct {
		input string
		want  int
	}{
		{"+1\n-2\n+3\n+1", 3},
		{"+1\n+1\n+1", 3},
		{"+1\n+1\n-2", 0},
		{"-1\n-2\n-3", -6},
	}
	for _, tc := range testCases {
		got, err := Part1(context.Background(), tc.input, &Options{})
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestPart2(t *testing.T) {
	testCases := []struct {
		input string
		want  int
	}{
		{"+1\n-2\n+3\n+1", 2},
		{"+1\n-1", 0},
		{"+3\n+3\n+4\n-2\n-4", 10},
		{"-6\n+3\n+8\n+5\n-6", 5},
		{"+7\n+7\n-2\n-7\n-4", 14},
	}
	for _, tc := range testCases {
		got, err := Part2(context.Background(), tc.input, &Options{MaxPasses: 1000})
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestPart2_NoRepeat(t *testing.T) {
	_, err := Part2(context.Background(), "+1\n+1", &Options{MaxPasses: 50})
	assert.ErrorIs(t, err, ErrNoRepeat)
	assert.ErrorContains(t, err, "within 50 passes")
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("\n\n")
	assert.ErrorIs(t, err, ErrNoChanges)

	_, err = Parse("+1\nabc")
	assert.ErrorContains(t, err, "failed to parse frequency changes")
}
