package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixlib/matrix"
)

// TestResolveIndex pins the offsets produced for an axis of length 5.
func TestResolveIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		idx  matrix.Index
		want []int
	}{
		{"int first", matrix.At(1), []int{0}},
		{"int last", matrix.At(5), []int{4}},
		{"all", matrix.All().Index(), []int{0, 1, 2, 3, 4}},
		{"from", matrix.From(4).Index(), []int{3, 4}},
		{"to", matrix.To(3).Index(), []int{0, 1, 2}},
		{"span", matrix.Span(2, 4).Index(), []int{1, 2, 3}},
		{"step", matrix.All().By(2).Index(), []int{0, 2, 4}},
		{"span step", matrix.Span(2, 5).By(2).Index(), []int{1, 3}},
		{"reverse from end", matrix.From(5).By(-1).Index(), []int{4, 3, 2, 1, 0}},
		{"reverse with stop", matrix.Span(5, 1).By(-2).Index(), []int{4, 2}},
		{"explicit start 0 wraps to last", matrix.From(0).Index(), []int{4}},
		{"start past end", matrix.From(9).Index(), []int{}},
		{"negative stop clamps", matrix.To(-9).Index(), []int{}},
		{"huge step", matrix.From(2).By(math.MaxInt).Index(), []int{1}},
		{"huge negative step", matrix.From(5).By(math.MinInt).Index(), []int{4}},
		{"min start", matrix.From(math.MinInt).Index(), []int{0, 1, 2, 3, 4}},
		{"max stop", matrix.Span(4, math.MaxInt).Index(), []int{3, 4}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.ResolveIndex(tc.idx, 5)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestResolveIndexErrors covers the three failure kinds.
func TestResolveIndexErrors(t *testing.T) {
	_, err := matrix.ResolveIndex(matrix.At(6), 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.ResolveIndex(matrix.Span(1, 3).By(0).Index(), 5)
	require.ErrorIs(t, err, matrix.ErrZeroStep)

	_, err = matrix.ResolveIndex(matrix.Index{}, 5)
	require.ErrorIs(t, err, matrix.ErrIndexType)
}

// TestParseIndex covers the textual notation and its round trip through String.
func TestParseIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want matrix.Index
	}{
		{"2", matrix.At(2)},
		{" 3 ", matrix.At(3)},
		{":", matrix.All().Index()},
		{"1:3", matrix.Span(1, 3).Index()},
		{"2:", matrix.From(2).Index()},
		{":3", matrix.To(3).Index()},
		{"::2", matrix.All().By(2).Index()},
		{"3::-1", matrix.From(3).By(-1).Index()},
		{"1:3:2", matrix.Span(1, 3).By(2).Index()},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.ParseIndex(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			again, err := matrix.ParseIndex(got.String())
			require.NoError(t, err)
			require.Equal(t, got, again)
		})
	}

	for _, bad := range []string{"", "a", "1:b", "1:2:3:4", "1.5"} {
		_, err := matrix.ParseIndex(bad)
		require.ErrorIs(t, err, matrix.ErrIndexType, "input %q", bad)
	}
}

// TestIndexAccessors checks the variant accessors.
func TestIndexAccessors(t *testing.T) {
	i, ok := matrix.At(4).Int()
	require.True(t, ok)
	require.Equal(t, 4, i)
	require.True(t, matrix.At(4).IsInt())
	require.False(t, matrix.At(4).IsRange())

	r, ok := matrix.Span(1, 3).By(2).Index().Range()
	require.True(t, ok)
	start, _ := r.Start()
	stop, _ := r.Stop()
	step, _ := r.Step()
	require.Equal(t, []int{1, 3, 2}, []int{start, stop, step})
	require.Equal(t, "1:3:2", r.String())

	_, hasStart := matrix.All().Start()
	require.False(t, hasStart)
	require.Equal(t, "<invalid>", matrix.Index{}.String())
}
