package inplace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b []string
		want int
	}{
		{nil, nil, 0},
		{nil, []string{"1"}, -1},
		{[]string{"1", "2"}, []string{"1"}, 1},
		{[]string{"1", "2"}, []string{"1", "2"}, 0},
		{[]string{"1", "3"}, []string{"1", "2", "9"}, 1},
		{[]string{"0", "9"}, []string{"1"}, -1},
	}
	for _, tc := range cases {
		a, err := From[string, [4]string](tc.a...)
		require.NoError(t, err)
		b, err := From[string, [4]string](tc.b...)
		require.NoError(t, err)

		require.Equal(t, tc.want, Compare(&a, &b), "%v <=> %v", tc.a, tc.b)
		require.Equal(t, -tc.want, Compare(&b, &a), "%v <=> %v", tc.b, tc.a)
		require.Equal(t, tc.want == 0, Equal(&a, &b))
		require.Equal(t, tc.want < 0, Less(&a, &b))
		require.Equal(t, tc.want > 0, Less(&b, &a))
		require.Equal(t, tc.want, CompareFunc(&a, &b, strings.Compare))
	}
}

func TestEqualIgnoresVacantSlots(t *testing.T) {
	a, err := From[int, [8]int](1, 2, 3)
	require.NoError(t, err)
	b, err := From[int, [8]int](1, 2)
	require.NoError(t, err)
	require.False(t, Equal(&a, &b))

	a.PopBack()
	require.True(t, Equal(&a, &b))
}

func TestEqualFunc(t *testing.T) {
	a, err := From[deep, [2]deep](deep{b: []byte("x")})
	require.NoError(t, err)
	b, err := a.Clone()
	require.NoError(t, err)
	eq := func(x, y deep) bool { return string(x.b) == string(y.b) }
	require.True(t, EqualFunc(&a, &b, eq))
	b.Index(0).b[0] = 'y'
	require.False(t, EqualFunc(&a, &b, eq))
}
