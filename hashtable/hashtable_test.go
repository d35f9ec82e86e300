package hashtable_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/hashtable"
)

func TestNew_BucketRounding(t *testing.T) {
	cases := []struct {
		name string
		opts []hashtable.Option
		want int
	}{
		{name: "default", opts: nil, want: hashtable.DefaultBuckets},
		{name: "exact power", opts: []hashtable.Option{hashtable.WithBuckets(8)}, want: 8},
		{name: "rounds up", opts: []hashtable.Option{hashtable.WithBuckets(3)}, want: 4},
		{name: "single bucket", opts: []hashtable.Option{hashtable.WithBuckets(1)}, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := hashtable.New[int](tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.want, tbl.Buckets())
		})
	}
}

func TestNew_InvalidBuckets(t *testing.T) {
	for _, n := range []int{0, -4} {
		_, err := hashtable.New[int](hashtable.WithBuckets(n))
		require.ErrorIs(t, err, hashtable.ErrOptionViolation)
	}
}

func TestTable_SetGet(t *testing.T) {
	tbl, err := hashtable.New[string]()
	require.NoError(t, err)

	tbl.Set("phone", "make calls")
	tbl.Set("computer", "do computations")
	require.Equal(t, 2, tbl.Len())

	got, ok := tbl.Get("phone")
	require.True(t, ok)
	require.Equal(t, "make calls", got)

	_, ok = tbl.Get("slide rule")
	require.False(t, ok)
}

func TestTable_SetUpserts(t *testing.T) {
	tbl, err := hashtable.New[int]()
	require.NoError(t, err)

	tbl.Set("answer", 41)
	tbl.Set("answer", 42)
	require.Equal(t, 1, tbl.Len())

	got, ok := tbl.Get("answer")
	require.True(t, ok)
	require.Equal(t, 42, got)
}

func TestTable_Delete(t *testing.T) {
	tbl, err := hashtable.New[int]()
	require.NoError(t, err)

	const total = 50
	for i := 0; i < total; i++ {
		tbl.Set(fmt.Sprintf("key-%02d", i), i)
	}

	// Evict the even keys and make sure the odd ones survive the unlinking.
	for i := 0; i < total; i += 2 {
		require.True(t, tbl.Delete(fmt.Sprintf("key-%02d", i)))
	}
	require.Equal(t, total/2, tbl.Len())

	for i := 0; i < total; i++ {
		got, ok := tbl.Get(fmt.Sprintf("key-%02d", i))
		if i%2 == 0 {
			require.False(t, ok, "key-%02d should be gone", i)
			continue
		}
		require.True(t, ok, "key-%02d should survive", i)
		require.Equal(t, i, got)
	}

	require.False(t, tbl.Delete("key-00"))
	require.False(t, tbl.Delete("never stored"))
}

func TestTable_GrowsAndKeepsEntries(t *testing.T) {
	tbl, err := hashtable.New[int](hashtable.WithBuckets(1))
	require.NoError(t, err)

	const total = 32
	for i := 0; i < total; i++ {
		tbl.Set(fmt.Sprintf("word-%d", i), i)
	}

	// Doubling from one bucket at load factor 0.75 lands on 64.
	require.Equal(t, 64, tbl.Buckets())
	require.Equal(t, total, tbl.Len())

	for i := 0; i < total; i++ {
		got, ok := tbl.Get(fmt.Sprintf("word-%d", i))
		require.True(t, ok)
		require.Equal(t, i, got)
	}
}

func TestTable_Keys(t *testing.T) {
	tbl, err := hashtable.New[int]()
	require.NoError(t, err)
	require.Nil(t, tbl.Keys())

	tbl.Set("a", 1)
	tbl.Set("b", 2)
	tbl.Set("c", 3)
	require.ElementsMatch(t, []string{"a", "b", "c"}, tbl.Keys())
}

func TestTable_EachStopsEarly(t *testing.T) {
	tbl, err := hashtable.New[int]()
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		tbl.Set(fmt.Sprintf("k%d", i), i)
	}

	calls := 0
	tbl.Each(func(string, int) bool {
		calls++
		return calls < 3
	})
	require.Equal(t, 3, calls)
}

func TestTable_StringIgnoresInsertionOrder(t *testing.T) {
	first, err := hashtable.New[int]()
	require.NoError(t, err)
	second, err := hashtable.New[int](hashtable.WithBuckets(1))
	require.NoError(t, err)

	words := []string{"luma", "light", "register", "ram", "word"}
	for i, w := range words {
		first.Set(w, i)
	}
	for i := len(words) - 1; i >= 0; i-- {
		second.Set(words[i], i)
	}

	require.Equal(t, first.String(), second.String())
	require.Equal(t, "light=1, luma=0, ram=3, register=2, word=4", first.String())
}

func TestTable_ZeroValueUsable(t *testing.T) {
	var tbl hashtable.Table[int]

	_, ok := tbl.Get("missing")
	require.False(t, ok)
	require.False(t, tbl.Delete("missing"))
	require.Equal(t, "", tbl.String())

	tbl.Set("first", 1)
	got, ok := tbl.Get("first")
	require.True(t, ok)
	require.Equal(t, 1, got)
}
