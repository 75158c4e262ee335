package digitlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/digitlist"
)

func TestUnsupported(t *testing.T) {
	var c digitlist.Collection = digitlist.FromString("123")

	errs := []error{
		c.AddAll([]digitlist.Digit{4}),
		c.InsertAll(0, []digitlist.Digit{4}),
		c.RemoveAll([]digitlist.Digit{1}),
		c.RetainAll([]digitlist.Digit{1}),
	}

	ok, err := c.ContainsAll([]digitlist.Digit{1})
	require.False(t, ok)
	errs = append(errs, err)

	it, err := c.ListIterator(0)
	require.Nil(t, it)
	errs = append(errs, err)

	sub, err := c.SubList(0, 1)
	require.Nil(t, sub)
	errs = append(errs, err)

	for _, err := range errs {
		require.Error(t, err)
		require.True(t, digitlist.UnsupportedOperationError.Has(err), err.Error())
	}

	require.Equal(t, "123", c.String(), "unsupported operations must not modify")
}

func TestReorder(t *testing.T) {
	t.Run("sort", func(t *testing.T) {
		l := digitlist.FromString("31415")

		l.SortAscending()
		require.Equal(t, "11345", l.String())

		l.SortDescending()
		require.Equal(t, "54311", l.String())

		e := digitlist.New()
		e.SortAscending()
		require.True(t, e.IsEmpty())
	})

	t.Run("shift", func(t *testing.T) {
		l := digitlist.FromString("123")

		l.ShiftLeft()
		require.Equal(t, "231", l.String())

		l.ShiftRight()
		l.ShiftRight()
		require.Equal(t, "312", l.String())

		e := digitlist.New()
		e.ShiftLeft()
		e.ShiftRight()
		require.True(t, e.IsEmpty())
	})

	t.Run("swap", func(t *testing.T) {
		l := digitlist.FromString("123")

		require.True(t, l.Swap(0, 2))
		require.Equal(t, "321", l.String())

		require.True(t, l.Swap(1, 1))
		require.Equal(t, "321", l.String())

		require.False(t, l.Swap(0, 3))
		require.False(t, l.Swap(-1, 0))
		require.Equal(t, "321", l.String())
	})
}
