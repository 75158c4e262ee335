package decimal_test

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/digitlist/decimal"
	"github.com/calebcase/digitlist/ring"
)

func ringOf(ds ...ring.Digit) *ring.Ring {
	r := ring.New()
	for _, d := range ds {
		r.Append(d)
	}

	return r
}

func TestText(t *testing.T) {
	type TC struct {
		Name   string
		Digits []ring.Digit
		Radix  int
		Output string
		Mark   error
	}

	tcs := []TC{
		{Name: "empty", Digits: nil, Radix: 10, Output: "", Mark: oops.New("unexpected")},
		{Name: "zero", Digits: []ring.Digit{0}, Radix: 10, Output: "0", Mark: oops.New("unexpected")},
		{Name: "123", Digits: []ring.Digit{1, 2, 3}, Radix: 10, Output: "123", Mark: oops.New("unexpected")},
		{Name: "leading zeros", Digits: []ring.Digit{0, 0, 7}, Radix: 10, Output: "7", Mark: oops.New("unexpected")},
		{Name: "hex", Digits: []ring.Digit{15, 15}, Radix: 16, Output: "255", Mark: oops.New("unexpected")},
		{Name: "binary", Digits: []ring.Digit{1, 0, 1, 1}, Radix: 2, Output: "11", Mark: oops.New("unexpected")},
		{Name: "base36", Digits: []ring.Digit{35, 0}, Radix: 36, Output: "1260", Mark: oops.New("unexpected")},
		// Digits at or above the radix are folded as is.
		{Name: "unchecked digit", Digits: []ring.Digit{1, 12}, Radix: 10, Output: "22", Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Output, decimal.Text(ringOf(tc.Digits...), tc.Radix), tc.Mark)
		})
	}
}

func TestParse(t *testing.T) {
	type TC struct {
		Input  string
		Digits []ring.Digit
		Err    bool
		Mark   error
	}

	tcs := []TC{
		{Input: "0", Digits: []ring.Digit{0}, Mark: oops.New("unexpected")},
		{Input: "123", Digits: []ring.Digit{1, 2, 3}, Mark: oops.New("unexpected")},
		{Input: "007", Digits: []ring.Digit{0, 0, 7}, Mark: oops.New("unexpected")},
		{Input: "", Err: true, Mark: oops.New("unexpected")},
		{Input: "-1", Err: true, Mark: oops.New("unexpected")},
		{Input: "12a", Err: true, Mark: oops.New("unexpected")},
		{Input: " 12", Err: true, Mark: oops.New("unexpected")},
		{Input: "1.5", Err: true, Mark: oops.New("unexpected")},
		{Input: "١", Err: true, Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			ds, err := decimal.Parse(tc.Input)
			if tc.Err {
				require.True(t, decimal.MalformedError.Has(err), tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Digits, ds, tc.Mark)
		})
	}
}

func TestRoundtrip(t *testing.T) {
	for _, s := range []string{"1", "9", "10", "123", "255", "18446744073709551616", strings.Repeat("9", 200)} {
		t.Run(s[:1]+"...", func(t *testing.T) {
			r := ring.New()
			require.NoError(t, decimal.Fill(r, s))
			require.Equal(t, s, decimal.Text(r, 10))
		})
	}
}

func TestFill(t *testing.T) {
	r := ringOf(4)

	err := decimal.Fill(r, "x1")
	require.Error(t, err)
	require.Equal(t, []ring.Digit{4}, r.Digits(), "ring must be untouched")

	require.NoError(t, decimal.Fill(r, "21"))
	require.Equal(t, []ring.Digit{4, 2, 1}, r.Digits())
}

func TestFormat(t *testing.T) {
	type TC struct {
		Value  int64
		Radix  int
		Digits []ring.Digit
	}

	tcs := []TC{
		{Value: 0, Radix: 16, Digits: []ring.Digit{0}},
		{Value: 255, Radix: 16, Digits: []ring.Digit{15, 15}},
		{Value: 256, Radix: 16, Digits: []ring.Digit{1, 0, 0}},
		{Value: 36, Radix: 10, Digits: []ring.Digit{3, 6}},
		{Value: 5, Radix: 2, Digits: []ring.Digit{1, 0, 1}},
		{Value: 35, Radix: 36, Digits: []ring.Digit{35}},
	}

	for _, tc := range tcs {
		r := ring.New()
		x := big.NewInt(tc.Value)

		decimal.Format(r, x, tc.Radix)
		require.Equal(t, tc.Digits, r.Digits())
		require.Equal(t, tc.Value, x.Int64(), "input must not be modified")
		require.Equal(t, 0, decimal.Value(r, tc.Radix).Cmp(x))
	}

	t.Run("append", func(t *testing.T) {
		r := ringOf(7)
		decimal.Format(r, big.NewInt(123), 10)
		require.Equal(t, []ring.Digit{7, 1, 2, 3}, r.Digits())
	})
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		return path
	}

	t.Run("first line", func(t *testing.T) {
		r := ring.New()
		require.NoError(t, decimal.ReadFile(r, write("a.txt", "  123 \n456\n")))
		require.Equal(t, "123", decimal.Text(r, 10))
	})

	t.Run("malformed", func(t *testing.T) {
		r := ring.New()
		err := decimal.ReadFile(r, write("b.txt", "12 3\n"))
		require.True(t, decimal.MalformedError.Has(err))
		require.Equal(t, 0, r.Len())
	})

	t.Run("empty file", func(t *testing.T) {
		r := ring.New()
		err := decimal.ReadFile(r, write("c.txt", ""))
		require.True(t, decimal.Error.Has(err))
		require.Equal(t, 0, r.Len())
	})

	t.Run("missing", func(t *testing.T) {
		r := ring.New()
		err := decimal.ReadFile(r, filepath.Join(dir, "missing.txt"))
		require.True(t, decimal.Error.Has(err))
		require.Equal(t, 0, r.Len())
	})

	t.Run("write", func(t *testing.T) {
		path := filepath.Join(dir, "out.txt")
		require.NoError(t, decimal.WriteFile(ringOf(0, 4, 2), 10, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "42\n", string(data))

		r := ring.New()
		require.NoError(t, decimal.ReadFile(r, path))
		require.Equal(t, []ring.Digit{4, 2}, r.Digits())
	})
}
