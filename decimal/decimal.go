package decimal

import (
	"bufio"
	"math/big"
	"os"
	"regexp"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/digitlist/ring"
)

// Error is the class of I/O errors raised while reading a number.
var Error = errs.Class("decimal")

// MalformedError is the class of errors for text that is not a decimal
// number.
var MalformedError = errs.Class("malformed decimal")

// ErrNoLine is returned when a file holds no line to read.
var ErrNoLine = Error.New("no line")

var pattern = regexp.MustCompile(`^[0-9]+$`)

// Value folds the digits of r, most significant first, into an integer in the
// given radix.
func Value(r *ring.Ring, radix int) *big.Int {
	var base, dv big.Int

	v := new(big.Int)
	base.SetInt64(int64(radix))

	it := r.Iter()
	for it.Next() {
		dv.SetUint64(uint64(it.Digit()))
		v.Mul(v, &base)
		v.Add(v, &dv)
	}

	return v
}

// Text returns the base 10 representation of r. An empty ring has no value
// and yields the empty string rather than "0".
func Text(r *ring.Ring, radix int) string {
	if r.Len() == 0 {
		return ""
	}

	return Value(r, radix).Text(10)
}

// Parse converts a string of decimal digits into digits, most significant
// first.
func Parse(s string) (ds []ring.Digit, err error) {
	if !pattern.MatchString(s) {
		return nil, MalformedError.New("%q", s)
	}

	ds = make([]ring.Digit, len(s))
	for i := 0; i < len(s); i++ {
		ds[i] = s[i] - '0'
	}

	return ds, nil
}

// Fill appends the digits of s to r. The ring is left untouched when s is not
// a decimal number.
func Fill(r *ring.Ring, s string) (err error) {
	ds, err := Parse(s)
	if err != nil {
		return err
	}

	for _, d := range ds {
		r.Append(d)
	}

	return nil
}

// FirstLine returns the first line of the file at path with surrounding
// whitespace removed.
func FirstLine(path string) (line string, err error) {
	defer Error.WrapP(&err)

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	// A single line holds the whole number so allow it to grow past the
	// default token size.
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)

	if !sc.Scan() {
		err = sc.Err()
		if err != nil {
			return "", err
		}

		return "", oops.Trace(ErrNoLine)
	}

	return strings.TrimSpace(sc.Text()), nil
}

// ReadFile appends the number stored on the first line of the file at path to
// r.
func ReadFile(r *ring.Ring, path string) (err error) {
	line, err := FirstLine(path)
	if err != nil {
		return err
	}

	return Fill(r, line)
}

// WriteFile stores the base 10 text of r as a single line in the file at path.
func WriteFile(r *ring.Ring, radix int, path string) (err error) {
	defer Error.WrapP(&err)

	return os.WriteFile(path, []byte(Text(r, radix)+"\n"), 0o644)
}

// Format appends the digits of x in the given radix to r, most significant
// first. Zero is a single 0 digit.
func Format(r *ring.Ring, x *big.Int, radix int) {
	var base, mod big.Int

	if x.Sign() == 0 {
		r.Append(0)

		return
	}

	// Digits come out least significant first; prepending them in front of
	// the previous one keeps the most significant digit at head.
	start := r.Len()

	v := new(big.Int).Set(x)
	base.SetInt64(int64(radix))

	for v.Sign() > 0 {
		v.DivMod(v, &base, &mod)

		if start == 0 {
			r.Prepend(ring.Digit(mod.Uint64()))

			continue
		}

		err := r.Insert(start, ring.Digit(mod.Uint64()))
		if err != nil {
			panic(err)
		}
	}
}
