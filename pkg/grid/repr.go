package grid

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Repr returns the shortest representation of f that reads back to the same
// float64. Integral values keep a trailing ".0" and the exponent form is used
// below 1e-4 and from 1e16, so that 0.5 gives "0.5", 3 gives "3.0" and 1e-5
// gives "1e-05". Non-finite values give "inf", "-inf" and "nan".
func Repr(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// WriteScalar creates or truncates the file at path and writes v followed by
// a new line. The directory must exist.
func WriteScalar(path string, v float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = io.WriteString(f, Repr(v)+"\n")
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
