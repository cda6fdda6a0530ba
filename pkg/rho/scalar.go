package rho

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrNoValue is returned when a file doesn't contain any value.
	ErrNoValue = errors.New("no value")

	// ErrTooManyValues is returned when a file contains more than one value.
	ErrTooManyValues = errors.New("more than one value")
)

// ReadScalar reads the only value of a text file. Empty lines and comments
// starting with # are ignored.
func ReadScalar(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var (
		v     float64
		found bool
	)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		l := sc.Text()
		if i := strings.IndexByte(l, '#'); i >= 0 {
			l = l[:i]
		}

		for _, field := range strings.Fields(l) {
			if found {
				return 0, fmt.Errorf("%s: %w", path, ErrTooManyValues)
			}

			v, err = strconv.ParseFloat(field, 64)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", path, err)
			}
			found = true
		}
	}

	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	if !found {
		return 0, fmt.Errorf("%s: %w", path, ErrNoValue)
	}

	return v, nil
}
