package euclid

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// GCD returns the greatest common divisor of a and b by the Euclidean
// algorithm. GCD(0, 0) is 0 by convention.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Reduce folds GCD over values from left to right, seeded with 0, so a
// single value reduces to itself and an empty slice to 0. GCD is
// commutative and associative, so element order never changes the result.
func Reduce(values []uint64) uint64 {
	var d uint64
	for _, v := range values {
		d = GCD(d, v)
	}
	return d
}

// ParseUints parses each argument as a non-negative decimal integer,
// preserving order. The first failure wins.
func ParseUints(args []string) ([]uint64, error) {
	values := make([]uint64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %q is not a non-negative integer", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

// FormatList renders values as "[8, 12]".
func FormatList(values []uint64) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.FormatUint(v, 10)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
