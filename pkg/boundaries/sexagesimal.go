package boundaries

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/skymap/pkg/errors"
)

// RAToArcsec converts a right ascension "H:M:S" triple to a total count of
// arc-seconds: (60*H + M)*60 + S. Right ascension is never negative, so the
// result is a non-negative integer.
func RAToArcsec(text string) (int, error) {
	h, m, s, err := splitSexagesimal(text)
	if err != nil {
		return 0, err
	}
	if h < 0 || m < 0 || s < 0 {
		return 0, fmt.Errorf("negative right ascension component in %q", text)
	}
	return (60*h+m)*60 + s, nil
}

// DecToArcmin converts a declination "D:M:S" triple to signed arc-minutes.
//
// This is not a general sexagesimal converter: boundary vertices are always
// whole arc-minutes, so the seconds field must be exactly zero and anything
// else violates a format assumption. The minutes field carries no sign of
// its own in the catalog; its sign is copied from the degrees field, so
// "-5:30:0" means -330 even though the minutes read as +30. The sign is
// taken from the degrees text, which makes "-0:30:0" negative while
// "0:30:0" stays positive.
func DecToArcmin(text string) (int, error) {
	d, m, s, err := splitSexagesimal(text)
	if err != nil {
		return 0, err
	}
	if s != 0 {
		return 0, errors.NewAssumptionError("declination seconds", s,
			"boundary vertices are whole arc-minutes")
	}

	// strconv.ParseFloat keeps the sign of "-0", which strconv.Atoi loses.
	carrier, _ := strconv.ParseFloat(strings.SplitN(text, ":", 2)[0], 64)
	m = int(math.Copysign(float64(m), carrier))
	return 60*d + m, nil
}

func splitSexagesimal(text string) (int, int, int, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected three colon-separated components in %q", text)
	}

	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("component %q is not an integer", p)
		}
		v[i] = n
	}
	return v[0], v[1], v[2], nil
}
