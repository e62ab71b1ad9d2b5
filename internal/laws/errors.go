package laws

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownLaw    = errors.New("unknown law")
	ErrInvalidConfig = errors.New("invalid law check config")
)

// Violation is one law failing on one trial.
type Violation struct {
	Law   string
	Trial int
	Input Input
	Err   error
}

func (v *Violation) Error() string {
	return fmt.Sprintf(
		"law %s broken on trial %d (A=%v B=%v C=%v x=%d): %s",
		v.Law, v.Trial, v.Input.A, v.Input.B, v.Input.C, v.Input.X, v.Err,
	)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

type Failures []error

func (f Failures) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d law violations: ", len(f))
	for i, err := range f {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}
