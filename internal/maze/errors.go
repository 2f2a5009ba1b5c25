package maze

import (
	"errors"
	"fmt"
)

// ErrMalformedLevel matches any *MalformedLevelError via errors.Is.
var ErrMalformedLevel = errors.New("malformed level")

// MalformedLevelError reports a level that cannot be played.
type MalformedLevelError struct {
	Reason string
}

func (e *MalformedLevelError) Error() string {
	return fmt.Sprintf("maze: malformed level: %s", e.Reason)
}

// Is makes errors.Is(err, ErrMalformedLevel) succeed.
func (e *MalformedLevelError) Is(target error) bool {
	return target == ErrMalformedLevel
}

func malformed(format string, args ...any) error {
	return &MalformedLevelError{Reason: fmt.Sprintf(format, args...)}
}
