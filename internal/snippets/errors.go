package snippets

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is matched by every InvalidKeyError.
var ErrInvalidKey = errors.New("invalid snippet key")

// InvalidKeyError is returned when a key is neither a string nor a pattern,
// or cannot be turned into one.
type InvalidKeyError struct {
	Key    string
	Reason string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid snippet key %s: %s", e.Key, e.Reason)
}

func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// IsInvalidKey checks if an error is an InvalidKeyError.
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}
