package clips

import (
	"errors"
	"fmt"
)

// ErrInvalidPreference matches every preference validation error.
var ErrInvalidPreference = errors.New("invalid preference")

// InvalidQualityError reports a quality value outside 0-100.
type InvalidQualityError struct {
	Value string
}

func (e *InvalidQualityError) Error() string {
	return fmt.Sprintf("invalid quality %q: expected a number between 0 and 100", e.Value)
}

func (e *InvalidQualityError) Is(target error) bool {
	return target == ErrInvalidPreference
}

// InvalidExtensionError reports an unsupported output format.
type InvalidExtensionError struct {
	Value string
}

func (e *InvalidExtensionError) Error() string {
	return fmt.Sprintf("invalid extension %q: expected one of jpeg, png, bmp, tiff, gif", e.Value)
}

func (e *InvalidExtensionError) Is(target error) bool {
	return target == ErrInvalidPreference
}
