package translations

import (
	"errors"
	"fmt"
)

// ErrResourceUnavailable matches every *ResourceUnavailableError via errors.Is.
var ErrResourceUnavailable = errors.New("translation resource unavailable")

var (
	errBadMagic     = errors.New("not a gettext MO file")
	errEmptyCatalog = errors.New("catalog has no translations")
)

// ResourceUnavailableError reports a bundled catalog that is missing or corrupt.
type ResourceUnavailableError struct {
	Locale string
	Path   string
	Err    error
}

func (e *ResourceUnavailableError) Error() string {
	return fmt.Sprintf("%s: locale %s (%s): %v", ErrResourceUnavailable, e.Locale, e.Path, e.Err)
}

func (e *ResourceUnavailableError) Unwrap() error { return e.Err }

func (e *ResourceUnavailableError) Is(target error) bool { return target == ErrResourceUnavailable }

// IsResourceUnavailable reports whether err comes from a missing or corrupt catalog.
func IsResourceUnavailable(err error) bool { return errors.Is(err, ErrResourceUnavailable) }
