package catalog

// unknownVariantError is returned when configuration names a table that is not bundled.
type unknownVariantError struct{ name string }

func (e unknownVariantError) Error() string { return "unknown event variant: " + e.name }

// ErrUnknownVariant constructs an unknownVariantError.
func ErrUnknownVariant(name string) error { return unknownVariantError{name: name} }

// IsUnknownVariant reports whether err names a variant that does not exist.
func IsUnknownVariant(err error) bool {
	_, ok := err.(unknownVariantError)
	return ok
}
