package palz

import "errors"

// Sentinel errors for package palz.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Container errors
	ErrExtension     = errors.New("not a valid .palz file")
	ErrCorrupted     = errors.New("corrupted .palz file")
	ErrBigDictionary = errors.New("dictionary is too big")

	// Filesystem errors
	ErrOpen   = errors.New("open failed")
	ErrStatus = errors.New("stat failed")
)

// Describe returns the user facing diagnostic for an error produced while
// processing path.
func Describe(err error, path string) string {
	switch {
	case errors.Is(err, ErrExtension):
		return "Failed: " + path + " is not a valid .palz file"
	case errors.Is(err, ErrCorrupted):
		return "Failed: " + path + " is corrupted"
	case errors.Is(err, ErrBigDictionary):
		return "Failed: " + path + " dictionary is too big"
	case errors.Is(err, ErrOpen):
		return "Failed: " + path + " could not be opened"
	case errors.Is(err, ErrStatus):
		return "Failed: stat() on " + path + " failed"
	default:
		return "Failed: " + path + ": " + err.Error()
	}
}
