package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	// Import and export errors
	ErrUnsupportedFile = fmt.Errorf("unsupported file type")
	ErrNothingToExport = fmt.Errorf("nothing to export")
)
