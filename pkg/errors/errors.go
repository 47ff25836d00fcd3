package errors

import "fmt"

// Common error types.
var (
	// Naming-convention errors.
	ErrFormat          = fmt.Errorf("malformed identifier")
	ErrUnsupportedBand = fmt.Errorf("band not supported by product family")
	ErrInvalidLocator  = fmt.Errorf("invalid product locator")
	ErrUnknownFamily   = fmt.Errorf("unknown product family")

	// Transfer errors.
	ErrMismatchedLength = fmt.Errorf("locator and destination counts do not match")
	ErrDownloadFailed   = fmt.Errorf("download failed")
	ErrInvalidPath      = fmt.Errorf("invalid path")

	// Catalog errors.
	ErrCatalogQuery = fmt.Errorf("catalog query failed")
	ErrCacheWrite   = fmt.Errorf("failed to write catalog cache")

	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigWrite       = fmt.Errorf("failed to write config")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
