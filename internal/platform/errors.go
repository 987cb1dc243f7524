package platform

import "errors"

var (
	// ErrDisplayConnection means the native display or display service
	// could not be opened.
	ErrDisplayConnection = errors.New("display connection failed")

	// ErrWindowCreation means the host system rejected the native window
	// or display element.
	ErrWindowCreation = errors.New("native window creation failed")

	// ErrInvalidOptions means the options were rejected before touching
	// the native system.
	ErrInvalidOptions = errors.New("invalid window options")

	// ErrUnsupportedPlatform is returned for platform names no backend serves.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
