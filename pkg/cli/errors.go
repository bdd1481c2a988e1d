package cli

import (
	"errors"
	"syscall"
)

// isAddrInUseError reports whether err means the listen address is taken.
func isAddrInUseError(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}

// isPermissionDeniedError reports whether err means binding was refused
// for lack of privileges.
func isPermissionDeniedError(err error) bool {
	return errors.Is(err, syscall.EACCES)
}
