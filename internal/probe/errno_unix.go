//go:build unix

package probe

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isAddrInUse(err error) bool {
	return errors.Is(err, unix.EADDRINUSE)
}

func isMissingDir(err error) bool {
	return errors.Is(err, unix.ENOENT)
}
