//go:build unix

package sockfile

import (
	"errors"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

const dialTimeout = 250 * time.Millisecond

// UnixKeeper removes stale unix-domain socket files. A file counts as stale
// when it stats as a socket but nothing accepts connections on it.
type UnixKeeper struct{}

func Default() Keeper {
	return UnixKeeper{}
}

func (UnixKeeper) Reclaim(path string) error {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		if errors.Is(err, unix.ENOENT) {
			return nil
		}
		return err
	}
	if st.Mode&unix.S_IFMT != unix.S_IFSOCK {
		// Regular file or directory at the path. Not ours to remove; the
		// bind attempt will report it as unavailable.
		return nil
	}
	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err == nil {
		_ = conn.Close()
		return nil
	}
	if errors.Is(err, unix.ECONNREFUSED) {
		return os.Remove(path)
	}
	return nil
}
