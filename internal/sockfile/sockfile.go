// Package sockfile handles platform-specific bookkeeping for socket files
// left on disk by processes that exited without unlinking them.
package sockfile

// Keeper reclaims leftover socket files so a bind attempt on the same path
// can succeed. Implementations must leave live sockets and non-socket files
// alone; the probe reports those as unavailable.
type Keeper interface {
	Reclaim(path string) error
}

// NopKeeper is for platforms with no socket-file cleanup to do.
type NopKeeper struct{}

func (NopKeeper) Reclaim(string) error { return nil }
