// Package probe answers one question: can a listener be bound to this
// candidate right now? It opens a transient listener and closes it before
// returning, so nothing leaks into the caller's process.
package probe

import (
	"net"
	"strconv"

	"github.com/bamorim/bindpls/internal/sockfile"
)

// Prober reports whether a candidate listening address is bindable.
// "In use" is not an error: it comes back as available=false so the
// caller's retry loop can advance. Errors are everything else (bad host,
// permission denied) and abort the search.
type Prober interface {
	Port(host string, port int) (granted int, available bool, err error)
	Socket(path string) (available bool, err error)
}

// NetProber probes by binding real listeners through the OS network stack.
type NetProber struct {
	// Keeper reclaims stale socket files before a socket probe.
	// Defaults to the platform keeper.
	Keeper sockfile.Keeper
}

// Port attempts a TCP bind on (host, port). On success the listener is
// closed immediately and the actually-bound port is returned, which matters
// for port 0 where the OS picks the number.
func (p NetProber) Port(host string, port int) (int, bool, error) {
	listener, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		if isAddrInUse(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	granted := listener.Addr().(*net.TCPAddr).Port
	_ = listener.Close()
	return granted, true, nil
}

// Socket attempts a unix-domain bind on path. A missing parent directory
// reads as available: the allocator creates the directory chain afterwards.
// A leftover socket file with no listener behind it is reclaimed first, so
// only a genuinely live socket (or a foreign file squatting on the path)
// reads as unavailable.
func (p NetProber) Socket(path string) (bool, error) {
	if err := p.keeper().Reclaim(path); err != nil {
		return false, err
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		if isAddrInUse(err) {
			return false, nil
		}
		if isMissingDir(err) {
			return true, nil
		}
		return false, err
	}
	_ = listener.Close()
	return true, nil
}

func (p NetProber) keeper() sockfile.Keeper {
	if p.Keeper != nil {
		return p.Keeper
	}
	return sockfile.Default()
}
