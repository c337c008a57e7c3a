// Package finder locates an available TCP port or unix-socket path by
// probing candidates sequentially from a starting value. It drives the
// search only; actual availability checks live in the probe package.
//
// Nothing is reserved: another process can grab a returned port or path the
// moment the probe listener closes. Callers that need the address should
// bind it promptly and be prepared to retry.
package finder

import (
	"errors"
	"fmt"
	"net"

	"github.com/bamorim/bindpls/internal/logger"
	"github.com/bamorim/bindpls/internal/probe"
)

const (
	// DefaultHost is the bind address probed when none is given.
	DefaultHost = "127.0.0.1"

	// DefaultStopPort is the inclusive ceiling of a port walk when the
	// request does not set one.
	DefaultStopPort = 65535

	// DefaultAttempts bounds a socket-path search when the request does
	// not set a budget.
	DefaultAttempts = 100

	maxPort = 65535
)

// Request configures a single search. Port-mode fields (Port, Host,
// StopPort, Exclude) and socket-mode fields (Path, Attempts) are mutually
// exclusive; setting both is an invalid-input error.
type Request struct {
	Port     int    // starting port; 0 delegates to the OS for one probe
	Host     string // bind address, defaults to DefaultHost
	StopPort int    // inclusive upper bound, defaults to DefaultStopPort
	Exclude  []int  // ports that are never returned

	Path     string // socket path to start from
	Attempts int    // socket candidate budget, defaults to DefaultAttempts

	Prober probe.Prober  // defaults to probe.NetProber
	Log    logger.Logger // zero value is silent
}

func (r Request) prober() probe.Prober {
	if r.Prober != nil {
		return r.Prober
	}
	return probe.NetProber{}
}

func (r Request) excluded(port int) bool {
	for _, p := range r.Exclude {
		if p == port {
			return true
		}
	}
	return false
}

func normalizePort(r Request) (Request, error) {
	if r.Path != "" || r.Attempts != 0 {
		return r, invalid("", "socket-mode fields set on a port search")
	}
	if r.Port < 0 || r.Port > maxPort {
		return r, invalid("", "starting port %d out of range 0-%d", r.Port, maxPort)
	}
	if r.Host == "" {
		r.Host = DefaultHost
	}
	if r.StopPort == 0 {
		r.StopPort = DefaultStopPort
	}
	if r.StopPort < 1 || r.StopPort > maxPort {
		return r, invalid("", "stop port %d out of range 1-%d", r.StopPort, maxPort)
	}
	if r.Port > r.StopPort {
		return r, invalid("", "starting port %d above stop port %d", r.Port, r.StopPort)
	}
	return r, nil
}

func normalizeSocket(r Request) (Request, error) {
	if r.Path == "" {
		return r, invalid("", "socket search needs a path")
	}
	if r.Port != 0 || r.Host != "" || r.StopPort != 0 || len(r.Exclude) != 0 {
		return r, invalid(r.Path, "port-mode fields set on a socket search")
	}
	if r.Attempts <= 0 {
		r.Attempts = DefaultAttempts
	}
	return r, nil
}

func invalid(candidate, format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Candidate: candidate, Err: fmt.Errorf(format, args...)}
}

// probeErr wraps a hard probe failure. Malformed addresses surface as
// invalid-input; everything else (permissions and the like) is io-error.
func probeErr(candidate string, err error) error {
	kind := KindIO
	var addrErr *net.AddrError
	var dnsErr *net.DNSError
	if errors.As(err, &addrErr) || errors.As(err, &dnsErr) {
		kind = KindInvalidInput
	}
	return &Error{Kind: kind, Candidate: candidate, Err: err}
}
