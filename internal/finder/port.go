package finder

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// Port returns the first bindable port at or above req.Port on req.Host.
// A starting port of 0 skips the walk entirely and asks the OS for any free
// port in a single probe. The walk stops at req.StopPort inclusive; running
// past it is an exhausted error. Probe failures other than "in use" abort
// immediately.
func Port(req Request) (int, error) {
	req, err := normalizePort(req)
	if err != nil {
		return 0, err
	}
	prober := req.prober()

	if req.Port == 0 {
		granted, ok, err := prober.Port(req.Host, 0)
		if err != nil {
			return 0, probeErr(portCandidate(req.Host, 0), err)
		}
		if !ok {
			// The kernel refused the wildcard port, meaning the ephemeral
			// range itself is drained. Nothing left to try.
			return 0, &Error{
				Kind:      KindExhausted,
				Candidate: portCandidate(req.Host, 0),
				Err:       errors.New("no ephemeral port available"),
			}
		}
		req.Log.Debugf("os granted port %d on %s", granted, req.Host)
		return granted, nil
	}

	for candidate := req.Port; candidate <= req.StopPort; candidate++ {
		if req.excluded(candidate) {
			req.Log.Debugf("port %d excluded, skipping", candidate)
			continue
		}
		granted, ok, err := prober.Port(req.Host, candidate)
		if err != nil {
			return 0, probeErr(portCandidate(req.Host, candidate), err)
		}
		if !ok {
			req.Log.Debugf("port %d on %s in use", candidate, req.Host)
			continue
		}
		return granted, nil
	}
	return 0, &Error{
		Kind:      KindExhausted,
		Candidate: fmt.Sprintf("%s ports %d-%d", req.Host, req.Port, req.StopPort),
		Err:       errors.New("every candidate port is in use"),
	}
}

// Ports runs count sequential port searches, each resuming one above the
// previous grant so the results are distinct and ascending. The first
// failure aborts the batch.
func Ports(count int, req Request) ([]int, error) {
	if count < 1 {
		return nil, invalid("", "port count %d must be at least 1", count)
	}
	found := make([]int, 0, count)
	next := req.Port
	for i := 0; i < count; i++ {
		r := req
		r.Port = next
		granted, err := Port(r)
		if err != nil {
			return nil, err
		}
		found = append(found, granted)
		next = granted + 1
	}
	return found, nil
}

func portCandidate(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
