package finder

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Socket returns the first bindable socket path derived from req.Path.
// When a candidate is taken, the name advances deterministically:
// test.sock, test1.sock, test2.sock and so on. A candidate whose parent
// directory does not exist counts as available; the directory chain is
// created before the path is returned, so the caller can bind right away.
func Socket(req Request) (string, error) {
	req, err := normalizeSocket(req)
	if err != nil {
		return "", err
	}
	prober := req.prober()

	candidate := req.Path
	for attempt := 0; attempt < req.Attempts; attempt++ {
		ok, err := prober.Socket(candidate)
		if err != nil {
			return "", probeErr(candidate, err)
		}
		if !ok {
			req.Log.Debugf("socket %s in use", candidate)
			candidate = nextSocketPath(candidate)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(candidate), 0o755); err != nil {
			return "", &Error{Kind: KindIO, Candidate: candidate, Err: err}
		}
		return candidate, nil
	}
	return "", &Error{
		Kind:      KindExhausted,
		Candidate: req.Path,
		Err:       fmt.Errorf("no free socket path within %d attempts", req.Attempts),
	}
}

// nextSocketPath produces the successor candidate. A trailing number on the
// base name (before the extension) is incremented; otherwise a 1 is
// appended: test.sock -> test1.sock, app7.sock -> app8.sock.
func nextSocketPath(path string) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	digits := 0
	for digits < len(stem) && isDigit(stem[len(stem)-1-digits]) {
		digits++
	}
	seq := 1
	if digits > 0 {
		if n, err := strconv.Atoi(stem[len(stem)-digits:]); err == nil {
			seq = n + 1
			stem = stem[:len(stem)-digits]
		}
	}
	return filepath.Join(dir, stem+strconv.Itoa(seq)+ext)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
