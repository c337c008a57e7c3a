package finder

import (
	"net"
	"path/filepath"
	"testing"
)

// The awaitable forms must return byte-identical results to the blocking
// forms for identical requests against identical environment state.
func TestAsyncMatchesBlocking(t *testing.T) {
	t.Run("port results match", func(t *testing.T) {
		req := Request{Port: 9000, Prober: fakeProber{busyPorts: map[int]bool{9000: true}}}

		blocking, blockingErr := Port(req)
		async := <-PortAsync(req)

		if blocking != async.Port {
			t.Errorf("blocking = %d, async = %d", blocking, async.Port)
		}
		if (blockingErr == nil) != (async.Err == nil) {
			t.Fatalf("error mismatch: blocking %v, async %v", blockingErr, async.Err)
		}
	})

	t.Run("port errors match", func(t *testing.T) {
		busy := map[int]bool{9000: true, 9001: true}
		req := Request{Port: 9000, StopPort: 9001, Prober: fakeProber{busyPorts: busy}}

		_, blockingErr := Port(req)
		async := <-PortAsync(req)

		if blockingErr == nil || async.Err == nil {
			t.Fatalf("expected errors from both forms, got %v and %v", blockingErr, async.Err)
		}
		if blockingErr.Error() != async.Err.Error() {
			t.Errorf("blocking error %q, async error %q", blockingErr, async.Err)
		}
	})

	t.Run("socket results match against real listeners", func(t *testing.T) {
		dir := t.TempDir()
		listener, err := net.Listen("unix", filepath.Join(dir, "test.sock"))
		if err != nil {
			t.Fatalf("failed to bind fixture socket: %v", err)
		}
		defer listener.Close()

		req := Request{Path: filepath.Join(dir, "test.sock")}

		// Run sequentially so both forms see the same on-disk state.
		blocking, blockingErr := Socket(req)
		async := <-SocketAsync(req)

		if blockingErr != nil || async.Err != nil {
			t.Fatalf("unexpected errors: %v, %v", blockingErr, async.Err)
		}
		if blocking != async.Path {
			t.Errorf("blocking = %q, async = %q", blocking, async.Path)
		}
		if want := filepath.Join(dir, "test1.sock"); blocking != want {
			t.Errorf("both forms should return %q, got %q", want, blocking)
		}
	})
}
