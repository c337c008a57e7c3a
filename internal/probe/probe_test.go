package probe

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestNetProberPort(t *testing.T) {
	prober := NetProber{}

	t.Run("implements Prober interface", func(t *testing.T) {
		var _ Prober = prober
	})

	t.Run("free port is available", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to get free port: %v", err)
		}
		port := listener.Addr().(*net.TCPAddr).Port
		listener.Close()

		granted, available, err := prober.Port("127.0.0.1", port)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !available {
			t.Errorf("Port(%d) available = false, want true", port)
		}
		if granted != port {
			t.Errorf("granted = %d, want %d", granted, port)
		}
	})

	t.Run("bound port is unavailable", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to bind port: %v", err)
		}
		defer listener.Close()
		port := listener.Addr().(*net.TCPAddr).Port

		_, available, err := prober.Port("127.0.0.1", port)
		if err != nil {
			t.Fatalf("in-use must not be an error, got: %v", err)
		}
		if available {
			t.Errorf("Port(%d) available = true, want false", port)
		}
	})

	t.Run("port zero returns the OS grant", func(t *testing.T) {
		granted, available, err := prober.Port("127.0.0.1", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !available {
			t.Error("port 0 should always be available")
		}
		if granted <= 0 || granted > 65535 {
			t.Errorf("granted = %d, want a real port number", granted)
		}
	})

	t.Run("probe listener is torn down", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to get free port: %v", err)
		}
		port := listener.Addr().(*net.TCPAddr).Port
		listener.Close()

		if _, _, err := prober.Port("127.0.0.1", port); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// A second bind must succeed, otherwise the probe leaked its listener.
		relisten, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		if err != nil {
			t.Fatalf("probe leaked its listener on %d: %v", port, err)
		}
		relisten.Close()
	})
}

func TestNetProberSocket(t *testing.T) {
	prober := NetProber{}

	t.Run("fresh path is available", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.sock")
		available, err := prober.Socket(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !available {
			t.Error("fresh path should be available")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("probe should not leave a socket file behind")
		}
	})

	t.Run("live socket is unavailable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.sock")
		listener, err := net.Listen("unix", path)
		if err != nil {
			t.Fatalf("failed to bind fixture socket: %v", err)
		}
		defer listener.Close()

		available, err := prober.Socket(path)
		if err != nil {
			t.Fatalf("in-use must not be an error, got: %v", err)
		}
		if available {
			t.Error("live socket should be unavailable")
		}
	})

	t.Run("missing parent directory is optimistically available", func(t *testing.T) {
		// Keep the fixture path short: t.TempDir embeds the subtest name,
		// pushing the socket path past the kernel's sun_path limit.
		dir, err := os.MkdirTemp("", "probe")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		t.Cleanup(func() { os.RemoveAll(dir) })
		path := filepath.Join(dir, "missing", "deeply", "test.sock")
		available, err := prober.Socket(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !available {
			t.Error("missing directory should read as available")
		}
	})

	t.Run("stale socket file is reclaimed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.sock")
		listener, err := net.Listen("unix", path)
		if err != nil {
			t.Fatalf("failed to bind fixture socket: %v", err)
		}
		listener.(*net.UnixListener).SetUnlinkOnClose(false)
		listener.Close()

		available, err := prober.Socket(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !available {
			t.Error("dead socket file should not read as unavailable")
		}
	})

	t.Run("regular file on the path is unavailable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.sock")
		if err := os.WriteFile(path, []byte("squatter"), 0o644); err != nil {
			t.Fatalf("failed to write fixture file: %v", err)
		}

		available, err := prober.Socket(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if available {
			t.Error("foreign file should read as unavailable")
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("probe must not remove foreign files: %v", err)
		}
	})
}
