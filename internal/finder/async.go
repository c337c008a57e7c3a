package finder

// The awaitable forms run the exact same search as their blocking
// counterparts on a fresh goroutine and deliver the outcome on a buffered
// channel, so receiving late never blocks the search goroutine.

type PortResult struct {
	Port int
	Err  error
}

type SocketResult struct {
	Path string
	Err  error
}

// PortAsync is the awaitable form of Port.
func PortAsync(req Request) <-chan PortResult {
	ch := make(chan PortResult, 1)
	go func() {
		granted, err := Port(req)
		ch <- PortResult{Port: granted, Err: err}
	}()
	return ch
}

// SocketAsync is the awaitable form of Socket.
func SocketAsync(req Request) <-chan SocketResult {
	ch := make(chan SocketResult, 1)
	go func() {
		path, err := Socket(req)
		ch <- SocketResult{Path: path, Err: err}
	}()
	return ch
}
