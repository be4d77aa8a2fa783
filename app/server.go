package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const DefaultPort = 54321

// max request line, anything longer is a protocol violation
const maxLineBytes = 64 * 1024

// Server accepts tcp connections and speaks the line oriented json protocol.
// Each connection is served on its own goroutine and may carry any number of
// requests before the client hangs up.
type Server struct {
	Handler  *Handler
	listener net.Listener
}

func MakeServer(handler *Handler) Server {
	if handler == nil {
		panic("handler must be non nil")
	}
	return Server{Handler: handler}
}

// ListenAndServe blocks until the context is cancelled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}
	s.listener = listener
	slog.Info("listening for matches", "addr", listener.Addr().String())

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		<-ctx.Done()
		return listener.Close()
	})
	group.Go(func() error {
		for {
			conn, err := listener.Accept()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("failed to accept connection: %w", err)
			}
			go s.serveConn(ctx, conn)
		}
	})
	return group.Wait()
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	remote := conn.RemoteAddr().String()
	slog.Info("client connected", "remote", remote)

	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		ctx := context.WithValue(ctx, TraceKey, uuid.NewString())
		reply := s.Handler.HandleLine(ctx, line)

		if _, err := conn.Write(append(reply, '\n')); err != nil {
			slog.Warn("failed to write reply", "remote", remote, "err", err)
			return
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		slog.Warn("client read failed", "remote", remote, "err", err)
	}
	slog.Info("client disconnected", "remote", remote)
}
