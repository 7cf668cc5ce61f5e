//go:build unix

package main

import (
	"io"
	"syscall"

	"golang.org/x/sys/unix"

	bytering "github.com/cloneable/bytering"
)

// VectoredReader is satisfied by anything bytepump can drive a vectored
// read (readv) from: a pipe, a regular file, a socket.
type VectoredReader interface {
	Readv(iovecs []bytering.Iovec) (int, error)
}

// VectoredWriter is the write-side mirror of VectoredReader.
type VectoredWriter interface {
	Writev(iovecs []bytering.Iovec) (int, error)
}

// syscallVectored adapts any syscall.Conn (both *os.File and *net.TCPConn
// satisfy it) into VectoredReader/VectoredWriter by driving the readv/
// writev syscalls through its RawConn, so Go's netpoller -- not the OS
// thread -- blocks when the descriptor isn't ready.
type syscallVectored struct {
	conn syscall.Conn
}

func newSyscallVectored(conn syscall.Conn) *syscallVectored {
	return &syscallVectored{conn: conn}
}

func (v *syscallVectored) Readv(iovecs []bytering.Iovec) (int, error) {
	if len(iovecs) == 0 {
		return 0, nil
	}
	rc, err := v.conn.SyscallConn()
	if err != nil {
		return 0, err
	}
	uiov := toUnixIovecs(iovecs)
	var n int
	var opErr error
	ctrlErr := rc.Read(func(fd uintptr) bool {
		r, e := unix.Readv(int(fd), uiov)
		if e == unix.EAGAIN {
			return false
		}
		n, opErr = r, e
		return true
	})
	if ctrlErr != nil {
		return n, ctrlErr
	}
	if opErr == nil && n == 0 {
		return 0, io.EOF
	}
	return n, opErr
}

func (v *syscallVectored) Writev(iovecs []bytering.Iovec) (int, error) {
	if len(iovecs) == 0 {
		return 0, nil
	}
	rc, err := v.conn.SyscallConn()
	if err != nil {
		return 0, err
	}
	uiov := toUnixIovecs(iovecs)
	var n int
	var opErr error
	ctrlErr := rc.Write(func(fd uintptr) bool {
		w, e := unix.Writev(int(fd), uiov)
		if e == unix.EAGAIN {
			return false
		}
		n, opErr = w, e
		return true
	})
	if ctrlErr != nil {
		return n, ctrlErr
	}
	return n, opErr
}

// toUnixIovecs adapts bytering's platform-neutral Iovec to x/sys/unix's
// native layout, whose Len field width varies by GOARCH.
func toUnixIovecs(iovecs []bytering.Iovec) []unix.Iovec {
	out := make([]unix.Iovec, len(iovecs))
	for i, iov := range iovecs {
		out[i].Base = iov.Base
		out[i].SetLen(iov.Len)
	}
	return out
}
