// Package adapter contains the infrastructure adapters behind the reporting
// core: the byte sink messages are framed onto, filesystem access for the
// documents reports refer to, and the failure stream store.
package adapter

import (
	"bufio"
	"io"
)

// FileSink buffers appends and pushes them to the underlying writer on
// Flush. It satisfies wire.Sink; the framing layer flushes after every
// message so a concurrently reading consumer observes complete lines.
type FileSink struct {
	buf *bufio.Writer
}

// NewFileSink wraps w, typically a pipe or file shared with the controlling
// process.
func NewFileSink(w io.Writer) *FileSink {
	return &FileSink{buf: bufio.NewWriter(w)}
}

// Append buffers p.
func (s *FileSink) Append(p []byte) error {
	_, err := s.buf.Write(p)
	return err
}

// Flush pushes buffered bytes to the underlying writer.
func (s *FileSink) Flush() error {
	return s.buf.Flush()
}
