package wire

import (
	"bufio"
	"io"
	"sync"

	m "skstress.dev/pkg/skstress/internal/model"
)

// Sink is the byte sink messages are framed onto. Anything that can append
// bytes and flush them to the consumer qualifies; a pipe-backed file is the
// usual implementation.
type Sink interface {
	Append(p []byte) error
	Flush() error
}

// Writer frames one encoded message per line on a sink. Encode, write, and
// flush happen as one indivisible unit under a mutex, so lines produced by
// concurrent writers are never interleaved mid-message and a concurrently
// reading consumer only ever observes complete lines.
type Writer struct {
	mu   sync.Mutex
	sink Sink
}

// NewWriter returns a Writer framing messages onto sink. The Writer assumes
// exclusive ownership of the sink.
func NewWriter(sink Sink) *Writer {
	return &Writer{sink: sink}
}

// Write encodes msg, appends it as a single newline-terminated line, and
// flushes the sink before returning. JSON string escaping guarantees the
// encoded form contains no raw newline bytes.
func (w *Writer) Write(msg m.Message) error {
	line := append(EncodeMessage(msg), '\n')

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.sink.Append(line); err != nil {
		return err
	}

	return w.sink.Flush()
}

// Reader consumes a newline-delimited message stream. Lines that do not
// decode to a message are skipped, not surfaced: the source may carry
// unrelated output between messages.
type Reader struct {
	scanner *bufio.Scanner
	skipped int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	// Modified document contents ride along inside messages, so lines can far
	// exceed the default scanner token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	return &Reader{scanner: scanner}
}

// Next returns the next decodable message, or io.EOF once the stream is
// exhausted. Undecodable lines are dropped silently and counted.
func (r *Reader) Next() (m.Message, error) {
	for r.scanner.Scan() {
		msg, ok := DecodeMessage(r.scanner.Bytes())
		if !ok {
			r.skipped++
			continue
		}

		return msg, nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}

// Skipped reports how many lines were dropped as undecodable so far.
func (r *Reader) Skipped() int {
	return r.skipped
}
