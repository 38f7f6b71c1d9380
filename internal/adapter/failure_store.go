package adapter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	m "skstress.dev/pkg/skstress/internal/model"
	"skstress.dev/pkg/skstress/internal/wire"
)

// FailureStore persists failure streams: one wire-encoded message per line.
type FailureStore interface {
	SaveFailures(path m.Path, failures []m.Message) error

	// LoadFailures reads a failure stream, skipping undecodable lines. The
	// second result is the number of lines skipped.
	LoadFailures(path m.Path) ([]m.Message, int, error)
}

type localFailureStore struct{}

// NewFailureStore returns a FailureStore backed by local NDJSON files.
func NewFailureStore() FailureStore {
	return localFailureStore{}
}

// SaveFailures writes failures to path through the framing layer, one
// flushed line per message.
func (localFailureStore) SaveFailures(path m.Path, failures []m.Message) error {
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create failure stream: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	w := wire.NewWriter(NewFileSink(f))
	for _, failure := range failures {
		if err := w.Write(failure); err != nil {
			return fmt.Errorf("write failure stream: %w", err)
		}
	}

	slog.Debug("saved failure stream", "path", path, "failures", len(failures))

	return nil
}

// LoadFailures reads every decodable message from the stream at path.
func (localFailureStore) LoadFailures(path m.Path) ([]m.Message, int, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, 0, fmt.Errorf("open failure stream: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	var failures []m.Message

	r := wire.NewReader(f)

	for {
		msg, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, r.Skipped(), fmt.Errorf("read failure stream: %w", err)
		}

		failures = append(failures, msg)
	}

	slog.Debug("loaded failure stream", "path", path, "failures", len(failures), "skipped", r.Skipped())

	return failures, r.Skipped(), nil
}
