package wire_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "skstress.dev/pkg/skstress/internal/model"
	"skstress.dev/pkg/skstress/internal/render"
	"skstress.dev/pkg/skstress/internal/wire"
)

type bufferSink struct {
	buf bytes.Buffer
}

func (s *bufferSink) Append(p []byte) error {
	_, err := s.buf.Write(p)
	return err
}

func (s *bufferSink) Flush() error { return nil }

// Full producer-to-consumer pass: a worker detects a crash, frames the
// message onto a sink, and the controlling process reads it back and renders
// the human report.
func TestDetectedCrashTravelsEndToEnd(t *testing.T) {
	detected := m.DetectedMessage{Error: m.CrashedError{
		Req: m.CursorInfoRequest{
			Doc: m.DocumentInfo{
				Path:         "a.swift",
				Modification: &m.DocumentModification{Mode: m.RewriteBasic, Content: "let x = 1"},
			},
			Offset: 4,
			Args:   []string{},
		},
	}}

	sink := &bufferSink{}
	require.NoError(t, wire.NewWriter(sink).Write(detected))

	received, err := wire.NewReader(&sink.buf).Next()
	require.NoError(t, err)
	require.Equal(t, m.Message(detected), received)

	report := render.ReportMessage(received)
	assert.Contains(t, report, "let <cursor-offset>x = 1")
	assert.Contains(t, report, "SourceKit crashed")
}
