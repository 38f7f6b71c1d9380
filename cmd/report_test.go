package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "skstress.dev/pkg/skstress/internal/model"
	"skstress.dev/pkg/skstress/internal/render"
)

func TestReportCmd_RendersSampleStream(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	streamPath := filepath.Join("..", "examples", "failures.ndjson")
	rootCmd.SetArgs([]string{"report", streamPath})

	require.NoError(t, rootCmd.Execute())

	output := out.String()
	assert.Contains(t, output, "3 failure(s) detected")
	assert.Contains(t, output, "examples/hello.swift")
	assert.Contains(t, output, render.MessagePrefix+render.HeadlineCrashed)
	assert.Contains(t, output, render.HeadlineTimedOut)
	assert.Contains(t, output, "let "+render.CursorMarker+"x = 1")
	assert.Contains(t, output, render.UnmodifiedPlaceholder)
}

func TestRenderFailure_WithDiff(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "doc.swift")
	require.NoError(t, os.WriteFile(docPath, []byte("let x = 1\n"), 0o644))

	failure := m.DetectedMessage{Error: m.CrashedError{
		Req: m.CursorInfoRequest{
			Doc: m.DocumentInfo{
				Path:         m.Path(docPath),
				Modification: &m.DocumentModification{Mode: m.RewriteBasic, Content: "let y = 1\n"},
			},
			Offset: 4,
			Args:   []string{},
		},
	}}

	report := renderFailure(failure, true)

	assert.True(t, strings.HasPrefix(report, render.MessagePrefix))
	assert.Contains(t, report, "-let x = 1")
	assert.Contains(t, report, "+let y = 1")
	assert.Contains(t, report, "(modified, basic)")
}

func TestRenderFailure_DiffSkippedForUnmodified(t *testing.T) {
	failure := m.DetectedMessage{Error: m.TimedOutError{
		Req: m.EditorOpenRequest{Doc: m.DocumentInfo{Path: "gone.swift"}},
	}}

	report := renderFailure(failure, true)

	assert.Contains(t, report, render.UnmodifiedPlaceholder)
	assert.NotContains(t, report, "+++")
}
