package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "skstress.dev/pkg/skstress/internal/model"
)

func crashedIn(path string, offset int) m.Message {
	return m.DetectedMessage{Error: m.CrashedError{
		Req: m.CursorInfoRequest{
			Doc:    m.DocumentInfo{Path: m.Path(path)},
			Offset: offset,
			Args:   []string{},
		},
	}}
}

func TestMergeStreams_DeduplicatesAcrossShards(t *testing.T) {
	dir := t.TempDir()

	shared := crashedIn("a.swift", 4)
	onlyFirst := crashedIn("a.swift", 9)
	onlySecond := crashedIn("b.swift", 0)

	first := m.Path(filepath.Join(dir, "shard-1.ndjson"))
	second := m.Path(filepath.Join(dir, "shard-2.ndjson"))
	require.NoError(t, failureStore.SaveFailures(first, []m.Message{shared, onlyFirst}))
	require.NoError(t, failureStore.SaveFailures(second, []m.Message{onlySecond, shared}))

	output := m.Path(filepath.Join(dir, "merged.ndjson"))
	require.NoError(t, mergeStreams([]m.Path{first, second}, output))

	merged, skipped, err := failureStore.LoadFailures(output)
	require.NoError(t, err)
	assert.Zero(t, skipped)

	// Order of first sight: shard one's failures, then shard two's new one.
	assert.Equal(t, []m.Message{shared, onlyFirst, onlySecond}, merged)
}

func TestMergeStreams_MissingInputFails(t *testing.T) {
	dir := t.TempDir()

	err := mergeStreams(
		[]m.Path{m.Path(filepath.Join(dir, "absent.ndjson"))},
		m.Path(filepath.Join(dir, "merged.ndjson")),
	)
	require.Error(t, err)
}
