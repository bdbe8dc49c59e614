package pipeline_test

import (
	"testing"

	"github.com/fwojciec/freelearn/pipeline"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	t.Run("formats bytes as B", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "512 B", pipeline.FormatBytes(512))
	})

	t.Run("formats kilobytes as KB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1.5 KB", pipeline.FormatBytes(1536))
	})

	t.Run("formats megabytes as MB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2.0 MB", pipeline.FormatBytes(2*1024*1024))
	})
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	t.Run("returns consistent hash for same content", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, pipeline.ComputeHash("snippet"), pipeline.ComputeHash("snippet"))
	})

	t.Run("returns different hashes for different content", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, pipeline.ComputeHash("content a"), pipeline.ComputeHash("content b"))
	})

	t.Run("returns fixed-width hex string", func(t *testing.T) {
		t.Parallel()
		assert.Regexp(t, `^[0-9a-f]{16}$`, pipeline.ComputeHash("test"))
		assert.Regexp(t, `^[0-9a-f]{16}$`, pipeline.ComputeHash(""))
	})
}
