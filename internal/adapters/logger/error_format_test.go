package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/objcbuild/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	t.Run("standard error", func(t *testing.T) {
		entries := logger.CollectErrorEntriesExported(errors.New("simple error"))
		require.Len(t, entries, 1)
		assert.Equal(t, "simple error", entries[0].Message)
		assert.Nil(t, entries[0].Metadata)
	})

	t.Run("zerr wrapped chain", func(t *testing.T) {
		err := zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer")

		entries := logger.CollectErrorEntriesExported(err)
		require.Len(t, entries, 3)
		assert.Equal(t, "outer layer", entries[0].Message)
		assert.Equal(t, "middle layer", entries[1].Message)
		assert.Equal(t, "root cause", entries[2].Message)
	})

	t.Run("metadata stays on its link", func(t *testing.T) {
		inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
		outer := zerr.With(zerr.Wrap(inner, "outer"), "outer_key", "outer_val")

		entries := logger.CollectErrorEntriesExported(outer)
		require.Len(t, entries, 2)
		assert.Equal(t, map[string]any{"outer_key": "outer_val"}, entries[0].Metadata)
		assert.Equal(t, map[string]any{"inner_key": "inner_val"}, entries[1].Metadata)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, logger.CollectErrorEntriesExported(nil))
	})
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "cause",
			entries: []logger.ErrorEntry{{Message: "outer"}, {Message: "inner"}, {Message: "root"}},
			want:    "Error: outer\n\n  Caused by:\n    → inner\n    → root",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": 1},
			}},
			want: "Error: error\n       alpha: 1\n       zebra: z",
		},
		{
			name: "multiline cause with metadata",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "line1\nline2", Metadata: map[string]any{"path": "/a"}},
			},
			want: "Error: main\n\n  Caused by:\n    → line1\n      line2\n      path: /a",
		},
		{
			name:    "multiline main",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}},
			want:    "Error: line1\n       line2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
