package properties_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/objcbuild/internal/adapters/properties"
)

func TestLoader_LoadString(t *testing.T) {
	loader := properties.NewLoader()

	tests := []struct {
		name string
		text string
		want map[string]string
	}{
		{
			name: "single pair",
			text: "com.example=Ex",
			want: map[string]string{"com.example": "Ex"},
		},
		{
			name: "colon separator and comments",
			text: "# prefixes\ncom.example.util: ExU\n! also a comment\n",
			want: map[string]string{"com.example.util": "ExU"},
		},
		{
			name: "wildcard package",
			text: "com.example.*=Ex",
			want: map[string]string{"com.example.*": "Ex"},
		},
		{
			name: "no expansion",
			text: "a=${b}\nb=B",
			want: map[string]string{"a": "${b}", "b": "B"},
		},
		{
			name: "duplicate key last wins",
			text: "k=1\nk=2",
			want: map[string]string{"k": "2"},
		},
		{
			name: "empty",
			text: "",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loader.LoadString(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoader_LoadString_Malformed(t *testing.T) {
	_, err := properties.NewLoader().LoadString(`k=\u12zz`)
	require.Error(t, err)
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefixes.properties")
	require.NoError(t, os.WriteFile(path, []byte("com.example=Ex\ncom.other=Ot\n"), 0o600))

	got, err := properties.NewLoader().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"com.example": "Ex", "com.other": "Ot"}, got)
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	_, err := properties.NewLoader().LoadFile(filepath.Join(t.TempDir(), "missing.properties"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
