package config

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitModelCatalogue_Initialize(t *testing.T) {
	customYAML := `
defaults:
  chat: Qwen/Qwen3-8B
  vision: Qwen/Qwen3-VL-8B-Instruct
  image: Qwen/Qwen-Image
series:
  - key: qwen3
    name: Qwen3
    provider: Qwen
    instruct:
      id: Qwen/Qwen3-8B
      mechanism: native_flag
    thinking:
      id: Qwen/Qwen3-8B
      mechanism: native_flag
`
	invalidYAML := `
series:
  - key: broken
    name: Broken
    provider: Nobody
    instruct:
      id: a/b
      mechanism: telepathy
`

	tests := map[string]struct {
		content     *string
		path        string
		expectErr   bool
		expectCheck func(t *testing.T, c domain.ModelCatalogue)
	}{
		"embedded": {
			path: "-",
			expectCheck: func(t *testing.T, c domain.ModelCatalogue) {
				assert.Equal(t, domain.DefaultModelCatalogue(), c)
			},
		},
		"custom-file": {
			content: &customYAML,
			expectCheck: func(t *testing.T, c domain.ModelCatalogue) {
				assert.Equal(t, "Qwen/Qwen3-8B", c.Defaults.Chat)
				assert.Len(t, c.Series, 1)
				assert.Equal(t, domain.ReasoningMechanism_NativeFlag, c.Resolve("Qwen/Qwen3-8B"))
			},
		},
		"invalid-file": {
			content:   &invalidYAML,
			expectErr: true,
		},
		"missing-file": {
			path:      filepath.Join(t.TempDir(), "missing.yml"),
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)

			path := tt.path
			if tt.content != nil {
				path = filepath.Join(t.TempDir(), "catalogue.yml")
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}

			i := InitModelCatalogue{Logger: log.New(io.Discard, "", 0), Path: path}
			_, err := i.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			c, err := depend.Resolve[domain.ModelCatalogue]()
			assert.NoError(t, err)
			tt.expectCheck(t, c)
		})
	}
}
