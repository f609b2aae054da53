package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/roster/pkg/codec"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolated returns options that only see files created by the test.
func isolated(t *testing.T) (LoadOptions, string, string) {
	t.Helper()
	userDir := t.TempDir()
	workDir := t.TempDir()
	return LoadOptions{UserConfigDir: userDir, WorkDir: workDir}, userDir, workDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	opts, _, _ := isolated(t)

	cfg, err := Load(opts)
	require.NoError(t, err)

	assert.Equal(t, "students_courses_data.json", cfg.DataFile)
	assert.Equal(t, "strict", cfg.Integrity)
	assert.Equal(t, codec.Strict, cfg.IntegrityPolicy())
	assert.True(t, cfg.Autosave)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoad_LayerPrecedence(t *testing.T) {
	opts, userDir, workDir := isolated(t)

	writeFile(t, filepath.Join(userDir, UserConfigFile), `
data_file = "user.json"
integrity = "heal"
[output]
color = "never"
`)
	writeFile(t, filepath.Join(workDir, LocalConfigFile), `
data_file = "local.json"
`)

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "local.json", cfg.DataFile, "local file overrides user file")
	assert.Equal(t, "heal", cfg.Integrity, "user value survives when local file is silent")
	assert.Equal(t, "never", cfg.Output.Color)

	explicit := filepath.Join(t.TempDir(), "explicit.toml")
	writeFile(t, explicit, `autosave = false`)
	opts.ConfigFile = explicit
	opts.Overrides = map[string]interface{}{"data_file": "flag.json", "integrity": "TRUST"}

	cfg, err = Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.DataFile)
	assert.Equal(t, "trust", cfg.Integrity, "policy names are normalised")
	assert.False(t, cfg.Autosave)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		local    string
		opts     func(o *LoadOptions)
		wantCode errors.ErrorCode
		wantKey  string
	}{
		{
			name:     "bad integrity",
			local:    `integrity = "lenient"`,
			wantCode: errors.ErrConfigInvalid,
			wantKey:  "integrity",
		},
		{
			name:     "bad color",
			local:    "[output]\ncolor = \"rainbow\"",
			wantCode: errors.ErrConfigInvalid,
			wantKey:  "output.color",
		},
		{
			name:     "empty data file",
			local:    `data_file = "  "`,
			wantCode: errors.ErrConfigInvalid,
			wantKey:  "data_file",
		},
		{
			name:     "unparseable toml",
			local:    `data_file = `,
			wantCode: errors.ErrConfigLoad,
		},
		{
			name:     "missing explicit file",
			opts:     func(o *LoadOptions) { o.ConfigFile = "/does/not/exist.toml" },
			wantCode: errors.ErrConfigLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, _, workDir := isolated(t)
			if tt.local != "" {
				writeFile(t, filepath.Join(workDir, LocalConfigFile), tt.local)
			}
			if tt.opts != nil {
				tt.opts(&opts)
			}

			_, err := Load(opts)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
			if tt.wantKey != "" {
				assert.Equal(t, tt.wantKey, errors.GetErrorDetails(err)["key"])
			}
		})
	}
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, `# data_file = "students_courses_data.json"`)
	assert.Contains(t, content, "[output]")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line not commented: %q", line)
	}
}

func TestUserConfigPath(t *testing.T) {
	path := filepath.ToSlash(UserConfigPath())
	assert.True(t, strings.HasSuffix(path, "roster/config.toml"), path)
}
