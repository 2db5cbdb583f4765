package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsCmd(template *string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(template, "template", "", "")
	cmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "")
	return cmd
}

func TestLoadSettings_FlagOverridesConfig(t *testing.T) {
	cfgPath := writeTempFile(t, "config.json", `{"template": "classic", "provider": "anthropic", "max_pages": 2}`)
	rootConfigPath = cfgPath
	t.Cleanup(func() { rootConfigPath = "" })

	var template string
	cmd := newSettingsCmd(&template)
	require.NoError(t, cmd.Flags().Parse([]string{"--template", "modern"}))

	cfg, err := loadSettings(cmd, map[string]func(*config.Config){
		"template": func(c *config.Config) { c.Template = template },
	})
	require.NoError(t, err)

	assert.Equal(t, "modern", cfg.Template)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, 2, cfg.MaxPages)
	assert.Equal(t, config.DefaultOutputDir, cfg.OutputDir)
	assert.False(t, cfg.Verbose)
}

func TestLoadSettings_DefaultsWithoutConfig(t *testing.T) {
	var template string
	cmd := newSettingsCmd(&template)
	require.NoError(t, cmd.Flags().Parse([]string{"-v"}))

	cfg, err := loadSettings(cmd, nil)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTemplate, cfg.Template)
	assert.Equal(t, config.DefaultProvider, cfg.Provider)
	assert.True(t, cfg.Verbose)
}

func TestLoadSettings_InvalidTemplate(t *testing.T) {
	var template string
	cmd := newSettingsCmd(&template)
	require.NoError(t, cmd.Flags().Parse([]string{"--template", "fancy"}))

	_, err := loadSettings(cmd, map[string]func(*config.Config){
		"template": func(c *config.Config) { c.Template = template },
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown template "fancy"`)
}

func TestSourcePath(t *testing.T) {
	tests := []struct {
		name    string
		pdf     string
		text    string
		want    string
		wantErr string
	}{
		{name: "pdf", pdf: "resume.pdf", want: "resume.pdf"},
		{name: "text", text: "resume.txt", want: "resume.txt"},
		{name: "both", pdf: "a.pdf", text: "b.txt", wantErr: "mutually exclusive"},
		{name: "neither", wantErr: "either --pdf or --text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sourcePath(tt.pdf, tt.text)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserFacing(t *testing.T) {
	failed := &extraction.ExtractionFailedError{Message: "model request failed", Cause: errors.New("429")}
	assert.EqualError(t, userFacing(failed), extraction.ErrExtractionFailed.Error())

	other := errors.New("GEMINI_API_KEY is required but not set")
	assert.Equal(t, other, userFacing(other))
}

func TestWriteAndReadResume(t *testing.T) {
	r := types.New()
	r.Name = "Jane Doe"
	r.Skills = types.StringList{"Go"}

	path := filepath.Join(t.TempDir(), "nested", "resume.json")
	require.NoError(t, writeResume(path, r))

	back, err := readResume(path)
	require.NoError(t, err)
	assert.Equal(t, r, back)
}

func TestReadResume_Errors(t *testing.T) {
	_, err := readResume("/nonexistent/resume.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")

	_, err = readResume(writeTempFile(t, "bad.json", "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse resume JSON")
}

func TestLoadSource_Text(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "Jane Doe\r\nSKILLS\r\nGo   Python\n")

	text, meta, err := loadSource("", path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSKILLS\nGo Python", text)
	assert.Equal(t, path, meta.Source)
	assert.Zero(t, meta.Pages)
}
