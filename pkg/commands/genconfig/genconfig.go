package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/roster/pkg/config"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/types"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Path is where --write puts the file. Defaults to the user config path.
	Path       string
	Write      bool
	FileSystem types.FS
}

// GenConfig outputs or writes the default configuration
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")
	logger.Debug().Str("command", "GenConfig").Bool("write", opts.Write).Msg("Executing command")

	content := config.GenerateConfigContent()
	result := &types.GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Info().Str("command", "GenConfig").Msg("Command finished")
		return result, nil
	}

	target := opts.Path
	if target == "" {
		target = config.UserConfigPath()
	}

	if _, err := opts.FileSystem.Stat(target); err == nil {
		logger.Warn().Str("path", target).Msg("Config file already exists, skipping")
		logger.Info().Str("command", "GenConfig").Msg("Command finished")
		return result, nil
	}

	if err := opts.FileSystem.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrIOFailure, "failed to create directory %s", filepath.Dir(target))
	}
	if err := opts.FileSystem.WriteFile(target, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrIOFailure, "failed to write config to %s", target).
			WithDetail("path", target)
	}

	logger.Info().Str("command", "GenConfig").Str("path", target).Msg("Command finished")
	result.FilesWritten = append(result.FilesWritten, target)
	return result, nil
}
