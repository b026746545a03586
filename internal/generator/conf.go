package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mit-orcd/coldfront-deployctl/internal/config"
	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
	"github.com/mit-orcd/coldfront-deployctl/internal/logging"
)

// Render produces the deployment.conf content for the given settings.
// Returns the rendered text and any validation error.
func Render(settings *Settings) (string, error) {
	if err := settings.Validate(); err != nil {
		return "", errors.ValidationError(fmt.Sprintf("invalid settings: %v", err))
	}

	var buf bytes.Buffer
	if err := confTemplate.Execute(&buf, settings); err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, "failed to render deployment config", err)
	}

	return buf.String(), nil
}

// Materialize writes deployment.conf under outputDir and returns the written
// path. The directory is created first; if that fails nothing is rendered.
// An existing file is overwritten.
func Materialize(outputDir string, settings *Settings) (string, error) {
	if outputDir == "" {
		return "", errors.ValidationError("output directory is required")
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", errors.IOError(fmt.Sprintf("cannot create output directory %s", outputDir), err)
	}

	content, err := Render(settings)
	if err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, config.ConfFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.IOError(fmt.Sprintf("cannot write %s", path), err)
	}

	logging.Debug("deployment config written", "path", path)
	return path, nil
}
