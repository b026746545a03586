package fail2ban

import (
	"fmt"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
	"github.com/mit-orcd/coldfront-deployctl/internal/logging"
)

// artifactPath joins a rendered file name under the fail2ban root without
// letting it escape, even through symlinks inside the root.
func artifactPath(root, subdir, fileName string) (string, error) {
	path, err := securejoin.SecureJoin(root, filepath.Join(subdir, fileName))
	if err != nil {
		return "", errors.ValidationError(fmt.Sprintf("invalid artifact path %s: %v", fileName, err))
	}
	return path, nil
}

// Install validates the set, then writes every filter under
// <root>/filter.d and every jail under <root>/jail.d. Both directories are
// created first; if either creation fails nothing is written. Returns the
// written paths in write order.
func Install(root string, set *Set) ([]string, error) {
	if root == "" {
		return nil, errors.ValidationError("fail2ban root is required")
	}
	if err := set.Validate(); err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	filterDir := filepath.Join(root, "filter.d")
	jailDir := filepath.Join(root, "jail.d")
	for _, dir := range []string{filterDir, jailDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.IOError(fmt.Sprintf("cannot create directory %s", dir), err)
		}
	}

	var written []string
	for i := range set.Filters {
		f := &set.Filters[i]
		content, err := RenderFilter(f)
		if err != nil {
			return written, err
		}
		path, err := artifactPath(root, "filter.d", FilterFileName(f.Name))
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return written, errors.IOError(fmt.Sprintf("cannot write %s", path), err)
		}
		logging.Debug("filter installed", "name", f.Name, "path", path)
		written = append(written, path)
	}

	for i := range set.Jails {
		j := &set.Jails[i]
		content, err := RenderJail(j)
		if err != nil {
			return written, err
		}
		path, err := artifactPath(root, "jail.d", JailFileName(j.Name))
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return written, errors.IOError(fmt.Sprintf("cannot write %s", path), err)
		}
		logging.Debug("jail installed", "name", j.Name, "path", path)
		written = append(written, path)
	}

	return written, nil
}
