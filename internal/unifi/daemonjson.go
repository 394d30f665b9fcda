package unifi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const daemonJSONPath = "/etc/docker/daemon.json"

// setDaemonDataRoot rewrites the daemon config so it contains exactly one
// data-root key with the given value, preserving every unrelated key. An
// existing file that fails to parse is kept as <path>.bak and replaced with a
// minimal valid config, so the output is always valid JSON.
func setDaemonDataRoot(path, dataRoot string) error {
	conf := map[string]any{}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return err
	case len(bytes.TrimSpace(raw)) > 0:
		if jerr := json.Unmarshal(raw, &conf); jerr != nil {
			if berr := os.WriteFile(path+".bak", raw, 0o600); berr != nil {
				return fmt.Errorf("back up malformed %s: %w", path, berr)
			}
			logger.Warn("daemon config was malformed, rewriting", "path", path, "backup", path+".bak")
			conf = map[string]any{}
		}
	}

	conf["data-root"] = dataRoot
	return writeDaemonJSON(path, conf)
}

// removeDaemonDataRoot deletes the data-root key. A missing file or missing
// key is a no-op, so running this twice is the same as running it once.
func removeDaemonDataRoot(path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	conf := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &conf); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if _, ok := conf["data-root"]; !ok {
		return nil
	}
	delete(conf, "data-root")
	return writeDaemonJSON(path, conf)
}

func writeDaemonJSON(path string, conf map[string]any) error {
	out, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return err
	}
	if err := ensureDir(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}
