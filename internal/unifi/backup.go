package unifi

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// RunBackup dumps the controller database from the running mongodb container.
// The dump streams through Go's gzip writer instead of a shell pipeline, so
// nothing is interpolated through a shell on the host side.
func RunBackup(cfg Config) error {
	style := detectComposeStyle()
	if style == composeNone {
		return exitErrf(ExitMissingTool, "docker compose not available")
	}
	if !fileExists(cfg.ComposePath()) {
		return fmt.Errorf("no compose manifest at %s; run setup first", cfg.ComposePath())
	}
	if !composeServiceRunning(cfg, style, dbService) {
		fmt.Printf("skip backup: %s is not running\n", dbService)
		return nil
	}

	if err := ensureDir(cfg.BackupDir(), 0o750); err != nil {
		return err
	}

	ts := time.Now().UTC().Format("20060102T150405Z")
	outPath := filepath.Join(cfg.BackupDir(), fmt.Sprintf("mongo_%s.archive.gz", ts))

	// Root credentials are already present in the container environment.
	dumpCmd := `mongodump --archive -u "$MONGO_INITDB_ROOT_USERNAME" -p "$MONGO_INITDB_ROOT_PASSWORD" --authenticationDatabase admin`
	name, args := style.command(cfg, "exec", "-T", dbService, "sh", "-c", dumpCmd)
	cmd := exec.Command(name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("mongodump setup failed: %w", err)
	}
	cmd.Stderr = os.Stderr

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}
	defer outFile.Close()

	gz := gzip.NewWriter(outFile)

	if err := cmd.Start(); err != nil {
		gz.Close()
		return fmt.Errorf("mongodump start failed: %w", err)
	}
	if _, err := io.Copy(gz, stdout); err != nil {
		gz.Close()
		return fmt.Errorf("mongodump copy failed: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("gzip close failed: %w", err)
	}
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("mongodump failed: %w", err)
	}

	fmt.Printf("wrote %s\n", outPath)
	return nil
}
