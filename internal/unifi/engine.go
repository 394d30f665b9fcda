package unifi

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	dockerKeyringPath = "/etc/apt/keyrings/docker.gpg"
	dockerRepoPath    = "/etc/apt/sources.list.d/docker.list"
	dockerGPGURL      = "https://download.docker.com/linux/ubuntu/gpg"
	osReleasePath     = "/etc/os-release"
)

var dockerPackages = []string{
	"docker-ce",
	"docker-ce-cli",
	"containerd.io",
	"docker-buildx-plugin",
	"docker-compose-plugin",
}

func installPrereqs() error {
	if err := runCmdStream("apt-get", "update"); err != nil {
		return err
	}
	return runCmdStream("apt-get", "install", "-y", "ca-certificates", "curl", "gnupg")
}

// ensureDockerKeyring fetches and dearmors Docker's signing key. Checked via
// file existence so an existing key is never re-fetched.
func ensureDockerKeyring() error {
	if fileExists(dockerKeyringPath) {
		return nil
	}
	if err := ensureDir(filepath.Dir(dockerKeyringPath), 0o755); err != nil {
		return err
	}

	armored, err := exec.Command("curl", "-fsSL", dockerGPGURL).Output()
	if err != nil {
		return fmt.Errorf("fetch docker signing key: %w", err)
	}

	gpg := exec.Command("gpg", "--dearmor", "-o", dockerKeyringPath)
	gpg.Stdin = bytes.NewReader(armored)
	gpg.Stderr = os.Stderr
	if err := gpg.Run(); err != nil {
		return fmt.Errorf("dearmor docker signing key: %w", err)
	}
	return os.Chmod(dockerKeyringPath, 0o644)
}

func addDockerRepo() error {
	raw, err := os.ReadFile(osReleasePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", osReleasePath, err)
	}
	codename, err := parseOSReleaseCodename(raw)
	if err != nil {
		return err
	}

	line := fmt.Sprintf(
		"deb [arch=%s signed-by=%s] https://download.docker.com/linux/ubuntu %s stable\n",
		dpkgArch(), dockerKeyringPath, codename,
	)
	if err := os.WriteFile(dockerRepoPath, []byte(line), 0o644); err != nil {
		return err
	}
	return runCmdStream("apt-get", "update")
}

func parseOSReleaseCodename(raw []byte) (string, error) {
	s := bufio.NewScanner(bytes.NewReader(raw))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if v, ok := strings.CutPrefix(line, "VERSION_CODENAME="); ok {
			return strings.Trim(v, "\""), nil
		}
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("VERSION_CODENAME not found in %s", osReleasePath)
}

func dpkgArch() string {
	if out, err := runCmdCapture("dpkg", "--print-architecture"); err == nil {
		if arch := strings.TrimSpace(out); arch != "" {
			return arch
		}
	}
	return runtime.GOARCH
}

func installDockerEngine() error {
	args := append([]string{"install", "-y"}, dockerPackages...)
	return runCmdStream("apt-get", args...)
}

func ensureDockerRoot(cfg Config) error {
	if err := ensureDir(cfg.DockerRoot, 0o711); err != nil {
		return err
	}
	if err := os.Chmod(cfg.DockerRoot, 0o711); err != nil {
		return err
	}
	return os.Chown(cfg.DockerRoot, 0, 0)
}

func enableDockerDaemon() error {
	if err := runCmdStream("systemctl", "daemon-reload"); err != nil {
		return err
	}
	if err := runCmdStream("systemctl", "enable", "--now", "docker"); err != nil {
		return err
	}
	return runCmdStream("systemctl", "restart", "docker")
}

func purgeDockerEngine() error {
	args := append([]string{"purge", "-y"}, dockerPackages...)
	if err := runCmdStream("apt-get", args...); err != nil {
		return err
	}
	return runCmdStream("apt-get", "autoremove", "-y")
}

func removeDockerRepo() error {
	for _, path := range []string{dockerRepoPath, dockerKeyringPath} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return runCmdStream("apt-get", "update")
}
