package unifi

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
)

func RunDoctor(cfg Config) error {
	fmt.Println("unifictl doctor")
	fmt.Printf("runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	checks := []struct {
		name string
		fn   func() error
	}{
		{"apt-get binary", func() error {
			_, err := exec.LookPath("apt-get")
			return err
		}},
		{"systemctl binary", func() error {
			_, err := exec.LookPath("systemctl")
			return err
		}},
		{"docker binary", func() error {
			_, err := exec.LookPath("docker")
			return err
		}},
		{"docker compose", func() error {
			if detectComposeStyle() == composeNone {
				return fmt.Errorf("neither docker compose nor docker-compose found")
			}
			return nil
		}},
		{"docker daemon", func() error {
			_, err := runCmdCapture("docker", "info")
			return err
		}},
		{"stack dir writable", func() error {
			return writableCheck(cfg.StackDir)
		}},
		{"disk space >= 5GiB on stack dir", func() error {
			return diskCheck(cfg.StackDir, 5)
		}},
		{"ports 443/8443 status", func() error {
			out, err := runCmdCapture("ss", "-ltn")
			if err != nil {
				return err
			}
			if strings.Contains(out, ":443 ") || strings.Contains(out, ":8443 ") {
				return fmt.Errorf("ports 443/8443 already in use")
			}
			return nil
		}},
		{"route53 dns credentials", func() error {
			if cfg.AWSAccessKeyID == "" || cfg.AWSSecretAccessKey == "" {
				return fmt.Errorf("AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY not set; caddy dns challenge will fail")
			}
			return nil
		}},
	}

	for _, check := range checks {
		if err := check.fn(); err != nil {
			fmt.Printf("[WARN] %s: %v\n", check.name, err)
		} else {
			fmt.Printf("[ OK ] %s\n", check.name)
		}
	}
	return nil
}

func writableCheck(dir string) error {
	if err := ensureDir(dir, 0o750); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "unifictl-write-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}

func diskCheck(path string, minGiB uint64) error {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return err
	}
	free := (stat.Bavail * uint64(stat.Bsize)) / (1024 * 1024 * 1024)
	if free < minGiB {
		return fmt.Errorf("free space %dGiB < %dGiB", free, minGiB)
	}
	return nil
}
