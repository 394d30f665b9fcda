package unifi

import "os"

func ensureDir(path string, mode os.FileMode) error {
	return os.MkdirAll(path, mode)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
