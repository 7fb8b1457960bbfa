package cli

import "os"

// tempProvider points the config directory at a test directory
type tempProvider struct {
	dir string
}

func (p tempProvider) UserConfigDir() (string, error) {
	return p.dir, nil
}

func (p tempProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
