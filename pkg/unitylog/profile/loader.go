package profile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// MaxProfileFileSize is the maximum allowed size for a profile file
	// (64KB). Profiles are a handful of strings; anything larger is not a
	// profile.
	MaxProfileFileSize = 64 * 1024

	// SupportedVersion is the currently supported profile file format
	// version.
	SupportedVersion = 1
)

// sanitizePathError removes the path from os.PathError so error messages
// don't expose file system paths to users.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

// Load reads and parses a profile file from the given path. Returns an
// error if the file cannot be read, is not a regular file, is too large,
// or fails validation.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile file: %w", sanitizePathError(err))
	}
	defer f.Close()

	// Stat the file descriptor, not the path, to avoid TOCTOU.
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat profile file: %w", sanitizePathError(err))
	}
	if !info.Mode().IsRegular() {
		return nil, errors.New("profile file must be a regular file (not FIFO, device, or special file)")
	}
	if info.Size() == 0 {
		return nil, errors.New("profile file is empty")
	}
	if info.Size() > MaxProfileFileSize {
		return nil, fmt.Errorf("profile file too large: %d bytes (max %d)", info.Size(), MaxProfileFileSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxProfileFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", sanitizePathError(err))
	}
	if len(data) > MaxProfileFileSize {
		return nil, fmt.Errorf("profile file too large: %d bytes (max %d)", len(data), MaxProfileFileSize)
	}

	return LoadBytes(data)
}

// LoadBytes parses a profile from a byte slice. Returns an error if the
// data cannot be parsed or fails validation.
func LoadBytes(data []byte) (*Profile, error) {
	if len(data) == 0 {
		return nil, errors.New("profile file is empty")
	}
	if len(data) > MaxProfileFileSize {
		return nil, fmt.Errorf("profile file too large: %d bytes (max %d)", len(data), MaxProfileFileSize)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
