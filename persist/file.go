package persist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rustyeddy/tycoon/session"
)

// WriteFile saves s to path. The payload goes to a temp file in the same
// directory first and is renamed over path, so a crash never leaves a
// half-written save behind.
func WriteFile(path string, s *session.State) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tycoon-*.tmp")
	if err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// ReadFile resumes the session saved at path. Unlike Decode it does not
// log a restore line: the CLI saves and resumes around every command.
func ReadFile(path string) (*session.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("read save %s: %w", path, err)
	}
	return s, nil
}
