package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateAnalyzeOptions(opts analyzeOptions) error {
	if strings.TrimSpace(opts.DocumentPath) == "" {
		return fmt.Errorf("document file is required")
	}

	abs, err := filepath.Abs(opts.DocumentPath)
	if err != nil {
		return fmt.Errorf("resolve document path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("document file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("document path %s is a directory", abs)
	}

	if opts.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
