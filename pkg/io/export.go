package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/errors"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/pipeline"
)

// WriteResult encodes a calculation result as indented JSON to w.
func WriteResult(w io.Writer, result pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode result")
	}
	return nil
}

// ExportResult writes a calculation result to the file at path, creating
// parent directories as needed.
func ExportResult(path string, result pipeline.Result) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := WriteResult(f, result); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
