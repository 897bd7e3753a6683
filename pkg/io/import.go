package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/errors"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// ReadInput decodes a raw input document from r.
//
// The document is a single JSON object mapping field names to values:
//
//	{
//	  "conveyor_length_in": 120,
//	  "belt_width_in": 18,
//	  "speed_fpm": 60
//	}
//
// Legacy field names are accepted; migration reconciles them later. ReadInput
// does not close r.
func ReadInput(r io.Reader) (schema.RawInput, error) {
	var raw schema.RawInput
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode input")
	}
	return raw, nil
}

// ImportInput reads a raw input JSON file at path.
func ImportInput(path string) (schema.RawInput, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	raw, err := ReadInput(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}

// ImportOverrides reads a TOML parameter-override file at path. Only the
// keys present in the file override defaults; everything else keeps its
// process-wide value.
func ImportOverrides(path string) (*schema.Overrides, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	var over schema.Overrides
	meta, err := toml.DecodeFile(path, &over)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParams, err, "decode %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidParams, "%s: unknown parameter %q", path, undecoded[0].String())
	}
	return &over, nil
}
