// Package snapshot encodes engine snapshots. Decoding validates the JSON against an embedded
// schema before it reaches the game types; the framed form is zstd compressed.
package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mintworks/game"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed snapshot.schema.json
var schemaJSON string

const schemaURL = "https://mintworks.dev/schemas/snapshot.schema.json"

var ErrInvalidSnapshot = errors.New("invalid snapshot")

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, bytes.NewReader([]byte(schemaJSON))); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return c.Compile(schemaURL)
})

func Marshal(s game.Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	return data, nil
}

// Unmarshal validates data against the snapshot schema and decodes it.
func Unmarshal(data []byte) (game.Snapshot, error) {
	var s game.Snapshot
	if err := Validate(data); err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return s, nil
}

// Validate checks data against the snapshot schema only.
func Validate(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return nil
}

// Write stores the snapshot as zstd-compressed JSON.
func Write(w io.Writer, s game.Snapshot) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return fmt.Errorf("zstd write: %w", err)
	}
	return enc.Close()
}

// Read decompresses and decodes a snapshot written by Write.
func Read(r io.Reader) (game.Snapshot, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return game.Snapshot{}, err
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("zstd read: %w", err)
	}
	return Unmarshal(data)
}

// UnmarshalTurn decodes a turn, rejecting unknown action types and stray fields.
func UnmarshalTurn(data []byte) (game.Turn, error) {
	var t game.Turn
	if err := json.Unmarshal(data, &t); err != nil {
		return t, err
	}
	return t, nil
}
