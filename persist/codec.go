package persist

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Serializer converts a Recipe to a byte representation and back.
// The byte form is the only thing that crosses the process boundary.
type Serializer interface {
	Serialize(r Recipe) ([]byte, error)
	Deserialize(data []byte) (Recipe, error)
}

// ErrCorrupt marks a byte stream that cannot be decoded back into a
// recipe: truncated, checksum mismatch, or undecodable payload.
var ErrCorrupt = fmt.Errorf("corrupt recipe data")

// checksumLen is the size of the xxhash frame prefix.
const checksumLen = 8

// GobCodec is the default Serializer: a gob-encoded recipe framed with
// a big-endian xxhash64 checksum of the payload. The checksum turns
// silent bit rot into a loud DeserializationFailure.
type GobCodec struct{}

var _ Serializer = GobCodec{}

func (GobCodec) Serialize(r Recipe) ([]byte, error) {
	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(r); err != nil {
		return nil, fmt.Errorf("failed to encode recipe: %w", err)
	}

	framed := make([]byte, checksumLen, checksumLen+payload.Len())
	binary.BigEndian.PutUint64(framed, xxhash.Sum64(payload.Bytes()))
	return append(framed, payload.Bytes()...), nil
}

func (GobCodec) Deserialize(data []byte) (Recipe, error) {
	if len(data) < checksumLen {
		return Recipe{}, fmt.Errorf("%w: %d bytes is shorter than the checksum frame", ErrCorrupt, len(data))
	}

	want := binary.BigEndian.Uint64(data[:checksumLen])
	payload := data[checksumLen:]
	if got := xxhash.Sum64(payload); got != want {
		return Recipe{}, fmt.Errorf("%w: checksum mismatch (want %x, got %x)", ErrCorrupt, want, got)
	}

	var r Recipe
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&r); err != nil {
		return Recipe{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return r, nil
}
