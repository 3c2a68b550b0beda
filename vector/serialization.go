package vector

import (
	"encoding/json"
	"fmt"

	"github.com/poiesic/veilleur/core"
)

// recordEnvelope is the stored JSON form of a VectorRecord. The ID lives
// in the key, not the value, so it is omitted here.
type recordEnvelope struct {
	Embedding []float32         `json:"embedding"`
	Document  string            `json:"document"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// MarshalRecord serializes a VectorRecord value to bytes.
func MarshalRecord(record *core.VectorRecord) ([]byte, error) {
	data, err := json.Marshal(recordEnvelope{
		Embedding: record.Embedding,
		Document:  record.Document,
		Metadata:  record.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalRecord deserializes a VectorRecord from bytes. The caller
// supplies the ID recovered from the record key.
func UnmarshalRecord(id core.ID, data []byte) (*core.VectorRecord, error) {
	var env recordEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	return &core.VectorRecord{
		ID:        id,
		Embedding: env.Embedding,
		Document:  env.Document,
		Metadata:  env.Metadata,
	}, nil
}
