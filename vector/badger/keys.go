package badger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/veilleur/core"
)

// Key prefix for vector records
const vectorRecordPrefix = "vecrec"

// makeRecordKey generates a key for a vector record by ID.
func makeRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", vectorRecordPrefix, id))
}

// parseRecordKey recovers the record ID from its key.
func parseRecordKey(key []byte) (core.ID, error) {
	hexID, ok := strings.CutPrefix(string(key), vectorRecordPrefix+":")
	if !ok {
		return 0, fmt.Errorf("not a vector record key: %q", key)
	}
	raw, err := strconv.ParseUint(hexID, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed vector record key %q: %w", key, err)
	}
	return core.ID(raw), nil
}
