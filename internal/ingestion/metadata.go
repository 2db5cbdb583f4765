package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Metadata describes one ingested resume document.
type Metadata struct {
	ID        uuid.UUID `json:"id"`
	Source    string    `json:"source,omitempty"`
	Timestamp string    `json:"timestamp"`       // RFC3339
	Hash      string    `json:"hash"`            // SHA256 hex digest of the cleaned text
	Pages     int       `json:"pages,omitempty"` // zero for plain-text sources
}

// NewMetadata creates a Metadata stamped with the current time.
func NewMetadata(content string, source string, pages int) *Metadata {
	return &Metadata{
		ID:        uuid.New(),
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Pages:     pages,
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
