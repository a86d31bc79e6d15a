// Package file reads the Granola application cache from disk.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driven"
	"github.com/custodia-labs/granola-scoop/internal/logger"
)

// Ensure CacheReader implements the interface.
var _ driven.CacheReader = (*CacheReader)(nil)

// emptyPayload stands in for a cache file without a cache member.
const emptyPayload = "{}"

// envelope is the outer document of the cache file. Its cache member
// holds the application state as a JSON-encoded string.
type envelope struct {
	Cache domain.Field `json:"cache"`
}

// payload is the decoded cache member.
type payload struct {
	State domain.Field `json:"state"`
}

// CacheReader loads the Granola cache file.
type CacheReader struct {
	path string
}

// NewCacheReader creates a reader for the cache at path.
func NewCacheReader(path string) *CacheReader {
	return &CacheReader{path: path}
}

// Path returns the cache file location.
func (r *CacheReader) Path() string {
	return r.path
}

// Load reads the cache file and decodes both encoding layers.
func (r *CacheReader) Load(ctx context.Context) (*domain.CacheState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at: %s", domain.ErrCacheNotFound, r.path)
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	logger.Debug("read %d bytes from %s", len(data), r.path)
	return Decode(data)
}

// Decode parses cache file contents. The outer envelope is decoded first,
// then the payload string it carries. Missing state sections yield empty maps.
func Decode(data []byte) (*domain.CacheState, error) {
	var outer envelope
	if err := json.Unmarshal(data, &outer); err != nil {
		return nil, fmt.Errorf("%w: envelope: %v", domain.ErrCacheDecode, err)
	}

	inner, err := payloadBytes(outer.Cache)
	if err != nil {
		return nil, err
	}

	var p payload
	if err := json.Unmarshal(inner, &p); err != nil {
		return nil, fmt.Errorf("%w: payload: %v", domain.ErrCacheDecode, err)
	}

	state := domain.NewCacheState()
	sections, ok := p.State.AsObject()
	if !ok {
		logger.Warn("cache payload has no state object")
		return state, nil
	}

	decodeDocuments(sections["documents"], state)
	decodeTranscripts(sections["transcripts"], state)

	logger.Debug("decoded %d documents and %d transcripts", len(state.Documents), len(state.Transcripts))
	return state, nil
}

// payloadBytes returns the encoded payload held by the envelope.
func payloadBytes(cache domain.Field) ([]byte, error) {
	switch cache.Kind() {
	case domain.KindAbsent, domain.KindNull:
		return []byte(emptyPayload), nil
	case domain.KindString:
		return []byte(cache.Text()), nil
	default:
		return nil, fmt.Errorf("%w: envelope: cache member is a %s, want string", domain.ErrCacheDecode, cache.Kind())
	}
}

// decodeDocuments walks the documents object in file order so each
// document keeps its position. A repeated key replaces the earlier
// document but keeps its position.
func decodeDocuments(section domain.Field, state *domain.CacheState) {
	if section.Kind() != domain.KindObject {
		return
	}

	dec := json.NewDecoder(bytes.NewReader(section))
	if _, err := dec.Token(); err != nil {
		logger.Warn("cannot read documents: %v", err)
		return
	}

	for position := 0; dec.More(); position++ {
		tok, err := dec.Token()
		if err != nil {
			logger.Warn("cannot read document key: %v", err)
			return
		}
		id, _ := tok.(string)

		var raw domain.Field
		if err := dec.Decode(&raw); err != nil {
			logger.Warn("cannot read document %s: %v", id, err)
			return
		}
		if raw.Kind() != domain.KindObject {
			logger.Debug("skipping document %s: not an object", id)
			continue
		}

		var doc domain.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			logger.Debug("skipping document %s: %v", id, err)
			continue
		}
		doc.ID = id
		doc.Position = position
		if prev, ok := state.Documents[id]; ok {
			doc.Position = prev.Position
		}
		state.Documents[id] = &doc
	}
}

func decodeTranscripts(section domain.Field, state *domain.CacheState) {
	entries, ok := section.AsObject()
	if !ok {
		return
	}

	for id, raw := range entries {
		items, _ := raw.AsArray()
		segments := make([]domain.TranscriptSegment, 0, len(items))
		for _, item := range items {
			members, ok := item.AsObject()
			if !ok {
				continue
			}
			segments = append(segments, domain.TranscriptSegment{
				Text:   members["text"].Text(),
				Source: segmentSource(members["source"]),
			})
		}
		state.Transcripts[id] = segments
	}
}

func segmentSource(source domain.Field) string {
	if s, ok := source.AsString(); ok {
		return s
	}
	return domain.UnknownSpeaker
}
