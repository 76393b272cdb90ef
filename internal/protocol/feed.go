package protocol

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/feed.schema.json
var feedSchemaJSON []byte

const feedSchemaURL = "https://hexwar.io/schemas/feed.schema.json"

var (
	feedSchemaOnce sync.Once
	feedSchema     *jsonschema.Schema
	feedSchemaErr  error
)

func compiledFeedSchema() (*jsonschema.Schema, error) {
	feedSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(feedSchemaURL, bytes.NewReader(feedSchemaJSON)); err != nil {
			feedSchemaErr = err
			return
		}
		feedSchema, feedSchemaErr = c.Compile(feedSchemaURL)
	})
	return feedSchema, feedSchemaErr
}

// DecodeFeed validates a feed snapshot against feed.schema.json and decodes it.
func DecodeFeed(b []byte) ([]VertexRecord, error) {
	s, err := compiledFeedSchema()
	if err != nil {
		return nil, Errorf(ErrInternal, "feed schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, Errorf(ErrFeedDecode, "feed json: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, Errorf(ErrFeedSchema, "%w", err)
	}
	var recs []VertexRecord
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, Errorf(ErrFeedDecode, "feed records: %w", err)
	}
	return recs, nil
}

func EncodeFeed(recs []VertexRecord) ([]byte, error) {
	if recs == nil {
		recs = []VertexRecord{}
	}
	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode feed: %w", err)
	}
	return append(b, '\n'), nil
}
