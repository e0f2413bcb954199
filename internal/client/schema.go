package client

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	postSchema        = mustSchema("post.schema.json")
	postListSchema    = mustSchema("post_list.schema.json")
	postUpdateSchema  = mustSchema("post_update.schema.json")
	commentListSchema = mustSchema("comment_list.schema.json")
)

func mustSchema(name string) *jsonschema.Schema {
	raw, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(err)
	}
	return jsonschema.MustCompileString(name, string(raw))
}

// decode validates raw against s before unmarshalling it into T, so that a
// body of the wrong shape is rejected instead of decoding into zero values.
func decode[T any](s *jsonschema.Schema, raw []byte) (T, error) {
	var out T
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return out, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := s.Validate(doc); err != nil {
		return out, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return out, nil
}
