package service

import (
	"encoding/json"
)

// jsonCodec carries plain Go structs over Connect. It registers under the
// "json" name, so clients post application/json bodies.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
