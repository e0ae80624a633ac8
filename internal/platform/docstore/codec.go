// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package docstore

import (
	"encoding/json"
	"fmt"
)

// Encode converts a domain struct into the raw field map stored in a document.
//
// The JSON tags on the domain types define the storage field names, so the
// stored shape matches the wire shape exactly. The "id" field, when present,
// is removed: the document key is the only holder of identity.
func Encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("docstore: encoding document: %w", err)
	}

	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("docstore: encoding document: %w", err)
	}

	delete(data, "id")
	return data, nil
}

// Decode converts raw field data back into a domain struct.
// The target must be a non-nil pointer.
func Decode(data map[string]any, target any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("docstore: decoding document: %w", err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("docstore: decoding document: %w", err)
	}

	return nil
}
