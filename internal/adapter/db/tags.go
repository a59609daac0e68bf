package db

import "encoding/json"

// encodeTags serializes a tag list into the JSON column form. Empty lists
// are stored as NULL.
func encodeTags(tags []string) (*string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	encoded := string(raw)
	return &encoded, nil
}

func decodeTags(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(*raw), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
