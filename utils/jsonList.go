package utils

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// StringList decodes a stored JSON column into an ordered list of strings.
// A null, missing, or malformed value degrades to an empty list. Non-string
// elements are re-encoded as compact JSON so callers always get strings.
func StringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var elems []interface{}
	if err := json.Unmarshal(raw, &elems); err != nil {
		return []string{}
	}

	list := make([]string, 0, len(elems))
	for _, elem := range elems {
		switch v := elem.(type) {
		case string:
			list = append(list, v)
		case nil:
			// skip null entries
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				continue
			}
			list = append(list, string(encoded))
		}
	}
	return list
}

// JSONList encodes a list of strings for storage in a JSON column.
func JSONList(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}
