package utils

import "go.mongodb.org/mongo-driver/bson"

// profileBooleanFields arrive from mobile clients as the strings "true" or
// "false" and are stored as real booleans.
var profileBooleanFields = []string{"notifications", "offlineSync"}

// MergeProfile shallow-merges incoming profile fields over the existing
// profile. Incoming values win; boolean fields are normalized from strings
// and default to false when present in neither document.
func MergeProfile(existing, incoming bson.M) bson.M {
	merged := bson.M{}
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = v
	}

	for _, field := range profileBooleanFields {
		if v, ok := incoming[field]; ok {
			merged[field] = coerceBool(v)
			continue
		}
		if v, ok := existing[field]; ok {
			merged[field] = coerceBool(v)
			continue
		}
		merged[field] = false
	}

	return merged
}

func coerceBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true"
	}
	return false
}
