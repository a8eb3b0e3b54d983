package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// now returns the current time at millisecond precision, matching what the
// store round-trips. Using one value per insert keeps createdAt == updatedAt.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// setDocument converts a patch struct (pointer fields, bson omitempty tags)
// into a $set document stamped with a fresh updatedAt.
func setDocument(patch interface{}) (bson.M, error) {
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("marshal patch: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal patch: %w", err)
	}
	doc["updatedAt"] = now()
	return doc, nil
}
