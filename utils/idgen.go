package utils

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var sequentialIDPattern = regexp.MustCompile(`^[A-Z]+-\d{4,}$`)

// IsValidSequentialID reports whether id looks like "B-0001".
func IsValidSequentialID(id string) bool {
	return sequentialIDPattern.MatchString(id)
}

// NextSequentialID returns the id following last for the given prefix,
// zero-padded to 4 digits. An empty or unparseable last yields
// "<prefix>-0001". Numbers above 9999 keep their natural width.
func NextSequentialID(last, prefix string) string {
	next := 1
	if last != "" {
		parts := strings.SplitN(last, "-", 2)
		if len(parts) == 2 {
			if n, err := strconv.Atoi(parts[1]); err == nil {
				next = n + 1
			}
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, next)
}

// NextEntityID generates the next human-readable id for a collection by
// reading the current maximum value of field and incrementing it. Ids are
// zero-padded to 4 digits but grow past that, so the maximum sorts by string
// length before string value; a plain descending sort would rank "B-9999"
// above "B-10000" forever.
//
// Not safe under concurrent callers: two requests can read the same maximum
// and mint the same id. The unique index on the id field turns that race
// into an insert error instead of a silent duplicate.
func NextEntityID(ctx context.Context, coll *mongo.Collection, prefix, field string) (string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{field: bson.M{"$exists": true}}}},
		{{Key: "$addFields", Value: bson.M{"seqIdLength": bson.M{"$strLenCP": "$" + field}}}},
		{{Key: "$sort", Value: bson.D{{Key: "seqIdLength", Value: -1}, {Key: field, Value: -1}}}},
		{{Key: "$limit", Value: 1}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return "", fmt.Errorf("generating %s id: %w", prefix, err)
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return "", fmt.Errorf("generating %s id: %w", prefix, err)
	}
	if len(results) == 0 {
		return NextSequentialID("", prefix), nil
	}

	lastID, _ := lookupString(results[0], field)
	return NextSequentialID(lastID, prefix), nil
}

// lookupString resolves a possibly dotted field path in a decoded document.
func lookupString(doc bson.M, field string) (string, bool) {
	parts := strings.Split(field, ".")
	cur := doc
	for i, part := range parts {
		if i == len(parts)-1 {
			s, ok := cur[part].(string)
			return s, ok
		}
		next, ok := cur[part].(bson.M)
		if !ok {
			return "", false
		}
		cur = next
	}
	return "", false
}
