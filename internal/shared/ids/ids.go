// Package ids converts external record identifiers into store keys.
//
// Identifiers are 24 hexadecimal characters (the BSON ObjectID grammar) for
// every store backend, so ids stay portable between MongoDB, PostgreSQL and
// the in-memory store.
package ids

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrMalformed is returned when a string does not match the identifier grammar.
var ErrMalformed = errors.New("invalid ID format")

// Parse validates raw and returns its key form. Surrounding whitespace is
// not part of the grammar.
func Parse(raw string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, ErrMalformed
	}
	return oid, nil
}

// Canonical returns the lowercase hex form of raw, or ErrMalformed.
func Canonical(raw string) (string, error) {
	oid, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

// New returns a fresh identifier.
func New() primitive.ObjectID {
	return primitive.NewObjectID()
}
