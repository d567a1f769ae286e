// Package objectid converts external identifier strings into store identifiers.
package objectid

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/scic-labs/taskboard-server/internal/model"
)

// Parse returns the ObjectID encoded by s, a 24 character hex string.
// Any other input yields model.ErrInvalidIdentifier.
func Parse(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", model.ErrInvalidIdentifier, s)
	}
	return id, nil
}
