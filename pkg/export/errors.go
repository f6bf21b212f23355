package export

import (
	"errors"
	"fmt"

	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
)

// Document names reported in [ShapeError].
const (
	DocFollowers = "followers"
	DocFollowing = "following"
)

// Reasons reported in [ShapeError].
const (
	ReasonNotList          = "top level must be a list"
	ReasonNotObject        = "top level must be an object"
	ReasonMissingFollowing = "missing " + keyRelationshipsFollowing + " list"
)

// ShapeError reports that a document's top level does not have the
// structure its extractor requires.
type ShapeError struct {
	Document string // DocFollowers or DocFollowing
	Reason   string // human-readable structural expectation that failed
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s document: %s", e.Document, e.Reason)
}

// Code reports [gferrors.ErrCodeInvalidShape].
func (e *ShapeError) Code() gferrors.Code {
	return gferrors.ErrCodeInvalidShape
}

// IsShapeError reports whether err is or wraps a *ShapeError.
func IsShapeError(err error) bool {
	var se *ShapeError
	return errors.As(err, &se)
}
