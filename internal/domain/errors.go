package domain

import "errors"

// ErrInvalidID is wrapped by construction failures of CompanyID and PersonID.
// The HTTP layer maps it (via apperr) to a 422 response.
var ErrInvalidID = errors.New("invalid id")
