package models

import "github.com/pkg/errors"

// Sentinel errors for the failure classes user input and provider lookups can
// produce. Call sites wrap these with errors.Wrapf so banners carry the
// offending value while errors.Is still matches the class.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
	ErrOutOfRange          = errors.New("value out of range")
	ErrConflictingDates    = errors.New("conflicting date options")
	ErrIncompleteDateRange = errors.New("incomplete date range")
	ErrTransport           = errors.New("request failed")
)
