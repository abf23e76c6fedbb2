package wellness

import "errors"

var (
	// ErrInvalidTimezone is returned when an IANA timezone identifier is unrecognized.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrMalformedPayload is returned when a raw forecast payload is missing
	// required fields or violates ordering guarantees. It is always propagated
	// to the caller; downstream models assume complete hourly coverage.
	ErrMalformedPayload = errors.New("malformed forecast payload")

	// ErrInvalidTimeRange is returned for out-of-range clock times or
	// degenerate time windows.
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrConfiguration is returned for bad or missing configuration entries,
	// e.g. an ideal-range table entry with min > max.
	ErrConfiguration = errors.New("configuration error")
)
