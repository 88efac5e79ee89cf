package types

import "errors"

// Failure kinds surfaced by the booking engine and the payment state
// machine. Handlers match these with errors.Is to pick a status code.
var (
	ErrInvalidDateRange         = errors.New("end date must be after start date")
	ErrListingUnavailable       = errors.New("listing is not available for the requested dates")
	ErrInitiationFailed         = errors.New("payment initiation failed")
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrGatewayUnreachable       = errors.New("payment gateway unreachable")
	ErrGatewayMalformedResponse = errors.New("malformed payment gateway response")
)
