package domain

import "fmt"

// GatewayError is the normalized failure of one backend call.
// Status 0 means the backend was never reached (transport failure or
// timeout); any other status was reported by the backend itself.
type GatewayError struct {
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	if e.Transport() {
		return fmt.Sprintf("gateway transport failure: %s", e.Message)
	}
	return fmt.Sprintf("gateway error (status %d): %s", e.Status, e.Message)
}

func (e *GatewayError) Transport() bool {
	return e.Status == 0
}

// ValidationError is bad command syntax. It is resolved locally with a
// usage message and never reaches a gateway.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
