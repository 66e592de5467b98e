package client

import (
	"fmt"
)

type ErrorKind int

const (
	// KindTransport covers network failures and unparsable bodies: no usable
	// HTTP response.
	KindTransport ErrorKind = iota
	// KindAPI covers failed HTTP statuses and domain errors reported in the payload.
	KindAPI
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// RequestError is the only error type returned by the client.
type RequestError struct {
	Kind       ErrorKind
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("request error: %s", e.Message)
	case e.Err != nil:
		return fmt.Sprintf("request error: %v", e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("request error: HTTP %d", e.StatusCode)
	default:
		return fmt.Sprintf("request error: %s %s failed", e.Kind, e.Endpoint)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func transportError(endpoint string, err error) *RequestError {
	return &RequestError{Kind: KindTransport, Endpoint: endpoint, Err: err}
}

func apiError(endpoint string, status int, message string) *RequestError {
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}
	return &RequestError{Kind: KindAPI, Endpoint: endpoint, StatusCode: status, Message: message}
}
