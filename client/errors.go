package client

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// APIError is a non-2xx backend response. Message carries the backend's
// structured reason (the "detail" field) when one was given; raw
// transport errors never reach callers through this type.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned HTTP %d", e.Status)
}

func newAPIError(resp *resty.Response) *APIError {
	return &APIError{
		Status:  resp.StatusCode(),
		Message: gjson.GetBytes(resp.Body(), "detail").String(),
	}
}
