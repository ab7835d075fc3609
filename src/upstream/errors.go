package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrImageNotFound is returned when the Cover Art Archive has no usable image
// for a release group.
var ErrImageNotFound = errors.New("image not found")

// StatusCoder is implemented by every error which should abort the whole
// artist lookup. StatusCode is the HTTP status the error maps to.
type StatusCoder interface {
	StatusCode() int
}

// UpstreamError is returned when one of the upstream APIs answers with a
// non-success HTTP status. Message contains the upstream's own error text
// when it could be decoded.
type UpstreamError struct {
	Service string
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d: %s", e.Service, e.Status, e.Message)
}

// StatusCode returns the status code the upstream responded with.
func (e *UpstreamError) StatusCode() int {
	return e.Status
}

// BadRequestError is returned when an upstream responds successfully on the
// transport level but the payload describes an error. Only Wikidata does that.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// StatusCode implements StatusCoder.
func (e *BadRequestError) StatusCode() int {
	return http.StatusBadRequest
}

// NotFoundError is returned when there is no usable cross reference from the
// artist to an English Wikipedia article.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// StatusCode implements StatusCoder.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}
