package cif_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cif "github.com/tphakala/go-cif"
)

func TestAPIError(t *testing.T) {
	t.Run("message with body", func(t *testing.T) {
		err := &cif.APIError{StatusCode: 404, Reason: "Not Found", Body: "no such record"}
		assert.Equal(t, "cif: API error 404 Not Found: no such record", err.Error())
	})

	t.Run("message without body", func(t *testing.T) {
		err := &cif.APIError{StatusCode: 401, Reason: "Unauthorized"}
		assert.Equal(t, "cif: API error 401 Unauthorized", err.Error())
	})
}

func TestSubmissionError(t *testing.T) {
	subErr := &cif.SubmissionError{APIError: cif.APIError{
		StatusCode: http.StatusInternalServerError,
		Reason:     "Internal Server Error",
		Body:       "boom",
	}}

	t.Run("message names the escalation", func(t *testing.T) {
		assert.Contains(t, subErr.Error(), "submission failed")
		assert.Contains(t, subErr.Error(), "contact the service administrator")
	})

	t.Run("matches APIError via errors.As", func(t *testing.T) {
		var apiErr *cif.APIError
		require.ErrorAs(t, error(subErr), &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "boom", apiErr.Body)
	})
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &cif.DecodeError{Resource: "observables", Err: cause}

	assert.Contains(t, err.Error(), "decoding observables response")
	assert.ErrorIs(t, err, cause)
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &cif.TransportError{Resource: "ping", Err: cause}

	assert.Contains(t, err.Error(), "transport failure on ping")
	assert.ErrorIs(t, err, cause)
}
