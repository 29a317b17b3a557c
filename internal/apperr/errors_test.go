package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindUnauthenticated, http.StatusUnauthorized},
		{KindNoCompanyAssociation, http.StatusBadRequest},
		{KindValidation, http.StatusBadRequest},
		{KindNoData, http.StatusBadRequest},
		{KindOwnership, http.StatusForbidden},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindCatalogEmpty, http.StatusInternalServerError},
		{KindMalformedAIResponse, http.StatusInternalServerError},
		{KindExternalCapability, http.StatusInternalServerError},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(New(tc.kind, "x")), "kind %d", tc.kind)
	}
}

func TestPlainErrorsAreInternal(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
	assert.Equal(t, "Internal server error", Message(err))
}

func TestWrapPreservesKindThroughChains(t *testing.T) {
	cause := errors.New("record not found")
	err := Wrap(KindNotFound, "Report not found", cause)

	wrapped := fmt.Errorf("handler: %w", err)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, "Report not found", Message(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}

func TestMessageHidesWrappedCause(t *testing.T) {
	err := Wrap(KindInternal, "Failed to save report", errors.New("pq: connection refused"))
	assert.Equal(t, "Failed to save report", Message(err))
	assert.Contains(t, err.Error(), "connection refused")
}
