package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	t.Run("mapped codes", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, GetHTTPStatus("NOT_FOUND"))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus("ALREADY_EXISTS"))
		assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus("INVALID_STATE"))
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("PDF_WRITE_FAILED"))
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("PDF_EMPTY_OUTPUT"))
	})

	t.Run("validation codes fall back by prefix", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_NUMBER"))
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_QUANTITY"))
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_LOGO"))
	})

	t.Run("unknown codes are internal errors", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
	})
}
