package httputil

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/drinks/internal/errors"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectedID  int64
		expectError bool
	}{
		{name: "valid", value: "42", expectedID: 42},
		{name: "zero", value: "0", expectError: true},
		{name: "negative", value: "-3", expectError: true},
		{name: "not a number", value: "latte", expectError: true},
		{name: "empty", value: "", expectError: true},
		{name: "overflow", value: "99999999999999999999", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.value}}

			id, err := ParseID(c, "id")
			if tt.expectError {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.Zero(t, id)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}
