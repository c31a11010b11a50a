package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
	authHTTP "github.com/allisson/drinks/internal/auth/http"
	drinksDomain "github.com/allisson/drinks/internal/drinks/domain"
	usecaseMocks "github.com/allisson/drinks/internal/drinks/usecase/mocks"
	"github.com/allisson/drinks/internal/httputil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestHandler(t *testing.T) (*DrinkHandler, *usecaseMocks.MockDrinkUseCase) {
	t.Helper()
	mockUseCase := usecaseMocks.NewMockDrinkUseCase(t)
	return NewDrinkHandler(mockUseCase, createTestLogger()), mockUseCase
}

func newTestContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewBuffer(data)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var body httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestDrinkHandler_ListHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		c, w := newTestContext(http.MethodGet, "/drinks", nil)

		mockUseCase.EXPECT().List(mock.Anything).Return([]*drinksDomain.Drink{
			{ID: 1, Title: "Latte", Recipe: drinksDomain.Recipe{{Name: "milk", Color: "white", Parts: 1}}},
		}, nil).Once()

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"drinks":[{"id":1,"title":"Latte"}]}`, w.Body.String())
	})

	t.Run("StoreError", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		c, w := newTestContext(http.MethodGet, "/drinks", nil)

		mockUseCase.EXPECT().List(mock.Anything).Return(nil, errors.New("connection refused")).Once()

		handler.ListHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal_error", decodeErrorResponse(t, w).Code)
	})
}

func TestDrinkHandler_ListDetailHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)
	c, w := newTestContext(http.MethodGet, "/drinks-detail", nil)

	mockUseCase.EXPECT().List(mock.Anything).Return([]*drinksDomain.Drink{
		{ID: 1, Title: "Latte", Recipe: drinksDomain.Recipe{{Name: "milk", Color: "white", Parts: 1}}},
	}, nil).Once()

	handler.ListDetailHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(
		t,
		`{"success":true,"drinks":[{"id":1,"title":"Latte","recipe":[{"name":"milk","color":"white","parts":1}]}]}`,
		w.Body.String(),
	)
}

func TestDrinkHandler_CreateHandler(t *testing.T) {
	recipe := drinksDomain.Recipe{{Name: "milk", Color: "white", Parts: 1}}

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		c, w := newTestContext(http.MethodPost, "/drinks", map[string]any{
			"title":  "Latte",
			"recipe": []map[string]any{{"name": "milk", "color": "white", "parts": 1}},
		})

		mockUseCase.EXPECT().
			Create(mock.Anything, "Latte", recipe).
			Return(&drinksDomain.Drink{ID: 4, Title: "Latte", Recipe: recipe}, nil).
			Once()

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":200,"success":true,"drink_id":4}`, w.Body.String())
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)
		c, w := newTestContext(http.MethodPost, "/drinks", `{"title":`)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decodeErrorResponse(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, http.StatusUnprocessableEntity, body.Error)
	})

	t.Run("MissingRecipe", func(t *testing.T) {
		handler, _ := setupTestHandler(t)
		c, w := newTestContext(http.MethodPost, "/drinks", map[string]any{"title": "Latte"})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "unprocessable", decodeErrorResponse(t, w).Code)
	})

	t.Run("DuplicateTitle", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		c, w := newTestContext(http.MethodPost, "/drinks", map[string]any{
			"title":  "Latte",
			"recipe": []map[string]any{{"name": "milk", "color": "white", "parts": 1}},
		})

		mockUseCase.EXPECT().
			Create(mock.Anything, "Latte", recipe).
			Return(nil, drinksDomain.ErrDrinkAlreadyExists).
			Once()

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "conflict", decodeErrorResponse(t, w).Code)
	})
}

func TestDrinkHandler_UpdateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		c, w := newTestContext(http.MethodPatch, "/drinks/3", map[string]any{"title": "Mocha"})
		c.Params = gin.Params{{Key: "id", Value: "3"}}

		mockUseCase.EXPECT().
			UpdateTitle(mock.Anything, int64(3), "Mocha").
			Return(&drinksDomain.Drink{ID: 3, Title: "Mocha"}, nil).
			Once()

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"status":200,"drink_id":3}`, w.Body.String())
	})

	t.Run("MissingTitleNeverReachesStore", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		c, w := newTestContext(http.MethodPatch, "/drinks/3", map[string]any{"recipe": []any{}})
		c.Params = gin.Params{{Key: "id", Value: "3"}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "UpdateTitle", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InvalidID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)
		c, w := newTestContext(http.MethodPatch, "/drinks/abc", map[string]any{"title": "Mocha"})
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		c, w := newTestContext(http.MethodPatch, "/drinks/8", map[string]any{"title": "Mocha"})
		c.Params = gin.Params{{Key: "id", Value: "8"}}

		mockUseCase.EXPECT().UpdateTitle(mock.Anything, int64(8), "Mocha").Return(nil, drinksDomain.ErrDrinkNotFound).Once()

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not_found", decodeErrorResponse(t, w).Code)
	})
}

func TestDrinkHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		c, w := newTestContext(http.MethodDelete, "/drinks/2", nil)
		c.Params = gin.Params{{Key: "id", Value: "2"}}

		mockUseCase.EXPECT().Delete(mock.Anything, int64(2)).Return(nil).Once()

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"status":200,"drink_id":2}`, w.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		c, w := newTestContext(http.MethodDelete, "/drinks/77", nil)
		c.Params = gin.Params{{Key: "id", Value: "77"}}

		mockUseCase.EXPECT().Delete(mock.Anything, int64(77)).Return(drinksDomain.ErrDrinkNotFound).Once()

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("NegativeID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)
		c, w := newTestContext(http.MethodDelete, "/drinks/-1", nil)
		c.Params = gin.Params{{Key: "id", Value: "-1"}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDrinkHandler_LogsCallerSubject(t *testing.T) {
	t.Run("GatedRoute", func(t *testing.T) {
		var logs bytes.Buffer
		mockUseCase := usecaseMocks.NewMockDrinkUseCase(t)
		handler := NewDrinkHandler(mockUseCase, slog.New(slog.NewJSONHandler(&logs, nil)))

		c, w := newTestContext(http.MethodDelete, "/drinks/2", nil)
		c.Params = gin.Params{{Key: "id", Value: "2"}}
		claims := authDomain.NewClaimSet(map[string]any{"sub": "auth0|manager"})
		c.Request = c.Request.WithContext(authHTTP.WithClaims(c.Request.Context(), claims))

		mockUseCase.EXPECT().Delete(mock.Anything, int64(2)).Return(nil).Once()

		handler.DeleteHandler(c)

		require.Equal(t, http.StatusOK, w.Code)
		var entry map[string]any
		require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
		assert.Equal(t, "drink deleted", entry["msg"])
		assert.Equal(t, "auth0|manager", entry["subject"])
		assert.EqualValues(t, 2, entry["drink_id"])
	})

	t.Run("PublicRoute", func(t *testing.T) {
		var logs bytes.Buffer
		mockUseCase := usecaseMocks.NewMockDrinkUseCase(t)
		handler := NewDrinkHandler(mockUseCase, slog.New(slog.NewJSONHandler(&logs, nil)))

		c, _ := newTestContext(http.MethodPatch, "/drinks/3", map[string]any{"title": "Mocha"})
		c.Params = gin.Params{{Key: "id", Value: "3"}}

		mockUseCase.EXPECT().UpdateTitle(mock.Anything, int64(3), "Mocha").
			Return(&drinksDomain.Drink{ID: 3, Title: "Mocha"}, nil).
			Once()

		handler.UpdateHandler(c)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
		assert.Equal(t, "drink renamed", entry["msg"])
		assert.Equal(t, "", entry["subject"])
	})
}
