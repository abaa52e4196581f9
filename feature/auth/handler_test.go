package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"stocktake/core/journal"
	"stocktake/core/retail"
	"stocktake/core/retail/mocks"
	"stocktake/feature/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func setupApp(t *testing.T, src retail.Source) (*fiber.App, *journal.Journal) {
	t.Helper()
	j := journal.New()
	feature := auth.NewFeature(src, j, zap.NewNop(), testSecret, time.Hour)

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, j
}

func login(t *testing.T, app *fiber.App, username, pin string) (*auth.LoginResult, int) {
	t.Helper()
	payload, _ := json.Marshal(map[string]string{"username": username, "pin": pin})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result auth.LoginResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return &result, resp.StatusCode
}

func TestHandleLogin_Success(t *testing.T) {
	src := new(mocks.Source)
	src.On("AuthenticateEmployee", mock.Anything, "jdoe", "1234").Return(&retail.Employee{
		Code:      "jdoe",
		HomeStore: "001",
		FirstName: "J",
		Role:      "admin",
	}, nil)

	app, j := setupApp(t, src)
	result, status := login(t, app, "jdoe", "1234")

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, result.Success)
	assert.Equal(t, "admin", result.Role)
	assert.Equal(t, "001", result.StoreID)
	require.NotEmpty(t, result.Token)

	token, err := jwt.Parse(result.Token, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "jdoe", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "001", claims["store"])

	entries := j.Snapshot()
	require.NotEmpty(t, entries)
	assert.Equal(t, "login", entries[0].Category)
}

func TestHandleLogin_WrongCredentials(t *testing.T) {
	src := new(mocks.Source)
	src.On("AuthenticateEmployee", mock.Anything, "jdoe", "0000").
		Return(nil, retail.ErrNotFound)

	app, _ := setupApp(t, src)
	result, status := login(t, app, "jdoe", "0000")

	assert.Equal(t, fiber.StatusOK, status)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid username or PIN", result.Message)
	assert.Empty(t, result.Token)
}

func TestHandleLogin_SourceFailure(t *testing.T) {
	src := new(mocks.Source)
	src.On("AuthenticateEmployee", mock.Anything, "jdoe", "1234").
		Return(nil, &retail.SourceError{Op: "authenticate", Err: assert.AnError})

	app, _ := setupApp(t, src)
	_, status := login(t, app, "jdoe", "1234")

	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestHandleLogin_MissingFields(t *testing.T) {
	app, _ := setupApp(t, new(mocks.Source))

	req := httptest.NewRequest("POST", "/login", bytes.NewReader([]byte(`{"username":"jdoe"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
