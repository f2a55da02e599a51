package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tixora/internal/models"
)

const testSecret = "test-secret"

func newAuthApp(t *testing.T) *fiber.App {
	t.Setenv("JWT_SECRET", testSecret)

	app := fiber.New()
	app.Use(Auth())
	app.Get("/protected", func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		require.True(t, ok)
		return c.JSON(fiber.Map{"user_id": claims.UserID})
	})
	return app
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}) string {
	claims := &models.UserClaims{
		UserID: uuid.New(),
		Email:  "organizer@tixora.dev",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAuth_ValidToken(t *testing.T) {
	app := newAuthApp(t)
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuth_MissingHeader(t *testing.T) {
	app := newAuthApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_NonBearerHeader(t *testing.T) {
	app := newAuthApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_WrongSecret(t *testing.T) {
	app := newAuthApp(t)
	token := signToken(t, jwt.SigningMethodHS256, []byte("other-secret"))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_RejectsNonHMACSigningMethod(t *testing.T) {
	app := newAuthApp(t)
	// A token declaring alg=none must be refused before any signature check.
	token := signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
