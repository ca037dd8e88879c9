package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wanderlog/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, userID string, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		UserID: userID,
		Email:  userID + "@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return signed
}

func TestValidateJWTRoundTrip(t *testing.T) {
	globals.JwtSecret = []byte("test-secret")

	token := signToken(t, "u42", time.Now().Add(time.Hour))
	claims, err := ValidateJWT("Bearer " + token)
	require.NoError(t, err)
	require.Equal(t, "u42", claims.UserID)
	require.Equal(t, "u42@example.com", claims.Email)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	globals.JwtSecret = []byte("test-secret")

	token := signToken(t, "u42", time.Now().Add(-time.Minute))
	_, err := ValidateJWT("Bearer " + token)
	require.Error(t, err)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	globals.JwtSecret = []byte("test-secret")
	token := signToken(t, "u42", time.Now().Add(time.Hour))

	globals.JwtSecret = []byte("another-secret")
	_, err := ValidateJWT("Bearer " + token)
	require.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	globals.JwtSecret = []byte("test-secret")

	_, err := ValidateJWT("")
	require.Error(t, err)
	_, err = ValidateJWT("Bearer not.a.token")
	require.Error(t, err)

	// missing Bearer prefix is a format error, not a parse attempt
	token := signToken(t, "u42", time.Now().Add(time.Hour))
	_, err = ValidateJWT(token)
	require.Error(t, err)
}

// Rejections share the handlers' {"error": ...} JSON shape rather than
// plain text.
func TestAuthenticateRejectionShape(t *testing.T) {
	globals.JwtSecret = []byte("test-secret")

	next := func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("next handler must not run")
	}

	cases := []struct {
		name   string
		header string
		status int
		errMsg string
	}{
		{"missing token", "", http.StatusUnauthorized, "Missing token"},
		{"malformed header", "Token abc", http.StatusUnauthorized, "Invalid token"},
		{"expired token", "Bearer " + signToken(t, "u42", time.Now().Add(-time.Minute)), http.StatusUnauthorized, "Token expired"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/trip/t1/stats", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			Authenticate(next)(rec, req, nil)

			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.errMsg, body["error"])
		})
	}
}
