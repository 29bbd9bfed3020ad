//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/handler/dto/request"
	"rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/tests/common/authtest"
	"rental-marketplace/tests/common/dbtest"
	"rental-marketplace/tests/common/httptest"
	"rental-marketplace/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "tenant@example.com", string(user.RoleTenant))
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		body           request.RegisterRequest
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "tenant registers",
			body:           request.RegisterRequest{Name: "New Tenant", Email: "new@example.com", Password: "password123", Role: "TENANT"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "landlord registers",
			body:           request.RegisterRequest{Name: "New Landlord", Email: "owner@example.com", Password: "password123", Role: "LANDLORD"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "email taken regardless of case",
			body:           request.RegisterRequest{Name: "Dup", Email: "Tenant@Example.com", Password: "password123", Role: "TENANT"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "User with this email already exists",
		},
		{
			name:           "admin role cannot be chosen",
			body:           request.RegisterRequest{Name: "Sneaky", Email: "sneaky@example.com", Password: "password123", Role: "ADMIN"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Role must be one of: TENANT, LANDLORD",
		},
		{
			name:           "short password",
			body:           request.RegisterRequest{Name: "Short", Email: "short@example.com", Password: "pass", Role: "TENANT"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.body, "")

			if tt.expectedError != "" {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedError)
				return
			}
			var res response.RegisterResponse
			httptest.AssertSuccessResponse(t, w, tt.expectedStatus, &res)
			require.Equal(t, "User registered successfully", res.Message)
			require.Equal(t, tt.body.Role, res.User.Role)

			var hash string
			err := s.DB.QueryRow(t.Context(), "SELECT password_hash FROM users WHERE email = $1", tt.body.Email).Scan(&hash)
			require.NoError(t, err)
			require.NotEqual(t, tt.body.Password, hash, "password must be stored hashed")

			authtest.LoginUser(t, s.Router, tt.body.Email, tt.body.Password)
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "tenant@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "email is case insensitive", email: "TENANT@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "tenant@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "tenant@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusUnauthorized {
				httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res response.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.NotEmpty(t, res.AccessToken)
			require.Equal(t, "tenant@example.com", res.User.Email)

			cookie := httptest.ExtractCookie(w, "access_token")
			require.NotNil(t, cookie)
			require.True(t, cookie.HttpOnly)

			var loggedIn bool
			err := s.DB.QueryRow(t.Context(), "SELECT last_login_at IS NOT NULL FROM users WHERE email = 'tenant@example.com'").Scan(&loggedIn)
			require.NoError(t, err)
			require.True(t, loggedIn, "last login should be recorded")
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("cookie session", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var res response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "ADMIN", res.Role)
		require.NotNil(t, res.LastLoginAt)
	})

	s.Run("expired token", func() {
		t := s.T()
		token := s.jwt.CreateExpiredToken(t, uuid.New(), user.RoleTenant)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("token signed with another key", func() {
		t := s.T()
		token := s.jwt.CreateForeignToken(t, uuid.New(), user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("valid token for a deleted user", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleTenant)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the session cookie", func() {
		t := s.T()
		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "tenant@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, httptest.ExtractCookies(lw), "")
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.Negative(t, cleared.MaxAge)
	})
}
