package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handlers "constructsite/internal/handler"
	"constructsite/internal/models"
	"constructsite/internal/ratelimit"
	"constructsite/internal/repository"
	"constructsite/internal/service"
)

func adminUser() *models.User {
	return &models.User{
		ID:       "user-123",
		Email:    "admin@example.com",
		Name:     "Admin",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
}

func postJSON(path string, body interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRequestOTP_Success(t *testing.T) {
	h, m := createTestHandler()

	expires := time.Now().Add(10 * time.Minute)
	m.auth.On("RequestOTP", mock.Anything).Return(expires, nil)

	rr := httptest.NewRecorder()
	h.RequestOTP(rr, postJSON("/api/auth/request-otp", nil))

	assertJSONMessage(t, rr, http.StatusOK, "OTP sent to admin email address")

	var response map[string]interface{}
	json.Unmarshal(rr.Body.Bytes(), &response)
	assert.Equal(t, expires.Format(time.RFC3339), response["otpExpires"])
}

func TestRequestOTP_AdminNotConfigured(t *testing.T) {
	h, m := createTestHandler()

	m.auth.On("RequestOTP", mock.Anything).Return(time.Time{}, service.ErrAdminNotConfigured)

	rr := httptest.NewRecorder()
	h.RequestOTP(rr, postJSON("/api/auth/request-otp", nil))

	assertJSONMessage(t, rr, http.StatusInternalServerError, "Admin account not configured")
}

func TestRequestOTP_MailFailure(t *testing.T) {
	h, m := createTestHandler()

	m.auth.On("RequestOTP", mock.Anything).
		Return(time.Time{}, fmt.Errorf("%w: dial tcp: refused", service.ErrMailSend))

	rr := httptest.NewRecorder()
	h.RequestOTP(rr, postJSON("/api/auth/request-otp", nil))

	assertJSONMessage(t, rr, http.StatusInternalServerError, "Failed to send OTP email")
}

func TestVerifyOTP_InvalidFormat(t *testing.T) {
	h, m := createTestHandler()

	for _, otp := range []string{"", "12345", "1234567", "12a456"} {
		rr := httptest.NewRecorder()
		h.VerifyOTP(rr, postJSON("/api/auth/verify-otp", map[string]string{"otp": otp}))

		assertJSONMessage(t, rr, http.StatusBadRequest, "Invalid OTP format")
	}

	m.auth.AssertNotCalled(t, "VerifyOTP", mock.Anything, mock.Anything)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	h, m := createTestHandler()

	m.auth.On("VerifyOTP", mock.Anything, "000000").Return(nil, "", service.ErrInvalidOTP)

	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, postJSON("/api/auth/verify-otp", map[string]string{"otp": "000000"}))

	assertJSONMessage(t, rr, http.StatusBadRequest, "Invalid or expired OTP")
}

func TestVerifyOTP_Success(t *testing.T) {
	h, m := createTestHandler()

	m.auth.On("VerifyOTP", mock.Anything, "482913").Return(adminUser(), "token-abc", nil)

	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, postJSON("/api/auth/verify-otp", map[string]string{"otp": "482913"}))

	assert.Equal(t, http.StatusOK, rr.Code)

	var response handlers.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "token-abc", response.Token)
	assert.Equal(t, "admin@example.com", response.User.Email)
}

func TestRegister_ValidationFailure(t *testing.T) {
	h, m := createTestHandler()

	rr := httptest.NewRecorder()
	h.Register(rr, postJSON("/api/auth/register", map[string]string{
		"email":    "not-an-email",
		"password": "123",
		"name":     "A",
	}))

	assertJSONMessage(t, rr, http.StatusBadRequest, "Invalid input data")

	var response map[string]interface{}
	json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NotEmpty(t, response["errors"])

	m.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h, m := createTestHandler()

	m.auth.On("Register", mock.Anything, mock.Anything).
		Return(nil, "", repository.ErrDuplicateEmail)

	rr := httptest.NewRecorder()
	h.Register(rr, postJSON("/api/auth/register", map[string]string{
		"email":    "admin@example.com",
		"password": "password123",
		"name":     "Admin",
	}))

	assertJSONMessage(t, rr, http.StatusBadRequest, "User already exists")
}

func TestRegister_Success(t *testing.T) {
	h, m := createTestHandler()

	m.auth.On("Register", mock.Anything, repository.CreateUserRequest{
		Email:    "admin@example.com",
		Password: "password123",
		Name:     "Admin",
	}).Return(adminUser(), "token-abc", nil)

	rr := httptest.NewRecorder()
	h.Register(rr, postJSON("/api/auth/register", map[string]string{
		"email":    "admin@example.com",
		"password": "password123",
		"name":     "Admin",
	}))

	assert.Equal(t, http.StatusCreated, rr.Code)

	var response handlers.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "token-abc", response.Token)
}

// TestOTPLoginFlow drives the real auth service through the router: request
// a code, verify it, then load the session with the issued token.
func TestOTPLoginFlow(t *testing.T) {
	users := new(MockUserRepository)
	m := new(MockMailer)
	cfg := testCfg()

	admin := adminUser()
	users.On("GetAdminByEmail", mock.Anything, "admin@example.com").Return(admin, nil)

	users.On("SetOTP", mock.Anything, "user-123", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			code := args.String(2)
			expires := args.Get(3).(time.Time)
			admin.OTP = &code
			admin.OTPExpires = &expires
		}).Return(nil)

	users.On("ClearOTP", mock.Anything, "user-123").
		Run(func(args mock.Arguments) {
			admin.OTP = nil
			admin.OTPExpires = nil
		}).Return(nil)

	users.On("GetByID", mock.Anything, "user-123").Return(admin, nil)

	m.On("Send", mock.Anything, mock.Anything).Return(nil)

	authService := service.NewAuthService(users, m, cfg)
	h, _ := createTestHandler()
	h.AuthService = authService
	h.UserRepo = users

	router := handlers.NewRouter(h, ratelimit.NewMemoryStore(cfg.RateLimitWindow, cfg.RateLimitMax))

	// Step 1: request a code.
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, postJSON("/api/auth/request-otp", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, admin.OTP)

	// Step 2: verify it.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, postJSON("/api/auth/verify-otp", map[string]string{"otp": *admin.OTP}))
	require.Equal(t, http.StatusOK, rr.Code)

	var authResponse handlers.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &authResponse))
	require.NotEmpty(t, authResponse.Token)
	assert.Nil(t, admin.OTP)

	// Step 3: the token opens the session endpoint.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+authResponse.Token)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var meResponse map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &meResponse))
	assert.Equal(t, "admin@example.com", meResponse["user"]["email"])
}

func TestMe_RequiresToken(t *testing.T) {
	h, _ := createTestHandler()

	router := handlers.NewRouter(h, ratelimit.NewMemoryStore(15*time.Minute, 5))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assertJSONMessage(t, rr, http.StatusUnauthorized, "No token, authorization denied")
}

func TestRequestOTP_RateLimited(t *testing.T) {
	h, m := createTestHandler()

	m.auth.On("RequestOTP", mock.Anything).Return(time.Now().Add(10*time.Minute), nil)

	router := handlers.NewRouter(h, ratelimit.NewMemoryStore(15*time.Minute, 5))

	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, postJSON("/api/auth/request-otp", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, postJSON("/api/auth/request-otp", nil))
	assertJSONMessage(t, rr, http.StatusTooManyRequests,
		"Too many login attempts. Please try again in 15 minutes.")
}

func TestRateLimit_SharedAcrossOTPEndpoints(t *testing.T) {
	h, m := createTestHandler()

	m.auth.On("RequestOTP", mock.Anything).Return(time.Now().Add(10*time.Minute), nil)
	m.auth.On("VerifyOTP", mock.Anything, mock.Anything).Return(nil, "", service.ErrInvalidOTP)

	router := handlers.NewRouter(h, ratelimit.NewMemoryStore(15*time.Minute, 5))

	// Three requests and two failed verifies exhaust the bucket.
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, postJSON("/api/auth/request-otp", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, postJSON("/api/auth/verify-otp", map[string]string{"otp": "000000"}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, postJSON("/api/auth/verify-otp", map[string]string{"otp": "000000"}))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}
