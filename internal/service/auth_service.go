package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"constructsite/internal/config"
	"constructsite/internal/mailer"
	"constructsite/internal/models"
	"constructsite/internal/repository"
)

var (
	ErrAdminNotConfigured = errors.New("admin account not configured")
	ErrAccountDeactivated = errors.New("account is deactivated")
	// ErrInvalidOTP deliberately does not distinguish a wrong code from an
	// expired one.
	ErrInvalidOTP = errors.New("invalid or expired otp")
	ErrMailSend   = errors.New("sending email failed")
)

// otpTTL is how long an issued code stays valid. A reissued code always
// replaces the previous one, so at most one unexpired code exists per
// account.
const otpTTL = 10 * time.Minute

// Claims is the session token payload.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// RequestOTP issues a fresh code for the configured admin account,
	// emails it to the notification address and returns its expiry.
	RequestOTP(ctx context.Context) (time.Time, error)
	// VerifyOTP checks the submitted code and, on success, clears the
	// stored code and returns the account with a signed session token.
	VerifyOTP(ctx context.Context, otp string) (*models.User, string, error)
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, error)
	ParseToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo repository.UserRepository
	mailer   mailer.Mailer
	cfg      *config.Config

	now func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, m mailer.Mailer, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		mailer:   m,
		cfg:      cfg,
		now:      time.Now,
	}
}

// adminAccount loads the single administrative identity configured via
// ADMIN_EMAIL.
func (s *authService) adminAccount(ctx context.Context) (*models.User, error) {
	// Stored emails are always lowercase; normalize the configured
	// address the same way so case in ADMIN_EMAIL cannot break the lookup.
	email := strings.ToLower(strings.TrimSpace(s.cfg.AdminEmail))

	user, err := s.userRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotConfigured
		}
		return nil, fmt.Errorf("looking up admin account: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	return user, nil
}

func (s *authService) RequestOTP(ctx context.Context) (time.Time, error) {
	user, err := s.adminAccount(ctx)
	if err != nil {
		return time.Time{}, err
	}

	otp, err := generateOTP()
	if err != nil {
		return time.Time{}, fmt.Errorf("generating otp: %w", err)
	}

	expires := s.now().Add(otpTTL)
	if err := s.userRepo.SetOTP(ctx, user.ID, otp, expires); err != nil {
		return time.Time{}, fmt.Errorf("storing otp: %w", err)
	}

	if err := s.mailer.Send(ctx, mailer.OTPMessage(s.cfg.OTPNotifyEmail, otp)); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMailSend, err)
	}

	return expires, nil
}

func (s *authService) VerifyOTP(ctx context.Context, otp string) (*models.User, string, error) {
	user, err := s.adminAccount(ctx)
	if err != nil {
		return nil, "", err
	}

	if user.OTP == nil || user.OTPExpires == nil {
		return nil, "", ErrInvalidOTP
	}
	if s.now().After(*user.OTPExpires) {
		return nil, "", ErrInvalidOTP
	}
	if *user.OTP != otp {
		return nil, "", ErrInvalidOTP
	}

	if err := s.userRepo.ClearOTP(ctx, user.ID); err != nil {
		return nil, "", fmt.Errorf("clearing otp: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", repository.ErrDuplicateEmail
	}

	user := &models.User{
		Email:    email,
		Name:     strings.TrimSpace(req.Name),
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user, req.Password); err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// generateOTP returns a 6-digit numeric code from crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
