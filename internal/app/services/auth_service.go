package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/pkg/apperrors"
	"github.com/pcell/backend/internal/pkg/auth"
	"github.com/pcell/backend/internal/pkg/email"
	"github.com/pcell/backend/internal/pkg/logger"
	"github.com/pcell/backend/internal/pkg/otp"
)

const (
	otpTTL             = 10 * time.Minute
	passwordResetTTL   = time.Hour
	resetTokenPathTmpl = "%s/reset-password?token=%s"
)

// AuthService implements OTP email verification, registration, login and
// token lifecycle.
type AuthService struct {
	users        UserRepository
	tokens       TokenRepository
	otpStore     otp.Store
	emailService email.EmailService
	jwtService   *auth.JWTService
	frontendURL  string
}

func NewAuthService(
	users UserRepository,
	tokens TokenRepository,
	otpStore otp.Store,
	emailService email.EmailService,
	jwtService *auth.JWTService,
	frontendURL string,
) *AuthService {
	return &AuthService{
		users:        users,
		tokens:       tokens,
		otpStore:     otpStore,
		emailService: emailService,
		jwtService:   jwtService,
		frontendURL:  frontendURL,
	}
}

// RequestOTP issues a verification code to an unregistered email address.
func (s *AuthService) RequestOTP(ctx context.Context, req dto.RequestOTPRequest) error {
	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return apperrors.ErrEmailAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return fmt.Errorf("generating OTP: %w", err)
	}
	if err := s.otpStore.Put(ctx, req.Email, code, otpTTL); err != nil {
		return err
	}
	if err := s.emailService.SendOTPEmail(req.Email, "", code); err != nil {
		return fmt.Errorf("sending OTP email: %w", err)
	}

	logger.Info().Str("email", req.Email).Msg("OTP issued")
	return nil
}

// VerifyOTP consumes a delivered code and returns a short-lived token that
// authorizes registration for the same email.
func (s *AuthService) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error) {
	if err := s.otpStore.Consume(ctx, req.Email, req.OTP); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateEmailVerificationToken(req.Email)
	if err != nil {
		return nil, fmt.Errorf("generating verification token: %w", err)
	}
	return &dto.VerifyOTPResponse{VerificationToken: token}, nil
}

// Register creates a verified student account and signs the user in. The
// verification token must match the registration email.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	verifiedEmail, err := s.jwtService.ValidateEmailVerificationToken(req.VerificationToken)
	if err != nil {
		return nil, err
	}
	if verifiedEmail != req.Email {
		return nil, apperrors.ErrEmailNotVerified
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		Password:      hashed,
		Mobile:        req.Mobile,
		Gender:        req.Gender,
		DOB:           req.DOB,
		Branch:        req.Branch,
		Batch:         req.Batch,
		EnrolmentNo:   req.EnrolmentNo,
		CGPA:          models.ClampCGPA(req.CGPA),
		EmailVerified: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.emailService.SendRegistrationEmail(user.Email, user.Name); err != nil {
		// The account exists either way; the welcome mail is best effort.
		logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send registration email")
	}

	logger.Info().Int64("userId", user.ID).Str("email", user.Email).Msg("User registered")
	return s.issueTokens(ctx, user)
}

// Login authenticates by email and password. Unverified accounts are
// rejected even with correct credentials.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	logger.Info().Int64("userId", user.ID).Msg("User logged in")
	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token, invalidating the presented one.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokens.FindRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

// Logout revokes one refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokens.DeleteRefreshToken(ctx, refreshToken)
}

// ForgotPassword issues a reset link. Unknown emails are treated as success
// so the endpoint cannot be used to probe for accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Debug().Str("email", req.Email).Msg("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := &models.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(passwordResetTTL),
	}
	if err := s.tokens.SavePasswordResetToken(ctx, token); err != nil {
		return err
	}

	resetLink := fmt.Sprintf(resetTokenPathTmpl, s.frontendURL, token.Token)
	if err := s.emailService.SendPasswordResetEmail(user.Email, user.Name, resetLink); err != nil {
		return fmt.Errorf("sending password reset email: %w", err)
	}

	logger.Info().Int64("userId", user.ID).Msg("Password reset token issued")
	return nil
}

// ResetPassword completes a reset with the emailed token and revokes every
// active session of the user.
func (s *AuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	token, err := s.tokens.FindPasswordResetToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if token.Used {
		return apperrors.ErrPasswordResetTokenUsed
	}
	if time.Now().After(token.ExpiresAt) {
		return apperrors.ErrInvalidPasswordResetToken
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, token.UserID, hashed); err != nil {
		return err
	}
	if err := s.tokens.MarkPasswordResetTokenUsed(ctx, token.ID); err != nil {
		return err
	}
	if err := s.tokens.DeleteUserRefreshTokens(ctx, token.UserID); err != nil {
		return err
	}

	logger.Info().Int64("userId", token.UserID).Msg("Password reset completed")
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, _, _, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("generating token pair: %w", err)
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	}
	if err := s.tokens.SaveRefreshToken(ctx, record); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.UserToResponse(user),
	}, nil
}
