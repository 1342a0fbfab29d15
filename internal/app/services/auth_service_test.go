package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/pkg/apperrors"
	"github.com/pcell/backend/internal/pkg/auth"
)

type memOTPStore struct {
	codes map[string]string
}

func newMemOTPStore() *memOTPStore {
	return &memOTPStore{codes: make(map[string]string)}
}

func (m *memOTPStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	m.codes[email] = code
	return nil
}

func (m *memOTPStore) Consume(ctx context.Context, email, code string) error {
	stored, ok := m.codes[email]
	if !ok {
		return apperrors.ErrOTPExpired
	}
	if stored != code {
		return apperrors.ErrOTPInvalid
	}
	delete(m.codes, email)
	return nil
}

type memTokenRepo struct {
	nextID        int64
	refreshTokens map[string]*models.RefreshToken
	resetTokens   map[string]*models.PasswordResetToken
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{
		nextID:        1,
		refreshTokens: make(map[string]*models.RefreshToken),
		resetTokens:   make(map[string]*models.PasswordResetToken),
	}
}

func (m *memTokenRepo) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	token.ID = m.nextID
	m.nextID++
	m.refreshTokens[token.Token] = token
	return nil
}

func (m *memTokenRepo) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := m.refreshTokens[token]
	if !ok || time.Now().After(rt.ExpiresAt) {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	return rt, nil
}

func (m *memTokenRepo) DeleteRefreshToken(ctx context.Context, token string) error {
	delete(m.refreshTokens, token)
	return nil
}

func (m *memTokenRepo) DeleteUserRefreshTokens(ctx context.Context, userID int64) error {
	for k, v := range m.refreshTokens {
		if v.UserID == userID {
			delete(m.refreshTokens, k)
		}
	}
	return nil
}

func (m *memTokenRepo) SavePasswordResetToken(ctx context.Context, token *models.PasswordResetToken) error {
	token.ID = m.nextID
	m.nextID++
	m.resetTokens[token.Token] = token
	return nil
}

func (m *memTokenRepo) FindPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	prt, ok := m.resetTokens[token]
	if !ok {
		return nil, apperrors.ErrInvalidPasswordResetToken
	}
	return prt, nil
}

func (m *memTokenRepo) MarkPasswordResetTokenUsed(ctx context.Context, id int64) error {
	for _, v := range m.resetTokens {
		if v.ID == id {
			v.Used = true
		}
	}
	return nil
}

type fakeEmailService struct {
	otpEmails   []string
	resetLinks  []string
	welcomeMail []string
}

func (f *fakeEmailService) SendOTPEmail(toEmail, toName, code string) error {
	f.otpEmails = append(f.otpEmails, toEmail)
	return nil
}

func (f *fakeEmailService) SendRegistrationEmail(toEmail, toName string) error {
	f.welcomeMail = append(f.welcomeMail, toEmail)
	return nil
}

func (f *fakeEmailService) SendPasswordResetEmail(toEmail, toName, resetLink string) error {
	f.resetLinks = append(f.resetLinks, resetLink)
	return nil
}

type authFixture struct {
	svc    *AuthService
	users  *memUserRepo
	tokens *memTokenRepo
	otp    *memOTPStore
	mail   *fakeEmailService
	jwt    *auth.JWTService
}

func newAuthFixture() *authFixture {
	users := newMemUserRepo()
	tokens := newMemTokenRepo()
	otpStore := newMemOTPStore()
	mail := &fakeEmailService{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		VerificationExp: 15 * time.Minute,
		TokenIssuer:     "pcell-test",
	})
	return &authFixture{
		svc:    NewAuthService(users, tokens, otpStore, mail, jwtService, "http://localhost:3000"),
		users:  users,
		tokens: tokens,
		otp:    otpStore,
		mail:   mail,
		jwt:    jwtService,
	}
}

func registerRequest(verificationToken string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:              "Asha Rao",
		Email:             "asha.rao@college.edu",
		Password:          "s3cure-Pass!",
		Branch:            "CSE",
		Batch:             "2026",
		EnrolmentNo:       "2022BCS0421",
		CGPA:              8.2,
		VerificationToken: verificationToken,
	}
}

func TestOTPRegistrationFlow(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, f.svc.RequestOTP(ctx, dto.RequestOTPRequest{Email: "asha.rao@college.edu"}))
	require.Contains(t, f.mail.otpEmails, "asha.rao@college.edu")

	code := f.otp.codes["asha.rao@college.edu"]
	require.NotEmpty(t, code)

	verified, err := f.svc.VerifyOTP(ctx, dto.VerifyOTPRequest{Email: "asha.rao@college.edu", OTP: code})
	require.NoError(t, err)

	resp, err := f.svc.Register(ctx, registerRequest(verified.VerificationToken))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.True(t, resp.User.EmailVerified)

	// OTP is consumed; replaying it fails.
	_, err = f.svc.VerifyOTP(ctx, dto.VerifyOTPRequest{Email: "asha.rao@college.edu", OTP: code})
	assert.ErrorIs(t, err, apperrors.ErrOTPExpired)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, f.svc.RequestOTP(ctx, dto.RequestOTPRequest{Email: "asha.rao@college.edu"}))

	_, err := f.svc.VerifyOTP(ctx, dto.VerifyOTPRequest{Email: "asha.rao@college.edu", OTP: "000000"})
	assert.ErrorIs(t, err, apperrors.ErrOTPInvalid)
}

func TestRegisterRejectsTokenForDifferentEmail(t *testing.T) {
	f := newAuthFixture()

	token, err := f.jwt.GenerateEmailVerificationToken("someone.else@college.edu")
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), registerRequest(token))
	assert.ErrorIs(t, err, apperrors.ErrEmailNotVerified)
}

func TestRequestOTPForExistingAccount(t *testing.T) {
	f := newAuthFixture()
	f.users.add(&models.User{Email: "asha.rao@college.edu", EnrolmentNo: "2022BCS0421"})

	err := f.svc.RequestOTP(context.Background(), dto.RequestOTPRequest{Email: "asha.rao@college.edu"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginFlow(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	token, err := f.jwt.GenerateEmailVerificationToken("asha.rao@college.edu")
	require.NoError(t, err)
	_, err = f.svc.Register(ctx, registerRequest(token))
	require.NoError(t, err)

	resp, err := f.svc.Login(ctx, dto.LoginRequest{Email: "asha.rao@college.edu", Password: "s3cure-Pass!"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = f.svc.Login(ctx, dto.LoginRequest{Email: "asha.rao@college.edu", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, dto.LoginRequest{Email: "nobody@college.edu", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	token, err := f.jwt.GenerateEmailVerificationToken("asha.rao@college.edu")
	require.NoError(t, err)
	first, err := f.svc.Register(ctx, registerRequest(token))
	require.NoError(t, err)

	second, err := f.svc.RefreshToken(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The old refresh token is revoked by rotation.
	_, err = f.svc.RefreshToken(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestPasswordResetFlow(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	token, err := f.jwt.GenerateEmailVerificationToken("asha.rao@college.edu")
	require.NoError(t, err)
	registered, err := f.svc.Register(ctx, registerRequest(token))
	require.NoError(t, err)

	require.NoError(t, f.svc.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "asha.rao@college.edu"}))
	require.Len(t, f.mail.resetLinks, 1)

	var resetToken string
	for tok := range f.tokens.resetTokens {
		resetToken = tok
	}
	require.NotEmpty(t, resetToken)

	require.NoError(t, f.svc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: resetToken, NewPassword: "brand-new-Pass1"}))

	// Old sessions are revoked and the token cannot be reused.
	_, err = f.svc.RefreshToken(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	err = f.svc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: resetToken, NewPassword: "another-Pass1"})
	assert.ErrorIs(t, err, apperrors.ErrPasswordResetTokenUsed)

	_, err = f.svc.Login(ctx, dto.LoginRequest{Email: "asha.rao@college.edu", Password: "brand-new-Pass1"})
	assert.NoError(t, err)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "nobody@college.edu"})
	assert.NoError(t, err)
	assert.Empty(t, f.mail.resetLinks)
}
