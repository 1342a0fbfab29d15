package dto

// RequestOTPRequest starts email verification for a new account.
type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"asha.rao@college.edu"`
}

// VerifyOTPRequest exchanges a delivered OTP for a verification token.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"asha.rao@college.edu"`
	OTP   string `json:"otp" binding:"required,len=6,numeric" example:"482917"`
}

// VerifyOTPResponse carries the short-lived token that authorizes registration.
type VerifyOTPResponse struct {
	VerificationToken string `json:"verificationToken"`
}

// RegisterRequest creates a student account. The verification token must come
// from a successful OTP verification for the same email.
type RegisterRequest struct {
	Name              string  `json:"name" binding:"required,min=2,max=100" example:"Asha Rao"`
	Email             string  `json:"email" binding:"required,email" example:"asha.rao@college.edu"`
	Password          string  `json:"password" binding:"required,min=8,max=72" example:"s3cure-Pass!"`
	Mobile            string  `json:"mobile" binding:"omitempty,min=10,max=15" example:"9876543210"`
	Gender            string  `json:"gender" binding:"omitempty,oneof=male female other" example:"female"`
	DOB               string  `json:"dob" binding:"omitempty" example:"2004-06-18"`
	Branch            string  `json:"branch" binding:"required" example:"CSE"`
	Batch             string  `json:"batch" binding:"required" example:"2026"`
	EnrolmentNo       string  `json:"enrolmentNo" binding:"required" example:"2022BCS0421"`
	CGPA              float64 `json:"cgpa" binding:"omitempty,min=0,max=10" example:"8.2"`
	VerificationToken string  `json:"verificationToken" binding:"required"`
}

// LoginRequest authenticates by institute email.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"asha.rao@college.edu"`
	Password string `json:"password" binding:"required" example:"s3cure-Pass!"`
}

// TokenResponse is returned on login, registration and refresh.
type TokenResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user,omitempty"`
}

// RefreshTokenRequest rotates a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest starts the password reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"asha.rao@college.edu"`
}

// ResetPasswordRequest completes a password reset using the emailed token.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}
