package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/pkg/apperrors"
	"github.com/pcell/backend/internal/pkg/auth"
	"github.com/pcell/backend/internal/pkg/logger"
)

// HandleAPIError maps a service or binding error to an HTTP status and the
// standard error envelope. Controllers call it for every failure path so the
// wire format stays uniform.
func HandleAPIError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Request validation failed").
			WithDetails(validationFieldErrors(validationErrs))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	status, code := classify(err)

	message := err.Error()
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		// Internal details stay out of responses.
		message = "An unexpected error occurred"
	}

	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

func classify(err error) (int, dto.ErrorCode) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials
	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidToken
	case errors.Is(err, apperrors.ErrEmailNotVerified):
		return http.StatusForbidden, dto.ErrorCodeEmailNotVerified
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden
	case errors.Is(err, apperrors.ErrOTPInvalid),
		errors.Is(err, apperrors.ErrOTPExpired):
		return http.StatusBadRequest, dto.ErrorCodeInvalidOTP
	case errors.Is(err, apperrors.ErrInvalidPasswordResetToken),
		errors.Is(err, apperrors.ErrPasswordResetTokenUsed):
		return http.StatusBadRequest, dto.ErrorCodeInvalidToken
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrOpeningNotFound),
		errors.Is(err, apperrors.ErrSelectionNotFound),
		errors.Is(err, apperrors.ErrBranchNotFound),
		errors.Is(err, apperrors.ErrAnnouncementNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrEnrolmentNoExists),
		errors.Is(err, apperrors.ErrBranchAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceExists
	case errors.Is(err, apperrors.ErrAlreadyPlaced),
		errors.Is(err, apperrors.ErrStudentPlaced),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorCodeConflict
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrOpeningValidation),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed
	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalError
	}
}

func validationFieldErrors(errs validator.ValidationErrors) []dto.ValidationFieldError {
	out := make([]dto.ValidationFieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, dto.ValidationFieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "is too short or too small (min " + fe.Param() + ")"
	case "max":
		return "is too long or too large (max " + fe.Param() + ")"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "numeric":
		return "must contain only digits"
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
