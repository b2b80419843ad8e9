package user

import (
	"context"
	c "finschool/internal/core/domain/common"
)

type PasswordResetToken string

// PasswordResetter issues and checks self-contained signed tokens.
// A token binds the user's email and current password hash, so the
// token carries no server-side state and stops validating as soon as
// the password it was issued against changes.
type PasswordResetter interface {
	GenerateToken(u User) PasswordResetToken
	// GetEmail decodes the embedded email without verifying the token.
	// The caller resolves the user by this email and passes it to
	// VerifyToken.
	GetEmail(token PasswordResetToken) (email c.Email, ok bool)
	// VerifyToken returns ErrPasswordResetTokenInvalid for a malformed
	// or tampered token and ErrPasswordResetTokenExpired for a genuine
	// token past its validity window.
	VerifyToken(token PasswordResetToken, u User) error
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, u User, token PasswordResetToken) error
}
