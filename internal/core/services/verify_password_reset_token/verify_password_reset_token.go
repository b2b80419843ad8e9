package verifypasswordresettoken

import (
	"context"
	"errors"
	c "finschool/internal/core/domain/common"
	e "finschool/internal/core/domain/errors"
	"finschool/internal/core/domain/logging"
	"finschool/internal/core/domain/user"
	"finschool/internal/core/services"
)

type Input struct {
	Token user.PasswordResetToken
}

type Result struct {
	Email c.Email
}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	passwordResetter user.PasswordResetter
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordResetter user.PasswordResetter,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordResetter == nil {
		panic(e.NewNilArgumentError("passwordResetter"))
	}
	return &service{
		log:              log,
		userRepository:   userRepository,
		passwordResetter: passwordResetter,
	}
}

// Run checks a redemption link before the new-password form is shown.
// The token resolves its user through the embedded email, never through
// a stored id.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	email, ok := s.passwordResetter.GetEmail(input.Token)
	if !ok {
		return result, user.ErrPasswordResetTokenInvalid
	}
	u, err := s.userRepository.GetByEmail(ctx, email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset token.", logging.Entry("email", email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset token.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := s.passwordResetter.VerifyToken(input.Token, u); err != nil {
		return result, err
	}
	return Result{Email: u.Email}, nil
}
