package deleteuser

import (
	"context"
	"errors"
	e "finschool/internal/core/domain/errors"
	"finschool/internal/core/domain/logging"
	"finschool/internal/core/domain/user"
	"finschool/internal/core/services"
	"finschool/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
	User   user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.userRepository.Delete(ctx, input.UserID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not delete user.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User has been deleted.",
		logging.Entry("userID", input.UserID),
		logging.Entry("deletedBy", input.User.ID),
	)
	return result, nil
}
