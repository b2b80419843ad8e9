package services

import (
	"finschool/internal/app/deps"
	drl "finschool/internal/core/domain/rate_limiter"
	"finschool/internal/core/domain/user"
	"finschool/internal/core/services"
	"finschool/internal/core/services/auth"
	deleteuser "finschool/internal/core/services/delete_user"
	getuserbysessiontoken "finschool/internal/core/services/get_user_by_session_token"
	listusers "finschool/internal/core/services/list_users"
	login "finschool/internal/core/services/log_in"
	logout "finschool/internal/core/services/log_out"
	ratelimiting "finschool/internal/core/services/rate_limiting"
	resetpassword "finschool/internal/core/services/reset_password"
	sendpasswordresettoken "finschool/internal/core/services/send_password_reset_token"
	signup "finschool/internal/core/services/sign_up"
	verifypasswordresettoken "finschool/internal/core/services/verify_password_reset_token"
)

type Services struct {
	SignUp                   services.Service[signup.Input, signup.Result]
	LogIn                    services.Service[login.Input, login.Result]
	LogOut                   services.Service[logout.Input, logout.Result]
	GetUserBySessionToken    services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	SendPasswordResetToken   services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	VerifyPasswordResetToken services.Service[verifypasswordresettoken.Input, verifypasswordresettoken.Result]
	ResetPassword            services.Service[resetpassword.Input, resetpassword.Result]

	ListUsers  services.Service[listusers.Input, listusers.Result]
	DeleteUser services.Service[deleteuser.Input, deleteuser.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.SessionTokenGenerator,
		user.RawPassword(deps.Config.AdminPassword),
		deps.Now,
	)
	s.LogIn = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		login.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordResetter,
			deps.PasswordResetTokenSender,
		),
	)
	s.VerifyPasswordResetToken = verifypasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordResetter,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordResetter,
		deps.PasswordHasher,
	)

	s.ListUsers = auth.WithAdminAuthorization(
		deps.SessionRepository,
		listusers.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.DeleteUser = auth.WithAdminAuthorization(
		deps.SessionRepository,
		deleteuser.New(
			deps.Logger,
			deps.UserRepository,
		),
	)

	return s
}
