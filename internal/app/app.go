package app

import (
	"finschool/internal/app/deps"
	"finschool/internal/app/services"
	deleteuser "finschool/internal/http/handlers/admin/delete_user"
	listusers "finschool/internal/http/handlers/admin/list_users"
	"finschool/internal/http/handlers/auth"
	login "finschool/internal/http/handlers/auth/log_in"
	logout "finschool/internal/http/handlers/auth/log_out"
	me "finschool/internal/http/handlers/auth/me"
	resetpassword "finschool/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "finschool/internal/http/handlers/auth/send_password_reset_token"
	signup "finschool/internal/http/handlers/auth/sign_up"
	verifypasswordresettoken "finschool/internal/http/handlers/auth/verify_password_reset_token"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(
		http.MethodGet,
		"/password_reset/{token}",
		verifypasswordresettoken.New(s.VerifyPasswordResetToken),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.SetAuthTokenToContext)
	adminRouter.Method(http.MethodGet, "/users", listusers.New(s.ListUsers))
	adminRouter.Method(http.MethodDelete, "/users/{userID:[0-9]+}", deleteuser.New(s.DeleteUser))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/admin", adminRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
