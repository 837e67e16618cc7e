// internal/app/features/signin/routes.go
package signin

import "github.com/go-chi/chi/v5"

// Routes serves the sign-in page, mounted at /signin.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeSignin)
	r.Post("/", h.HandleSigninPost)
	return r
}

// RegisterRoutes serves admin self-registration, mounted at /register.
func RegisterRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRegister)
	r.Post("/", h.HandleRegisterPost)
	return r
}
