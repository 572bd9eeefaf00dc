package auth

import (
	"errors"
	"net/http"

	"github.com/redmonkez12/go-task-api/internal/httputil"
	"github.com/redmonkez12/go-task-api/internal/logging"
	"github.com/redmonkez12/go-task-api/internal/user"
)

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SignUpRequest represents the sign-up request body
type SignUpRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Name         *string `json:"name"`
	Age          *int    `json:"age"`
	ProfileImage *string `json:"profileImage"`
}

// SignInRequest represents the sign-in request body
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest represents the password reset request body
type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents a successful sign-up or sign-in
type AuthResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	Data    user.Response `json:"data"`
}

// SignUp handles user registration
// @Summary      Sign up
// @Description  Create an account and receive a bearer token. Accepts JSON or multipart/form-data with an optional profileImage file.
// @Tags         auth
// @Accept       json,mpfd
// @Produce      json
// @Param        request body SignUpRequest true "Credentials and optional profile"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} httputil.Response "Validation error or email already registered"
// @Failure      500 {object} httputil.Response
// @Router       /auth/signup [post]
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	in, err := decodeSignUp(w, r)
	if err != nil {
		var bodyErr decodeError
		if errors.As(err, &bodyErr) {
			httputil.RespondInvalidBody(w, logger, err)
			return
		}
		httputil.RespondServiceError(w, logger, err, "Error signing up")
		return
	}

	logger = logger.WithFields(map[string]any{"email": user.NormalizeEmail(in.Email)})

	result, err := h.service.SignUp(r.Context(), in)
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "Error signing up")
		return
	}

	logger.Info("user signed up", "user_id", result.User.ID.String())
	httputil.RespondJSON(w, httputil.Response{Success: true, Token: result.Token, Data: result.User}, http.StatusCreated)
}

// SignIn handles user login
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignInRequest true "Credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} httputil.Response "Missing email or password"
// @Failure      401 {object} httputil.Response "Invalid email or password"
// @Failure      500 {object} httputil.Response
// @Router       /auth/signin [post]
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req SignInRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.RespondInvalidBody(w, logger, err)
		return
	}

	result, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "Error signing in")
		return
	}

	httputil.RespondJSON(w, httputil.Response{Success: true, Token: result.Token, Data: result.User}, http.StatusOK)
}

// ResetPassword sets a new password for an email
// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ResetPasswordRequest true "Email and new password"
// @Success      200 {object} httputil.Response
// @Failure      400 {object} httputil.Response
// @Failure      404 {object} httputil.Response "User not found"
// @Failure      500 {object} httputil.Response
// @Router       /auth/reset-password [post]
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req ResetPasswordRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.RespondInvalidBody(w, logger, err)
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Email, req.Password); err != nil {
		httputil.RespondServiceError(w, logger, err, "Error resetting password")
		return
	}

	logger.Info("password reset", "email", user.NormalizeEmail(req.Email))
	httputil.RespondMessage(w, "Password updated successfully", http.StatusOK)
}

// decodeError marks a body that could not be parsed at all
type decodeError struct{ error }

func decodeSignUp(w http.ResponseWriter, r *http.Request) (SignUpInput, error) {
	if !user.IsMultipart(r) {
		var req SignUpRequest
		if err := httputil.DecodeJSON(w, r, &req); err != nil {
			return SignUpInput{}, decodeError{err}
		}
		return SignUpInput{
			Email:        req.Email,
			Password:     req.Password,
			Name:         req.Name,
			Age:          req.Age,
			ProfileImage: req.ProfileImage,
		}, nil
	}

	values, image, err := user.ReadMultipart(w, r)
	if err != nil {
		return SignUpInput{}, err
	}
	profile, err := user.ProfileInputFromForm(values, image)
	if err != nil {
		return SignUpInput{}, err
	}

	return SignUpInput{
		Email:        values.Get("email"),
		Password:     values.Get("password"),
		Name:         profile.Name,
		Age:          profile.Age,
		ProfileImage: profile.ProfileImage,
		Image:        profile.Image,
	}, nil
}
