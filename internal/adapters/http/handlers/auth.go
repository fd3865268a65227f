package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/adapters/http/dto"
	"github.com/quotevault/quotevault/internal/app"
	"github.com/quotevault/quotevault/internal/domain"
)

// AuthHandler exposes the auth store over HTTP.
type AuthHandler struct {
	store *app.AuthStore
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(store *app.AuthStore) *AuthHandler {
	return &AuthHandler{store: store}
}

// UserResponse is the HTTP shape of the signed-in profile.
type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	DisplayName      string    `json:"displayName,omitempty"`
	AvatarURL        string    `json:"avatarUrl,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	NotificationTime string    `json:"notificationTime,omitempty"`
	Theme            string    `json:"theme,omitempty"`
	FontSize         string    `json:"fontSize,omitempty"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		DisplayName:      u.DisplayName,
		AvatarURL:        u.AvatarURL,
		CreatedAt:        u.CreatedAt,
		NotificationTime: u.NotificationTime,
		Theme:            u.Theme,
		FontSize:         u.FontSize,
	}
}

// signUpRequest is the body of POST /api/v1/auth/signup.
type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

// signInRequest is the body of POST /api/v1/auth/signin.
type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// resetPasswordRequest is the body of POST /api/v1/auth/reset-password.
type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// updateProfileRequest is the body of PATCH /api/v1/auth/profile.
// Absent fields are left unchanged.
type updateProfileRequest struct {
	DisplayName      *string `json:"displayName"`
	AvatarURL        *string `json:"avatarUrl"`
	NotificationTime *string `json:"notificationTime" validate:"omitempty,hhmm"`
	Theme            *string `json:"theme"`
	FontSize         *string `json:"fontSize"`
}

// SignUp handles POST /api/v1/auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if !bindAuthRequest(c, &req) {
		return
	}

	if err := h.store.SignUp(c.Request.Context(), req.Email, req.Password, req.Name); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(*h.store.User()))
}

// SignIn handles POST /api/v1/auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if !bindAuthRequest(c, &req) {
		return
	}

	if err := h.store.SignIn(c.Request.Context(), req.Email, req.Password); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*h.store.User()))
}

// SignOut handles POST /api/v1/auth/signout.
// Always succeeds locally, whatever the backend says.
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.store.SignOut(c.Request.Context())

	c.Status(http.StatusNoContent)
}

// ResetPassword handles POST /api/v1/auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !bindAuthRequest(c, &req) {
		return
	}

	if err := h.store.ResetPassword(c.Request.Context(), req.Email); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "password reset email requested"})
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.store.User()
	if user == nil {
		dto.HandleError(c, domain.NewAuthError("no signed-in user"))
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*user))
}

// UpdateProfile handles PATCH /api/v1/auth/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if !bindAuthRequest(c, &req) {
		return
	}

	update := domain.ProfileUpdate{
		DisplayName:      req.DisplayName,
		AvatarURL:        req.AvatarURL,
		NotificationTime: req.NotificationTime,
		Theme:            req.Theme,
		FontSize:         req.FontSize,
	}

	if err := h.store.UpdateProfile(c.Request.Context(), update); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*h.store.User()))
}

// RegisterAuthRoutes registers the public auth routes.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/signup", h.SignUp)
	auth.POST("/signin", h.SignIn)
	auth.POST("/signout", h.SignOut)
	auth.POST("/reset-password", h.ResetPassword)
}

// RegisterProfileRoutes registers the routes that require a signed-in
// user.
func (h *AuthHandler) RegisterProfileRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.GET("/me", h.Me)
	auth.PATCH("/profile", h.UpdateProfile)
}

// bindAuthRequest binds and validates the JSON body, writing a 400 on
// failure. Returns false when the request was rejected.
func bindAuthRequest(c *gin.Context, v any) bool {
	if err := dto.BindAndValidate(c, v); err != nil {
		if fieldErrors := dto.ValidationErrors(err); len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
				dto.ErrorCodeValidation,
				"request validation failed",
				fieldErrors,
			).WithTraceID(dto.GetTraceID(c)))
			return false
		}

		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			err.Error(),
		).WithTraceID(dto.GetTraceID(c)))
		return false
	}

	return true
}
