package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contracts-electrical/tracker/internal/modules/serializer"
	"github.com/contracts-electrical/tracker/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type SignupReq struct {
	Username  string `json:"username" example:"9876543210"`
	FirstName string `json:"first_name" example:"Ravi"`
	Password  string `json:"password" example:"secret"`
	Role      string `json:"role" example:"user"`
}

type SignupResp struct {
	Message   string `json:"message"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	Role      string `json:"role"`
}

// Signup godoc
//
//	@Summary		Sign up
//	@Description	Register a user. The username must be an email address or a 10-15 digit phone number with an optional leading +.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.SignupReq	true	"Signup payload"
//	@Success		200		{object}	handler.SignupResp
//	@Failure		400		{object}	serializer.ErrorResponse
//	@Router			/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	req := SignupReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.SchemaErr(err))
		return
	}

	u, err := h.svc.Signup(c.Request.Context(), service.SignupInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername):
			c.JSON(http.StatusBadRequest, serializer.ParamErr("Username must be a valid email or phone number", nil))
		case errors.Is(err, service.ErrUserExists):
			c.JSON(http.StatusBadRequest, serializer.ParamErr("User already exists", nil))
		default:
			c.JSON(http.StatusInternalServerError, serializer.IOErr("", err))
		}
		return
	}

	c.JSON(http.StatusOK, SignupResp{
		Message:   "User created successfully",
		Username:  u.Username,
		FirstName: u.FirstName,
		Role:      u.Role,
	})
}

type LoginReq struct {
	Username string `json:"username" example:"9876543210"`
	Password string `json:"password" example:"secret"`
}

type LoginResp struct {
	Success  bool   `json:"success"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Check credentials and return the user's role. No session or token is issued.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.LoginReq	true	"Login payload"
//	@Success		200		{object}	handler.LoginResp
//	@Failure		401		{object}	serializer.ErrorResponse
//	@Router			/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.SchemaErr(err))
		return
	}

	out, err := h.svc.Login(c.Request.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, serializer.AuthErr("Invalid username or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.IOErr("", err))
		return
	}

	c.JSON(http.StatusOK, LoginResp{Success: true, Role: out.Role, Username: out.Username})
}
