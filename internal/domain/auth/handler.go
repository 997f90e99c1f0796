package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
	"rvconsign/internal/pkg/response"
	"rvconsign/internal/pkg/validator"
)

type Handler struct {
	service      *Service
	cookieName   string
	cookieSecure bool
	cookieTTL    time.Duration
}

func NewHandler(service *Service, cookieName string, cookieSecure bool, cookieTTL time.Duration) *Handler {
	return &Handler{
		service:      service,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		cookieTTL:    cookieTTL,
	}
}

// SignUp godoc
// @Summary Create an owner or renter account
// @Router /auth/signup [post]
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	sess, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.setCookie(c, sess.Token, int(h.cookieTTL.Seconds()))
	response.Success(c, http.StatusCreated, sess)
}

// SignIn godoc
// @Summary Sign in with email and password
// @Router /auth/signin [post]
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	sess, err := h.service.SignIn(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.setCookie(c, sess.Token, int(h.cookieTTL.Seconds()))
	response.Success(c, http.StatusOK, sess)
}

func (h *Handler) SignOut(c *gin.Context) {
	h.setCookie(c, "", -1)
	response.Success(c, http.StatusOK, gin.H{"signed_out": true})
}

// Me godoc
// @Summary The session profile with its owner or renter record
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	me, err := h.service.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, me)
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, value, maxAge, "/", "", h.cookieSecure, true)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailExists):
		response.Error(c, http.StatusConflict, "EMAIL_EXISTS", err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
	case errors.Is(err, ErrProfileNotFound):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, ErrInvalidRole), errors.Is(err, ErrRoleNotAllowed):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
