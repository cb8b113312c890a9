package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-deadline-engine/internal/auth"
	"study-deadline-engine/pkg/response"
)

type googleSignInReq struct {
	Code        string `json:"code" binding:"required"`
	RedirectURI string `json:"redirectUri"`
}

func (r googleSignInReq) toInput() auth.GoogleSignInInput {
	return auth.GoogleSignInInput{
		Code:        r.Code,
		RedirectURI: r.RedirectURI,
	}
}

type sessionResp struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Guest  bool   `json:"guest"`
}

func newSessionResp(o auth.SessionOutput) sessionResp {
	return sessionResp{
		Token:  o.Token,
		UserID: o.UserID,
		Email:  o.Email,
		Name:   o.Name,
		Guest:  o.Guest,
	}
}

// GoogleSignIn godoc
// @Summary     Sign in with Google
// @Description Exchanges an OAuth authorization code for a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body googleSignInReq true "Authorization code"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/google [POST]
func (h *handler) GoogleSignIn(c *gin.Context) {
	ctx := c.Request.Context()

	var req googleSignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GoogleSignIn(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.GoogleSignIn: %v", err)
		switch {
		case errors.Is(err, auth.ErrEmptyCode):
			response.Error(c, err, nil)
		case errors.Is(err, auth.ErrCodeExchange):
			response.Unauthorized(c)
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, newSessionResp(output))
}

// GuestSession godoc
// @Summary     Start a guest session
// @Description Mints an anonymous session whose completion state stays on this device.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/guest [POST]
func (h *handler) GuestSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GuestSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GuestSession: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newSessionResp(output))
}
