package handlers

import (
	"net/http"
	"strings"

	request "assessment_checkout/internal/adapter/http/dto/request"
	response "assessment_checkout/internal/adapter/http/dto/response"
	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler fronts the authentication gate. It never redirects; the UI
// decides where to send the user based on needsAuth.
type AuthHandler struct {
	auth usecase.IAuthGateUseCase
}

func NewAuthHandler(auth usecase.IAuthGateUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Check(c *gin.Context) {
	var payload request.AuthCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPaymentPayload)
		return
	}
	sessionID, testID, err := payload.Resolve()
	if err != nil {
		writeError(c, errInvalidPaymentPayload)
		return
	}
	path := strings.TrimSpace(payload.CurrentPath)
	if path == "" {
		path = entities.ClientInfoFromContext(c.Request.Context()).CurrentPath
	}

	res, err := h.auth.CheckAuthAndRedirect(c.Request.Context(), sessionID, testID, path)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuthCheck(res))
}

// Return resumes the interrupted payment after sign-in. A flow that cannot be
// resumed is reported with resumed=false and the reason.
func (h *AuthHandler) Return(c *gin.Context) {
	res, err := h.auth.HandlePostAuthReturn(c.Request.Context())
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPostAuth(res))
}
