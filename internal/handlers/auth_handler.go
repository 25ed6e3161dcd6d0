package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/spa-booking/internal/cart"
	"github.com/BruksfildServices01/spa-booking/internal/config"
	"github.com/BruksfildServices01/spa-booking/internal/httperr"
	"github.com/BruksfildServices01/spa-booking/internal/identity"
	"github.com/BruksfildServices01/spa-booking/internal/middleware"
	"github.com/BruksfildServices01/spa-booking/internal/models"
	"github.com/BruksfildServices01/spa-booking/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type AuthHandler struct {
	db      *gorm.DB
	cfg     *config.Config
	otp     *identity.OTPService
	storage cart.Storage
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	otp *identity.OTPService,
	storage cart.Storage,
) *AuthHandler {
	return &AuthHandler{
		db:      db,
		cfg:     cfg,
		otp:     otp,
		storage: storage,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type RequestOTPRequest struct {
	Mobile string `json:"mobile" binding:"required"`
}

type VerifyOTPRequest struct {
	Mobile string `json:"mobile" binding:"required"`
	Code   string `json:"code" binding:"required"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

////////////////////////////////////////////////////////
// OTP
////////////////////////////////////////////////////////

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsMobileValid(req.Mobile) {
		httperr.BadRequest(c, "invalid_mobile", "Celular inválido.")
		return
	}

	if err := h.otp.Request(c.Request.Context(), req.Mobile); err != nil {
		httperr.Internal(c, "otp_failed", "Não foi possível enviar o código.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Código enviado."})
}

// VerifyOTP confirma o código, emite a sessão e faz o merge do
// carrinho de visitante no carrinho do usuário.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.otp.Verify(c.Request.Context(), req.Mobile, req.Code); err != nil {
		switch {
		case httperr.IsBusiness(err, "otp_expired"):
			httperr.BadRequest(c, "otp_expired", "Código expirado. Peça um novo.")
		case httperr.IsBusiness(err, "otp_invalid"):
			httperr.BadRequest(c, "otp_invalid", "Código incorreto.")
		default:
			httperr.Internal(c, "otp_failed", "Não foi possível validar o código.")
		}
		return
	}

	user, err := h.upsertUser(req)
	if err != nil {
		httperr.Internal(c, "user_upsert_failed", "Erro ao criar a conta.")
		return
	}

	token, err := identity.IssueToken(h.cfg, user)
	if err != nil {
		httperr.Internal(c, "token_failed", "Erro ao emitir a sessão.")
		return
	}

	id := identity.Identity{
		Authenticated: true,
		UserID:        user.ID,
		UserUUID:      user.UUID,
		Mobile:        user.Mobile,
		Email:         user.Email,
	}

	store := cart.Open(c.Request.Context(), h.storage, id)
	if guestID := c.GetHeader(middleware.GuestTokenHeader); guestID != "" {
		store.MergeGuestIntoUser(c.Request.Context(), guestID)
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
		"cart":  store.Items(),
	})
}

func (h *AuthHandler) upsertUser(req VerifyOTPRequest) (*models.User, error) {
	var user models.User
	err := h.db.Where("mobile = ?", req.Mobile).First(&user).Error

	if err == gorm.ErrRecordNotFound {
		user = models.User{
			UUID:   uuid.NewString(),
			Mobile: req.Mobile,
		}
	} else if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" && validators.IsEmailDomainValid(req.Email) {
		user.Email = req.Email
	}

	if err := h.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

////////////////////////////////////////////////////////
// LOGOUT
////////////////////////////////////////////////////////

// Logout encerra a sessão e limpa o carrinho do usuário.
func (h *AuthHandler) Logout(c *gin.Context) {
	id := middleware.IdentityFrom(c)

	store := cart.Open(c.Request.Context(), h.storage, id)
	store.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada."})
}
