package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/spa-booking/internal/httperr"
	"github.com/BruksfildServices01/spa-booking/internal/media"
	"github.com/BruksfildServices01/spa-booking/internal/middleware"
	"github.com/BruksfildServices01/spa-booking/internal/models"
	"github.com/BruksfildServices01/spa-booking/internal/validators"
)

const maxAvatarBytes = 5 << 20

type MeHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewMeHandler(db *gorm.DB, uploader *media.Uploader) *MeHandler {
	return &MeHandler{
		db:       db,
		uploader: uploader,
	}
}

func (h *MeHandler) currentUser(c *gin.Context) (*models.User, bool) {
	id := middleware.IdentityFrom(c)

	var user models.User
	if err := h.db.First(&user, id.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return nil, false
	}
	return &user, true
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateMeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "update_failed", "Erro ao atualizar o perfil.")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateAvatar recebe a imagem, normaliza (resize + webp) e publica no S3.
func (h *MeHandler) UpdateAvatar(c *gin.Context) {
	if !h.uploader.Enabled() {
		httperr.Internal(c, "uploads_disabled", "Upload de imagem não configurado.")
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo 'avatar'.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil || len(data) > maxAvatarBytes {
		httperr.BadRequest(c, "file_too_large", "Imagem acima de 5MB.")
		return
	}

	url, err := h.uploader.UploadAvatar(c.Request.Context(), user.UUID, data)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao enviar a imagem.")
		return
	}

	user.AvatarURL = url
	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "update_failed", "Erro ao salvar o perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
