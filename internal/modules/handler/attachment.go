package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contracts-electrical/tracker/internal/modules/repo"
	"github.com/contracts-electrical/tracker/internal/modules/serializer"
	"github.com/contracts-electrical/tracker/internal/modules/service"
)

type AttachmentHandler struct {
	svc service.AttachmentService
}

func NewAttachmentHandler(s service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: s}
}

type PresignAttachmentReq struct {
	Filename    string `json:"filename" binding:"required" example:"site-photo.jpg"`
	ContentType string `json:"contentType" example:"image/jpeg"`
}

// PresignAttachment godoc
//
//	@Summary		Presign attachment upload
//	@Description	Get a presigned PUT URL for a progress-update attachment. Store the returned key in the update's attachments.
//	@Tags			attachment
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path		string							true	"Project id or any prefix of it"
//	@Param			payload		body		handler.PresignAttachmentReq	true	"Attachment file info"
//	@Success		200			{object}	service.PresignOutput
//	@Failure		404			{object}	serializer.ErrorResponse
//	@Failure		503			{object}	serializer.ErrorResponse
//	@Router			/projects/{project_id}/attachments [post]
func (h *AttachmentHandler) PresignAttachment(c *gin.Context) {
	req := PresignAttachmentReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.SchemaErr(err))
		return
	}

	out, err := h.svc.PresignUpload(c.Request.Context(), service.PresignInput{
		ProjectID:   c.Param("project_id"),
		Filename:    req.Filename,
		ContentType: req.ContentType,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttachmentsDisabled):
			c.JSON(http.StatusServiceUnavailable, serializer.Err("Attachment storage is not configured", nil))
		case errors.Is(err, repo.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Project not found"))
		default:
			c.JSON(http.StatusInternalServerError, serializer.IOErr("", err))
		}
		return
	}

	c.JSON(http.StatusOK, out)
}
