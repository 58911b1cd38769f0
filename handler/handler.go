package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/dto"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/entities"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/pkg/apperr"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/service"
)

const streamCacheControl = "public, max-age=3600"

type VideoHandler struct {
	svc service.VideoService
}

func NewVideoHandler(svc service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

func (h *VideoHandler) Register(r gin.IRouter) {
	api := r.Group("/api/v1")
	api.POST("/videos", h.Upload)
	api.GET("/videos", h.List)
	api.GET("/videos/:id", h.Get)
	api.PATCH("/videos/:id", h.Update)
	api.DELETE("/videos/:id", h.Delete)
	api.GET("/videos/:id/stream", h.Stream)
}

func (h *VideoHandler) Upload(c *gin.Context) {
	var req dto.UploadVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	video, err := h.svc.Upload(c.Request.Context(), req, fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), fileHeader.Size, file)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.response(video))
}

func (h *VideoHandler) List(c *gin.Context) {
	var query dto.ListVideosQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videos, total, err := h.svc.List(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	resp := dto.ListVideosResponse{
		Videos:   make([]dto.VideoResponse, 0, len(videos)),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	for _, v := range videos {
		resp.Videos = append(resp.Videos, h.response(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *VideoHandler) Get(c *gin.Context) {
	id, ok := h.videoId(c)
	if !ok {
		return
	}

	video, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.response(video))
}

func (h *VideoHandler) Update(c *gin.Context) {
	id, ok := h.videoId(c)
	if !ok {
		return
	}

	var req dto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.response(video))
}

func (h *VideoHandler) Delete(c *gin.Context) {
	id, ok := h.videoId(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VideoHandler) Stream(c *gin.Context) {
	id, ok := h.videoId(c)
	if !ok {
		return
	}

	stream, err := h.svc.Stream(c.Request.Context(), id, c.GetHeader("Range"))
	if err != nil {
		var unsat *service.UnsatisfiableRangeError
		if errors.As(err, &unsat) {
			c.Header("Content-Range", fmt.Sprintf("bytes */%d", unsat.Total))
			c.JSON(http.StatusRequestedRangeNotSatisfiable, gin.H{"error": "range not satisfiable"})
			return
		}
		h.abortWithError(c, err)
		return
	}
	defer stream.Reader.Close()

	c.Header("Accept-Ranges", "bytes")
	c.Header("Cache-Control", streamCacheControl)

	status := http.StatusOK
	if stream.Range.Partial {
		status = http.StatusPartialContent
		c.Header("Content-Range", stream.Range.ContentRange())
	}

	c.DataFromReader(status, stream.Range.Length(), stream.ContentType, stream.Reader, nil)
}

func (h *VideoHandler) videoId(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *VideoHandler) response(video *entities.Video) dto.VideoResponse {
	return dto.NewVideoResponse(video, h.svc.URL(video))
}

func (h *VideoHandler) abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindDuplicate, apperr.KindForeignKey:
		status = http.StatusConflict
	case apperr.KindNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
