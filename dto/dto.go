package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/constant"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/entities"
)

type UploadVideoRequest struct {
	Title       string  `form:"title" binding:"required,max=255"`
	Description *string `form:"description" binding:"omitempty,max=2000"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Status      *string `json:"status" binding:"omitempty,oneof=UPLOADED PROCESSING READY FAILED"`
}

type ListVideosQuery struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type VideoResponse struct {
	Id              uuid.UUID            `json:"id"`
	Title           string               `json:"title"`
	Description     *string              `json:"description,omitempty"`
	FileName        string               `json:"fileName"`
	Url             string               `json:"url"`
	ContentType     string               `json:"contentType"`
	SizeBytes       int64                `json:"sizeBytes"`
	DurationSeconds *int                 `json:"durationSeconds,omitempty"`
	Status          constant.VideoStatus `json:"status"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type ListVideosResponse struct {
	Videos   []VideoResponse `json:"videos"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

func NewVideoResponse(video *entities.Video, url string) VideoResponse {
	return VideoResponse{
		Id:              video.ID,
		Title:           video.Title,
		Description:     video.Description,
		FileName:        video.FileName,
		Url:             url,
		ContentType:     video.ContentType,
		SizeBytes:       video.SizeBytes,
		DurationSeconds: video.DurationSeconds,
		Status:          video.Status,
		CreatedAt:       video.CreatedAt,
		UpdatedAt:       video.UpdatedAt,
	}
}

// VideoEvent is published to the transcoding exchange on lifecycle changes.
type VideoEvent struct {
	VideoId    uuid.UUID `json:"videoId"`
	ObjectPath string    `json:"objectPath"`
	FileName   string    `json:"fileName"`
}
