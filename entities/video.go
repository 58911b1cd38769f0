package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/constant"
)

type Video struct {
	ID              uuid.UUID            `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title           string               `json:"title" gorm:"type:varchar(255);not null"`
	Description     *string              `json:"description" gorm:"type:text"`
	FileName        string               `json:"file_name" gorm:"type:varchar(255);not null"`
	ObjectName      string               `json:"object_name" gorm:"type:varchar(500);not null;uniqueIndex:unique_video_object_name"`
	ContentType     string               `json:"content_type" gorm:"type:varchar(100);not null"`
	SizeBytes       int64                `json:"size_bytes" gorm:"type:bigint;not null"`
	DurationSeconds *int                 `json:"duration_seconds" gorm:"type:integer"`
	Status          constant.VideoStatus `json:"status" gorm:"type:varchar(20);not null;default:'UPLOADED';index:idx_videos_status"`
	CreatedAt       time.Time            `json:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time            `json:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Video) TableName() string {
	return "videos"
}
