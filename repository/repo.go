package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/entities"
)

type VideoRepository interface {
	CreateVideo(ctx context.Context, video *entities.Video) error
	FindVideoById(ctx context.Context, id uuid.UUID) (*entities.Video, error)
	ListVideos(ctx context.Context, offset, limit int) ([]*entities.Video, error)
	CountVideos(ctx context.Context) (int64, error)
	UpdateVideo(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteVideo(ctx context.Context, id uuid.UUID) error
}

type repo struct {
	db *gorm.DB
}

func NewRepo(db *sql.DB) VideoRepository {
	gormDB, _ := gorm.Open(postgres.New(postgres.Config{
		Conn: db}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		},
	)
	return &repo{
		db: gormDB,
	}
}

func (r *repo) GetDB() *gorm.DB {
	return r.db
}

func (r *repo) CreateVideo(ctx context.Context, video *entities.Video) error {
	err := r.GetDB().WithContext(ctx).Create(video).Error
	if err != nil {
		return translateErr(err)
	}

	return nil
}

func (r *repo) FindVideoById(ctx context.Context, id uuid.UUID) (*entities.Video, error) {
	video := &entities.Video{}
	err := r.GetDB().WithContext(ctx).First(video, "id = ?", id).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return video, nil
}

func (r *repo) ListVideos(ctx context.Context, offset, limit int) ([]*entities.Video, error) {
	var videos []*entities.Video
	err := r.GetDB().WithContext(ctx).Order("created_at DESC").Offset(offset).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return videos, nil
}

func (r *repo) CountVideos(ctx context.Context) (int64, error) {
	var count int64
	err := r.GetDB().WithContext(ctx).Model(&entities.Video{}).Count(&count).Error
	if err != nil {
		return 0, translateErr(err)
	}

	return count, nil
}

func (r *repo) UpdateVideo(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.GetDB().WithContext(ctx).Model(&entities.Video{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound)
	}

	return nil
}

func (r *repo) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	result := r.GetDB().WithContext(ctx).Delete(&entities.Video{}, "id = ?", id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound)
	}

	return nil
}
