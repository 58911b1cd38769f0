package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/constant"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/dto"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/entities"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/pkg/apperr"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/pkg/httprange"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/pkg/rabbitmq"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/pkg/retry"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/repository"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/storage"
)

// UnsatisfiableRangeError reports a well-formed range lying outside the
// resource, carrying the total size the 416 response must advertise.
type UnsatisfiableRangeError struct {
	Total int64
	err   error
}

func (e *UnsatisfiableRangeError) Error() string {
	return e.err.Error()
}

func (e *UnsatisfiableRangeError) Unwrap() error {
	return e.err
}

// Stream carries everything the handler needs to write a full or partial
// content response. Reader is owned by the caller.
type Stream struct {
	Video       *entities.Video
	Range       httprange.Range
	Reader      io.ReadCloser
	ContentType string
}

type VideoService interface {
	Upload(ctx context.Context, req dto.UploadVideoRequest, fileName, contentType string, size int64, r io.Reader) (*entities.Video, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Video, error)
	List(ctx context.Context, page, pageSize int) ([]*entities.Video, int64, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateVideoRequest) (*entities.Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stream(ctx context.Context, id uuid.UUID, rangeHeader string) (*Stream, error)
	URL(video *entities.Video) string
}

type videoService struct {
	repo      repository.VideoRepository
	store     storage.Storage
	publisher *rabbitmq.Publisher
}

func NewVideoService(repo repository.VideoRepository, store storage.Storage, publisher *rabbitmq.Publisher) VideoService {
	return &videoService{
		repo:      repo,
		store:     store,
		publisher: publisher,
	}
}

func (s *videoService) Upload(ctx context.Context, req dto.UploadVideoRequest, fileName, contentType string, size int64, r io.Reader) (*entities.Video, error) {
	if !strings.HasPrefix(contentType, "video/") {
		return nil, apperr.Validation("unsupported content type %q", contentType)
	}
	if size <= 0 {
		return nil, apperr.Validation("empty upload")
	}

	id := uuid.New()
	objectName := "videos/" + id.String() + strings.ToLower(filepath.Ext(fileName))

	zerolog.Ctx(ctx).Info().Str("video_id", id.String()).Str("object_name", objectName).Msg("uploading video")
	if err := s.store.Put(ctx, r, objectName, size, contentType); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to store video")
		return nil, err
	}

	video := &entities.Video{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		FileName:    fileName,
		ObjectName:  objectName,
		ContentType: contentType,
		SizeBytes:   size,
		Status:      constant.VideoStatusUploaded,
	}

	_, err := retry.Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.CreateVideo(ctx, video)
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to create video record")
		if removeErr := s.store.Delete(ctx, objectName); removeErr != nil {
			zerolog.Ctx(ctx).Error().Err(removeErr).Str("object_name", objectName).Msg("failed to remove orphaned object")
		}
		return nil, err
	}

	s.publish(ctx, rabbitmq.RoutingKeyUploaded, video)

	return video, nil
}

func (s *videoService) Get(ctx context.Context, id uuid.UUID) (*entities.Video, error) {
	return retry.Do(ctx, func(ctx context.Context) (*entities.Video, error) {
		return s.repo.FindVideoById(ctx, id)
	})
}

func (s *videoService) List(ctx context.Context, page, pageSize int) ([]*entities.Video, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	videos, err := retry.Do(ctx, func(ctx context.Context) ([]*entities.Video, error) {
		return s.repo.ListVideos(ctx, (page-1)*pageSize, pageSize)
	})
	if err != nil {
		return nil, 0, err
	}

	total, err := retry.Do(ctx, func(ctx context.Context) (int64, error) {
		return s.repo.CountVideos(ctx)
	})
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

func (s *videoService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateVideoRequest) (*entities.Video, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		status := constant.VideoStatus(*req.Status)
		if !status.Valid() {
			return nil, apperr.Validation("unknown status %q", *req.Status)
		}
		updates["status"] = status
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("no fields to update")
	}

	_, err := retry.Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.UpdateVideo(ctx, id, updates)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *videoService) Delete(ctx context.Context, id uuid.UUID) error {
	video, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	_, err = retry.Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.DeleteVideo(ctx, id)
	})
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, video.ObjectName); err != nil {
		// The record is gone; an orphaned blob is logged, not fatal.
		zerolog.Ctx(ctx).Error().Err(err).Str("object_name", video.ObjectName).Msg("failed to delete object")
	}

	s.publish(ctx, rabbitmq.RoutingKeyDeleted, video)

	return nil
}

func (s *videoService) Stream(ctx context.Context, id uuid.UUID, rangeHeader string) (*Stream, error) {
	video, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	info, err := s.store.Stat(ctx, video.ObjectName)
	if err != nil {
		return nil, err
	}

	rng, err := httprange.Resolve(rangeHeader, info.Size)
	if errors.Is(err, httprange.ErrMalformed) {
		// A header we cannot parse degrades to full-content delivery.
		zerolog.Ctx(ctx).Warn().Str("range", rangeHeader).Msg("malformed range header, serving full content")
		rng, err = httprange.Resolve("", info.Size)
	}
	if errors.Is(err, httprange.ErrEmptyResource) {
		return nil, apperr.E(apperr.KindNotFound, err)
	}
	if errors.Is(err, httprange.ErrUnsatisfiable) {
		return nil, &UnsatisfiableRangeError{Total: info.Size, err: err}
	}
	if err != nil {
		return nil, err
	}

	contentType := video.ContentType
	if contentType == "" {
		contentType = info.ContentType
	}

	var reader io.ReadCloser
	if rng.Partial {
		reader, err = s.store.GetRange(ctx, video.ObjectName, rng.Start, rng.End)
	} else {
		reader, _, err = s.store.Get(ctx, video.ObjectName)
	}
	if err != nil {
		return nil, err
	}

	return &Stream{
		Video:       video,
		Range:       rng,
		Reader:      reader,
		ContentType: contentType,
	}, nil
}

func (s *videoService) URL(video *entities.Video) string {
	return s.store.URL(video.ObjectName)
}

func (s *videoService) publish(ctx context.Context, routingKey string, video *entities.Video) {
	event := dto.VideoEvent{
		VideoId:    video.ID,
		ObjectPath: video.ObjectName,
		FileName:   video.FileName,
	}
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("routing_key", routingKey).Msg("failed to publish video event")
	}
}
