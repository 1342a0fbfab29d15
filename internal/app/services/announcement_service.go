package services

import (
	"context"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/pkg/logger"
)

// AnnouncementService manages notices published to students.
type AnnouncementService struct {
	announcements AnnouncementRepository
}

func NewAnnouncementService(announcements AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

func (s *AnnouncementService) Create(ctx context.Context, req dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a := &models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		IsResult: req.IsResult,
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}

	logger.Info().Int64("announcementId", a.ID).Bool("isResult", a.IsResult).Msg("Announcement published")
	return dto.AnnouncementToResponse(a), nil
}

func (s *AnnouncementService) GetByID(ctx context.Context, id int64) (*dto.AnnouncementResponse, error) {
	a, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.AnnouncementToResponse(a), nil
}

func (s *AnnouncementService) List(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	items, total, err := s.announcements.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	resp := dto.NewPaginatedResponse(dto.AnnouncementsToResponses(items), page, size, total)
	return &resp, nil
}

func (s *AnnouncementService) Update(ctx context.Context, id int64, req dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.IsResult != nil {
		a.IsResult = *req.IsResult
	}

	if err := s.announcements.Update(ctx, a); err != nil {
		return nil, err
	}
	return dto.AnnouncementToResponse(a), nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	if err := s.announcements.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("announcementId", id).Msg("Announcement deleted")
	return nil
}
