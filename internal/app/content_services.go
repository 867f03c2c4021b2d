package app

import (
	"context"
	"errors"

	"github.com/Azu-ul/portfolio-back/internal/domain/content"
	"github.com/Azu-ul/portfolio-back/internal/pkg/logger"
)

// contentService implements the content.Service interface. Reads fall back
// to the fixed default payload when the singleton row was never seeded, so
// a fresh database still renders a complete site.
type contentService struct {
	contentRepo content.Repository
	logger      logger.Logger
}

// NewContentService creates a new contentService instance
func NewContentService(contentRepo content.Repository, logger logger.Logger) (content.Service, error) {
	return &contentService{
		contentRepo: contentRepo,
		logger:      logger,
	}, nil
}

func (s *contentService) GetHeader(ctx context.Context) (*content.Header, error) {
	header, err := s.contentRepo.GetHeader(ctx)
	if errors.Is(err, content.ErrNotSeeded) {
		return content.DefaultHeader(), nil
	}
	if err != nil {
		return nil, err
	}
	return header, nil
}

func (s *contentService) GetAbout(ctx context.Context) (*content.About, error) {
	about, err := s.contentRepo.GetAbout(ctx)
	if errors.Is(err, content.ErrNotSeeded) {
		return content.DefaultAbout(), nil
	}
	if err != nil {
		return nil, err
	}
	return about, nil
}

func (s *contentService) GetContact(ctx context.Context) (*content.Contact, error) {
	contact, err := s.contentRepo.GetContact(ctx)
	if errors.Is(err, content.ErrNotSeeded) {
		return content.DefaultContact(), nil
	}
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contentService) GetFooter(ctx context.Context) (*content.Footer, error) {
	footer, err := s.contentRepo.GetFooter(ctx)
	if errors.Is(err, content.ErrNotSeeded) {
		return content.DefaultFooter(), nil
	}
	if err != nil {
		return nil, err
	}
	return footer, nil
}

// Updates respond with the stored row so callers see the persisted id
// and any columns the write did not touch.
func (s *contentService) UpdateHeader(ctx context.Context, header *content.Header) (*content.Header, error) {
	if err := s.contentRepo.UpdateHeader(ctx, header); err != nil {
		return nil, err
	}
	return s.contentRepo.GetHeader(ctx)
}

func (s *contentService) UpdateAbout(ctx context.Context, about *content.About) (*content.About, error) {
	if err := s.contentRepo.UpdateAbout(ctx, about); err != nil {
		return nil, err
	}
	return s.contentRepo.GetAbout(ctx)
}

func (s *contentService) UpdateContact(ctx context.Context, contact *content.Contact) (*content.Contact, error) {
	if err := s.contentRepo.UpdateContact(ctx, contact); err != nil {
		return nil, err
	}
	return s.contentRepo.GetContact(ctx)
}

func (s *contentService) UpdateFooter(ctx context.Context, footer *content.Footer) (*content.Footer, error) {
	if err := s.contentRepo.UpdateFooter(ctx, footer); err != nil {
		return nil, err
	}
	return s.contentRepo.GetFooter(ctx)
}
