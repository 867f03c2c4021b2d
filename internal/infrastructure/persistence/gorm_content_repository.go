package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azu-ul/portfolio-back/internal/domain/content"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/persistence/models"
	"github.com/Azu-ul/portfolio-back/internal/pkg/logger"

	"gorm.io/gorm"
)

// singletonID is the fixed primary key of every content section row.
const singletonID = 1

type gormContentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormContentRepository creates a new GORM-based content.Repository implementation
func NewGormContentRepository(db *gorm.DB, logger logger.Logger) (content.Repository, error) {
	return &gormContentRepository{
		db:     db,
		logger: logger,
	}, nil
}

// getSingleton loads the id=1 row of a section table into model. A table
// that does not exist yet behaves like an unseeded one.
func (r *gormContentRepository) getSingleton(ctx context.Context, model interface{}) error {
	if !r.db.WithContext(ctx).Migrator().HasTable(model) {
		return content.ErrNotSeeded
	}

	err := r.db.WithContext(ctx).Where("id = ?", singletonID).Take(model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return content.ErrNotSeeded
		}
		return fmt.Errorf("failed to fetch content section: %w", err)
	}
	return nil
}

func (r *gormContentRepository) GetHeader(ctx context.Context) (*content.Header, error) {
	var model models.SiteHeaderModel
	if err := r.getSingleton(ctx, &model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormContentRepository) GetAbout(ctx context.Context) (*content.About, error) {
	var model models.SiteAboutModel
	if err := r.getSingleton(ctx, &model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormContentRepository) GetContact(ctx context.Context) (*content.Contact, error) {
	var model models.SiteContactModel
	if err := r.getSingleton(ctx, &model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormContentRepository) GetFooter(ctx context.Context) (*content.Footer, error) {
	var model models.SiteFooterModel
	if err := r.getSingleton(ctx, &model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// updateSingleton applies a full-field replace to the id=1 row. A section
// must be seeded before its first update.
func (r *gormContentRepository) updateSingleton(ctx context.Context, model interface{}, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", singletonID).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update content section: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *gormContentRepository) UpdateHeader(ctx context.Context, header *content.Header) error {
	err := r.updateSingleton(ctx, &models.SiteHeaderModel{}, map[string]interface{}{
		"main_title":   header.MainTitle,
		"subtitle":     header.Subtitle,
		"cta_text":     header.CtaText,
		"linkedin_url": header.LinkedinURL,
		"website_url":  header.WebsiteURL,
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated site header")
	return nil
}

func (r *gormContentRepository) UpdateAbout(ctx context.Context, about *content.About) error {
	err := r.updateSingleton(ctx, &models.SiteAboutModel{}, map[string]interface{}{
		"title":       about.Title,
		"paragraph_1": about.Paragraph1,
		"paragraph_2": about.Paragraph2,
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated site about")
	return nil
}

func (r *gormContentRepository) UpdateContact(ctx context.Context, contact *content.Contact) error {
	err := r.updateSingleton(ctx, &models.SiteContactModel{}, map[string]interface{}{
		"title":    contact.Title,
		"email":    contact.Email,
		"website":  contact.Website,
		"location": contact.Location,
		"linkedin": contact.Linkedin,
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated site contact")
	return nil
}

func (r *gormContentRepository) UpdateFooter(ctx context.Context, footer *content.Footer) error {
	err := r.updateSingleton(ctx, &models.SiteFooterModel{}, map[string]interface{}{
		"name":           footer.Name,
		"description":    footer.Description,
		"location_text":  footer.LocationText,
		"specialty_text": footer.SpecialtyText,
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated site footer")
	return nil
}
