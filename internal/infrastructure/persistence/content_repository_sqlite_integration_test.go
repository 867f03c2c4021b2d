//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/Azu-ul/portfolio-back/internal/domain/content"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/persistence/models"
	"github.com/Azu-ul/portfolio-back/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHeader(t *testing.T, ctx *TestContext) {
	t.Helper()

	row := models.SiteHeaderModel{
		ID:          1,
		MainTitle:   "Seeded Title",
		Subtitle:    "Seeded Subtitle",
		CtaText:     "Read on",
		LinkedinURL: "https://linkedin.com/in/seeded",
		WebsiteURL:  "https://seeded.example.com",
	}
	require.NoError(t, ctx.DB.Create(&row).Error)
}

func TestContentSqliteRepository_GetHeader_NotSeeded(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.ContentRepo.GetHeader(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, content.ErrNotSeeded))
}

func TestContentSqliteRepository_GetHeader_Seeded(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	seedHeader(t, ctx)

	header, err := ctx.ContentRepo.GetHeader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Seeded Title", header.MainTitle)
	assert.Equal(t, "Seeded Subtitle", header.Subtitle)
}

func TestContentSqliteRepository_UpdateHeader(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	seedHeader(t, ctx)

	err := ctx.ContentRepo.UpdateHeader(context.Background(), &content.Header{
		MainTitle:   "New Title",
		Subtitle:    "New Subtitle",
		CtaText:     "Go",
		LinkedinURL: "https://linkedin.com/in/new",
		WebsiteURL:  "https://new.example.com",
	})
	require.NoError(t, err)

	header, err := ctx.ContentRepo.GetHeader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New Title", header.MainTitle)
}

func TestContentSqliteRepository_UpdateHeader_NotSeeded(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.ContentRepo.UpdateHeader(context.Background(), &content.Header{MainTitle: "New Title"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, content.ErrNotFound))
}

func TestContentSqliteRepository_AboutRoundTrip(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.ContentRepo.GetAbout(context.Background())
	assert.True(t, errors.Is(err, content.ErrNotSeeded))

	require.NoError(t, ctx.DB.Create(&models.SiteAboutModel{
		ID:         1,
		Title:      "About Me",
		Paragraph1: "First paragraph",
		Paragraph2: "Second paragraph",
	}).Error)

	require.NoError(t, ctx.ContentRepo.UpdateAbout(context.Background(), &content.About{
		Title:      "About",
		Paragraph1: "Updated first",
		Paragraph2: "Updated second",
	}))

	about, err := ctx.ContentRepo.GetAbout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Updated first", about.Paragraph1)
}

func TestContentSqliteRepository_ContactAndFooter(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, ctx.DB.Create(&models.SiteContactModel{ID: 1, Title: "Contact Me", Email: "c@example.com"}).Error)
	require.NoError(t, ctx.DB.Create(&models.SiteFooterModel{ID: 1, Name: "Clara", Description: "Neuróloga"}).Error)

	contact, err := ctx.ContentRepo.GetContact(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c@example.com", contact.Email)

	footer, err := ctx.ContentRepo.GetFooter(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Clara", footer.Name)

	require.NoError(t, ctx.ContentRepo.UpdateFooter(context.Background(), &content.Footer{
		Name:          "Clara Keller",
		Description:   "Investigadora",
		LocationText:  "Viena",
		SpecialtyText: "Parkinson",
	}))

	footer, err = ctx.ContentRepo.GetFooter(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Clara Keller", footer.Name)
}
