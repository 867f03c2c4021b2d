//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/persistence/models"
	"github.com/Azu-ul/portfolio-back/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillSqliteRepository_ListOrdering(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	entries := []*skills.Skill{
		{Type: "hard", ParentCategory: "research", Name: "Data Analysis", Level: 70},
		{Type: "hard", ParentCategory: "clinical", Name: "Diagnosis", Level: 90},
		{Type: "hard", ParentCategory: "clinical", Name: "Treatment Plans", Level: 95},
	}
	for _, s := range entries {
		require.NoError(t, ctx.SkillRepo.Create(context.Background(), s))
	}

	list, err := ctx.SkillRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	// Grouped by parent category, then descending level.
	assert.Equal(t, "Treatment Plans", list[0].Name)
	assert.Equal(t, "Diagnosis", list[1].Name)
	assert.Equal(t, "Data Analysis", list[2].Name)
}

func TestSkillSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	skill := &skills.Skill{Type: "hard", ParentCategory: "clinical", Name: "Diagnosis", Level: 80}
	require.NoError(t, ctx.SkillRepo.Create(context.Background(), skill))

	skill.Level = 85
	skill.Description = "Movement disorders"
	updated, err := ctx.SkillRepo.UpdateByID(context.Background(), skill)
	require.NoError(t, err)
	assert.Equal(t, 85, updated.Level)
	assert.Equal(t, "Movement disorders", updated.Description)
}

func TestSkillSqliteRepository_UpdateByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.SkillRepo.UpdateByID(context.Background(), &skills.Skill{ID: 9999, Name: "Ghost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, skills.ErrNotFound))
}

func TestSkillSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	skill := &skills.Skill{Name: "Diagnosis"}
	require.NoError(t, ctx.SkillRepo.Create(context.Background(), skill))

	require.NoError(t, ctx.SkillRepo.DeleteByID(context.Background(), skill.ID))

	err := ctx.SkillRepo.DeleteByID(context.Background(), skill.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, skills.ErrNotFound))
}

func TestSkillSqliteRepository_ListSoft(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, ctx.DB.Create(&models.SoftSkillModel{Name: "Empatía", Description: "Trato con pacientes"}).Error)
	require.NoError(t, ctx.DB.Create(&models.SoftSkillModel{Name: "Comunicación", Description: "Divulgación científica"}).Error)

	list, err := ctx.SkillRepo.ListSoft(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Empatía", list[0].Name)
	assert.Equal(t, "Comunicación", list[1].Name)
}
