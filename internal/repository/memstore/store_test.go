package memstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/repository/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedData(t *testing.T) {
	store, err := memstore.Open("")
	require.NoError(t, err)
	ctx := context.Background()

	experiences, err := memstore.NewExperienceRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, experiences, 1)
	assert.Equal(t, "Software Developer", experiences[0].Title)
	require.NotNil(t, experiences[0].ID)
	assert.Equal(t, 0, *experiences[0].ID)

	skills, err := memstore.NewSkillRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Python", skills[0].Name)
}

func TestExperienceIndexing(t *testing.T) {
	store, err := memstore.Open("")
	require.NoError(t, err)
	repo := memstore.NewExperienceRepository(store)
	ctx := context.Background()

	first := &domain.Experience{Title: "First", Company: "A", Logo: "default.jpg"}
	second := &domain.Experience{Title: "Second", Company: "B", Logo: "default.jpg"}

	idx, err := repo.Append(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 1, idx) // seed record occupies index 0

	idx, err = repo.Append(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	t.Run("delete shifts later indices down", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, 0))

		got, err := repo.GetByIndex(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "First", got.Title)

		got, err = repo.GetByIndex(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Second", got.Title)

		_, err = repo.GetByIndex(ctx, 2)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("out-of-bounds operations fail", func(t *testing.T) {
		_, err := repo.GetByIndex(ctx, -1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, 99), domain.ErrNotFound)
		assert.ErrorIs(t, repo.Replace(ctx, 99, first), domain.ErrNotFound)
	})
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	ctx := context.Background()

	store, err := memstore.Open(path)
	require.NoError(t, err)

	_, err = memstore.NewSkillRepository(store).Append(ctx, &domain.Skill{
		Name:        "Go",
		Proficiency: "2-4 years",
		Logo:        "default.jpg",
	})
	require.NoError(t, err)

	info := &domain.UserInformation{
		Name:         "John Doe",
		EmailAddress: "john@example.com",
		PhoneNumber:  "+14155552671",
	}
	require.NoError(t, memstore.NewUserInformationRepository(store).Set(ctx, info))

	// Reopen from the snapshot and verify everything survived.
	reopened, err := memstore.Open(path)
	require.NoError(t, err)

	skills, err := memstore.NewSkillRepository(reopened).List(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[1].Name)

	got, err := memstore.NewUserInformationRepository(reopened).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, info, got)
}

func TestCustomSectionIDs(t *testing.T) {
	store, err := memstore.Open("")
	require.NoError(t, err)
	repo := memstore.NewCustomSectionRepository(store)
	ctx := context.Background()

	id, err := repo.Append(ctx, &domain.CustomSection{Title: "Certifications", Content: "AWS SAA"})
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	id, err = repo.Append(ctx, &domain.CustomSection{Title: "Awards", Content: "Dean's list"})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	sections, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, 0, sections[0].ID)
	assert.Equal(t, "Awards", sections[1].Title)
}
