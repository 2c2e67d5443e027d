package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawhaven/shelter-api/internal/domain"
	"github.com/pawhaven/shelter-api/internal/repository"
	"github.com/pawhaven/shelter-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCatRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCatRepository(db)
	ctx := context.Background()

	cat := &domain.Cat{
		Name:         "Whiskers",
		Age:          2,
		Gender:       domain.GenderFemale,
		About:        "Loves sunbeams",
		Sterilized:   true,
		RegisteredAt: time.Now().UTC(),
	}

	err := repo.Create(ctx, cat)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, cat.ID)

	found, err := repo.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Whiskers", found.Name)
	assert.Equal(t, domain.GenderFemale, found.Gender)
	assert.True(t, found.Sterilized)
	assert.Equal(t, int64(0), found.Views)
}

func TestCatRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCatRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatRepository_GetWithPhotos(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCatRepository(db)
	ctx := context.Background()

	cat := testutil.CreateTestCat(t, db, "Mittens")
	testutil.CreateTestPhoto(t, db, cat.ID, "front.jpg")
	testutil.CreateTestPhoto(t, db, cat.ID, "side.jpg")

	found, err := repo.GetWithPhotos(ctx, cat.ID)
	require.NoError(t, err)
	assert.Len(t, found.Photos, 2)
}

func TestCatRepository_IncrementViews(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCatRepository(db)
	ctx := context.Background()

	cat := testutil.CreateTestCat(t, db, "Shadow")

	require.NoError(t, repo.IncrementViews(ctx, cat.ID))
	require.NoError(t, repo.IncrementViews(ctx, cat.ID))

	found, err := repo.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.Views)
}

func TestCatRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCatRepository(db)
	ctx := context.Background()

	cat := testutil.CreateTestCat(t, db, "Before")
	cat.Name = "After"
	cat.Age = 7

	require.NoError(t, repo.Update(ctx, cat))

	found, err := repo.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", found.Name)
	assert.Equal(t, 7, found.Age)
}

func TestCatRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCatRepository(db)
	ctx := context.Background()

	cat := testutil.CreateTestCat(t, db, "Gone")

	require.NoError(t, repo.Delete(ctx, cat.ID))

	_, err := repo.GetByID(ctx, cat.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCatRepository(db)
	ctx := context.Background()

	male := domain.GenderMale
	sterilized := true

	cats := []struct {
		name       string
		age        int
		gender     domain.Gender
		sterilized bool
	}{
		{"Alfie", 1, domain.GenderMale, false},
		{"Bella", 3, domain.GenderFemale, true},
		{"Caspar", 5, domain.GenderMale, true},
		{"Daisy", 2, domain.GenderFemale, false},
	}
	for _, c := range cats {
		id := uuid.New()
		require.NoError(t, db.Create(&domain.Cat{
			BaseModel:     domain.BaseModel{ID: id},
			Name:          c.name,
			Age:           c.age,
			Gender:        c.gender,
			Sterilized:    c.sterilized,
			RegisteredAt:  time.Now().UTC(),
			StorageFolder: "cats/" + id.String(),
		}).Error)
	}

	t.Run("all", func(t *testing.T) {
		result, total, err := repo.List(ctx, 1, 20, &repository.CatFilters{}, repository.CatSortByRegisteredDesc)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, result, 4)
	})

	t.Run("pagination", func(t *testing.T) {
		result, total, err := repo.List(ctx, 2, 3, &repository.CatFilters{}, repository.CatSortByNameAsc)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, result, 1)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		result, total, err := repo.List(ctx, 1, 20, &repository.CatFilters{Search: "bELLa"}, repository.CatSortByNameAsc)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Bella", result[0].Name)
	})

	t.Run("gender filter", func(t *testing.T) {
		_, total, err := repo.List(ctx, 1, 20, &repository.CatFilters{Gender: &male}, repository.CatSortByNameAsc)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("sterilized filter", func(t *testing.T) {
		result, total, err := repo.List(ctx, 1, 20, &repository.CatFilters{Sterilized: &sterilized}, repository.CatSortByNameAsc)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, "Bella", result[0].Name)
		assert.Equal(t, "Caspar", result[1].Name)
	})

	t.Run("sort by age descending", func(t *testing.T) {
		result, _, err := repo.List(ctx, 1, 20, &repository.CatFilters{}, repository.CatSortByAgeDesc)
		require.NoError(t, err)
		assert.Equal(t, "Caspar", result[0].Name)
		assert.Equal(t, "Alfie", result[len(result)-1].Name)
	})
}
