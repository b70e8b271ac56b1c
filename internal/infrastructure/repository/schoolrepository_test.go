package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/school"
	"campusdesk/internal/shared/errors"
)

func newSchool(t *testing.T, name, code, region string) *school.School {
	t.Helper()
	s, err := school.NewSchool(name, code, "1 Main St", region, school.Contact{
		Name:  "Head of IT",
		Email: "it@example.edu",
	})
	require.NoError(t, err)
	return s
}

func TestSchoolRepository_SaveAndFind(t *testing.T) {
	repo := NewSchoolRepository(setupTestDB(t))
	ctx := context.Background()

	s := newSchool(t, "Northside High", "nhs", "North")
	require.NoError(t, repo.Save(ctx, s))
	require.NotZero(t, s.ID())

	found, err := repo.FindByID(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, "Northside High", found.Name())
	assert.Equal(t, "NHS", found.Code())
	assert.Equal(t, school.StatusActive, found.Status())

	byCode, err := repo.FindByCode(ctx, "NHS")
	require.NoError(t, err)
	assert.Equal(t, s.ID(), byCode.ID())
}

func TestSchoolRepository_DuplicateCode(t *testing.T) {
	repo := NewSchoolRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newSchool(t, "First", "DUP", "North")))

	err := repo.Save(ctx, newSchool(t, "Second", "DUP", "South"))
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestSchoolRepository_FindByID_NotFound(t *testing.T) {
	repo := NewSchoolRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSchoolRepository_List_Scoped(t *testing.T) {
	repo := NewSchoolRepository(setupTestDB(t))
	ctx := context.Background()

	a := newSchool(t, "Alpha", "ALP", "North")
	b := newSchool(t, "Beta", "BET", "South")
	c := newSchool(t, "Gamma", "GAM", "North")
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))
	require.NoError(t, repo.Save(ctx, c))

	// Unrestricted sees everything.
	all, total, err := repo.List(ctx, school.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	// Restricted to a subset.
	scoped, total, err := repo.List(ctx, school.Filter{Restrict: true, SchoolIDs: []uint{a.ID(), c.ID()}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, scoped, 2)

	// An empty restricted set matches no rows, not all rows.
	none, total, err := repo.List(ctx, school.Filter{Restrict: true})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, none)
}

func TestSchoolRepository_List_RegionFilter(t *testing.T) {
	repo := NewSchoolRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newSchool(t, "Alpha", "ALP", "North")))
	require.NoError(t, repo.Save(ctx, newSchool(t, "Beta", "BET", "South")))

	region := "North"
	out, total, err := repo.List(ctx, school.Filter{Region: &region})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, out, 1)
	assert.Equal(t, "Alpha", out[0].Name())
}

func TestSchoolRepository_Update(t *testing.T) {
	repo := NewSchoolRepository(setupTestDB(t))
	ctx := context.Background()

	s := newSchool(t, "Old Name", "UPD", "North")
	require.NoError(t, repo.Save(ctx, s))

	require.NoError(t, s.UpdateDetails("New Name", "2 Oak Ave", "South", school.Contact{Name: "New Contact"}))
	require.NoError(t, repo.Update(ctx, s))

	found, err := repo.FindByID(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, "New Name", found.Name())
	assert.Equal(t, "South", found.Region())
	assert.Equal(t, "UPD", found.Code())
}

func TestSchoolRepository_Delete(t *testing.T) {
	repo := NewSchoolRepository(setupTestDB(t))
	ctx := context.Background()

	s := newSchool(t, "Doomed", "DEL", "North")
	require.NoError(t, repo.Save(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID()))

	_, err := repo.FindByID(ctx, s.ID())
	assert.True(t, errors.IsNotFoundError(err))

	err = repo.Delete(ctx, s.ID())
	assert.True(t, errors.IsNotFoundError(err))
}
