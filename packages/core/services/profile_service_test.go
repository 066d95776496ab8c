package services

import (
	"testing"

	"fairway-api/packages/core/models"
	"fairway-api/packages/core/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_CreateProfile(t *testing.T) {
	env := newTestEnv(t)

	profile, err := env.profiles.CreateProfile(models.CreateProfileRequest{
		Username:   "ada",
		FullName:   "Ada Birdie",
		SkillIndex: testutil.Float(12.4),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, profile.ID)
	assert.True(t, profile.SkillIndex.Valid)
	assert.Equal(t, 12.4, profile.SkillIndex.Float64)

	noIndex, err := env.profiles.CreateProfile(models.CreateProfileRequest{Username: "grace"})
	require.NoError(t, err)

	loaded, err := env.profiles.GetProfileByID(noIndex.ID)
	require.NoError(t, err)
	assert.False(t, loaded.SkillIndex.Valid)

	_, err = env.profiles.CreateProfile(models.CreateProfileRequest{Username: "ada"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestProfileService_GetProfileByID_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.profiles.GetProfileByID(uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	group := testutil.CreateTestGroup(t, env.db, "Sunday Four")

	profile, err := env.profiles.CreateProfile(models.CreateProfileRequest{Username: "ada", SkillIndex: testutil.Float(12.0)})
	require.NoError(t, err)
	_, err = env.groups.JoinGroup(group.ID, profile.ID)
	require.NoError(t, err)

	updated, err := env.profiles.UpdateProfile(profile.ID, models.UpdateProfileRequest{
		FullName:   stringPtr("Ada B."),
		SkillIndex: testutil.Float(9.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada B.", updated.FullName)
	assert.Equal(t, 9.5, updated.SkillIndex.Float64)

	// The group index was seeded at join time and is not re-seeded.
	assert.Equal(t, 12.0, env.memberIndex(t, group.ID, profile.ID))
}

func TestProfileService_UpdateProfile_UsernameTaken(t *testing.T) {
	env := newTestEnv(t)

	testutil.CreateTestProfile(t, env.db, "ada", nil)
	grace := testutil.CreateTestProfile(t, env.db, "grace", nil)

	_, err := env.profiles.UpdateProfile(grace.ID, models.UpdateProfileRequest{Username: stringPtr("ada")})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	same, err := env.profiles.UpdateProfile(grace.ID, models.UpdateProfileRequest{Username: stringPtr("grace")})
	require.NoError(t, err)
	assert.Equal(t, "grace", same.Username)
}

func TestProfileService_GetAllProfiles(t *testing.T) {
	env := newTestEnv(t)

	for _, name := range []string{"carol", "ada", "bob"} {
		testutil.CreateTestProfile(t, env.db, name, nil)
	}

	page, err := env.profiles.GetAllProfiles("username", "ASC", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "ada", page.Data[0].Username)
	assert.Equal(t, "bob", page.Data[1].Username)
}

func TestParseProfileID(t *testing.T) {
	id := uuid.New()

	parsed, err := ParseProfileID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseProfileID("not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidProfileID)
}

func stringPtr(s string) *string {
	return &s
}
