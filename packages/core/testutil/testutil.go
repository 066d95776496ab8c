// Package testutil provides an in-memory database and request helpers for
// service and handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fairway-api/packages/core/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// The pool is capped at one connection so every query sees the same memory
// database; code under test must run all queries of a transaction on the tx.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Profile{},
		&models.Group{},
		&models.GroupMember{},
		&models.Course{},
		&models.Match{},
		&models.Team{},
		&models.TeamPlayer{},
		&models.SkillIndexHistory{},
	)
	require.NoError(t, err, "failed to migrate test database")

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// CreateTestProfile inserts a profile. A nil index leaves the profile without one.
func CreateTestProfile(t *testing.T, db *gorm.DB, username string, index *float64) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		Username:   username,
		SkillIndex: models.SkillIndexFromPtr(index),
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func CreateTestGroup(t *testing.T, db *gorm.DB, name string) *models.Group {
	t.Helper()

	group := &models.Group{Name: name, Slug: uuid.NewString()}
	require.NoError(t, db.Create(group).Error)
	return group
}

// AddTestMember adds a membership with the given group skill index. A nil
// index stores a membership without one.
func AddTestMember(t *testing.T, db *gorm.DB, groupID uint, profileID uuid.UUID, index *float64) *models.GroupMember {
	t.Helper()

	member := &models.GroupMember{
		GroupID:    groupID,
		ProfileID:  profileID,
		SkillIndex: models.SkillIndexFromPtr(index),
		JoinedAt:   time.Now(),
	}
	require.NoError(t, db.Create(member).Error)
	return member
}

func CreateTestCourse(t *testing.T, db *gorm.DB, par int, rating float64, slope int) *models.Course {
	t.Helper()

	course := &models.Course{Name: "Test Links", Par: par, Rating: rating, Slope: slope}
	require.NoError(t, db.Create(course).Error)
	return course
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// MakeRequest builds a JSON request. A nil body sends no payload.
func MakeRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// DecodeJSON decodes a recorded response body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}
