// file: services/service_test_helpers_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"CTFLab/database"
	"CTFLab/models"
)

// setupTestDB 为每个测试挂一个独立的内存 SQLite。
// 单连接即可让并发事务串行化，联合唯一索引照常生效
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Lab{},
		&models.Submission{},
		&models.Solve{},
		&models.LabSession{},
		&models.Resource{},
	))

	database.DB = db
	t.Cleanup(func() {
		_ = sqlDB.Close()
		database.DB = nil
	})
}

func createTestUser(t *testing.T, username, teamName string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: "password123",
		Email:    username + "@example.com",
		TeamName: teamName,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createTestChallenge(t *testing.T, title string, points uint) models.Challenge {
	t.Helper()
	chal := models.Challenge{
		Title:       title,
		Category:    models.CategoryWeb,
		Difficulty:  models.ChallengeDifficultyEasy,
		Description: "test challenge",
		Points:      points,
		Flag:        "flag{" + title + "}",
		State:       models.ChallengeStateVisible,
	}
	require.NoError(t, database.DB.Create(&chal).Error)
	return chal
}
