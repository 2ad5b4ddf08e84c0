// file: database/connect.go
package database

import (
	"CTFLab/models"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(dsn string) {
	var err error
	// TranslateError 让外键/唯一约束冲突以 gorm 哨兵错误暴露，
	// 引用完整性错误能被上层识别并上报
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		logrus.Fatalf("Failed to get underlying sql.DB: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// 连接存活上限设为 1 小时，避开 MySQL wait_timeout 掉线问题
	sqlDB.SetConnMaxLifetime(time.Hour)

	logrus.Info("Database connection successfully established and connection pool configured.")
}

// MigrateTables 建表与索引。ctflab_solve 上的联合唯一索引必须存在，
// 解题判重依赖它在存储层兜底
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Lab{},
		&models.Submission{},
		&models.Solve{},
		&models.LabSession{},
		&models.Resource{},
	)
	if err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	logrus.Info("Database migration completed.")
}
