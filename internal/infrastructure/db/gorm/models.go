package gormdb

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type UserModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `gorm:"uniqueIndex;size:50;not null"`
	Email     string `gorm:"uniqueIndex;size:100;not null"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"size:20;not null;default:standard"`
}

func (UserModel) TableName() string {
	return "users"
}

type TaskModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:10;not null"`
	Description string `gorm:"size:200"`
	StartAt     time.Time
	EndAt       *time.Time
	Completed   bool   `gorm:"default:false"`
	Expired     bool   `gorm:"default:false"`
	UserID      uint   `gorm:"index;not null"`
	TaskType    string `gorm:"size:20;not null;default:single"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

// Connect opens the configured database and migrates both tables.
func Connect(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&UserModel{}, &TaskModel{}); err != nil {
		return nil, err
	}

	log.Printf("connected to %s database", driver)
	return db, nil
}
