package database

import (
	"log"
	"strings"

	"minijob/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the database and prepares the schema. A postgres URL in
// DATABASE_URL selects the postgres driver; anything else is treated as
// a sqlite file path.
func Init(dsn string) error {
	dialector := sqlite.Open(dsn)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return err
	}

	// Auto migrate the schema
	err = DB.AutoMigrate(&models.User{}, &models.TimeEntry{}, &models.Setting{})
	if err != nil {
		return err
	}

	if err := seedDefaultAdmin(); err != nil {
		return err
	}

	return seedDefaultSettings()
}

func seedDefaultAdmin() error {
	var count int64
	DB.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:           "admin",
		PasswordHash:       string(hashedPassword),
		MustChangePassword: true,
	}

	result := DB.Create(&admin)
	if result.Error != nil {
		return result.Error
	}

	log.Println("Default admin user created (username: admin, password: admin)")
	return nil
}

// seedDefaultSettings creates the wage, limit and carry-over rows if
// this is a fresh database; existing values are left alone.
func seedDefaultSettings() error {
	defaults := map[string]string{
		models.SettingHourlyWage:   "14",
		models.SettingMinijobLimit: "556",
		models.SettingRestHours:    "0",
	}
	for key, value := range defaults {
		var setting models.Setting
		err := DB.
			Where(models.Setting{Key: key}).
			Attrs(models.Setting{Value: value}).
			FirstOrCreate(&setting).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
