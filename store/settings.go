package store

import (
	"strconv"

	"minijob/models"

	"gorm.io/gorm"
)

type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// GetInt reads a setting interpreted as an integer, falling back to the
// default when the key is missing or holds unparseable text.
func (s *SettingsStore) GetInt(key string, def int) int {
	raw, ok := s.get(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// SetInt upserts a setting by key in a single store operation.
func (s *SettingsStore) SetInt(key string, value int) error {
	return s.set(key, strconv.Itoa(value))
}

// GetFloat is GetInt's counterpart for fractional values; the rest-hours
// carry-over is the one setting that needs it.
func (s *SettingsStore) GetFloat(key string, def float64) float64 {
	raw, ok := s.get(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func (s *SettingsStore) SetFloat(key string, value float64) error {
	return s.set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

func (s *SettingsStore) get(key string) (string, bool) {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return "", false
	}
	return setting.Value, true
}

func (s *SettingsStore) set(key, value string) error {
	var setting models.Setting
	return s.db.
		Where(models.Setting{Key: key}).
		Assign(models.Setting{Value: value}).
		FirstOrCreate(&setting).Error
}
