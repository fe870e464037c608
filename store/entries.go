// Package store wraps the gorm handle in the two adapters the handlers
// talk to: time entries and key/value settings.
package store

import (
	"errors"
	"time"

	"minijob/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("store: not found")

type EntryStore struct {
	db *gorm.DB
}

func NewEntryStore(db *gorm.DB) *EntryStore {
	return &EntryStore{db: db}
}

// FindByID loads one entry, scoped to its owner.
func (s *EntryStore) FindByID(userID, id uint) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := s.db.Where("user_id = ?", userID).First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *EntryStore) Create(entry *models.TimeEntry) error {
	return s.db.Create(entry).Error
}

// Update replaces the mutable fields of an existing entry in one write.
func (s *EntryStore) Update(entry *models.TimeEntry) error {
	return s.db.Save(entry).Error
}

func (s *EntryStore) Delete(userID, id uint) error {
	res := s.db.Where("user_id = ?", userID).Delete(&models.TimeEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ByMonth returns the user's entries for one calendar month, newest
// first. The window is [first of month, first of next month).
func (s *EntryStore) ByMonth(userID uint, month, year int) ([]models.TimeEntry, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var entries []models.TimeEntry
	err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date desc").
		Find(&entries).Error
	return entries, err
}

// Before returns all of the user's entries dated strictly before cutoff.
func (s *EntryStore) Before(userID uint, cutoff time.Time) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := s.db.
		Where("user_id = ? AND date < ?", userID, cutoff).
		Find(&entries).Error
	return entries, err
}

// All returns every entry the user has ever recorded.
func (s *EntryStore) All(userID uint) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := s.db.Where("user_id = ?", userID).Find(&entries).Error
	return entries, err
}

// Earliest returns the user's oldest entry by date, or ErrNotFound when
// none exist yet.
func (s *EntryStore) Earliest(userID uint) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("date asc").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
