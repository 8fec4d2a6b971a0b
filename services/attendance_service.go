package services

import (
	"errors"
	"time"

	apperrors "hrms/errors"
	"hrms/models"

	"gorm.io/gorm"
)

// AttendanceService chấm công nhân viên lễ tân theo ngày
type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// CheckInToday ghi một lần chấm công cho nhân viên, tối đa một lần mỗi ngày.
// Date được chuẩn hóa về ngày lịch để so khớp không phụ thuộc giờ máy chủ.
func (s *AttendanceService) CheckInToday(userID uint) (*models.CheckInRecord, error) {
	today := models.Today()
	var existing models.CheckInRecord
	err := s.db.Where("user_id = ? AND date = ?", userID, today).First(&existing).Error
	if err == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation,
			"nhân viên đã chấm công hôm nay", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record := models.CheckInRecord{UserID: userID, Date: today}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListBetween trả về các lần chấm công trong khoảng ngày [from, to]
func (s *AttendanceService) ListBetween(from, to time.Time) ([]models.CheckInRecord, error) {
	var records []models.CheckInRecord
	err := s.db.Where("date >= ? AND date < ?", from, to.AddDate(0, 0, 1)).
		Order("date").Find(&records).Error
	return records, err
}
