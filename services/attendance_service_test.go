package services

import (
	"testing"

	apperrors "hrms/errors"
	"hrms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInTodayOncePerDay(t *testing.T) {
	db := newTestDB(t)
	attendance := NewAttendanceService(db)

	record, err := attendance.CheckInToday(7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), record.UserID)

	// Lần thứ hai trong cùng ngày bị từ chối
	_, err = attendance.CheckInToday(7)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))

	// Nhân viên khác vẫn chấm công bình thường
	_, err = attendance.CheckInToday(8)
	require.NoError(t, err)
}

func TestListBetweenFiltersByDate(t *testing.T) {
	db := newTestDB(t)
	attendance := NewAttendanceService(db)

	old := models.CheckInRecord{UserID: 7, Date: models.Today().AddDate(0, 0, -10)}
	require.NoError(t, db.Create(&old).Error)
	_, err := attendance.CheckInToday(7)
	require.NoError(t, err)

	today := models.Today()
	records, err := attendance.ListBetween(today, today)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, uint(7), records[0].UserID)

	records, err = attendance.ListBetween(today.AddDate(0, 0, -15), today)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
