package services

import (
	"testing"

	"hrms/constants"
	apperrors "hrms/errors"
	"hrms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRoom(t *testing.T, db *gorm.DB) *models.Room {
	t.Helper()
	room := models.Room{BranchID: 1, FloorID: 1, RoomTypeID: 1, RoomName: "201", Price: 500000}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func TestCreateBookingComputesTotal(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	bookings := NewBookingService(db)

	created, err := bookings.Create(&models.Booking{
		RoomID:        room.ID,
		CheckInDate:   "10/09/2026",
		CheckOutDate:  "12/09/2026",
		GuestName:     "Nguyen Van A",
		ServiceAmount: 50000,
	})
	require.NoError(t, err)

	// 2 đêm x 500.000 + phụ thu 50.000
	assert.Equal(t, 1050000.0, created.TotalAmount)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.NotEmpty(t, created.Code)

	// Khoảng chiếm phòng được ghi kèm trong cùng transaction
	var statuses []models.RoomStatus
	require.NoError(t, db.Where("booking_id = ?", created.ID).Find(&statuses).Error)
	require.Len(t, statuses, 1)
	assert.Equal(t, constants.RoomStatusBooked, statuses[0].Status)
}

func TestCreateBookingCodesUnique(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	bookings := NewBookingService(db)

	// Tạo liên tiếp trong cùng mili-giây vẫn phải ra mã khác nhau
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		created, err := bookings.Create(&models.Booking{
			RoomID:       room.ID,
			CheckInDate:  day("10/09/2026").AddDate(0, 0, i*3).Format(models.DateLayout),
			CheckOutDate: day("12/09/2026").AddDate(0, 0, i*3).Format(models.DateLayout),
			GuestName:    "Nguyen Van A",
		})
		require.NoError(t, err)
		require.False(t, seen[created.Code], "mã %s bị trùng", created.Code)
		seen[created.Code] = true
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	bookings := NewBookingService(db)

	_, err := bookings.Create(&models.Booking{
		RoomID:       room.ID,
		CheckInDate:  "10/09/2026",
		CheckOutDate: "13/09/2026",
		GuestName:    "Nguyen Van A",
	})
	require.NoError(t, err)

	// Khoảng chồng lấn bị chặn
	_, err = bookings.Create(&models.Booking{
		RoomID:       room.ID,
		CheckInDate:  "12/09/2026",
		CheckOutDate: "14/09/2026",
		GuestName:    "Tran Thi B",
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRoomNotAvailable))

	// Back-to-back (check-in đúng ngày check-out cũ) thì được
	_, err = bookings.Create(&models.Booking{
		RoomID:       room.ID,
		CheckInDate:  "13/09/2026",
		CheckOutDate: "15/09/2026",
		GuestName:    "Tran Thi B",
	})
	require.NoError(t, err)
}

func TestCreateBookingRejectsBadDateRange(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	bookings := NewBookingService(db)

	_, err := bookings.Create(&models.Booking{
		RoomID:       room.ID,
		CheckInDate:  "12/09/2026",
		CheckOutDate: "12/09/2026",
		GuestName:    "Nguyen Van A",
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidDateRange))
}

func TestCreateBookingRejectsMaintenanceWindow(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	bookings := NewBookingService(db)

	require.NoError(t, db.Create(&models.RoomStatus{
		RoomID:   room.ID,
		Status:   constants.RoomStatusMaintenance,
		FromDate: day("11/09/2026"),
		ToDate:   day("13/09/2026"),
		Reason:   "sửa điều hòa",
	}).Error)

	_, err := bookings.Create(&models.Booking{
		RoomID:       room.ID,
		CheckInDate:  "10/09/2026",
		CheckOutDate: "12/09/2026",
		GuestName:    "Nguyen Van A",
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRoomNotAvailable))
}

func TestCancelReleasesRoom(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	bookings := NewBookingService(db)

	created, err := bookings.Create(&models.Booking{
		RoomID:       room.ID,
		CheckInDate:  "10/09/2026",
		CheckOutDate: "12/09/2026",
		GuestName:    "Nguyen Van A",
	})
	require.NoError(t, err)

	cancelled, err := bookings.Cancel(created.ID, "khách đổi lịch")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, "khách đổi lịch", cancelled.CancellationReason)

	// Phòng trống trở lại: đặt lại cùng khoảng ngày được
	_, err = bookings.Create(&models.Booking{
		RoomID:       room.ID,
		CheckInDate:  "10/09/2026",
		CheckOutDate: "12/09/2026",
		GuestName:    "Tran Thi B",
	})
	require.NoError(t, err)
}

func TestCheckOutCreatesCleaningWindow(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	bookings := NewBookingService(db)

	created, err := bookings.Create(&models.Booking{
		RoomID:       room.ID,
		CheckInDate:  "10/09/2026",
		CheckOutDate: "12/09/2026",
		GuestName:    "Nguyen Van A",
	})
	require.NoError(t, err)

	_, err = bookings.Confirm(created.ID)
	require.NoError(t, err)
	_, err = bookings.CheckIn(created.ID, true)
	require.NoError(t, err)

	checkedOut, err := bookings.CheckOut(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedOut, checkedOut.Status)

	// Khoảng booked được thu hồi, thay bằng khoảng dọn dẹp trong ngày
	var byBooking []models.RoomStatus
	require.NoError(t, db.Where("booking_id = ?", created.ID).Find(&byBooking).Error)
	assert.Empty(t, byBooking)

	var cleaning []models.RoomStatus
	require.NoError(t, db.Where("room_id = ? AND status = ?", room.ID, constants.RoomStatusCleaning).Find(&cleaning).Error)
	require.Len(t, cleaning, 1)

	var reloadedRoom models.Room
	require.NoError(t, db.First(&reloadedRoom, room.ID).Error)
	assert.Equal(t, constants.RoomStatusCleaning, reloadedRoom.Status)
}

func TestDeleteOnlyDeadBookings(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	bookings := NewBookingService(db)

	created, err := bookings.Create(&models.Booking{
		RoomID:       room.ID,
		CheckInDate:  "10/09/2026",
		CheckOutDate: "12/09/2026",
		GuestName:    "Nguyen Van A",
	})
	require.NoError(t, err)

	_, err = bookings.Confirm(created.ID)
	require.NoError(t, err)

	// Booking đã xác nhận không xóa được
	err = bookings.Delete(created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeBookingNotDeletable))

	_, err = bookings.Cancel(created.ID, "khách bỏ")
	require.NoError(t, err)

	require.NoError(t, bookings.Delete(created.ID))

	_, err = bookings.GetByID(created.ID)
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
}
