package services

import (
	"testing"
	"time"

	"hrms/constants"
	apperrors "hrms/errors"
	"hrms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	parsed, err := time.Parse(models.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestBuildRoomCalendar(t *testing.T) {
	room := models.Room{ID: 1, RoomName: "101"}
	bookings := []models.Booking{
		{
			ID:           10,
			Code:         "BK100",
			RoomID:       1,
			CheckInDate:  "10/09/2026",
			CheckOutDate: "12/09/2026",
			Status:       models.BookingStatusConfirmed,
			GuestName:    "Nguyen Van A",
		},
	}

	days, err := BuildRoomCalendar(room, bookings, nil, day("09/09/2026"), day("12/09/2026"))
	require.NoError(t, err)
	require.Len(t, days, 4)

	// Ngày trước check-in trống
	assert.True(t, days[0].Available)
	assert.Nil(t, days[0].Booking)

	// Hai đêm ở chiếm lịch
	require.NotNil(t, days[1].Booking)
	assert.Equal(t, "BK100", days[1].Booking.Code)
	assert.Equal(t, "Nguyen Van A", days[1].Booking.GuestName)
	assert.Equal(t, "confirmed", days[1].Booking.StatusName)
	require.NotNil(t, days[2].Booking)

	// Ngày check-out (khoảng nửa mở) trống trở lại
	assert.True(t, days[3].Available)
	assert.Nil(t, days[3].Booking)
}

func TestBuildRoomCalendarIgnoresInactiveBookings(t *testing.T) {
	room := models.Room{ID: 1}
	bookings := []models.Booking{
		{RoomID: 1, CheckInDate: "10/09/2026", CheckOutDate: "12/09/2026", Status: models.BookingStatusCancelled},
		{RoomID: 1, CheckInDate: "10/09/2026", CheckOutDate: "12/09/2026", Status: models.BookingStatusRejected},
		// Booking của phòng khác cũng không được tính
		{RoomID: 2, CheckInDate: "10/09/2026", CheckOutDate: "12/09/2026", Status: models.BookingStatusConfirmed},
	}

	days, err := BuildRoomCalendar(room, bookings, nil, day("10/09/2026"), day("11/09/2026"))
	require.NoError(t, err)
	for _, cell := range days {
		assert.True(t, cell.Available)
		assert.Nil(t, cell.Booking)
	}
}

func TestBuildRoomCalendarDetectsDoubleBooking(t *testing.T) {
	room := models.Room{ID: 1}
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, CheckInDate: "10/09/2026", CheckOutDate: "12/09/2026", Status: models.BookingStatusConfirmed},
		{ID: 2, RoomID: 1, CheckInDate: "11/09/2026", CheckOutDate: "13/09/2026", Status: models.BookingStatusCheckedIn},
	}

	_, err := BuildRoomCalendar(room, bookings, nil, day("10/09/2026"), day("13/09/2026"))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDataIntegrity))
}

func TestBuildRoomCalendarBlockedReason(t *testing.T) {
	room := models.Room{ID: 1}
	statuses := []models.RoomStatus{
		{RoomID: 1, Status: constants.RoomStatusCleaning, FromDate: day("10/09/2026"), ToDate: day("11/09/2026")},
		{RoomID: 1, Status: constants.RoomStatusMaintenance, FromDate: day("12/09/2026"), ToDate: day("14/09/2026"), Reason: "sửa điều hòa"},
	}

	days, err := BuildRoomCalendar(room, nil, statuses, day("10/09/2026"), day("13/09/2026"))
	require.NoError(t, err)
	require.Len(t, days, 4)

	assert.False(t, days[0].Available)
	assert.Equal(t, "cleaning", days[0].Reason)

	assert.True(t, days[1].Available)

	assert.False(t, days[2].Available)
	assert.Equal(t, "sửa điều hòa", days[2].Reason)

	assert.False(t, days[3].Available)
}

func TestCanOpenBookingDialog(t *testing.T) {
	room := models.Room{ID: 1}
	bookings := []models.Booking{
		{ID: 7, Code: "BK7", RoomID: 1, CheckInDate: "10/09/2026", CheckOutDate: "11/09/2026", Status: models.BookingStatusPending},
	}

	days, err := BuildRoomCalendar(room, bookings, nil, day("09/09/2026"), day("10/09/2026"))
	require.NoError(t, err)

	ok, conflict := CanOpenBookingDialog(days, "09/09/2026")
	assert.True(t, ok)
	assert.Nil(t, conflict)

	ok, conflict = CanOpenBookingDialog(days, "10/09/2026")
	assert.False(t, ok)
	require.NotNil(t, conflict)
	require.NotNil(t, conflict.Booking)
	assert.Equal(t, "BK7", conflict.Booking.Code)

	// Ngày ngoài cửa sổ lịch thì không mở form
	ok, conflict = CanOpenBookingDialog(days, "20/09/2026")
	assert.False(t, ok)
	assert.Nil(t, conflict)
}

func TestUintFilterKeyStable(t *testing.T) {
	// Cùng giá trị lọc phải ra cùng phần key, kể cả qua hai con trỏ khác nhau
	a, b := uint(3), uint(3)
	assert.Equal(t, uintFilterKey(&a), uintFilterKey(&b))
	assert.Equal(t, "3", uintFilterKey(&a))
	assert.Equal(t, "all", uintFilterKey(nil))
}
