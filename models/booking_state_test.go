package models

import (
	"testing"
	"time"

	"hrms/errors"

	"github.com/stretchr/testify/assert"
)

func newBooking(status int) *Booking {
	return &Booking{
		ID:           1,
		RoomID:       1,
		CheckInDate:  "01/06/2024",
		CheckOutDate: "03/06/2024",
		Status:       status,
	}
}

func TestPendingTransitions(t *testing.T) {
	b := newBooking(BookingStatusPending)
	state := GetBookingState(b.Status)

	assert.NoError(t, state.Confirm(b))
	assert.Equal(t, BookingStatusConfirmed, b.Status)

	// pending không thể checkOut trực tiếp
	b = newBooking(BookingStatusPending)
	state = GetBookingState(b.Status)
	err := state.CheckOut(b)
	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidTransition))
	assert.Equal(t, BookingStatusPending, b.Status)

	// pending không thể checkIn trực tiếp
	b = newBooking(BookingStatusPending)
	err = GetBookingState(b.Status).CheckIn(b, true)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidTransition))
}

func TestRejectRequiresReason(t *testing.T) {
	b := newBooking(BookingStatusPending)
	err := GetBookingState(b.Status).Reject(b, "   ")
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingReason))
	assert.Equal(t, BookingStatusPending, b.Status)

	err = GetBookingState(b.Status).Reject(b, "hết phòng")
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusRejected, b.Status)
	assert.Equal(t, "hết phòng", b.RejectReason)
}

func TestCancelRequiresReason(t *testing.T) {
	for _, status := range []int{BookingStatusPending, BookingStatusConfirmed} {
		b := newBooking(status)
		err := GetBookingState(b.Status).Cancel(b, "")
		assert.True(t, errors.HasCode(err, errors.ErrCodeMissingReason))
		assert.Equal(t, status, b.Status)

		err = GetBookingState(b.Status).Cancel(b, "khách đổi lịch")
		assert.NoError(t, err)
		assert.Equal(t, BookingStatusCancelled, b.Status)
		assert.Equal(t, "khách đổi lịch", b.CancellationReason)
	}
}

func TestCheckInDateGuard(t *testing.T) {
	b := newBooking(BookingStatusConfirmed)
	b.CheckInDate = time.Now().AddDate(0, 0, 7).Format(DateLayout)

	err := GetBookingState(b.Status).CheckIn(b, false)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
	assert.Equal(t, BookingStatusConfirmed, b.Status)

	// Lễ tân có thể cho nhận phòng sớm
	err = GetBookingState(b.Status).CheckIn(b, true)
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusCheckedIn, b.Status)
}

func TestCheckOutFromCheckedIn(t *testing.T) {
	b := newBooking(BookingStatusCheckedIn)
	err := GetBookingState(b.Status).CheckOut(b)
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusCheckedOut, b.Status)
}

func TestTerminalStates(t *testing.T) {
	for _, status := range []int{BookingStatusCheckedOut, BookingStatusCancelled, BookingStatusRejected} {
		b := newBooking(status)
		state := GetBookingState(b.Status)

		assert.True(t, errors.HasCode(state.Confirm(b), errors.ErrCodeInvalidTransition))
		assert.True(t, errors.HasCode(state.CheckIn(b, true), errors.ErrCodeInvalidTransition))
		assert.True(t, errors.HasCode(state.CheckOut(b), errors.ErrCodeInvalidTransition))
		assert.True(t, errors.HasCode(state.Cancel(b, "x"), errors.ErrCodeInvalidTransition))
		assert.Equal(t, status, b.Status)
	}
}

func TestDeleteOnlyFromDeadOrPending(t *testing.T) {
	for _, status := range []int{BookingStatusPending, BookingStatusCancelled, BookingStatusRejected} {
		b := newBooking(status)
		assert.NoError(t, GetBookingState(b.Status).Delete(b))
	}
	for _, status := range []int{BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut} {
		b := newBooking(status)
		err := GetBookingState(b.Status).Delete(b)
		assert.True(t, errors.HasCode(err, errors.ErrCodeBookingNotDeletable))
	}
}

func TestNightsAndAmounts(t *testing.T) {
	b := newBooking(BookingStatusPending)
	nights, err := b.Nights()
	assert.NoError(t, err)
	assert.Equal(t, 2, nights)

	b.TotalAmount = 1000000
	b.DiscountPercent = 10
	assert.Equal(t, float64(100000), b.DiscountAmount())
	assert.Equal(t, float64(900000), b.FinalAmount())
}

func TestTodayAlignsWithDateLayout(t *testing.T) {
	// Today() phải so sánh được với ngày parse từ DateLayout theo lịch địa phương
	parsed, err := time.Parse(DateLayout, time.Now().Format(DateLayout))
	assert.NoError(t, err)
	assert.True(t, Today().Equal(parsed))
	assert.False(t, Today().Before(parsed))
}
