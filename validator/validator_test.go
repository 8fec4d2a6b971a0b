package validator

import (
	"testing"

	"hrms/dto"
	"hrms/errors"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"khach@example.com",
		"le.tan+hrms@khachsan.vn",
		"a_b-c@sub.domain.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"khach",
		"khach@",
		"@example.com",
		"khach@example",
		"khach example@mail.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestValidateBooking(t *testing.T) {
	base := func() *dto.CreateBookingRequest {
		return &dto.CreateBookingRequest{
			RoomID:       1,
			CheckInDate:  "10/09/2026",
			CheckOutDate: "12/09/2026",
			GuestName:    "Nguyen Van A",
		}
	}

	assert.NoError(t, ValidateBooking(base()))

	t.Run("check-out phải sau check-in", func(t *testing.T) {
		req := base()
		req.CheckOutDate = "10/09/2026"
		err := ValidateBooking(req)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDateRange))
	})

	t.Run("ngày sai định dạng", func(t *testing.T) {
		req := base()
		req.CheckInDate = "2026-09-10"
		err := ValidateBooking(req)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
	})

	t.Run("khách vãng lai cần tên", func(t *testing.T) {
		req := base()
		req.GuestName = ""
		err := ValidateBooking(req)
		assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
	})

	t.Run("giảm giá ngoài khoảng", func(t *testing.T) {
		req := base()
		req.DiscountPercent = 120
		err := ValidateBooking(req)
		assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
	})
}

func TestValidateTransitionReason(t *testing.T) {
	assert.NoError(t, ValidateTransitionReason("confirm", ""))
	assert.NoError(t, ValidateTransitionReason("cancel", "khách đổi lịch"))

	err := ValidateTransitionReason("cancel", "")
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingReason))

	err = ValidateTransitionReason("reject", "")
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingReason))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(100000))
	assert.True(t, errors.HasCode(ValidateAmount(0), errors.ErrCodeInvalidAmount))
	assert.True(t, errors.HasCode(ValidateAmount(-500), errors.ErrCodeInvalidAmount))
}
