package services

import (
	"fmt"
	"testing"

	"hrms/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int

// newTestDB mở một DB sqlite in-memory riêng cho mỗi test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBCounter++
	dsn := fmt.Sprintf("file:hrms_test_%d?mode=memory&cache=shared", testDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("không mở được sqlite test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Branch{},
		&models.Floor{},
		&models.RoomType{},
		&models.Room{},
		&models.RoomStatus{},
		&models.Customer{},
		&models.Booking{},
		&models.HotelInvoice{},
		&models.RestaurantOrder{},
		&models.RestaurantInvoice{},
		&models.Payment{},
		&models.PaymentMethod{},
		&models.CheckInRecord{},
	); err != nil {
		t.Fatalf("không migrate được schema test: %v", err)
	}

	for _, method := range models.DefaultPaymentMethods() {
		if err := db.Create(&method).Error; err != nil {
			t.Fatalf("không seed được phương thức thanh toán: %v", err)
		}
	}

	return db
}

func cashMethodID(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	var method models.PaymentMethod
	if err := db.Where("code = ?", "cash").First(&method).Error; err != nil {
		t.Fatalf("không tìm thấy phương thức tiền mặt: %v", err)
	}
	return method.ID
}

func seedBooking(t *testing.T, db *gorm.DB, totalAmount float64, status int) *models.Booking {
	t.Helper()

	room := models.Room{BranchID: 1, FloorID: 1, RoomTypeID: 1, RoomName: "101", Price: 500000}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("không tạo được phòng test: %v", err)
	}

	booking := models.Booking{
		RoomID:       room.ID,
		CheckInDate:  "10/09/2026",
		CheckOutDate: "12/09/2026",
		Status:       status,
		GuestName:    "Nguyen Van A",
		RoomPrice:    room.Price,
		TotalAmount:  totalAmount,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("không tạo được booking test: %v", err)
	}
	return &booking
}
