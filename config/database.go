package config

import (
	"fmt"
	"log"
	"os"

	"hrms/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDBConfigByEnv(env string) string {
	var user, password, host, port, name string

	switch env {
	case "dev":
		user = os.Getenv("DEV_DB_USER")
		password = os.Getenv("DEV_DB_PASSWORD")
		host = os.Getenv("DEV_DB_HOST")
		port = os.Getenv("DEV_DB_PORT")
		name = os.Getenv("DEV_DB_NAME")
	case "prod":
		user = os.Getenv("PROD_DB_USER")
		password = os.Getenv("PROD_DB_PASSWORD")
		host = os.Getenv("PROD_DB_HOST")
		port = os.Getenv("PROD_DB_PORT")
		name = os.Getenv("PROD_DB_NAME")
	default:
		log.Fatalf("Unknown environment: %s", env)
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require TimeZone=Asia/Ho_Chi_Minh",
		host, user, password, name, port)
}

func ConnectDB() {
	var err error
	env := os.Getenv("ENV")
	dsn := getDBConfigByEnv(env)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true, // gorm.ErrDuplicatedKey cho unique index hóa đơn
	})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// MigrateDB tạo bảng và seed phương thức thanh toán mặc định
func MigrateDB() error {
	if err := DB.AutoMigrate(
		&models.User{},
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
		return err
	}

	for _, method := range models.DefaultPaymentMethods() {
		if err := DB.Where(models.PaymentMethod{Code: method.Code}).
			FirstOrCreate(&method).Error; err != nil {
			return err
		}
	}
	return nil
}
