package services

import (
	"fmt"
	"net/smtp"
	"os"

	"hrms/models"
)

func smtpConfig() (from, password, host, port string) {
	from = os.Getenv("SMTP_FROM")
	password = os.Getenv("SMTP_PASSWORD")
	host = os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port = os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return
}

// SendInvoiceEmail gửi hóa đơn cho khách qua email. Không idempotent:
// mỗi lần gọi gửi lại một lần, đúng ý cho nút "gửi lại hóa đơn".
func SendInvoiceEmail(email string, invoice *models.HotelInvoice, booking *models.Booking) error {
	from, password, host, port := smtpConfig()
	to := []string{email}
	subject := fmt.Sprintf("Subject: Hóa đơn %s\n", invoice.InvoiceCode)
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Hóa đơn</title>
		</head>
		<body>
			<p>Xin chào,</p>
			<p>Cảm ơn quý khách đã sử dụng dịch vụ. Thông tin hóa đơn của quý khách:</p>
			<ul>
				<li>Mã hóa đơn: <strong>%s</strong></li>
				<li>Mã đặt phòng: <strong>%s</strong></li>
				<li>Nhận phòng: %s — Trả phòng: %s</li>
				<li>Tổng tiền: %.0f VND</li>
				<li>Giảm giá: %.0f VND</li>
				<li>Phải thu: %.0f VND</li>
				<li>Đã thu: %.0f VND</li>
			</ul>
			<p>Xin cám ơn,<br>Bộ phận lễ tân</p>
		</body>
		</html>
	`, invoice.InvoiceCode, booking.Code, booking.CheckInDate, booking.CheckOutDate,
		invoice.TotalAmount, invoice.DiscountAmount, invoice.FinalAmount, invoice.PaidAmount)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

// SendBookingEmail gửi email xác nhận đặt phòng
func SendBookingEmail(email string, booking *models.Booking) error {
	from, password, host, port := smtpConfig()
	to := []string{email}
	subject := "Subject: Xác nhận đặt phòng\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Xác nhận đặt phòng</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Đặt phòng <strong>%s</strong> của bạn đã được ghi nhận.</p>
			<p>Nhận phòng: %s — Trả phòng: %s</p>
			<p>Tổng tiền: %.0f VND</p>
			<p>Xin cám ơn,<br>Bộ phận lễ tân</p>
		</body>
		</html>
	`, booking.GuestName, booking.Code, booking.CheckInDate, booking.CheckOutDate, booking.FinalAmount())

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}
