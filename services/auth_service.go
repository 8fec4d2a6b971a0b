package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"os"
	"time"

	"hrms/config"
	apperrors "hrms/errors"
	"hrms/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

// CreateToken phát hành JWT cho nhân viên đăng nhập thành công
func CreateToken(user *models.User) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{
			UserId: user.ID,
			Role:   user.Role,
		},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// Login xác thực nhân viên bằng email + mật khẩu
func Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrUserNotFound
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidPassword
	}

	token, err := CreateToken(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Register tạo tài khoản nhân viên mới và gửi mã xác thực qua email
func Register(user *models.User) error {
	var existing models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", user.Email, user.PhoneNumber).First(&existing).Error; err == nil {
		return apperrors.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	code, err := generateVerificationCode()
	if err != nil {
		return err
	}
	user.Code = code
	user.CodeCreatedAt = time.Now()

	if err := config.DB.Create(user).Error; err != nil {
		return err
	}

	if err := sendVerificationEmail(user.Email, code); err != nil {
		// Tài khoản đã tạo, lỗi gửi mail không chặn đăng ký
		fmt.Println("Gửi email xác thực không thành công:", err)
	}

	return nil
}

func sendVerificationEmail(email string, code string) error {
	from, password, host, port := smtpConfig()
	to := []string{email}
	subject := "Subject: Mã xác thực tài khoản\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác thực</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Mã xác thực tài khoản của bạn là: <strong>%s</strong></p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn.</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, email, code)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

// VerifyCode kiểm tra mã xác thực còn hiệu lực (15 phút)
func VerifyCode(email, code string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return apperrors.ErrUserNotFound
	}

	if user.Code != code {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Mã xác thực không đúng", nil)
	}
	if time.Since(user.CodeCreatedAt) > 15*time.Minute {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Mã xác thực đã hết hạn", nil)
	}

	user.IsVerified = true
	user.Code = ""
	return config.DB.Save(&user).Error
}
