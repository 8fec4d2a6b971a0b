package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"hrms/config"
	"hrms/dto"
	"hrms/models"
	"hrms/response"
	"hrms/services"
	"hrms/validator"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func convertToUserLoginResponse(user *models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UserStatus:   user.Status,
		UserAvatar:   user.Avatar,
		BranchIDs:    user.BranchIDs,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	user, token, err := services.Login(input.Email, input.Password)
	if err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	response.Success(c, gin.H{
		"user_info":   convertToUserLoginResponse(user),
		"accessToken": token,
	})
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	}

	if err := validator.ValidateUser(&user); err != nil {
		respondAppError(c, err)
		return
	}

	if err := services.Register(&user); err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, convertToUserLoginResponse(&user))
}

func VerifyCode(c *gin.Context) {
	var input dto.VerifyCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := services.VerifyCode(strings.ToLower(input.Email), input.Code); err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, nil)
}

func AuthGoogle(c *gin.Context) {
	var token struct {
		TokenId string `json:"tokenId"`
	}

	if err := c.ShouldBindJSON(&token); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Xác minh tokenId từ Google
	payload, err := verifyGoogleIDToken(token.TokenId)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser := dto.GoogleUser{
		Name:          payload.Claims["name"].(string),
		Email:         payload.Claims["email"].(string),
		VerifiedEmail: payload.Claims["email_verified"].(bool),
		Picture:       payload.Claims["picture"].(string),
	}

	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email chưa được Google xác thực")
		return
	}

	// Tài khoản Google chỉ đăng nhập được khi đã có hồ sơ nhân viên
	var user models.User
	result := config.DB.Where("email = ?", googleUser.Email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		response.Forbidden(c)
		return
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	accessToken, err := services.CreateToken(&user)
	if err != nil {
		log.Println("Error generating access token:", err)
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"user_info":   convertToUserLoginResponse(&user),
		"accessToken": accessToken,
	})
}

// verifyGoogleIDToken xác thực ID token từ Google
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func GetProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserLoginResponse(&user))
}
