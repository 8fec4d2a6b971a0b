package dto

// CreateCustomerRequest là DTO cho request tạo hồ sơ khách
type CreateCustomerRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	Gender         int    `json:"gender"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	Address        string `json:"address,omitempty"`
	IdentityNumber string `json:"identityNumber,omitempty"`
}

// CustomerResponse là DTO cho response của khách
type CustomerResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	Gender         int    `json:"gender"`
	DateOfBirth    string `json:"dateOfBirth"`
	Address        string `json:"address"`
	IdentityNumber string `json:"identityNumber"`
}
