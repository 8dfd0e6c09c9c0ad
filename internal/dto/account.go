package dto

type AddAccountRequestDTO struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"secret"`
}

// LoginRequestDTO is not validated: an edited account may hold an empty password.
type LoginRequestDTO struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret"`
}

// EditAccountRequestDTO requires the field to be present, but it may be empty.
type EditAccountRequestDTO struct {
	Password *string `json:"password" validate:"required" example:"new-secret"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"Account created successfully."`
}
