package models

// LoginRequest is the body of POST user/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST user.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// CreateGroupRequest is the body of POST chat.
type CreateGroupRequest struct {
	Name         string   `json:"name" validate:"required"`
	Participants []string `json:"participants" validate:"required,min=1,dive,required"`
}

// RenameGroupRequest is the body of POST chat/group/{chatId}.
type RenameGroupRequest struct {
	Name string `json:"name" validate:"required"`
}
