package dto

type RegisterDTO struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" binding:"required,min=8,max=64"`
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName string  `json:"full_name" binding:"omitempty,max=255"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenDTO struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type ProfileDTO struct {
	UserID      uint64 `json:"user_id"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
	Location    string `json:"location"`
	Country     string `json:"country"`
	City        string `json:"city"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

type ProfileUpdateDTO struct {
	FullName    *string `json:"full_name" binding:"omitempty,max=255"`
	Bio         *string `json:"bio" binding:"omitempty,max=2000"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,max=500"`
	Location    *string `json:"location" binding:"omitempty,max=255"`
	Country     *string `json:"country" binding:"omitempty,len=2"`
	City        *string `json:"city" binding:"omitempty,max=255"`
	DateOfBirth *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
}
