package dto

type ContactCreateDTO struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
}

type ContactMessageDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type ContactListDTO struct {
	List  []*ContactMessageDTO `json:"list"`
	Total int64                `json:"total"`
}

type AboutDTO struct {
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
}

type AboutUpdateDTO struct {
	Description string `json:"description" binding:"required"`
	PhotoURL    string `json:"photo_url" binding:"omitempty,max=500"`
}
