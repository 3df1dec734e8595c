package dto

type TestimonialCreateDTO struct {
	Name     string `json:"name" binding:"required,max=100"`
	Position string `json:"position" binding:"required,max=100"`
	Company  string `json:"company" binding:"omitempty,max=100"`
	Message  string `json:"message" binding:"required"`
	PhotoURL string `json:"photo_url" binding:"omitempty,max=500"`
	Rating   int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

type TestimonialUpdateDTO struct {
	Name       *string `json:"name" binding:"omitempty,max=100"`
	Position   *string `json:"position" binding:"omitempty,max=100"`
	Company    *string `json:"company" binding:"omitempty,max=100"`
	Message    *string `json:"message"`
	PhotoURL   *string `json:"photo_url" binding:"omitempty,max=500"`
	Rating     *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	IsFeatured *bool   `json:"is_featured"`
}

type TestimonialDTO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Company    string `json:"company"`
	Message    string `json:"message"`
	PhotoURL   string `json:"photo_url"`
	Rating     int    `json:"rating"`
	IsFeatured bool   `json:"is_featured"`
	CreatedAt  string `json:"created_at"`
}

type TestimonialListDTO struct {
	List  []*TestimonialDTO `json:"list"`
	Total int64             `json:"total"`
}
