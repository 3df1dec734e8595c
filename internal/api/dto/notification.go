package dto

type NotificationDTO struct {
	ID        uint64 `json:"id"`
	Message   string `json:"message"`
	Link      string `json:"link"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type NotificationListDTO struct {
	List  []*NotificationDTO `json:"list"`
	Total int64              `json:"total"`
}

type UnreadCountDTO struct {
	Count int64 `json:"count"`
}
