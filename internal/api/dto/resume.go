package dto

type ResumeCreateDTO struct {
	Title    string `json:"title" binding:"required,max=100"`
	FileKey  string `json:"file_key" binding:"required,max=500"`
	Language string `json:"language" binding:"omitempty,max=10"`
	IsActive *bool  `json:"is_active"`
}

type ResumeDTO struct {
	ID            uint64 `json:"id"`
	Title         string `json:"title"`
	Language      string `json:"language"`
	IsActive      bool   `json:"is_active"`
	DownloadCount int    `json:"download_count"`
	CreatedAt     string `json:"created_at"`
}
