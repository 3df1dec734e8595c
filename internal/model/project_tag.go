package model

type ProjectTag struct {
	ProjectID uint64 `gorm:"primaryKey" json:"projectId"`
	TagID     uint64 `gorm:"primaryKey;index:idx_tag_id" json:"tagId"`
}

func (ProjectTag) TableName() string {
	return "project_tags"
}
