package repository

import (
	"Atelier/internal/model"
	"context"
	"errors"

	"Atelier/internal/pkg/consts"

	"gorm.io/gorm"
)

type EngagementRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error)
	GetRootCommentsByProjectID(ctx context.Context, projectID uint64, limit, offset int) ([]*model.Comment, error)
	GetRepliesByParentID(ctx context.Context, parentID uint64, limit, offset int) ([]*model.Comment, error)
	GetReplyCountByParentID(ctx context.Context, parentID uint64) (int64, error)
	UpdateCommentText(ctx context.Context, commentID uint64, text string) error
	SoftDeleteComment(ctx context.Context, commentID uint64) error
	GetCommentCountByProjectID(ctx context.Context, projectID uint64) (int64, error)
	GetCommenterIDsByProjectID(ctx context.Context, projectID uint64) ([]uint64, error)

	CreateProjectLike(ctx context.Context, like *model.ProjectLike) error
	DeleteProjectLike(ctx context.Context, userID, projectID uint64) error
	CheckProjectLikeExists(ctx context.Context, userID, projectID uint64) (bool, error)
	GetProjectLikeCount(ctx context.Context, projectID uint64) (int64, error)
	CountAllProjectLikes(ctx context.Context) (int64, error)

	CreateCommentLike(ctx context.Context, cl *model.CommentLike) error
	DeleteCommentLike(ctx context.Context, userID, commentID uint64) error
	CheckCommentLikeExists(ctx context.Context, userID, commentID uint64) (bool, error)
	GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error)
}

type EngagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &EngagementRepoImpl{db}
}

func (s *EngagementRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Omit("User").Create(comment).Error
}

func (s *EngagementRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).
		Preload("User.Profile").
		Preload("User").
		Where("id = ?", commentID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// GetRootCommentsByProjectID 分页获取项目的一级评论
func (s *EngagementRepoImpl) GetRootCommentsByProjectID(ctx context.Context, projectID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("User.Profile").
		Preload("User").
		Where("project_id = ? AND parent_id = ?", projectID, 0).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

// GetRepliesByParentID 获取某条一级评论下的回复
func (s *EngagementRepoImpl) GetRepliesByParentID(ctx context.Context, parentID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("User.Profile").
		Preload("User").
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (s *EngagementRepoImpl) GetReplyCountByParentID(ctx context.Context, parentID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("parent_id = ? AND is_deleted = ?", parentID, false).
		Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) UpdateCommentText(ctx context.Context, commentID uint64, text string) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", commentID).
		Updates(map[string]interface{}{
			"text":      text,
			"is_edited": true,
		}).Error
}

// SoftDeleteComment 保留记录, 文本替换为占位符
func (s *EngagementRepoImpl) SoftDeleteComment(ctx context.Context, commentID uint64) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", commentID).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"text":       consts.CommentDeletedPlaceholder,
			"image_url":  "",
		}).Error
}

func (s *EngagementRepoImpl) GetCommentCountByProjectID(ctx context.Context, projectID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("project_id = ? AND is_deleted = ?", projectID, false).
		Count(&count).Error
	return count, err
}

// GetCommenterIDsByProjectID 项目下所有评论作者的去重 ID, 用于通知分发
func (s *EngagementRepoImpl) GetCommenterIDsByProjectID(ctx context.Context, projectID uint64) ([]uint64, error) {
	var userIDs []uint64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Distinct("user_id").
		Where("project_id = ?", projectID).
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}

func (s *EngagementRepoImpl) CreateProjectLike(ctx context.Context, like *model.ProjectLike) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *EngagementRepoImpl) DeleteProjectLike(ctx context.Context, userID, projectID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&model.ProjectLike{}).Error
}

func (s *EngagementRepoImpl) CheckProjectLikeExists(ctx context.Context, userID, projectID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ProjectLike{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	return count > 0, err
}

func (s *EngagementRepoImpl) GetProjectLikeCount(ctx context.Context, projectID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ProjectLike{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) CountAllProjectLikes(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ProjectLike{}).Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) CreateCommentLike(ctx context.Context, cl *model.CommentLike) error {
	return s.db.WithContext(ctx).Create(cl).Error
}

func (s *EngagementRepoImpl) DeleteCommentLike(ctx context.Context, userID, commentID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.CommentLike{}).Error
}

func (s *EngagementRepoImpl) CheckCommentLikeExists(ctx context.Context, userID, commentID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	return count > 0, err
}

func (s *EngagementRepoImpl) GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
