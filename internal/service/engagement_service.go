package service

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/model"
	"Atelier/internal/pkg/consts"
	"Atelier/internal/pkg/minio"
	"Atelier/internal/pkg/redis"
	"Atelier/internal/pkg/util"
	"Atelier/internal/repository"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

const cacheExpiration = 7 * 24 * time.Hour

type EngagementService interface {
	CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, userID, commentID uint64, req *dto.CommentUpdateDTO) error
	DeleteComment(ctx context.Context, userID uint64, isStaff bool, commentID uint64) error
	GetCommentsByProjectID(ctx context.Context, projectID uint64, page, pageSize int) ([]*dto.CommentDTO, error)
	GetReplies(ctx context.Context, parentID uint64, page, pageSize int) ([]*dto.CommentDTO, error)
	UploadCommentImage(ctx context.Context, reader io.ReadSeeker, size int64) (string, error)

	ToggleProjectLike(ctx context.Context, userID, projectID uint64) (*dto.LikeStateDTO, error)
	ToggleCommentLike(ctx context.Context, userID, commentID uint64) (*dto.LikeStateDTO, error)
	GetProjectLikeCount(ctx context.Context, projectID uint64) (int64, error)
	GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error)
	IsProjectLiked(ctx context.Context, userID, projectID uint64) (bool, error)
	GetProjectCommentCount(ctx context.Context, projectID uint64) (int64, error)
}

type engagementServiceImpl struct {
	engagementRepo  repository.EngagementRepo
	projectRepo     repository.ProjectRepo
	notificationSvc NotificationService
}

func NewEngagementService(
	engagementRepo repository.EngagementRepo,
	projectRepo repository.ProjectRepo,
	notificationSvc NotificationService,
) EngagementService {
	return &engagementServiceImpl{
		engagementRepo:  engagementRepo,
		projectRepo:     projectRepo,
		notificationSvc: notificationSvc,
	}
}

// CreateComment 创建评论或回复。通知分发在写入成功后单独执行, 失败不回滚评论。
func (s *engagementServiceImpl) CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" && req.ImageURL == "" {
		return nil, ErrCommentEmpty
	}
	if len([]rune(text)) > consts.CommentMaxLength {
		return nil, ErrCommentTooLong
	}

	project, err := s.projectRepo.GetProjectByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if req.ParentID > 0 {
		parent, err := s.engagementRepo.GetCommentByID(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrCommentNotFound
		}
		// 只允许两级结构, 不能回复回复
		if parent.IsReply() {
			return nil, ErrReplyToReply
		}
		if parent.ProjectID != req.ProjectID {
			return nil, ErrCommentNotFound
		}
	}

	comment := &model.Comment{
		ProjectID: req.ProjectID,
		UserID:    userID,
		Text:      text,
		ImageURL:  req.ImageURL,
		ParentID:  req.ParentID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.engagementRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if comment.IsReply() {
		s.notificationSvc.NotifyReplyCreated(ctx, comment)
	} else {
		s.notificationSvc.NotifyCommentCreated(ctx, comment)
	}

	created, err := s.engagementRepo.GetCommentByID(ctx, comment.ID)
	if err != nil || created == nil {
		created = comment
	}
	return s.convertToCommentDTO(ctx, created, 0), nil
}

// UpdateComment 仅作者可编辑, 编辑后打上标记, 创建时间不变
func (s *engagementServiceImpl) UpdateComment(ctx context.Context, userID, commentID uint64, req *dto.CommentUpdateDTO) error {
	comment, err := s.engagementRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || comment.IsDeleted {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return UnauthorizedError
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return ErrCommentEmpty
	}
	if len([]rune(text)) > consts.CommentMaxLength {
		return ErrCommentTooLong
	}

	return s.engagementRepo.UpdateCommentText(ctx, commentID, text)
}

// DeleteComment 作者或管理员可删, 软删除保留回复结构
func (s *engagementServiceImpl) DeleteComment(ctx context.Context, userID uint64, isStaff bool, commentID uint64) error {
	comment, err := s.engagementRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || comment.IsDeleted {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && !isStaff {
		return UnauthorizedError
	}

	if err := s.engagementRepo.SoftDeleteComment(ctx, commentID); err != nil {
		return err
	}

	if comment.ImageURL != "" {
		go func(imageURL string) {
			_ = minio.DeleteFile(context.Background(), imageURL)
		}(comment.ImageURL)
	}

	return nil
}

func (s *engagementServiceImpl) GetCommentsByProjectID(ctx context.Context, projectID uint64, page, pageSize int) ([]*dto.CommentDTO, error) {
	rootComments, err := s.engagementRepo.GetRootCommentsByProjectID(ctx, projectID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	currentUserID, _ := ctx.Value("user_id").(uint64)

	res := make([]*dto.CommentDTO, 0, len(rootComments))
	for _, rc := range rootComments {
		rootDTO := s.convertToCommentDTO(ctx, rc, currentUserID)

		replyCount, _ := s.engagementRepo.GetReplyCountByParentID(ctx, rc.ID)
		rootDTO.ReplyCount = replyCount

		replies, err := s.engagementRepo.GetRepliesByParentID(ctx, rc.ID, 3, 0)
		if err == nil && len(replies) > 0 {
			rootDTO.Replies = make([]*dto.CommentDTO, 0, len(replies))
			for _, reply := range replies {
				rootDTO.Replies = append(rootDTO.Replies, s.convertToCommentDTO(ctx, reply, currentUserID))
			}
		}
		res = append(res, rootDTO)
	}
	return res, nil
}

func (s *engagementServiceImpl) GetReplies(ctx context.Context, parentID uint64, page, pageSize int) ([]*dto.CommentDTO, error) {
	replies, err := s.engagementRepo.GetRepliesByParentID(ctx, parentID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	currentUserID, _ := ctx.Value("user_id").(uint64)

	res := make([]*dto.CommentDTO, 0, len(replies))
	for _, reply := range replies {
		res = append(res, s.convertToCommentDTO(ctx, reply, currentUserID))
	}
	return res, nil
}

// UploadCommentImage 校验大小与类型后上传, 返回对象名
func (s *engagementServiceImpl) UploadCommentImage(ctx context.Context, reader io.ReadSeeker, size int64) (string, error) {
	if size > consts.CommentImageMaxSize {
		return "", ErrCommentImageTooBig
	}

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		return "", err
	}
	var ext string
	switch contentType {
	case consts.MimeJPEG:
		ext = ".jpg"
	case consts.MimePNG:
		ext = ".png"
	case consts.MimeGIF:
		ext = ".gif"
	case consts.MimeWebP:
		ext = ".webp"
	default:
		return "", ErrFileNotSupported
	}

	objectName := "comments/" + uuid.NewString() + ext
	if _, err := minio.UploadFile(ctx, objectName, reader, size, contentType); err != nil {
		return "", err
	}
	return objectName, nil
}

// ToggleProjectLike 已赞则取消, 未赞则点赞, 返回最新状态
func (s *engagementServiceImpl) ToggleProjectLike(ctx context.Context, userID, projectID uint64) (*dto.LikeStateDTO, error) {
	project, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	exists, err := s.engagementRepo.CheckProjectLikeExists(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	liked := !exists
	if exists {
		if err := s.engagementRepo.DeleteProjectLike(ctx, userID, projectID); err != nil {
			return nil, err
		}
	} else {
		err := s.engagementRepo.CreateProjectLike(ctx, &model.ProjectLike{UserID: userID, ProjectID: projectID, CreatedAt: time.Now()})
		if err != nil {
			// 并发下的重复插入视作已点赞
			if !isDuplicateError(err) {
				return nil, err
			}
		} else {
			s.notificationSvc.NotifyProjectLiked(ctx, userID, projectID)
		}
	}

	key := consts.ProjectLikeKey + strconv.FormatUint(projectID, 10)
	_ = redis.DeleteKey(ctx, key)

	count, err := s.GetProjectLikeCount(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStateDTO{Liked: liked, LikeCount: count}, nil
}

func (s *engagementServiceImpl) ToggleCommentLike(ctx context.Context, userID, commentID uint64) (*dto.LikeStateDTO, error) {
	comment, err := s.engagementRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.IsDeleted {
		return nil, ErrCommentNotFound
	}

	exists, err := s.engagementRepo.CheckCommentLikeExists(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	liked := !exists
	if exists {
		if err := s.engagementRepo.DeleteCommentLike(ctx, userID, commentID); err != nil {
			return nil, err
		}
	} else {
		err := s.engagementRepo.CreateCommentLike(ctx, &model.CommentLike{UserID: userID, CommentID: commentID, CreatedAt: time.Now()})
		if err != nil {
			if !isDuplicateError(err) {
				return nil, err
			}
		} else {
			s.notificationSvc.NotifyCommentLiked(ctx, userID, commentID)
		}
	}

	key := consts.CommentLikeKey + strconv.FormatUint(commentID, 10)
	_ = redis.DeleteKey(ctx, key)

	count, err := s.GetCommentLikeCount(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStateDTO{Liked: liked, LikeCount: count}, nil
}

func (s *engagementServiceImpl) GetProjectLikeCount(ctx context.Context, projectID uint64) (int64, error) {
	key := consts.ProjectLikeKey + strconv.FormatUint(projectID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := s.engagementRepo.GetProjectLikeCount(ctx, projectID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, cacheExpiration)
	return realCount, nil
}

func (s *engagementServiceImpl) GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error) {
	key := consts.CommentLikeKey + strconv.FormatUint(commentID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := s.engagementRepo.GetCommentLikeCount(ctx, commentID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, cacheExpiration)
	return realCount, nil
}

func (s *engagementServiceImpl) IsProjectLiked(ctx context.Context, userID, projectID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.engagementRepo.CheckProjectLikeExists(ctx, userID, projectID)
}

func (s *engagementServiceImpl) GetProjectCommentCount(ctx context.Context, projectID uint64) (int64, error) {
	return s.engagementRepo.GetCommentCountByProjectID(ctx, projectID)
}

func (s *engagementServiceImpl) convertToCommentDTO(ctx context.Context, comment *model.Comment, currentUserID uint64) *dto.CommentDTO {
	item := &dto.CommentDTO{
		ID:        comment.ID,
		ProjectID: comment.ProjectID,
		UserID:    comment.UserID,
		Text:      comment.Text,
		ParentID:  comment.ParentID,
		IsEdited:  comment.IsEdited,
		IsDeleted: comment.IsDeleted,
		CreatedAt: comment.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	if comment.ImageURL != "" && !comment.IsDeleted {
		item.ImageURL = minio.GetPublicURL(comment.ImageURL)
	}

	if comment.User.ID != 0 {
		item.Username = comment.User.Username
		item.AvatarURL = minio.GetPublicURL(comment.User.Profile.AvatarURL)
	}

	item.LikesCount, _ = s.GetCommentLikeCount(ctx, comment.ID)
	if currentUserID != 0 {
		item.IsLiked, _ = s.engagementRepo.CheckCommentLikeExists(ctx, currentUserID, comment.ID)
	}
	return item
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
