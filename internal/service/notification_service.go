package service

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/model"
	"Atelier/internal/api/config"
	"Atelier/internal/pkg/consts"
	"Atelier/internal/pkg/redis"
	"Atelier/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"time"
)

type NotificationService interface {
	NotifyCommentCreated(ctx context.Context, comment *model.Comment)
	NotifyReplyCreated(ctx context.Context, reply *model.Comment)
	NotifyProjectLiked(ctx context.Context, actorID, projectID uint64)
	NotifyCommentLiked(ctx context.Context, actorID, commentID uint64)

	GetNotifications(ctx context.Context, userID uint64, page, pageSize int) (*dto.NotificationListDTO, error)
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkAsRead(ctx context.Context, userID, notificationID uint64) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
}

type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepo
	engagementRepo   repository.EngagementRepo
	projectRepo      repository.ProjectRepo
	userRepo         repository.UserRepo
}

func NewNotificationService(
	notificationRepo repository.NotificationRepo,
	engagementRepo repository.EngagementRepo,
	projectRepo repository.ProjectRepo,
	userRepo repository.UserRepo,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		engagementRepo:   engagementRepo,
		projectRepo:      projectRepo,
		userRepo:         userRepo,
	}
}

// NotifyCommentCreated 评论通知分发。接收人为项目主及所有评论/回复参与者, 不含发起人。
// 分发失败只记录日志, 不影响评论本身。
func (s *notificationServiceImpl) NotifyCommentCreated(ctx context.Context, comment *model.Comment) {
	project, err := s.projectRepo.GetProjectByID(ctx, comment.ProjectID)
	if err != nil || project == nil {
		log.Warn("分发评论通知失败", "commentID", comment.ID, "err", err)
		return
	}

	recipients, err := s.collectParticipants(ctx, project, comment.UserID, 0)
	if err != nil {
		log.Warn("分发评论通知失败", "commentID", comment.ID, "err", err)
		return
	}

	actorName := s.usernameOf(ctx, comment.UserID)
	link := buildProjectLink(project.ID, comment.ID)

	notifications := make([]*model.Notification, 0, len(recipients))
	for recipient := range recipients {
		var message string
		if recipient == project.UserID {
			message = fmt.Sprintf("%s 评论了你的项目：%s", actorName, project.Title)
		} else {
			message = fmt.Sprintf("%s 在项目 %s 下发表了评论", actorName, project.Title)
		}
		notifications = append(notifications, &model.Notification{
			UserID:    recipient,
			Message:   message,
			Link:      link,
			CreatedAt: time.Now(),
		})
	}

	s.dispatch(ctx, notifications)
}

// NotifyReplyCreated 回复通知分发, 父评论作者收到专属文案
func (s *notificationServiceImpl) NotifyReplyCreated(ctx context.Context, reply *model.Comment) {
	project, err := s.projectRepo.GetProjectByID(ctx, reply.ProjectID)
	if err != nil || project == nil {
		log.Warn("分发回复通知失败", "commentID", reply.ID, "err", err)
		return
	}

	parent, err := s.engagementRepo.GetCommentByID(ctx, reply.ParentID)
	if err != nil || parent == nil {
		log.Warn("分发回复通知失败", "commentID", reply.ID, "err", err)
		return
	}

	recipients, err := s.collectParticipants(ctx, project, reply.UserID, parent.UserID)
	if err != nil {
		log.Warn("分发回复通知失败", "commentID", reply.ID, "err", err)
		return
	}

	actorName := s.usernameOf(ctx, reply.UserID)
	link := buildProjectLink(project.ID, reply.ID)

	notifications := make([]*model.Notification, 0, len(recipients))
	for recipient := range recipients {
		var message string
		switch recipient {
		case parent.UserID:
			message = fmt.Sprintf("%s 回复了你在项目 %s 下的评论", actorName, project.Title)
		case project.UserID:
			message = fmt.Sprintf("%s 回复了你项目 %s 下的一条评论", actorName, project.Title)
		default:
			message = fmt.Sprintf("%s 在项目 %s 下发表了回复", actorName, project.Title)
		}
		notifications = append(notifications, &model.Notification{
			UserID:    recipient,
			Message:   message,
			Link:      link,
			CreatedAt: time.Now(),
		})
	}

	s.dispatch(ctx, notifications)
}

// NotifyProjectLiked 仅通知项目主, 自赞不通知
func (s *notificationServiceImpl) NotifyProjectLiked(ctx context.Context, actorID, projectID uint64) {
	project, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil || project == nil {
		log.Warn("分发点赞通知失败", "projectID", projectID, "err", err)
		return
	}
	if project.UserID == actorID {
		return
	}

	actorName := s.usernameOf(ctx, actorID)
	s.dispatch(ctx, []*model.Notification{{
		UserID:    project.UserID,
		Message:   fmt.Sprintf("%s 赞了你的项目：%s", actorName, project.Title),
		Link:      buildProjectLink(project.ID, 0),
		CreatedAt: time.Now(),
	}})
}

// NotifyCommentLiked 仅通知评论作者, 自赞不通知
func (s *notificationServiceImpl) NotifyCommentLiked(ctx context.Context, actorID, commentID uint64) {
	comment, err := s.engagementRepo.GetCommentByID(ctx, commentID)
	if err != nil || comment == nil {
		log.Warn("分发点赞通知失败", "commentID", commentID, "err", err)
		return
	}
	if comment.UserID == actorID {
		return
	}

	actorName := s.usernameOf(ctx, actorID)
	s.dispatch(ctx, []*model.Notification{{
		UserID:    comment.UserID,
		Message:   fmt.Sprintf("%s 赞了你的评论", actorName),
		Link:      buildProjectLink(comment.ProjectID, comment.ID),
		CreatedAt: time.Now(),
	}})
}

func (s *notificationServiceImpl) GetNotifications(ctx context.Context, userID uint64, page, pageSize int) (*dto.NotificationListDTO, error) {
	notifications, total, err := s.notificationRepo.GetNotificationsByUserID(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		list = append(list, &dto.NotificationDTO{
			ID:        n.ID,
			Message:   n.Message,
			Link:      n.Link,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return &dto.NotificationListDTO{List: list, Total: total}, nil
}

func (s *notificationServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	key := consts.NotificationUnreadKey + strconv.FormatUint(userID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := s.notificationRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, time.Hour)
	return realCount, nil
}

func (s *notificationServiceImpl) MarkAsRead(ctx context.Context, userID, notificationID uint64) error {
	affected, err := s.notificationRepo.MarkAsRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationMissing
	}
	s.invalidateUnread(ctx, userID)
	return nil
}

func (s *notificationServiceImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	if err := s.notificationRepo.MarkAllAsRead(ctx, userID); err != nil {
		return err
	}
	s.invalidateUnread(ctx, userID)
	return nil
}

// collectParticipants 项目主 + 全部评论作者 + 全部回复作者, 去掉发起人。
// extra 非 0 时并入接收集合, 用于回复场景的父评论作者。
func (s *notificationServiceImpl) collectParticipants(ctx context.Context, project *model.Project, actorID, extra uint64) (map[uint64]struct{}, error) {
	recipients := make(map[uint64]struct{})
	recipients[project.UserID] = struct{}{}
	if extra != 0 {
		recipients[extra] = struct{}{}
	}

	commenterIDs, err := s.engagementRepo.GetCommenterIDsByProjectID(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	for _, id := range commenterIDs {
		recipients[id] = struct{}{}
	}

	delete(recipients, actorID)
	return recipients, nil
}

func (s *notificationServiceImpl) dispatch(ctx context.Context, notifications []*model.Notification) {
	if len(notifications) == 0 {
		return
	}
	if err := s.notificationRepo.CreateNotifications(ctx, notifications); err != nil {
		log.Error("写入通知失败", "count", len(notifications), "err", err)
		return
	}
	for _, n := range notifications {
		s.invalidateUnread(ctx, n.UserID)
	}
}

func (s *notificationServiceImpl) invalidateUnread(ctx context.Context, userID uint64) {
	key := consts.NotificationUnreadKey + strconv.FormatUint(userID, 10)
	_ = redis.DeleteKey(ctx, key)
}

func (s *notificationServiceImpl) usernameOf(ctx context.Context, userID uint64) string {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil || user == nil {
		return "某位用户"
	}
	return user.Username
}

func buildProjectLink(projectID, commentID uint64) string {
	link := fmt.Sprintf("%s/projects/%d/", config.Cfg.Site.BaseURL, projectID)
	if commentID != 0 {
		link += fmt.Sprintf("#comment-%d", commentID)
	}
	return link
}
