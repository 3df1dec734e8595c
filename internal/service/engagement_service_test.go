package service

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/model"
	"context"
	"errors"
	"strings"
	"testing"
)

func newEngagementFixture(t *testing.T) (*fakeEngagementRepo, *fakeNotificationRepo, EngagementService) {
	t.Helper()

	projectRepo := newFakeProjectRepo(&model.Project{ID: 10, UserID: 1, Title: "数字花园"})
	engagementRepo := newFakeEngagementRepo(
		&model.Comment{ID: 100, ProjectID: 10, UserID: 2, Text: "root"},
		&model.Comment{ID: 101, ProjectID: 10, UserID: 3, ParentID: 100, Text: "reply"},
	)
	userRepo := newFakeUserRepo(
		&model.User{ID: 1, Username: "owner"},
		&model.User{ID: 2, Username: "alice"},
		&model.User{ID: 3, Username: "bob"},
	)
	notificationRepo := &fakeNotificationRepo{}
	notificationSvc := NewNotificationService(notificationRepo, engagementRepo, projectRepo, userRepo)

	svc := NewEngagementService(engagementRepo, projectRepo, notificationSvc)
	return engagementRepo, notificationRepo, svc
}

func TestCreateCommentEmpty(t *testing.T) {
	_, _, svc := newEngagementFixture(t)

	_, err := svc.CreateComment(context.Background(), 2, &dto.CommentCreateDTO{ProjectID: 10, Text: "   "})
	if !errors.Is(err, ErrCommentEmpty) {
		t.Fatalf("expected ErrCommentEmpty, got %v", err)
	}
}

func TestCreateCommentImageOnly(t *testing.T) {
	_, _, svc := newEngagementFixture(t)

	comment, err := svc.CreateComment(context.Background(), 2, &dto.CommentCreateDTO{ProjectID: 10, ImageURL: "comments/x.png"})
	if err != nil {
		t.Fatalf("image-only comment should succeed, got %v", err)
	}
	if comment.Text != "" {
		t.Fatalf("expected empty text, got %q", comment.Text)
	}
}

func TestCreateCommentTooLong(t *testing.T) {
	_, _, svc := newEngagementFixture(t)

	_, err := svc.CreateComment(context.Background(), 2, &dto.CommentCreateDTO{
		ProjectID: 10,
		Text:      strings.Repeat("啊", 5001),
	})
	if !errors.Is(err, ErrCommentTooLong) {
		t.Fatalf("expected ErrCommentTooLong, got %v", err)
	}
}

func TestCreateCommentProjectMissing(t *testing.T) {
	_, _, svc := newEngagementFixture(t)

	_, err := svc.CreateComment(context.Background(), 2, &dto.CommentCreateDTO{ProjectID: 999, Text: "hi"})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestCreateReplyToReply(t *testing.T) {
	_, _, svc := newEngagementFixture(t)

	_, err := svc.CreateComment(context.Background(), 2, &dto.CommentCreateDTO{
		ProjectID: 10,
		Text:      "third level",
		ParentID:  101,
	})
	if !errors.Is(err, ErrReplyToReply) {
		t.Fatalf("expected ErrReplyToReply, got %v", err)
	}
}

func TestCreateReplyParentInOtherProject(t *testing.T) {
	engagementRepo, _, svc := newEngagementFixture(t)
	engagementRepo.comments[200] = &model.Comment{ID: 200, ProjectID: 99, UserID: 2, Text: "elsewhere"}

	_, err := svc.CreateComment(context.Background(), 3, &dto.CommentCreateDTO{
		ProjectID: 10,
		Text:      "cross project reply",
		ParentID:  200,
	})
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestCreateReplyNotifiesParentAuthor(t *testing.T) {
	_, notificationRepo, svc := newEngagementFixture(t)

	_, err := svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{
		ProjectID: 10,
		Text:      "thanks",
		ParentID:  100,
	})
	if err != nil {
		t.Fatalf("reply should succeed, got %v", err)
	}
	if got := notificationRepo.messagesFor(2); len(got) != 1 {
		t.Fatalf("parent author should be notified once, got %v", got)
	}
	if got := notificationRepo.messagesFor(1); len(got) != 0 {
		t.Fatalf("actor should not be notified, got %v", got)
	}
}

func TestUpdateCommentNotAuthor(t *testing.T) {
	_, _, svc := newEngagementFixture(t)

	err := svc.UpdateComment(context.Background(), 3, 100, &dto.CommentUpdateDTO{Text: "hijack"})
	if !errors.Is(err, UnauthorizedError) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}

func TestUpdateCommentMarksEdited(t *testing.T) {
	engagementRepo, _, svc := newEngagementFixture(t)

	if err := svc.UpdateComment(context.Background(), 2, 100, &dto.CommentUpdateDTO{Text: "edited"}); err != nil {
		t.Fatalf("update by author should succeed, got %v", err)
	}
	comment := engagementRepo.comments[100]
	if comment.Text != "edited" || !comment.IsEdited {
		t.Fatalf("comment should be edited and flagged, got %+v", comment)
	}
}

func TestDeleteCommentByStaff(t *testing.T) {
	engagementRepo, _, svc := newEngagementFixture(t)

	if err := svc.DeleteComment(context.Background(), 1, true, 100); err != nil {
		t.Fatalf("staff delete should succeed, got %v", err)
	}
	comment := engagementRepo.comments[100]
	if !comment.IsDeleted {
		t.Fatal("comment should be soft deleted")
	}

	// 已删除的评论不可再编辑
	err := svc.UpdateComment(context.Background(), 2, 100, &dto.CommentUpdateDTO{Text: "late edit"})
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound after delete, got %v", err)
	}
}

func TestDeleteCommentByStranger(t *testing.T) {
	_, _, svc := newEngagementFixture(t)

	err := svc.DeleteComment(context.Background(), 3, false, 100)
	if !errors.Is(err, UnauthorizedError) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}

func TestToggleProjectLikeRoundTrip(t *testing.T) {
	_, notificationRepo, svc := newEngagementFixture(t)

	state, err := svc.ToggleProjectLike(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("like should succeed, got %v", err)
	}
	if !state.Liked || state.LikeCount != 1 {
		t.Fatalf("expected liked with count 1, got %+v", state)
	}
	if got := notificationRepo.messagesFor(1); len(got) != 1 {
		t.Fatalf("owner should be notified of the like, got %v", got)
	}

	state, err = svc.ToggleProjectLike(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("unlike should succeed, got %v", err)
	}
	if state.Liked || state.LikeCount != 0 {
		t.Fatalf("expected unliked with count 0, got %+v", state)
	}
}

func TestToggleCommentLikeOnDeleted(t *testing.T) {
	engagementRepo, _, svc := newEngagementFixture(t)
	engagementRepo.comments[100].IsDeleted = true

	_, err := svc.ToggleCommentLike(context.Background(), 3, 100)
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestGetCommentsReplyPreview(t *testing.T) {
	_, _, svc := newEngagementFixture(t)

	comments, err := svc.GetCommentsByProjectID(context.Background(), 10, 1, 20)
	if err != nil {
		t.Fatalf("listing comments failed: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected one root comment, got %d", len(comments))
	}
	root := comments[0]
	if root.ReplyCount != 1 || len(root.Replies) != 1 {
		t.Fatalf("expected one reply in preview, got count=%d len=%d", root.ReplyCount, len(root.Replies))
	}
	if root.Replies[0].ParentID != root.ID {
		t.Fatalf("reply parent mismatch: %d vs %d", root.Replies[0].ParentID, root.ID)
	}
}
