package service

import (
	"Atelier/internal/model"
	"context"
	"errors"
	"strings"
	"testing"
)

func newNotificationFixture(t *testing.T) (*fakeNotificationRepo, *fakeEngagementRepo, *fakeProjectRepo, NotificationService) {
	t.Helper()

	projectRepo := newFakeProjectRepo(&model.Project{ID: 10, UserID: 1, Title: "数字花园"})
	engagementRepo := newFakeEngagementRepo(
		&model.Comment{ID: 100, ProjectID: 10, UserID: 2, Text: "first"},
		&model.Comment{ID: 101, ProjectID: 10, UserID: 3, Text: "second"},
	)
	userRepo := newFakeUserRepo(
		&model.User{ID: 1, Username: "owner"},
		&model.User{ID: 2, Username: "alice"},
		&model.User{ID: 3, Username: "bob"},
	)
	notificationRepo := &fakeNotificationRepo{}

	svc := NewNotificationService(notificationRepo, engagementRepo, projectRepo, userRepo)
	return notificationRepo, engagementRepo, projectRepo, svc
}

func TestNotifyCommentCreatedFanout(t *testing.T) {
	notificationRepo, engagementRepo, _, svc := newNotificationFixture(t)

	comment := &model.Comment{ID: 102, ProjectID: 10, UserID: 2, Text: "again"}
	engagementRepo.comments[comment.ID] = comment

	svc.NotifyCommentCreated(context.Background(), comment)

	// 项目主与既有评论人收到, 发起人不收
	if got := notificationRepo.messagesFor(2); len(got) != 0 {
		t.Fatalf("actor should not be notified, got %v", got)
	}
	ownerMsgs := notificationRepo.messagesFor(1)
	if len(ownerMsgs) != 1 {
		t.Fatalf("owner should receive exactly one notification, got %d", len(ownerMsgs))
	}
	if ownerMsgs[0] != "alice 评论了你的项目：数字花园" {
		t.Fatalf("unexpected owner message: %s", ownerMsgs[0])
	}
	participantMsgs := notificationRepo.messagesFor(3)
	if len(participantMsgs) != 1 {
		t.Fatalf("participant should receive exactly one notification, got %d", len(participantMsgs))
	}
	if participantMsgs[0] != "alice 在项目 数字花园 下发表了评论" {
		t.Fatalf("unexpected participant message: %s", participantMsgs[0])
	}
}

func TestNotifyCommentCreatedByOwner(t *testing.T) {
	notificationRepo, engagementRepo, _, svc := newNotificationFixture(t)

	comment := &model.Comment{ID: 103, ProjectID: 10, UserID: 1, Text: "owner reply"}
	engagementRepo.comments[comment.ID] = comment

	svc.NotifyCommentCreated(context.Background(), comment)

	if got := notificationRepo.messagesFor(1); len(got) != 0 {
		t.Fatalf("owner commenting on own project should not notify self, got %v", got)
	}
	if got := notificationRepo.messagesFor(2); len(got) != 1 {
		t.Fatalf("commenter should still be notified, got %v", got)
	}
}

func TestNotifyReplyCreatedWording(t *testing.T) {
	notificationRepo, engagementRepo, _, svc := newNotificationFixture(t)

	reply := &model.Comment{ID: 104, ProjectID: 10, UserID: 3, ParentID: 100, Text: "re"}
	engagementRepo.comments[reply.ID] = reply

	svc.NotifyReplyCreated(context.Background(), reply)

	parentMsgs := notificationRepo.messagesFor(2)
	if len(parentMsgs) != 1 || parentMsgs[0] != "bob 回复了你在项目 数字花园 下的评论" {
		t.Fatalf("unexpected parent author messages: %v", parentMsgs)
	}
	ownerMsgs := notificationRepo.messagesFor(1)
	if len(ownerMsgs) != 1 || ownerMsgs[0] != "bob 回复了你项目 数字花园 下的一条评论" {
		t.Fatalf("unexpected owner messages: %v", ownerMsgs)
	}
	if got := notificationRepo.messagesFor(3); len(got) != 0 {
		t.Fatalf("reply author should not be notified, got %v", got)
	}
}

func TestNotifyProjectLiked(t *testing.T) {
	notificationRepo, _, _, svc := newNotificationFixture(t)

	svc.NotifyProjectLiked(context.Background(), 2, 10)

	msgs := notificationRepo.messagesFor(1)
	if len(msgs) != 1 || msgs[0] != "alice 赞了你的项目：数字花园" {
		t.Fatalf("unexpected like messages: %v", msgs)
	}
	if !strings.HasPrefix(notificationRepo.created[0].Link, "https://portfolio.example.com/projects/10/") {
		t.Fatalf("unexpected link: %s", notificationRepo.created[0].Link)
	}
}

func TestNotifyProjectLikedBySelf(t *testing.T) {
	notificationRepo, _, _, svc := newNotificationFixture(t)

	svc.NotifyProjectLiked(context.Background(), 1, 10)

	if len(notificationRepo.created) != 0 {
		t.Fatalf("self like should not notify, got %d notifications", len(notificationRepo.created))
	}
}

func TestNotifyCommentLiked(t *testing.T) {
	notificationRepo, _, _, svc := newNotificationFixture(t)

	svc.NotifyCommentLiked(context.Background(), 3, 100)

	msgs := notificationRepo.messagesFor(2)
	if len(msgs) != 1 || msgs[0] != "bob 赞了你的评论" {
		t.Fatalf("unexpected comment like messages: %v", msgs)
	}
	link := notificationRepo.created[0].Link
	if !strings.Contains(link, "#comment-100") {
		t.Fatalf("link should anchor the comment, got %s", link)
	}
}

func TestMarkAsReadMissing(t *testing.T) {
	notificationRepo, _, _, svc := newNotificationFixture(t)
	notificationRepo.markResult = 0

	err := svc.MarkAsRead(context.Background(), 1, 999)
	if !errors.Is(err, ErrNotificationMissing) {
		t.Fatalf("expected ErrNotificationMissing, got %v", err)
	}
}
