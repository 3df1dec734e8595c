package service

import (
	"Atelier/internal/model"
	"context"
	"errors"
	"testing"
)

func newProjectFixture(t *testing.T) (*fakeProjectRepo, ProjectService) {
	t.Helper()

	projectRepo := newFakeProjectRepo(&model.Project{ID: 10, UserID: 1, Title: "数字花园"})
	engagementRepo := newFakeEngagementRepo()
	userRepo := newFakeUserRepo(&model.User{ID: 1, Username: "owner"})
	notificationSvc := NewNotificationService(&fakeNotificationRepo{}, engagementRepo, projectRepo, userRepo)
	engagementSvc := NewEngagementService(engagementRepo, projectRepo, notificationSvc)

	svc := NewProjectService(projectRepo, &fakeCategoryRepo{}, &fakeTagRepo{}, engagementRepo, engagementSvc)
	return projectRepo, svc
}

func TestGetProjectCountsView(t *testing.T) {
	projectRepo, svc := newProjectFixture(t)

	detail, err := svc.GetProject(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if detail.ViewsCount != 1 {
		t.Fatalf("expected views count 1 after read, got %d", detail.ViewsCount)
	}
	if got := projectRepo.projects[10].ViewsCount; got != 1 {
		t.Fatalf("expected persisted views count 1, got %d", got)
	}

	detail, err = svc.GetProject(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if detail.ViewsCount != 2 {
		t.Fatalf("expected views count 2 after second read, got %d", detail.ViewsCount)
	}
}

func TestGetProjectMissing(t *testing.T) {
	_, svc := newProjectFixture(t)

	_, err := svc.GetProject(context.Background(), 0, 999)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
