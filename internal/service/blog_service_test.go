package service

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/model"
	"context"
	"errors"
	"testing"
)

func TestCreateBlogPostSlugDedupe(t *testing.T) {
	blogRepo := newFakeBlogRepo(
		&model.BlogPost{ID: 1, Title: "Hello World", Slug: "hello-world", IsPublished: true},
		&model.BlogPost{ID: 2, Title: "Hello World", Slug: "hello-world-1", IsPublished: true},
	)
	svc := NewBlogService(blogRepo, &fakeTagRepo{})

	id, err := svc.CreateBlogPost(context.Background(), &dto.BlogPostCreateDTO{
		Title:   "Hello, World!",
		Content: "body",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	post := blogRepo.posts[id]
	if post.Slug != "hello-world-2" {
		t.Fatalf("expected slug hello-world-2, got %s", post.Slug)
	}
}

func TestCreateBlogPostSlugFallback(t *testing.T) {
	blogRepo := newFakeBlogRepo()
	svc := NewBlogService(blogRepo, &fakeTagRepo{})

	id, err := svc.CreateBlogPost(context.Background(), &dto.BlogPostCreateDTO{
		Title:   "你好世界",
		Content: "body",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if blogRepo.posts[id].Slug != "post" {
		t.Fatalf("expected fallback slug post, got %s", blogRepo.posts[id].Slug)
	}
}

func TestGetBlogPostBySlugUnpublished(t *testing.T) {
	blogRepo := newFakeBlogRepo(
		&model.BlogPost{ID: 1, Title: "Draft", Slug: "draft", IsPublished: false},
	)
	svc := NewBlogService(blogRepo, &fakeTagRepo{})

	_, err := svc.GetBlogPostBySlug(context.Background(), "draft")
	if !errors.Is(err, ErrBlogPostNotFound) {
		t.Fatalf("expected ErrBlogPostNotFound, got %v", err)
	}
}

func TestGetBlogPostBySlugCountsView(t *testing.T) {
	blogRepo := newFakeBlogRepo(
		&model.BlogPost{ID: 1, Title: "Live", Slug: "live", Content: "body", IsPublished: true},
	)
	svc := NewBlogService(blogRepo, &fakeTagRepo{})

	detail, err := svc.GetBlogPostBySlug(context.Background(), "live")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.ViewsCount != 1 {
		t.Fatalf("expected views count 1 after read, got %d", detail.ViewsCount)
	}
	if detail.Content != "body" {
		t.Fatal("detail should carry content")
	}
	if blogRepo.posts[1].ViewsCount != 1 {
		t.Fatalf("views should be persisted, got %d", blogRepo.posts[1].ViewsCount)
	}
}
