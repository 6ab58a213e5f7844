package repository

import (
	"context"
	"testing"
	"time"

	"github.com/viktoryglory/blog-API/models"
)

func TestCommentRepository_CRUD(t *testing.T) {
	users, categories, posts, comments := newPostTestDeps(t, "commentrepo")
	ctx := context.Background()

	u, _ := users.Create(ctx, "alice", "a@x.com", "h", false)
	cat, _ := categories.Create(ctx, "Tech", "")
	p, err := posts.Create(ctx, &models.Post{Title: "t", Content: "c", UserID: u.ID, CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	c, err := comments.Create(ctx, &models.Comment{Content: "first", UserID: u.ID, PostID: p.ID})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if c.ID == 0 || c.CreatedAt.IsZero() {
		t.Fatalf("unexpected created comment: %+v", c)
	}

	g, err := comments.GetByID(ctx, c.ID)
	if err != nil || g == nil || g.Author != "alice" || g.Content != "first" {
		t.Fatalf("get: %v %+v", err, g)
	}

	missing, err := comments.GetByID(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("expected nil for missing comment, got %+v err=%v", missing, err)
	}

	if err := comments.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := comments.GetByID(ctx, c.ID)
	if err != nil || gone != nil {
		t.Fatalf("expected comment deleted, got %+v err=%v", gone, err)
	}
}

func TestCommentRepository_ListByPostNewestFirst(t *testing.T) {
	users, categories, posts, comments := newPostTestDeps(t, "commentrepo_list")
	ctx := context.Background()

	u, _ := users.Create(ctx, "alice", "a@x.com", "h", false)
	cat, _ := categories.Create(ctx, "Tech", "")
	p, _ := posts.Create(ctx, &models.Post{Title: "t", Content: "c", UserID: u.ID, CategoryID: cat.ID})
	other, _ := posts.Create(ctx, &models.Post{Title: "t2", Content: "c2", UserID: u.ID, CategoryID: cat.ID})

	var ids []int64
	for i := 0; i < 3; i++ {
		if i > 0 {
			time.Sleep(5 * time.Millisecond)
		}
		c, err := comments.Create(ctx, &models.Comment{Content: "c", UserID: u.ID, PostID: p.ID})
		if err != nil {
			t.Fatalf("create comment %d: %v", i, err)
		}
		ids = append(ids, c.ID)
	}
	// A comment on another post must not leak into the listing.
	if _, err := comments.Create(ctx, &models.Comment{Content: "other", UserID: u.ID, PostID: other.ID}); err != nil {
		t.Fatalf("create other comment: %v", err)
	}

	list, err := comments.ListByPost(ctx, p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(list))
	}
	if list[0].ID != ids[2] || list[2].ID != ids[0] {
		t.Fatalf("comments not newest first: %v", []int64{list[0].ID, list[1].ID, list[2].ID})
	}
}
