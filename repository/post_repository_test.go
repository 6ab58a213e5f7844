package repository

import (
	"context"
	"testing"
	"time"

	"github.com/viktoryglory/blog-API/internal/db"
	"github.com/viktoryglory/blog-API/models"
)

func newPostTestDeps(t *testing.T, name string) (*UserRepository, *CategoryRepository, *PostRepository, *CommentRepository) {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return NewUserRepository(d), NewCategoryRepository(d), NewPostRepository(d), NewCommentRepository(d)
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	users, categories, posts, _ := newPostTestDeps(t, "postrepo")
	ctx := context.Background()

	u, err := users.Create(ctx, "alice", "a@x.com", "h", false)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	cat, err := categories.Create(ctx, "Tech", "")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	p, err := posts.Create(ctx, &models.Post{Title: "Hello", Content: "World", UserID: u.ID, CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if p.ID == 0 || p.CreatedAt.IsZero() {
		t.Fatalf("unexpected created post: %+v", p)
	}

	g, err := posts.GetByID(ctx, p.ID)
	if err != nil || g == nil {
		t.Fatalf("get: %v %+v", err, g)
	}
	if g.Author != "alice" || g.CategoryName != "Tech" {
		t.Fatalf("joined fields not populated: %+v", g)
	}

	missing, err := posts.GetByID(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("expected nil for missing post, got %+v err=%v", missing, err)
	}
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	users, categories, posts, _ := newPostTestDeps(t, "postrepo_list")
	ctx := context.Background()

	u, _ := users.Create(ctx, "alice", "a@x.com", "h", false)
	cat, _ := categories.Create(ctx, "Tech", "")

	var ids []int64
	for i := 0; i < 3; i++ {
		if i > 0 {
			time.Sleep(5 * time.Millisecond)
		}
		p, err := posts.Create(ctx, &models.Post{Title: "t", Content: "c", UserID: u.ID, CategoryID: cat.ID})
		if err != nil {
			t.Fatalf("create post %d: %v", i, err)
		}
		ids = append(ids, p.ID)
	}

	list, err := posts.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(list))
	}
	if list[0].ID != ids[2] || list[2].ID != ids[0] {
		t.Fatalf("posts not newest first: %v", []int64{list[0].ID, list[1].ID, list[2].ID})
	}
}

func TestPostRepository_UpdateAndDelete(t *testing.T) {
	users, categories, posts, comments := newPostTestDeps(t, "postrepo_upd")
	ctx := context.Background()

	u, _ := users.Create(ctx, "alice", "a@x.com", "h", false)
	cat, _ := categories.Create(ctx, "Tech", "")
	cat2, _ := categories.Create(ctx, "Travel", "")

	p, err := posts.Create(ctx, &models.Post{Title: "Old", Content: "Body", UserID: u.ID, CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	p.Title = "New"
	p.CategoryID = cat2.ID
	if err := posts.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}
	g, _ := posts.GetByID(ctx, p.ID)
	if g.Title != "New" || g.CategoryID != cat2.ID || g.CategoryName != "Travel" {
		t.Fatalf("update not applied: %+v", g)
	}
	if g.UpdatedAt.Before(g.CreatedAt) {
		t.Fatalf("updated_at not bumped: %+v", g)
	}

	// Comments on the post go away with it (ON DELETE CASCADE).
	if _, err := comments.Create(ctx, &models.Comment{Content: "hi", UserID: u.ID, PostID: p.ID}); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if err := posts.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := posts.GetByID(ctx, p.ID)
	if err != nil || gone != nil {
		t.Fatalf("expected post deleted, got %+v err=%v", gone, err)
	}
	left, err := comments.ListByPost(ctx, p.ID)
	if err != nil || len(left) != 0 {
		t.Fatalf("expected comments cascaded, got %d err=%v", len(left), err)
	}
}
