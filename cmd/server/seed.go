package main

import (
	"context"
	"fmt"
	"log"

	"github.com/viktoryglory/blog-API/internal/auth"
	"github.com/viktoryglory/blog-API/repository"
)

// seed creates the default accounts and categories for a fresh
// install. Rows that already exist are left alone, so running it
// twice is harmless.
func seed(ctx context.Context, users *repository.UserRepository, categories *repository.CategoryRepository) error {
	defaultUsers := []struct {
		username string
		email    string
		password string
		isAdmin  bool
	}{
		{"admin", "admin@blog.com", "admin123", true},
		{"user", "user@blog.com", "user123", false},
	}
	for _, u := range defaultUsers {
		existing, err := users.GetByUsername(ctx, u.username)
		if err != nil {
			return fmt.Errorf("lookup user %s: %w", u.username, err)
		}
		if existing != nil {
			continue
		}
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return err
		}
		if _, err := users.Create(ctx, u.username, u.email, hash, u.isAdmin); err != nil {
			return fmt.Errorf("create user %s: %w", u.username, err)
		}
		log.Printf("created user %s (admin=%v)", u.username, u.isAdmin)
	}

	defaultCategories := []struct {
		name        string
		description string
	}{
		{"Technology", "Posts about technology and programming"},
		{"Lifestyle", "Posts about lifestyle and personal development"},
		{"Travel", "Posts about travel and adventures"},
	}
	for _, cat := range defaultCategories {
		existing, err := categories.GetByName(ctx, cat.name)
		if err != nil {
			return fmt.Errorf("lookup category %s: %w", cat.name, err)
		}
		if existing != nil {
			continue
		}
		if _, err := categories.Create(ctx, cat.name, cat.description); err != nil {
			return fmt.Errorf("create category %s: %w", cat.name, err)
		}
		log.Printf("created category %s", cat.name)
	}
	return nil
}
