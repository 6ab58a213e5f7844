package models

import "time"

// Post is a blog entry owned by a user and filed under a category.
// Author and CategoryName are joined display fields, populated on
// reads and never written back.
type Post struct {
	ID         int64     `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	UserID     int64     `db:"user_id" json:"user_id"`
	CategoryID int64     `db:"category_id" json:"category_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`

	Author       string `db:"-" json:"author,omitempty"`
	CategoryName string `db:"-" json:"category,omitempty"`
}
