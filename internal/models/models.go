// Package models defines the platform's records and their SQL access
// functions.
package models

import (
	"errors"
	"time"

	"blog/internal/auth"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateSlug     = errors.New("slug already exists")
	ErrDuplicateEmail    = errors.New("email already subscribed")
	ErrInvalidParent     = errors.New("parent comment does not belong to the post")
)

// User's password hash never leaves the server; the json tag makes that a
// property of the type, not of each handler.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	Email        string    `json:"email,omitempty"`
	Role         auth.Role `json:"role"`
}

type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt,omitempty"`
	CoverImage  string    `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	AuthorID    int64     `json:"authorId"`
	Tags        []string  `json:"tags"`
}

type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	ProjectURL  string   `json:"projectUrl,omitempty"`
	IsActive    bool     `json:"isActive"`
	Tags        []string `json:"tags"`
}

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	ParentID  *int64    `json:"parentId"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Subscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
