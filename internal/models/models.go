package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Avatar       string    `json:"avatar" db:"avatar"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Name      string    `json:"name" db:"name"`
	Avatar    string    `json:"avatar" db:"avatar"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Likes     []Like    `json:"likes" db:"-"`
	Comments  []Comment `json:"comments" db:"-"`
}

type Like struct {
	PostID    string    `json:"-" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Name      string    `json:"name" db:"name"`
	Avatar    string    `json:"avatar" db:"avatar"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Social - ссылки на социальные сети профиля, хранится одной jsonb колонкой
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

func (s Social) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Social) Scan(src interface{}) error {
	if src == nil {
		*s = Social{}
		return nil
	}

	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, s)
	case string:
		return json.Unmarshal([]byte(data), s)
	default:
		return fmt.Errorf("неподдерживаемый тип для Social: %T", src)
	}
}

type Profile struct {
	UserID         string         `json:"userId" db:"user_id"`
	Company        string         `json:"company" db:"company"`
	Website        string         `json:"website" db:"website"`
	Location       string         `json:"location" db:"location"`
	Bio            string         `json:"bio" db:"bio"`
	Status         string         `json:"status" db:"status"`
	GithubUsername string         `json:"githubUsername" db:"github_username"`
	Skills         pq.StringArray `json:"skills" db:"skills"`
	Social         Social         `json:"social" db:"social"`
	UpdatedAt      time.Time      `json:"updatedAt" db:"updated_at"`
}
