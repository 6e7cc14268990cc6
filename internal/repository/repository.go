package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"devconnect/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	Delete(ctx context.Context, postID string) error

	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
	GetLikes(ctx context.Context, postID string) ([]models.Like, error)

	AddComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, commentID string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	GetComments(ctx context.Context, postID string) ([]models.Comment, error)
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetAll(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Profile ProfileRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Profile: NewProfileRepository(db),
	}
}
