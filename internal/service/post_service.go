package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

type CreatePostRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

// NewCommentInput - провалидированные поля нового комментария
type NewCommentInput struct {
	Text string `json:"text"`
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	GetPosts(ctx context.Context) ([]models.Post, error)
	DeletePost(ctx context.Context, postID, userID string) error

	Like(ctx context.Context, postID, userID string) ([]models.Like, error)
	Unlike(ctx context.Context, postID, userID string) ([]models.Like, error)

	AddComment(ctx context.Context, postID, userID string, input NewCommentInput) ([]models.Comment, error)
	RemoveComment(ctx context.Context, postID, commentID, userID string) ([]models.Comment, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	// snapshot имени и аватара автора, как в ленте
	user, err := p.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: req.UserID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	post.Likes = []models.Like{}
	post.Comments = []models.Comment{}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := p.attachCollections(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if err := p.attachCollections(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

func (p *postService) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	// удалить пост может только его автор
	if post.UserID != userID {
		return models.ErrUnauthorized
	}

	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) Like(ctx context.Context, postID, userID string) ([]models.Like, error) {
	_, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// повторный лайк отклоняется, а не проглатывается молча
	err = p.postRepo.AddLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	return p.postRepo.GetLikes(ctx, postID)
}

func (p *postService) Unlike(ctx context.Context, postID, userID string) ([]models.Like, error) {
	_, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	err = p.postRepo.RemoveLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	return p.postRepo.GetLikes(ctx, postID)
}

func (p *postService) AddComment(ctx context.Context, postID, userID string, input NewCommentInput) ([]models.Comment, error) {
	_, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   input.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	err = p.postRepo.AddComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	return p.postRepo.GetComments(ctx, postID)
}

func (p *postService) RemoveComment(ctx context.Context, postID, commentID, userID string) ([]models.Comment, error) {
	_, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := p.postRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	// удалить комментарий может только его автор,
	// владелец поста здесь прав не имеет
	if comment.UserID != userID {
		return nil, models.ErrUnauthorized
	}

	// удаление строго по comment_id найденного комментария
	err = p.postRepo.DeleteComment(ctx, comment.CommentID)
	if err != nil {
		return nil, err
	}

	return p.postRepo.GetComments(ctx, postID)
}

func (p *postService) attachCollections(ctx context.Context, post *models.Post) error {
	likes, err := p.postRepo.GetLikes(ctx, post.PostID)
	if err != nil {
		return err
	}
	post.Likes = likes

	comments, err := p.postRepo.GetComments(ctx, post.PostID)
	if err != nil {
		return err
	}
	post.Comments = comments

	return nil
}
