package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconnect/internal/models"
)

func newMockPostRepo(t *testing.T) (*PostRepositoryImpl, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewPostRepository(sqlxDB)

	return repo, mock, func() { db.Close() }
}

func TestPostRepository_AddLike(t *testing.T) {
	repo, mock, closeDB := newMockPostRepo(t)
	defer closeDB()

	ctx := context.Background()
	postID := uuid.New().String()
	userID := uuid.New().String()

	t.Run("Успешное добавление лайка", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT (post_id, user_id) DO NOTHING`).
			WithArgs(postID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AddLike(ctx, postID, userID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Повторный лайк отклоняется", func(t *testing.T) {
		// конфликт по первичному ключу: вставка не произошла
		mock.ExpectExec(`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT (post_id, user_id) DO NOTHING`).
			WithArgs(postID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AddLike(ctx, postID, userID)

		assert.ErrorIs(t, err, models.ErrAlreadyLiked)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT (post_id, user_id) DO NOTHING`).
			WithArgs(postID, userID).
			WillReturnError(errors.New("connection failed"))

		err := repo.AddLike(ctx, postID, userID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при добавлении лайка")
	})
}

func TestPostRepository_RemoveLike(t *testing.T) {
	repo, mock, closeDB := newMockPostRepo(t)
	defer closeDB()

	ctx := context.Background()
	postID := uuid.New().String()
	userID := uuid.New().String()

	t.Run("Успешное удаление лайка", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`).
			WithArgs(postID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.RemoveLike(ctx, postID, userID)

		assert.NoError(t, err)
	})

	t.Run("Лайка не было", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`).
			WithArgs(postID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemoveLike(ctx, postID, userID)

		assert.ErrorIs(t, err, models.ErrNotLiked)
	})
}

func TestPostRepository_GetByID(t *testing.T) {
	repo, mock, closeDB := newMockPostRepo(t)
	defer closeDB()

	ctx := context.Background()
	postID := uuid.New().String()
	userID := uuid.New().String()

	t.Run("Успешное получение поста", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"post_id", "user_id", "text", "name", "avatar", "created_at"}).
			AddRow(postID, userID, "hello", "Ivan", "http://avatar", time.Now())

		mock.ExpectQuery(`SELECT * FROM posts WHERE post_id = $1`).
			WithArgs(postID).
			WillReturnRows(rows)

		post, err := repo.GetByID(ctx, postID)

		require.NoError(t, err)
		assert.Equal(t, postID, post.PostID)
		assert.Equal(t, "hello", post.Text)
	})

	t.Run("Пост не найден", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM posts WHERE post_id = $1`).
			WithArgs(postID).
			WillReturnError(sql.ErrNoRows)

		post, err := repo.GetByID(ctx, postID)

		assert.Nil(t, post)
		assert.ErrorIs(t, err, models.ErrPostNotFound)
	})
}

func TestPostRepository_GetLikes(t *testing.T) {
	repo, mock, closeDB := newMockPostRepo(t)
	defer closeDB()

	ctx := context.Background()
	postID := uuid.New().String()

	t.Run("Лайки отдаются от новых к старым", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"post_id", "user_id", "created_at"}).
			AddRow(postID, "user-2", now).
			AddRow(postID, "user-1", now.Add(-time.Minute))

		mock.ExpectQuery(`SELECT * FROM post_likes WHERE post_id = $1 ORDER BY created_at DESC`).
			WithArgs(postID).
			WillReturnRows(rows)

		likes, err := repo.GetLikes(ctx, postID)

		require.NoError(t, err)
		require.Len(t, likes, 2)
		assert.Equal(t, "user-2", likes[0].UserID)
		assert.Equal(t, "user-1", likes[1].UserID)
	})

	t.Run("Пустой список без лайков", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"post_id", "user_id", "created_at"})

		mock.ExpectQuery(`SELECT * FROM post_likes WHERE post_id = $1 ORDER BY created_at DESC`).
			WithArgs(postID).
			WillReturnRows(rows)

		likes, err := repo.GetLikes(ctx, postID)

		require.NoError(t, err)
		assert.NotNil(t, likes)
		assert.Len(t, likes, 0)
	})
}

func TestPostRepository_AddComment(t *testing.T) {
	repo, mock, closeDB := newMockPostRepo(t)
	defer closeDB()

	ctx := context.Background()
	postID := uuid.New().String()
	userID := uuid.New().String()

	t.Run("Комментарий получает идентификатор и время создания", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO comments (comment_id, post_id, user_id, text, name, avatar, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`).
			WithArgs(sqlmock.AnyArg(), postID, userID, "nice post", "Ivan", "http://avatar", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		comment := &models.Comment{
			PostID: postID,
			UserID: userID,
			Text:   "nice post",
			Name:   "Ivan",
			Avatar: "http://avatar",
		}

		err := repo.AddComment(ctx, comment)

		require.NoError(t, err)
		assert.NotEmpty(t, comment.CommentID)
		assert.False(t, comment.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO comments (comment_id, post_id, user_id, text, name, avatar, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`).
			WithArgs(sqlmock.AnyArg(), postID, userID, "nice post", "Ivan", "http://avatar", sqlmock.AnyArg()).
			WillReturnError(errors.New("connection failed"))

		comment := &models.Comment{
			PostID: postID,
			UserID: userID,
			Text:   "nice post",
			Name:   "Ivan",
			Avatar: "http://avatar",
		}

		err := repo.AddComment(ctx, comment)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при добавлении комментария")
	})
}

func TestPostRepository_GetComments(t *testing.T) {
	repo, mock, closeDB := newMockPostRepo(t)
	defer closeDB()

	ctx := context.Background()
	postID := uuid.New().String()

	t.Run("Комментарии отдаются от новых к старым", func(t *testing.T) {
		// последний добавленный комментарий стоит первым
		now := time.Now()
		rows := sqlmock.NewRows([]string{"comment_id", "post_id", "user_id", "text", "name", "avatar", "created_at"}).
			AddRow("comment-2", postID, "user-2", "second", "Petr", "", now).
			AddRow("comment-1", postID, "user-1", "first", "Ivan", "", now.Add(-time.Minute))

		mock.ExpectQuery(`SELECT * FROM comments WHERE post_id = $1 ORDER BY created_at DESC`).
			WithArgs(postID).
			WillReturnRows(rows)

		comments, err := repo.GetComments(ctx, postID)

		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "comment-2", comments[0].CommentID)
		assert.Equal(t, "second", comments[0].Text)
		assert.Equal(t, "comment-1", comments[1].CommentID)
	})

	t.Run("Пустой список без комментариев", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"comment_id", "post_id", "user_id", "text", "name", "avatar", "created_at"})

		mock.ExpectQuery(`SELECT * FROM comments WHERE post_id = $1 ORDER BY created_at DESC`).
			WithArgs(postID).
			WillReturnRows(rows)

		comments, err := repo.GetComments(ctx, postID)

		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Len(t, comments, 0)
	})
}

func TestPostRepository_DeleteComment(t *testing.T) {
	repo, mock, closeDB := newMockPostRepo(t)
	defer closeDB()

	ctx := context.Background()
	commentID := uuid.New().String()

	t.Run("Успешное удаление комментария", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM comments WHERE comment_id = $1`).
			WithArgs(commentID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteComment(ctx, commentID)

		assert.NoError(t, err)
	})

	t.Run("Комментарий не найден", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM comments WHERE comment_id = $1`).
			WithArgs(commentID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteComment(ctx, commentID)

		assert.ErrorIs(t, err, models.ErrCommentNotFound)
	})
}

func TestPostRepository_GetCommentByID(t *testing.T) {
	repo, mock, closeDB := newMockPostRepo(t)
	defer closeDB()

	ctx := context.Background()
	commentID := uuid.New().String()

	t.Run("Комментарий не найден", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM comments WHERE comment_id = $1`).
			WithArgs(commentID).
			WillReturnError(sql.ErrNoRows)

		comment, err := repo.GetCommentByID(ctx, commentID)

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, models.ErrCommentNotFound)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	repo, mock, closeDB := newMockPostRepo(t)
	defer closeDB()

	ctx := context.Background()
	postID := uuid.New().String()

	t.Run("Удаление несуществующего поста", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM posts WHERE post_id = $1`).
			WithArgs(postID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, postID)

		assert.ErrorIs(t, err, models.ErrPostNotFound)
	})
}
