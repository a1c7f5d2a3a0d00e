package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
	"github.com/minwoo/dormhub/internal/pkg/logger"
)

// IPostRepository defines the interface for community board database operations
type IPostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) (int64, error)
	GetPostByID(ctx context.Context, id int64) (*models.Post, error)
	ListPosts(ctx context.Context, offset uint64, limit int) ([]*models.Post, int64, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id int64) error

	CreateComment(ctx context.Context, comment *models.Comment) (int64, error)
	GetCommentByID(ctx context.Context, id int64) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error

	ToggleLike(ctx context.Context, userID, postID int64) (bool, int64, error)
}

// PostRepository handles community board database operations
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// CreatePost inserts a new post
func (r *PostRepository) CreatePost(ctx context.Context, post *models.Post) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO posts (author_id, title, content, image_path)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		post.AuthorID, post.Title, post.Content, post.ImagePath).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating post: %w", err)
	}

	return id, nil
}

// GetPostByID retrieves a post with its comments and like count
func (r *PostRepository) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	post := &models.Post{}
	err := r.db.QueryRow(ctx, `
		SELECT p.id, p.author_id, p.title, p.content, p.image_path, p.created_at, p.updated_at,
		       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id)
		FROM posts p
		WHERE p.id = $1`,
		id).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Content,
		&post.ImagePath, &post.CreatedAt, &post.UpdatedAt, &post.LikeCount)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}

	comments, err := r.commentsForPosts(ctx, []int64{post.ID})
	if err != nil {
		return nil, err
	}
	post.Comments = comments[post.ID]

	return post, nil
}

// ListPosts retrieves a page of posts, newest first, with comments and like
// counts. The second return value is the total number of posts.
func (r *PostRepository) ListPosts(ctx context.Context, offset uint64, limit int) ([]*models.Post, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting posts: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.author_id, p.title, p.content, p.image_path, p.created_at, p.updated_at,
		       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id)
		FROM posts p
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	var ids []int64
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(
			&post.ID, &post.AuthorID, &post.Title, &post.Content,
			&post.ImagePath, &post.CreatedAt, &post.UpdatedAt, &post.LikeCount); err != nil {
			return nil, 0, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
		ids = append(ids, post.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating post rows: %w", err)
	}

	if len(ids) == 0 {
		return posts, total, nil
	}

	comments, err := r.commentsForPosts(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for _, post := range posts {
		post.Comments = comments[post.ID]
	}

	return posts, total, nil
}

func (r *PostRepository) commentsForPosts(ctx context.Context, postIDs []int64) (map[int64][]*models.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, post_id, author_id, content, created_at
		FROM comments
		WHERE post_id = ANY($1)
		ORDER BY created_at ASC, id ASC`,
		postIDs)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]*models.Comment)
	for rows.Next() {
		comment := &models.Comment{}
		if err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID,
			&comment.Content, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		result[comment.PostID] = append(result[comment.PostID], comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return result, nil
}

// UpdatePost updates a post's title, content and image path
func (r *PostRepository) UpdatePost(ctx context.Context, post *models.Post) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2, image_path = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4`,
		post.Title, post.Content, post.ImagePath, post.ID)

	if err != nil {
		return fmt.Errorf("error updating post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// DeletePost removes a post. Comments and likes go with it via cascade.
func (r *PostRepository) DeletePost(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// CreateComment inserts a comment on a post
func (r *PostRepository) CreateComment(ctx context.Context, comment *models.Comment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO comments (post_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id`,
		comment.PostID, comment.AuthorID, comment.Content).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating comment: %w", err)
	}

	return id, nil
}

// GetCommentByID retrieves a comment by ID
func (r *PostRepository) GetCommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	comment := &models.Comment{}
	err := r.db.QueryRow(ctx, `
		SELECT id, post_id, author_id, content, created_at
		FROM comments
		WHERE id = $1`,
		id).Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID,
		&comment.Content, &comment.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error retrieving comment: %w", err)
	}

	return comment, nil
}

// DeleteComment removes a comment
func (r *PostRepository) DeleteComment(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}

	return nil
}

// ToggleLike flips the like of a user on a post inside a single transaction
// and returns the resulting state together with the fresh like count.
func (r *PostRepository) ToggleLike(ctx context.Context, userID, postID int64) (bool, int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("failed to start like transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`,
		postID).Scan(&exists); err != nil {
		return false, 0, fmt.Errorf("error checking post: %w", err)
	}
	if !exists {
		return false, 0, apperrors.ErrPostNotFound
	}

	cmdTag, err := tx.Exec(ctx, `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID)
	if err != nil {
		return false, 0, fmt.Errorf("error inserting like: %w", err)
	}

	liked := cmdTag.RowsAffected() > 0
	if !liked {
		// Already liked, so this toggle removes it.
		if _, err := tx.Exec(ctx, `
			DELETE FROM likes WHERE user_id = $1 AND post_id = $2`,
			userID, postID); err != nil {
			return false, 0, fmt.Errorf("error removing like: %w", err)
		}
	}

	var count int64
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM likes WHERE post_id = $1`,
		postID).Scan(&count); err != nil {
		return false, 0, fmt.Errorf("error counting likes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, 0, fmt.Errorf("failed to commit like transaction: %w", err)
	}

	logger.Debug().Int64("userID", userID).Int64("postID", postID).Bool("liked", liked).Msg("Like toggled")
	return liked, count, nil
}
