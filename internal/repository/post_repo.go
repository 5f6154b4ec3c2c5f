package repository

import (
	"context"
	"database/sql"

	"github.com/community-board-api/internal/database"
	"github.com/community-board-api/internal/models"
	"github.com/lib/pq"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

// Create inserts a new post
func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, user_id, title, content, author, category, participants, max_participants, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.UserID, post.Title, post.Content, post.Author, post.Category,
		pq.Array(post.Participants), post.MaxParticipants, post.CreatedAt,
	)
	return err
}

// GetByID retrieves a post by ID
func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `
		SELECT id, user_id, title, content, author, category, participants, max_participants, created_at
		FROM posts WHERE id = $1
	`
	var post models.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.Title, &post.Content, &post.Author, &post.Category,
		pq.Array(&post.Participants), &post.MaxParticipants, &post.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// List retrieves posts in storage order, optionally filtered by exact
// category match. An empty category returns everything.
func (r *postRepo) List(ctx context.Context, category string) ([]*models.Post, error) {
	query := `
		SELECT id, user_id, title, content, author, category, participants, max_participants, created_at
		FROM posts
	`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		var post models.Post
		err := rows.Scan(
			&post.ID, &post.UserID, &post.Title, &post.Content, &post.Author, &post.Category,
			pq.Array(&post.Participants), &post.MaxParticipants, &post.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// UpdateContent overwrites title and content only. Returns false when
// no post with the given id exists.
func (r *postRepo) UpdateContent(ctx context.Context, id, title, content string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = $2, content = $3 WHERE id = $1`,
		id, title, content,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a post by ID. Comments referencing it are left in
// place (no cascade).
func (r *postRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AddParticipant appends a participant with a single guarded UPDATE so
// the capacity and membership checks hold under concurrent joins.
// Returns false when the post is missing, full, or already joined.
func (r *postRepo) AddParticipant(ctx context.Context, id, participant string) (bool, error) {
	query := `
		UPDATE posts
		SET participants = array_append(participants, $2)
		WHERE id = $1
		  AND cardinality(participants) < max_participants
		  AND NOT ($2 = ANY(participants))
	`
	res, err := r.db.ExecContext(ctx, query, id, participant)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of posts
func (r *postRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}
