package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asmita0917/multi-user-blog/internal/models"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyContent     = errors.New("content cannot be empty")
	ErrPostCreateFailed = errors.New("failed to create post")
	ErrPostUpdateFailed = errors.New("failed to update post")
	ErrPostDeleteFailed = errors.New("failed to delete post")
	ErrNotPostAuthor    = errors.New("only the author can modify this post")
)

type PostService struct {
	db *Database
}

func NewPostService(db *Database) *PostService {
	return &PostService{db: db}
}

// AddPost creates a new post owned by userID.
func (ps *PostService) AddPost(title, content string, userID int) (*models.Post, error) {
	if err := ps.validatePostData(title, content); err != nil {
		return nil, err
	}

	query := `INSERT INTO posts (title, content, user_id, created, last_updated)
		  VALUES (?, ?, ?, ?, ?) RETURNING id, created, last_updated`

	var post models.Post
	now := time.Now()

	err := ps.db.DBConn.QueryRow(query, title, content, userID, now, now).Scan(
		&post.ID, &post.Created, &post.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPostCreateFailed, err)
	}

	post.Title = title
	post.Content = content
	post.UserID = userID

	return &post, nil
}

// GetPost fetches a post by id with the author's name joined in.
func (ps *PostService) GetPost(id int) (*models.Post, error) {
	query := `SELECT p.id, p.title, p.content, p.user_id, p.created, p.last_updated, u.name
		  FROM posts p
		  JOIN users u ON p.user_id = u.id
		  WHERE p.id = ?`

	var post models.Post
	err := ps.db.DBConn.QueryRow(query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.UserID,
		&post.Created, &post.LastUpdated, &post.Author)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// AllPosts returns every post, newest first.
func (ps *PostService) AllPosts() ([]*models.Post, error) {
	query := `SELECT p.id, p.title, p.content, p.user_id, p.created, p.last_updated, u.name
		  FROM posts p
		  JOIN users u ON p.user_id = u.id
		  ORDER BY p.created DESC, p.id DESC`

	rows, err := ps.db.DBConn.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.UserID,
			&post.Created, &post.LastUpdated, &post.Author)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// EditPost updates a post's title and content. Only the author may edit;
// anyone else gets ErrNotPostAuthor and the post is left untouched.
// last_updated is refreshed on success.
func (ps *PostService) EditPost(id int, title, content string, userID int) error {
	if err := ps.validatePostData(title, content); err != nil {
		return err
	}

	if err := ps.checkPostAuthor(id, userID); err != nil {
		return err
	}

	query := `UPDATE posts SET title = ?, content = ?, last_updated = ? WHERE id = ?`
	_, err := ps.db.DBConn.Exec(query, title, content, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPostUpdateFailed, err)
	}

	return nil
}

// DeletePost removes a post and, via the schema's cascade, its comments.
// Ownership is enforced here so every caller gets the same guarantee.
func (ps *PostService) DeletePost(id, userID int) error {
	if err := ps.checkPostAuthor(id, userID); err != nil {
		return err
	}

	query := `DELETE FROM posts WHERE id = ?`
	result, err := ps.db.DBConn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPostDeleteFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// checkPostAuthor distinguishes a missing post from an ownership mismatch.
func (ps *PostService) checkPostAuthor(postID, userID int) error {
	var authorID int
	query := `SELECT user_id FROM posts WHERE id = ?`
	err := ps.db.DBConn.QueryRow(query, postID).Scan(&authorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrPostNotFound
		}
		return err
	}
	if authorID != userID {
		return ErrNotPostAuthor
	}
	return nil
}

func (ps *PostService) validatePostData(title, content string) error {
	if len(strings.TrimSpace(title)) == 0 {
		return ErrEmptyTitle
	}
	if len(strings.TrimSpace(content)) == 0 {
		return ErrEmptyContent
	}
	return nil
}
