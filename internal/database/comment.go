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
	ErrCommentNotFound     = errors.New("comment not found")
	ErrEmptyComment        = errors.New("comment cannot be empty")
	ErrCommentCreateFailed = errors.New("failed to create comment")
	ErrCommentUpdateFailed = errors.New("failed to update comment")
	ErrCommentDeleteFailed = errors.New("failed to delete comment")
	ErrNotCommentAuthor    = errors.New("only the author can modify this comment")
)

type CommentService struct {
	db *Database
}

func NewCommentService(db *Database) *CommentService {
	return &CommentService{db: db}
}

// AddComment attaches a new comment to a post.
func (cs *CommentService) AddComment(postID int, text string, userID int) (*models.Comment, error) {
	if len(strings.TrimSpace(text)) == 0 {
		return nil, ErrEmptyComment
	}

	query := `INSERT INTO comments (post_id, text, user_id, created)
		  VALUES (?, ?, ?, ?) RETURNING id, created`

	var comment models.Comment
	now := time.Now()

	err := cs.db.DBConn.QueryRow(query, postID, text, userID, now).Scan(
		&comment.ID, &comment.Created)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommentCreateFailed, err)
	}

	comment.PostID = postID
	comment.Text = text
	comment.UserID = userID

	return &comment, nil
}

// GetComment fetches a comment by id with the author's name joined in.
func (cs *CommentService) GetComment(id int) (*models.Comment, error) {
	query := `SELECT c.id, c.post_id, c.text, c.user_id, c.created, u.name
		  FROM comments c
		  JOIN users u ON c.user_id = u.id
		  WHERE c.id = ?`

	var comment models.Comment
	err := cs.db.DBConn.QueryRow(query, id).Scan(
		&comment.ID, &comment.PostID, &comment.Text, &comment.UserID,
		&comment.Created, &comment.Author)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	return &comment, nil
}

// CommentsByPost returns a post's comments in creation order, oldest
// first. Id breaks ties for comments created within the same instant.
func (cs *CommentService) CommentsByPost(postID int) ([]*models.Comment, error) {
	query := `SELECT c.id, c.post_id, c.text, c.user_id, c.created, u.name
		  FROM comments c
		  JOIN users u ON c.user_id = u.id
		  WHERE c.post_id = ?
		  ORDER BY c.created ASC, c.id ASC`

	rows, err := cs.db.DBConn.Query(query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(&comment.ID, &comment.PostID, &comment.Text, &comment.UserID,
			&comment.Created, &comment.Author)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// EditComment replaces a comment's text. Only the author may edit.
func (cs *CommentService) EditComment(id int, text string, userID int) error {
	if len(strings.TrimSpace(text)) == 0 {
		return ErrEmptyComment
	}

	if err := cs.checkCommentAuthor(id, userID); err != nil {
		return err
	}

	query := `UPDATE comments SET text = ? WHERE id = ?`
	result, err := cs.db.DBConn.Exec(query, text, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCommentUpdateFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// DeleteComment removes a comment. Ownership is enforced here so every
// caller gets the same guarantee.
func (cs *CommentService) DeleteComment(id, userID int) error {
	if err := cs.checkCommentAuthor(id, userID); err != nil {
		return err
	}

	query := `DELETE FROM comments WHERE id = ?`
	result, err := cs.db.DBConn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCommentDeleteFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// checkCommentAuthor distinguishes a missing comment from an ownership
// mismatch.
func (cs *CommentService) checkCommentAuthor(commentID, userID int) error {
	var authorID int
	query := `SELECT user_id FROM comments WHERE id = ?`
	err := cs.db.DBConn.QueryRow(query, commentID).Scan(&authorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrCommentNotFound
		}
		return err
	}
	if authorID != userID {
		return ErrNotCommentAuthor
	}
	return nil
}
