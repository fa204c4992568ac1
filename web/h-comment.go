package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/asmita0917/multi-user-blog/internal/database"
)

// editComment renders the edit-comment form and applies the edit,
// comment author only. A comment that no longer exists is an inline
// message, never a crash.
func (app *app) editComment(w http.ResponseWriter, r *http.Request, postID, commentID int) {
	user := app.getCurrentUser(r)

	if r.Method != http.MethodPost {
		comment, err := app.CommentService.GetComment(commentID)
		if err != nil {
			if errors.Is(err, database.ErrCommentNotFound) {
				app.renderEditComment(w, r, &HTMLData{
					Title:     "Edit Comment",
					EditError: "This comment no longer exists",
				})
				return
			}
			app.ServerError(w, err)
			return
		}

		if comment.UserID != user.ID {
			app.renderEditComment(w, r, &HTMLData{
				Title:     "Edit Comment",
				EditError: "You cannot edit other users' comments",
			})
			return
		}

		app.renderEditComment(w, r, &HTMLData{
			Title:       "Edit Comment",
			CommentText: comment.Text,
		})
		return
	}

	// Cancel takes the user straight back to the post
	if r.FormValue("cancel") != "" {
		http.Redirect(w, r, "/blog/"+strconv.Itoa(postID), http.StatusSeeOther)
		return
	}

	if r.FormValue("update_comment") == "" {
		app.ClientError(w, http.StatusBadRequest)
		return
	}

	text := r.FormValue("comment_text")

	err := app.CommentService.EditComment(commentID, text, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrCommentNotFound):
			app.renderEditComment(w, r, &HTMLData{
				Title:     "Edit Comment",
				EditError: "This comment no longer exists",
			})
		case errors.Is(err, database.ErrNotCommentAuthor):
			app.renderEditComment(w, r, &HTMLData{
				Title:       "Edit Comment",
				CommentText: text,
				EditError:   "You cannot edit other users' comments",
			})
		case errors.Is(err, database.ErrEmptyComment):
			app.renderEditComment(w, r, &HTMLData{
				Title:     "Edit Comment",
				EditError: "Please enter a comment in the text area to post",
			})
		default:
			app.ServerError(w, err)
		}
		return
	}

	app.infoLog.Printf("Comment updated: ID=%d, Author=%q", commentID, user.Name)

	http.Redirect(w, r, "/blog/"+strconv.Itoa(postID), http.StatusSeeOther)
}

// deleteComment removes a comment, comment author only
func (app *app) deleteComment(w http.ResponseWriter, r *http.Request, postID, commentID int) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	user := app.getCurrentUser(r)

	err := app.CommentService.DeleteComment(commentID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrCommentNotFound):
			app.renderEditComment(w, r, &HTMLData{
				Title:     "Delete Comment",
				EditError: "This comment no longer exists",
			})
		case errors.Is(err, database.ErrNotCommentAuthor):
			app.renderEditComment(w, r, &HTMLData{
				Title:     "Delete Comment",
				EditError: "You cannot delete other user's comments",
			})
		default:
			app.ServerError(w, err)
		}
		return
	}

	app.infoLog.Printf("Comment deleted: ID=%d, Author=%q", commentID, user.Name)

	http.Redirect(w, r, "/blog/"+strconv.Itoa(postID), http.StatusSeeOther)
}

func (app *app) renderEditComment(w http.ResponseWriter, r *http.Request, data *HTMLData) {
	app.RenderHTML(w, r, "editcomment.page.html", data)
}
