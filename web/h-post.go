package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/asmita0917/multi-user-blog/internal/database"
	"github.com/asmita0917/multi-user-blog/internal/models"
)

// home lists all posts, newest first
func (app *app) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.NotFound(w)
		return
	}
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	posts, err := app.PostService.AllPosts()
	if err != nil {
		app.errorLog.Printf("Failed to get posts: %v", err)
		posts = []*models.Post{}
	}

	data := &HTMLData{
		Title: "Multi User Blog",
		Posts: posts,
	}

	app.RenderHTML(w, r, "home.page.html", data)
}

// blogFront is the landing page for signed-in users
func (app *app) blogFront(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	data := &HTMLData{
		Title: "Welcome",
	}

	app.RenderHTML(w, r, "blog.page.html", data)
}

// newPost renders the new-post form and creates the post
func (app *app) newPost(w http.ResponseWriter, r *http.Request) {
	user := app.getCurrentUser(r)

	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title:       "New Post",
			CurrentUser: user,
		}
		app.RenderHTML(w, r, "newpost.page.html", data)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))

	post, err := app.PostService.AddPost(title, content, user.ID)
	if err != nil {
		if errors.Is(err, database.ErrEmptyTitle) || errors.Is(err, database.ErrEmptyContent) {
			data := &HTMLData{
				Title:       "New Post",
				FormError:   "Both a title and some content are required.",
				CurrentUser: user,
				FormData: map[string]string{
					"title":   title,
					"content": content,
				},
			}
			app.RenderHTML(w, r, "newpost.page.html", data)
			return
		}
		app.ServerError(w, err)
		return
	}

	app.infoLog.Printf("Post created: ID=%d, Title=%q, Author=%q", post.ID, post.Title, user.Name)

	http.Redirect(w, r, "/blog/"+strconv.Itoa(post.ID), http.StatusSeeOther)
}

// viewPost shows a single post with its comments; POST carries the
// edit / delete / add_comment actions from the post page
func (app *app) viewPost(w http.ResponseWriter, r *http.Request, postID int) {
	post, err := app.PostService.GetPost(postID)
	if err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			app.NotFound(w)
			return
		}
		app.ServerError(w, err)
		return
	}

	if r.Method != http.MethodPost {
		app.renderPostPage(w, r, post, "")
		return
	}

	// Every mutating action requires a signed-in user
	user := app.getCurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	switch {
	case r.FormValue("edit") != "":
		if post.UserID != user.ID {
			app.renderPostPage(w, r, post, "You cannot edit other user's posts")
			return
		}
		http.Redirect(w, r, "/blog/edit/"+strconv.Itoa(postID), http.StatusSeeOther)

	case r.FormValue("delete") != "":
		if err := app.PostService.DeletePost(postID, user.ID); err != nil {
			if errors.Is(err, database.ErrNotPostAuthor) {
				app.renderPostPage(w, r, post, "You cannot delete other user's posts")
				return
			}
			app.ServerError(w, err)
			return
		}
		app.infoLog.Printf("Post deleted: ID=%d, Author=%q", postID, user.Name)
		http.Redirect(w, r, "/", http.StatusSeeOther)

	case r.FormValue("add_comment") != "":
		text := r.FormValue("comment_text")
		if strings.TrimSpace(text) == "" {
			app.renderPostPageWithCommentError(w, r, post,
				"Please enter a comment in the text area to post")
			return
		}
		if _, err := app.CommentService.AddComment(postID, text, user.ID); err != nil {
			app.ServerError(w, err)
			return
		}
		http.Redirect(w, r, "/blog/"+strconv.Itoa(postID), http.StatusSeeOther)

	default:
		app.ClientError(w, http.StatusBadRequest)
	}
}

func (app *app) renderPostPage(w http.ResponseWriter, r *http.Request, post *models.Post, formError string) {
	comments, err := app.CommentService.CommentsByPost(post.ID)
	if err != nil {
		app.errorLog.Printf("Failed to get comments for post %d: %v", post.ID, err)
		comments = []*models.Comment{}
	}

	data := &HTMLData{
		Title:        post.Title,
		FormError:    formError,
		Post:         post,
		Comments:     comments,
		CommentCount: len(comments),
	}

	app.RenderHTML(w, r, "post.page.html", data)
}

func (app *app) renderPostPageWithCommentError(w http.ResponseWriter, r *http.Request, post *models.Post, commentError string) {
	comments, err := app.CommentService.CommentsByPost(post.ID)
	if err != nil {
		app.errorLog.Printf("Failed to get comments for post %d: %v", post.ID, err)
		comments = []*models.Comment{}
	}

	data := &HTMLData{
		Title:        post.Title,
		Post:         post,
		Comments:     comments,
		CommentCount: len(comments),
		CommentError: commentError,
	}

	app.RenderHTML(w, r, "post.page.html", data)
}

// editPost renders the edit form and applies the edit, author only
func (app *app) editPost(w http.ResponseWriter, r *http.Request, postID int) {
	user := app.getCurrentUser(r)

	post, err := app.PostService.GetPost(postID)
	if err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			app.NotFound(w)
			return
		}
		app.ServerError(w, err)
		return
	}

	if r.Method != http.MethodPost {
		if post.UserID != user.ID {
			data := &HTMLData{
				Title:       "Edit Post",
				CurrentUser: user,
				EditError:   "You cannot edit other user's posts",
			}
			app.RenderHTML(w, r, "editpost.page.html", data)
			return
		}

		data := &HTMLData{
			Title:       "Edit Post",
			CurrentUser: user,
			Post:        post,
			FormData: map[string]string{
				"title":   post.Title,
				"content": post.Content,
			},
		}
		app.RenderHTML(w, r, "editpost.page.html", data)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))

	err = app.PostService.EditPost(postID, title, content, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotPostAuthor):
			data := &HTMLData{
				Title:       "Edit Post",
				CurrentUser: user,
				EditError:   "You cannot edit other user's posts",
			}
			app.RenderHTML(w, r, "editpost.page.html", data)
		case errors.Is(err, database.ErrEmptyTitle), errors.Is(err, database.ErrEmptyContent):
			data := &HTMLData{
				Title:       "Edit Post",
				FormError:   "Both a title and some content are required.",
				CurrentUser: user,
				Post:        post,
				FormData: map[string]string{
					"title":   title,
					"content": content,
				},
			}
			app.RenderHTML(w, r, "editpost.page.html", data)
		default:
			app.ServerError(w, err)
		}
		return
	}

	app.infoLog.Printf("Post updated: ID=%d, Title=%q, Author=%q", postID, title, user.Name)

	http.Redirect(w, r, "/blog/"+strconv.Itoa(postID), http.StatusSeeOther)
}
