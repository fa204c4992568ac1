package web

import (
	"net/http"
	"regexp"
	"strconv"
)

var (
	viewPostRE      = regexp.MustCompile(`^/blog/(\d+)$`)
	editPostRE      = regexp.MustCompile(`^/blog/edit/(\d+)$`)
	editCommentRE   = regexp.MustCompile(`^/blog/(\d+)/editcomment/(\d+)$`)
	deleteCommentRE = regexp.MustCompile(`^/blog/(\d+)/deletecomment/(\d+)$`)
)

func (app *app) routes() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServer(http.Dir(app.StaticDir))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	mux.HandleFunc("/", app.home)

	mux.HandleFunc("/signup", app.signup)
	mux.HandleFunc("/login", app.login)
	mux.HandleFunc("/logout", app.logout)

	// Routes for authenticated users only
	mux.HandleFunc("/blog", app.requireAuth(app.blogFront))
	mux.HandleFunc("/blog/newpost", app.requireAuth(app.newPost))
	mux.HandleFunc("/blog/", app.handleBlogRoutes)

	return mux
}

// handleBlogRoutes dispatches the dynamic /blog/... routes
func (app *app) handleBlogRoutes(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// /blog/{postId}
	if matches := viewPostRE.FindStringSubmatch(path); matches != nil {
		postID, _ := strconv.Atoi(matches[1])
		app.viewPost(w, r, postID)
		return
	}

	// /blog/edit/{postId}
	if matches := editPostRE.FindStringSubmatch(path); matches != nil {
		postID, _ := strconv.Atoi(matches[1])
		app.requireAuth(func(w http.ResponseWriter, r *http.Request) {
			app.editPost(w, r, postID)
		})(w, r)
		return
	}

	// /blog/{postId}/editcomment/{commentId}
	if matches := editCommentRE.FindStringSubmatch(path); matches != nil {
		postID, _ := strconv.Atoi(matches[1])
		commentID, _ := strconv.Atoi(matches[2])
		app.requireAuth(func(w http.ResponseWriter, r *http.Request) {
			app.editComment(w, r, postID, commentID)
		})(w, r)
		return
	}

	// /blog/{postId}/deletecomment/{commentId}
	if matches := deleteCommentRE.FindStringSubmatch(path); matches != nil {
		postID, _ := strconv.Atoi(matches[1])
		commentID, _ := strconv.Atoi(matches[2])
		app.requireAuth(func(w http.ResponseWriter, r *http.Request) {
			app.deleteComment(w, r, postID, commentID)
		})(w, r)
		return
	}

	app.NotFound(w)
}
