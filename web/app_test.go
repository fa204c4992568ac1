package web

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asmita0917/multi-user-blog/internal/auth"
	"github.com/asmita0917/multi-user-blog/internal/database"
)

// newTestApp wires an app against a throwaway database and a test secret.
// Templates are read from the repository's ui/html directory.
func newTestApp(t *testing.T) *app {
	t.Helper()

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &app{
		infoLog:        log.New(io.Discard, "", 0),
		errorLog:       log.New(io.Discard, "", 0),
		HTMLDir:        filepath.Join("..", "ui", "html"),
		StaticDir:      filepath.Join("..", "ui", "static"),
		Signer:         auth.NewSigner("test-secret"),
		UserService:    database.NewUserService(db),
		PostService:    database.NewPostService(db),
		CommentService: database.NewCommentService(db),
	}
}

func (app *app) get(t *testing.T, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	app.routes().ServeHTTP(w, r)
	return w
}

func (app *app) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		r.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	app.routes().ServeHTTP(w, r)
	return w
}

// signupUser registers a user through the HTTP surface and returns the
// session cookie the server set.
func (app *app) signupUser(t *testing.T, name, password string) *http.Cookie {
	t.Helper()

	w := app.postForm(t, "/signup", url.Values{
		"username": {name},
		"password": {password},
		"verify":   {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/blog", w.Result().Header.Get("Location"))

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie, "signup must set the session cookie")
	return cookie
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

// createPost publishes a post through the HTTP surface and returns its id
// as found in the redirect target.
func (app *app) createPost(t *testing.T, cookie *http.Cookie, title, content string) string {
	t.Helper()

	w := app.postForm(t, "/blog/newpost", url.Values{
		"title":   {title},
		"content": {content},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	location := w.Result().Header.Get("Location")
	require.True(t, strings.HasPrefix(location, "/blog/"), "got redirect to %q", location)
	return strings.TrimPrefix(location, "/blog/")
}
