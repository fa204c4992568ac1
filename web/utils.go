package web

import (
	"net/http"
	"strconv"

	"github.com/asmita0917/multi-user-blog/internal/models"
)

const SessionCookieName = "user_id"

// setSessionCookie writes the signed user id cookie. No MaxAge is set,
// so the cookie lives for the browser session.
func (app *app) setSessionCookie(w http.ResponseWriter, userID int) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    app.Signer.Sign(strconv.Itoa(userID)),
		Path:     "/",
		HttpOnly: true,  // XSS protection
		Secure:   false, // set true behind HTTPS
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}

// clearSessionCookie removes the session cookie
func (app *app) clearSessionCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)
}

// getCurrentUser resolves the user from the signed cookie. Any failure
// along the way (no cookie, bad signature, bad id, unknown user) means
// the visitor is anonymous, not that something went wrong.
func (app *app) getCurrentUser(r *http.Request) *models.User {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	value, ok := app.Signer.Verify(cookie.Value)
	if !ok {
		return nil
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	user, err := app.UserService.ByID(id)
	if err != nil {
		return nil
	}

	return user
}

// isAuthenticated reports whether the request carries a valid session
func (app *app) isAuthenticated(r *http.Request) bool {
	return app.getCurrentUser(r) != nil
}
