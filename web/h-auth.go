package web

import (
	"errors"
	"net/http"

	"github.com/asmita0917/multi-user-blog/internal/database"
)

func (app *app) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title: "Signup",
		}
		app.RenderHTML(w, r, "signup.page.html", data)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	verify := r.FormValue("verify")
	email := r.FormValue("email")

	// Field-level validation. The form is re-rendered with everything the
	// user typed except the passwords.
	fieldErrors := make(map[string]string)

	if !database.ValidUsername(username) {
		fieldErrors["username"] = "That's not a valid username."
	}
	if !database.ValidPassword(password) {
		fieldErrors["password"] = "That wasn't a valid password."
	} else if password != verify {
		fieldErrors["verify"] = "Your passwords didn't match."
	}
	if !database.ValidEmail(email) {
		fieldErrors["email"] = "That's not a valid email."
	}

	if len(fieldErrors) > 0 {
		data := &HTMLData{
			Title:       "Signup",
			FieldErrors: fieldErrors,
			FormData: map[string]string{
				"username": username,
				"email":    email,
			},
		}
		app.RenderHTML(w, r, "signup.page.html", data)
		return
	}

	user, err := app.UserService.Register(username, password, email)
	if err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			data := &HTMLData{
				Title:       "Signup",
				FieldErrors: map[string]string{"username": "That user already exists."},
				FormData: map[string]string{
					"username": username,
					"email":    email,
				},
			}
			app.RenderHTML(w, r, "signup.page.html", data)
			return
		}
		app.ServerError(w, err)
		return
	}

	app.infoLog.Printf("Registered user: %q (ID %d)", user.Name, user.ID)

	app.setSessionCookie(w, user.ID)
	http.Redirect(w, r, "/blog", http.StatusSeeOther)
}

func (app *app) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title: "Login",
		}
		app.RenderHTML(w, r, "login.page.html", data)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := app.UserService.Login(username, password)
	if err != nil {
		if errors.Is(err, database.ErrInvalidCredentials) {
			// One generic message; no hint whether the name or the
			// password was wrong
			data := &HTMLData{
				Title:     "Login",
				FormError: "Invalid login",
				FormData: map[string]string{
					"username": username,
				},
			}
			app.RenderHTML(w, r, "login.page.html", data)
			return
		}
		app.ServerError(w, err)
		return
	}

	app.infoLog.Printf("Login successful: id=%d, username=%q", user.ID, user.Name)

	app.setSessionCookie(w, user.ID)
	http.Redirect(w, r, "/blog", http.StatusSeeOther)
}

func (app *app) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	app.clearSessionCookie(w)
	http.Redirect(w, r, "/blog", http.StatusSeeOther)
}
