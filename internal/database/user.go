package database

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/asmita0917/multi-user-blog/internal/auth"
	"github.com/asmita0917/multi-user-blog/internal/models"
)

var (
	ErrUsernameTaken      = errors.New("that user already exists")
	ErrInvalidUsername    = errors.New("that's not a valid username")
	ErrInvalidPassword    = errors.New("that wasn't a valid password")
	ErrInvalidEmail       = errors.New("that's not a valid email")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid login")
	ErrUserCreateFailed   = errors.New("failed to create user")
)

var (
	usernameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	passwordRE = regexp.MustCompile(`^.{3,20}$`)
	emailRE    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// ValidUsername reports whether name is 3-20 chars of [a-zA-Z0-9_-].
func ValidUsername(name string) bool {
	return usernameRE.MatchString(name)
}

// ValidPassword reports whether password is 3-20 chars.
func ValidPassword(password string) bool {
	return passwordRE.MatchString(password)
}

// ValidEmail reports whether email is empty or has a local@domain.tld shape.
func ValidEmail(email string) bool {
	return email == "" || emailRE.MatchString(email)
}

type UserService struct {
	db *Database
}

func NewUserService(db *Database) *UserService {
	return &UserService{db: db}
}

// Register creates a new user. The username must be unique; the password
// is stored as a salted hash, never in the clear.
func (us *UserService) Register(name, password, email string) (*models.User, error) {
	if !ValidUsername(name) {
		return nil, ErrInvalidUsername
	}
	if !ValidPassword(password) {
		return nil, ErrInvalidPassword
	}
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	// Friendly pre-check; the unique index on users.name is what actually
	// guarantees no duplicate slips through a concurrent signup.
	if _, err := us.ByName(name); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	pwHash := auth.HashPassword(name, password)

	query := `INSERT INTO users (name, pw_hash, email, created)
		  VALUES (?, ?, ?, ?) RETURNING id, created`

	var user models.User
	now := time.Now()

	err := us.db.DBConn.QueryRow(query, name, pwHash, email, now).Scan(&user.ID, &user.Created)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserCreateFailed, err)
	}

	user.Name = name
	user.PwHash = pwHash
	user.Email = email

	return &user, nil
}

// ByName looks up a user by exact (case-sensitive) username.
func (us *UserService) ByName(name string) (*models.User, error) {
	query := `SELECT id, name, pw_hash, email, created FROM users WHERE name = ?`
	return us.scanUser(us.db.DBConn.QueryRow(query, name))
}

// ByID looks up a user by id.
func (us *UserService) ByID(id int) (*models.User, error) {
	query := `SELECT id, name, pw_hash, email, created FROM users WHERE id = ?`
	return us.scanUser(us.db.DBConn.QueryRow(query, id))
}

// Login verifies a username/password pair. Unknown users and wrong
// passwords are not distinguished; both return ErrInvalidCredentials.
func (us *UserService) Login(name, password string) (*models.User, error) {
	user, err := us.ByName(name)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(name, password, user.PwHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (us *UserService) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.PwHash, &user.Email, &user.Created)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
