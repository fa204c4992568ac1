package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmita0917/multi-user-blog/internal/models"
)

func registerUser(t *testing.T, us *UserService, name string) *models.User {
	t.Helper()
	user, err := us.Register(name, "secret1", "")
	require.NoError(t, err)
	return user
}

func TestAddAndGetPost(t *testing.T) {
	db := newTestDB(t)
	us := NewUserService(db)
	ps := NewPostService(db)

	alice := registerUser(t, us, "alice")

	post, err := ps.AddPost("Hello", "World", alice.ID)
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.False(t, post.Created.IsZero())
	assert.False(t, post.LastUpdated.IsZero())

	got, err := ps.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "World", got.Content)
	assert.Equal(t, alice.ID, got.UserID)
	assert.Equal(t, "alice", got.Author, "author name is resolved at read time")

	_, err = ps.GetPost(post.ID + 100)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestAddPostValidation(t *testing.T) {
	db := newTestDB(t)
	alice := registerUser(t, NewUserService(db), "alice")
	ps := NewPostService(db)

	_, err := ps.AddPost("", "World", alice.ID)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = ps.AddPost("Hello", "   ", alice.ID)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestEditPostOwnership(t *testing.T) {
	db := newTestDB(t)
	us := NewUserService(db)
	ps := NewPostService(db)

	alice := registerUser(t, us, "alice")
	bob := registerUser(t, us, "bob")

	post, err := ps.AddPost("Hello", "World", alice.ID)
	require.NoError(t, err)

	// Bob cannot edit Alice's post; nothing changes, not even last_updated
	err = ps.EditPost(post.ID, "Hacked", "Hacked", bob.ID)
	assert.ErrorIs(t, err, ErrNotPostAuthor)

	unchanged, err := ps.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", unchanged.Title)
	assert.Equal(t, "World", unchanged.Content)
	assert.True(t, unchanged.LastUpdated.Equal(post.LastUpdated))

	// Alice can
	err = ps.EditPost(post.ID, "Hello", "World2", alice.ID)
	require.NoError(t, err)

	edited, err := ps.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "World2", edited.Content)
	assert.False(t, edited.LastUpdated.Before(post.LastUpdated))

	// Editing a missing post is a not-found, not an ownership error
	err = ps.EditPost(post.ID+100, "a", "b", alice.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePostOwnership(t *testing.T) {
	db := newTestDB(t)
	us := NewUserService(db)
	ps := NewPostService(db)

	alice := registerUser(t, us, "alice")
	bob := registerUser(t, us, "bob")

	post, err := ps.AddPost("Hello", "World", alice.ID)
	require.NoError(t, err)

	// Ownership is checked at the repository boundary, same as edit
	err = ps.DeletePost(post.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotPostAuthor)

	_, err = ps.GetPost(post.ID)
	require.NoError(t, err, "post must survive a rejected delete")

	require.NoError(t, ps.DeletePost(post.ID, alice.ID))

	_, err = ps.GetPost(post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	err = ps.DeletePost(post.ID, alice.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePostCascadesComments(t *testing.T) {
	db := newTestDB(t)
	us := NewUserService(db)
	ps := NewPostService(db)
	cs := NewCommentService(db)

	alice := registerUser(t, us, "alice")

	post, err := ps.AddPost("Hello", "World", alice.ID)
	require.NoError(t, err)

	comment, err := cs.AddComment(post.ID, "First!", alice.ID)
	require.NoError(t, err)

	require.NoError(t, ps.DeletePost(post.ID, alice.ID))

	// No orphaned comments remain
	_, err = cs.GetComment(comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	comments, err := cs.CommentsByPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestAllPostsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	us := NewUserService(db)
	ps := NewPostService(db)

	alice := registerUser(t, us, "alice")

	first, err := ps.AddPost("First", "a", alice.ID)
	require.NoError(t, err)
	second, err := ps.AddPost("Second", "b", alice.ID)
	require.NoError(t, err)

	posts, err := ps.AllPosts()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}
