package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yatube-project/yatube/internal/models"
	"github.com/yatube-project/yatube/internal/testutil"
)

func TestFollowRequiresAuth(t *testing.T) {
	db := testutil.GetTestDB(t)
	e, _ := testutil.NewServer(t, db)

	testutil.CreateUser(t, db, "author")

	rec := get(t, e, "/profile/author/follow/")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/auth/login/?next=")

	rec = get(t, e, "/follow/")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/auth/login/?next=")
}

func TestFollowUser(t *testing.T) {
	db := testutil.GetTestDB(t)
	e, deps := testutil.NewServer(t, db)

	reader := testutil.CreateUser(t, db, "reader")
	author := testutil.CreateUser(t, db, "author")
	cookie := testutil.SessionCookie(t, deps.Sessions, reader.ID)

	rec := get(t, e, "/profile/author/follow/", cookie)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/profile/reader/", rec.Header().Get("Location"))

	var follows []models.Follow
	require.NoError(t, db.Find(&follows).Error)
	require.Len(t, follows, 1)
	assert.Equal(t, reader.ID, follows[0].UserID)
	assert.Equal(t, author.ID, follows[0].AuthorID)

	// following again changes nothing
	rec = get(t, e, "/profile/author/follow/", cookie)
	require.Equal(t, http.StatusFound, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFollowSelfIsNoOp(t *testing.T) {
	db := testutil.GetTestDB(t)
	e, deps := testutil.NewServer(t, db)

	user := testutil.CreateUser(t, db, "loner")
	cookie := testutil.SessionCookie(t, deps.Sessions, user.ID)

	rec := get(t, e, "/profile/loner/follow/", cookie)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/profile/loner/", rec.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFollowUnknownUser(t *testing.T) {
	db := testutil.GetTestDB(t)
	e, deps := testutil.NewServer(t, db)

	user := testutil.CreateUser(t, db, "reader")
	cookie := testutil.SessionCookie(t, deps.Sessions, user.ID)

	rec := get(t, e, "/profile/ghost/follow/", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnfollowUser(t *testing.T) {
	db := testutil.GetTestDB(t)
	e, deps := testutil.NewServer(t, db)

	reader := testutil.CreateUser(t, db, "reader")
	author := testutil.CreateUser(t, db, "author")
	testutil.CreateFollow(t, db, reader, author)
	cookie := testutil.SessionCookie(t, deps.Sessions, reader.ID)

	rec := get(t, e, "/profile/author/unfollow/", cookie)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/profile/reader/", rec.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Zero(t, count)

	// unfollowing someone you do not follow is not an error
	rec = get(t, e, "/profile/author/unfollow/", cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestFeedShowsOnlyFollowedAuthors(t *testing.T) {
	db := testutil.GetTestDB(t)
	e, deps := testutil.NewServer(t, db)

	reader := testutil.CreateUser(t, db, "reader")
	followed := testutil.CreateUser(t, db, "followed")
	stranger := testutil.CreateUser(t, db, "stranger")
	testutil.CreateFollow(t, db, reader, followed)
	testutil.CreatePost(t, db, followed, nil, "post from followed")
	testutil.CreatePost(t, db, stranger, nil, "post from stranger")
	testutil.CreatePost(t, db, reader, nil, "own post")

	cookie := testutil.SessionCookie(t, deps.Sessions, reader.ID)
	rec := get(t, e, "/follow/", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "post from followed")
	assert.NotContains(t, body, "post from stranger")
	assert.NotContains(t, body, "own post")
}

func TestFeedWithNoFollowsIsEmpty(t *testing.T) {
	db := testutil.GetTestDB(t)
	e, deps := testutil.NewServer(t, db)

	reader := testutil.CreateUser(t, db, "reader")
	author := testutil.CreateUser(t, db, "author")
	testutil.CreatePost(t, db, author, nil, "someone else's post")

	cookie := testutil.SessionCookie(t, deps.Sessions, reader.ID)
	rec := get(t, e, "/follow/", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "someone else&#39;s post")
	assert.NotContains(t, rec.Body.String(), "someone else's post")
}
