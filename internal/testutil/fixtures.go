package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yatube-project/yatube/internal/models"
	"github.com/yatube-project/yatube/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext behind every fixture user's hash.
const TestPassword = "test-password-1"

// CreateUser inserts a user whose password is TestPassword.
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Username: username, PasswordHash: string(hash)}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateGroup inserts a group addressed by the given slug, through the same
// repository operators seed groups with.
func CreateGroup(t *testing.T, db *gorm.DB, title, slug string) *models.Group {
	group := &models.Group{Title: title, Slug: slug, Description: title + " description"}
	require.NoError(t, repositories.NewPostgresGroupRepository(db).CreateGroup(group))
	return group
}

// CreatePost inserts a post; group may be nil.
func CreatePost(t *testing.T, db *gorm.DB, author *models.User, group *models.Group, text string) *models.Post {
	post := &models.Post{Text: text, AuthorID: author.ID}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// CreateFollow inserts a follow relation.
func CreateFollow(t *testing.T, db *gorm.DB, user, author *models.User) {
	require.NoError(t, db.Create(&models.Follow{UserID: user.ID, AuthorID: author.ID}).Error)
}
