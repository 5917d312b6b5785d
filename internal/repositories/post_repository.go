package repositories

import (
	"github.com/yatube-project/yatube/internal/models"
	"gorm.io/gorm"
)

// postOrder is the invariant ordering of every post listing. The id tiebreak
// keeps rows created in the same instant in deterministic newest-first order.
const postOrder = "created_at DESC, id DESC"

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	UpdatePost(post *models.Post) error

	GetAllPosts(offset, limit int) ([]models.Post, error)
	CountAllPosts() (int64, error)
	GetPostsByGroupID(groupID uint, offset, limit int) ([]models.Post, error)
	CountPostsByGroupID(groupID uint) (int64, error)
	GetPostsByAuthorID(authorID uint, offset, limit int) ([]models.Post, error)
	CountPostsByAuthorID(authorID uint) (int64, error)
	GetPostsByAuthorIDs(authorIDs []uint, offset, limit int) ([]models.Post, error)
	CountPostsByAuthorIDs(authorIDs []uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID with its author and group preloaded
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost persists changes to an existing post. CreatedAt is carried over
// unchanged from the loaded row, so edits never move a post in the listings.
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Model(post).Updates(map[string]interface{}{
		"text":       post.Text,
		"group_id":   post.GroupID,
		"image_path": post.ImagePath,
	}).Error
}

func (r *PostgresPostRepository) listPosts(q *gorm.DB, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := q.Preload("Author").Preload("Group").
		Order(postOrder).
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// GetAllPosts retrieves a page of the global listing, newest first
func (r *PostgresPostRepository) GetAllPosts(offset, limit int) ([]models.Post, error) {
	return r.listPosts(r.db.Model(&models.Post{}), offset, limit)
}

// CountAllPosts returns the total number of posts
func (r *PostgresPostRepository) CountAllPosts() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// GetPostsByGroupID retrieves a page of posts belonging to one group
func (r *PostgresPostRepository) GetPostsByGroupID(groupID uint, offset, limit int) ([]models.Post, error) {
	return r.listPosts(r.db.Model(&models.Post{}).Where("group_id = ?", groupID), offset, limit)
}

// CountPostsByGroupID returns the number of posts in a group
func (r *PostgresPostRepository) CountPostsByGroupID(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// GetPostsByAuthorID retrieves a page of posts by one author
func (r *PostgresPostRepository) GetPostsByAuthorID(authorID uint, offset, limit int) ([]models.Post, error) {
	return r.listPosts(r.db.Model(&models.Post{}).Where("author_id = ?", authorID), offset, limit)
}

// CountPostsByAuthorID returns the number of posts by one author
func (r *PostgresPostRepository) CountPostsByAuthorID(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// GetPostsByAuthorIDs retrieves a page of posts authored by any of the given
// users. An empty author set yields an empty page, not an error.
func (r *PostgresPostRepository) GetPostsByAuthorIDs(authorIDs []uint, offset, limit int) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}
	return r.listPosts(r.db.Model(&models.Post{}).Where("author_id IN ?", authorIDs), offset, limit)
}

// CountPostsByAuthorIDs returns the number of posts authored by any of the given users
func (r *PostgresPostRepository) CountPostsByAuthorIDs(authorIDs []uint) (int64, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id IN ?", authorIDs).Count(&count).Error
	return count, err
}
