package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrImageNotFound is returned when no blob exists under the requested path.
var ErrImageNotFound = errors.New("image not found")

// StoredImage is an opaque image blob addressed by its generated path.
type StoredImage struct {
	Path        string    `bson:"path"`
	ContentType string    `bson:"content_type"`
	Data        []byte    `bson:"data"`
	Thumbnail   []byte    `bson:"thumbnail,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
}

// ImageRepository defines the interface for post image blob storage
type ImageRepository interface {
	SaveImage(ctx context.Context, img *StoredImage) error
	GetImage(ctx context.Context, path string) (*StoredImage, error)
}

// MongoImageRepository implements ImageRepository for MongoDB
type MongoImageRepository struct {
	collection *mongo.Collection
}

// NewMongoImageRepository creates a new MongoImageRepository
func NewMongoImageRepository(db *mongo.Database) *MongoImageRepository {
	return &MongoImageRepository{collection: db.Collection("post_images")}
}

// SaveImage stores an image blob under its path. Writing the same path twice
// is last-writer-wins; paths are uuid-based so collisions do not happen in
// practice.
func (r *MongoImageRepository) SaveImage(ctx context.Context, img *StoredImage) error {
	img.CreatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"path": img.Path}, img, options.Replace().SetUpsert(true))
	return err
}

// GetImage retrieves an image blob by its path
func (r *MongoImageRepository) GetImage(ctx context.Context, path string) (*StoredImage, error) {
	var img StoredImage
	err := r.collection.FindOne(ctx, bson.M{"path": path}).Decode(&img)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &img, nil
}
