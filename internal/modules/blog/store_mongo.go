package blog

import (
	"context"
	"errors"
	"time"

	"github.com/nabeelsyed11/Kimia/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionBlogPosts = "blog_posts"

// MongoStore persists posts in a MongoDB collection keyed by the generated
// id field.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(collectionBlogPosts)}
}

func (s *MongoStore) List(ctx context.Context, f Filter) ([]models.BlogPost, error) {
	doc := bson.M{}
	if f.PublishedOnly {
		doc["published"] = true
	}
	if f.Category != "" {
		doc["category"] = f.Category
	}

	cursor, err := s.coll.Find(ctx, doc)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.BlogPost{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	var p models.BlogPost
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoStore) Create(ctx context.Context, p *models.BlogPost) error {
	_, err := s.coll.InsertOne(ctx, p)
	return err
}

func (s *MongoStore) Update(ctx context.Context, id string, patch *UpdateBlogPostDTO) (*models.BlogPost, error) {
	result, err := s.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch.setDoc()})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}
	return s.Get(ctx, id)
}

func (s *MongoStore) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// setDoc builds the $set document from the supplied fields only, always
// refreshing updated_at.
func (dto *UpdateBlogPostDTO) setDoc() bson.M {
	set := bson.M{"updated_at": time.Now().UTC()}
	if dto.Title != nil {
		set["title"] = *dto.Title
	}
	if dto.Content != nil {
		set["content"] = *dto.Content
	}
	if dto.Excerpt != nil {
		set["excerpt"] = *dto.Excerpt
	}
	if dto.Category != nil {
		set["category"] = *dto.Category
	}
	if dto.Author != nil {
		set["author"] = *dto.Author
	}
	if dto.Image != nil {
		set["image"] = *dto.Image
	}
	if dto.Published != nil {
		set["published"] = *dto.Published
	}
	return set
}
