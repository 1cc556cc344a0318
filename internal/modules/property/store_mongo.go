package property

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/nabeelsyed11/Kimia/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionProperties = "properties"

// MongoStore persists listings in a MongoDB collection, one document per
// listing keyed by the generated id field. Updates and deletes are atomic
// per document; concurrent writers are last-writer-wins.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(collectionProperties)}
}

func (s *MongoStore) List(ctx context.Context, f Filter) ([]models.Property, error) {
	cursor, err := s.coll.Find(ctx, filterDoc(f))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Property{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*models.Property, error) {
	var p models.Property
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoStore) Create(ctx context.Context, p *models.Property) error {
	_, err := s.coll.InsertOne(ctx, p)
	return err
}

func (s *MongoStore) Update(ctx context.Context, id string, patch *UpdatePropertyDTO) (*models.Property, error) {
	set := patch.setDoc()
	result, err := s.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
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
// refreshing updated_at. created_at and id are never part of the update.
func (dto *UpdatePropertyDTO) setDoc() bson.M {
	set := bson.M{"updated_at": time.Now().UTC()}
	if dto.Title != nil {
		set["title"] = *dto.Title
	}
	if dto.Description != nil {
		set["description"] = *dto.Description
	}
	if dto.Price != nil {
		set["price"] = *dto.Price
	}
	if dto.Location != nil {
		set["location"] = *dto.Location
	}
	if dto.Bedrooms != nil {
		set["bedrooms"] = *dto.Bedrooms
	}
	if dto.Bathrooms != nil {
		set["bathrooms"] = *dto.Bathrooms
	}
	if dto.Area != nil {
		set["area"] = *dto.Area
	}
	if dto.PropertyType != nil {
		set["property_type"] = *dto.PropertyType
	}
	if dto.Images != nil {
		set["images"] = dto.Images
	}
	if dto.Features != nil {
		set["features"] = dto.Features
	}
	if dto.Status != nil {
		set["status"] = *dto.Status
	}
	return set
}

// filterDoc translates a Filter into a Mongo query document. Substring
// predicates become case-insensitive anchored-nowhere regexes.
func filterDoc(f Filter) bson.M {
	doc := bson.M{}
	if f.Search != "" {
		re := ciSubstring(f.Search)
		doc["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"location": re},
		}
	}
	if f.PropertyType != "" {
		doc["property_type"] = ciSubstring(f.PropertyType)
	}
	if f.Location != "" {
		doc["location"] = ciSubstring(f.Location)
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		doc["price"] = price
	}
	return doc
}

func ciSubstring(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}
