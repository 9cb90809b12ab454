package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Donadams50/TechTestMarch25/models"
)

// Per-operation deadline. The application layer carries no timeout knobs;
// bounding each store call here is what keeps a slow cluster from pinning
// request goroutines indefinitely.
const opTimeout = 5 * time.Second

// MongoStore implements PostStore on a MongoDB collection. The weighted text
// index and the tags index are created at startup by config.InitDatabase.
type MongoStore struct {
	posts *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{posts: db.Collection("posts")}
}

func (s *MongoStore) Create(ctx context.Context, post *models.Post) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	post.StampNew(time.Now().UTC())
	res, err := s.posts.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPostNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var post models.Post
	if err := s.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *MongoStore) Find(ctx context.Context, opts ListOptions) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	fo := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(opts.Skip).
		SetLimit(opts.Limit)
	cur, err := s.posts.Find(ctx, tagFilter(opts.Tag), fo)
	if err != nil {
		return nil, err
	}
	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *MongoStore) Count(ctx context.Context, tag string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.posts.CountDocuments(ctx, tagFilter(tag))
}

func (s *MongoStore) UpdateByID(ctx context.Context, id string, upd models.PostUpdate) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPostNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// updatedAt is refreshed unconditionally, even when no field changes.
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Tags != nil {
		set["tags"] = *upd.Tags
	}

	fo := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.Post
	if err := s.posts.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, fo).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrPostNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.posts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *MongoStore) FindIDsByTag(ctx context.Context, tag string, limit int64) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	fo := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetLimit(limit)
	cur, err := s.posts.Find(ctx, bson.M{"tags": tag}, fo)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID.Hex())
	}
	return ids, nil
}

func (s *MongoStore) DeleteManyByIDs(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.posts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) Search(ctx context.Context, term string, skip, limit int64) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// The score stays in the projection for sorting only; Post has no field
	// for it, so it never reaches the response payload.
	fo := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := s.posts.Find(ctx, textFilter(term), fo)
	if err != nil {
		return nil, err
	}
	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *MongoStore) SearchCount(ctx context.Context, term string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.posts.CountDocuments(ctx, textFilter(term))
}

func tagFilter(tag string) bson.M {
	if tag == "" {
		return bson.M{}
	}
	return bson.M{"tags": tag}
}

func textFilter(term string) bson.M {
	return bson.M{"$text": bson.M{"$search": term}}
}
