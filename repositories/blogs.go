package repositories

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"la-blog/models"
)

// ErrUnavailable is returned when the repository has no storage connection.
// Startup keeps going without Mongo, so every call must tolerate this.
var ErrUnavailable = errors.New("storage unavailable")

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	if db == nil {
		return &BlogRepository{}
	}
	return &BlogRepository{col: db.Collection("blogs")}
}

// Insert inserts a new blog document and stamps both timestamps.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) (primitive.ObjectID, error) {
	if r.col == nil {
		return primitive.NilObjectID, ErrUnavailable
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	b.ID = id
	return id, nil
}

// FindBySlug returns a blog post by its slug.
func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	if r.col == nil {
		return nil, ErrUnavailable
	}
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBySlug applies the given field set to the post identified by slug
// and returns the updated document. updated_at is refreshed on every call,
// regardless of which fields changed.
func (r *BlogRepository) UpdateBySlug(ctx context.Context, slug string, set bson.M) (*models.Blog, error) {
	if r.col == nil {
		return nil, ErrUnavailable
	}
	update := bson.M{"$set": bson.M{"updated_at": time.Now()}}
	for k, v := range set {
		update["$set"].(bson.M)[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b models.Blog
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"slug": slug}, update, opts).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBySlug removes the post permanently. Missing slugs report
// mongo.ErrNoDocuments.
func (r *BlogRepository) DeleteBySlug(ctx context.Context, slug string) error {
	if r.col == nil {
		return ErrUnavailable
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IsSlugTaken reports whether a slug is already used by a post other than
// excludeID. Pass primitive.NilObjectID when creating.
func (r *BlogRepository) IsSlugTaken(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	if r.col == nil {
		return false, ErrUnavailable
	}
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	err := r.col.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}

type ListBlogsOptions struct {
	Tag    string
	Search string
	Page   int
	Limit  int
}

// List returns posts with filters and pagination, sorted by created_at desc.
func (r *BlogRepository) List(ctx context.Context, opt ListBlogsOptions) ([]models.Blog, int64, error) {
	if r.col == nil {
		return nil, 0, ErrUnavailable
	}
	filter := bson.M{}

	// "All" is the frontend's no-filter sentinel.
	if opt.Tag != "" && opt.Tag != "All" {
		filter["tags"] = bson.M{"$in": []string{opt.Tag}}
	}

	if opt.Search != "" {
		pattern := regexp.QuoteMeta(opt.Search)
		filter["$or"] = []bson.M{
			{"title": primitive.Regex{Pattern: pattern, Options: "i"}},
			{"summary": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
	}

	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.Limit <= 0 {
		opt.Limit = 10
	}
	skip := int64((opt.Page - 1) * opt.Limit)
	limit := int64(opt.Limit)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Blog
	for cur.Next(ctx) {
		var b models.Blog
		if err := cur.Decode(&b); err != nil {
			return nil, 0, err
		}
		results = append(results, b)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// DistinctTags returns every tag value across all posts, deduplicated and
// sorted lexicographically.
func (r *BlogRepository) DistinctTags(ctx context.Context) ([]string, error) {
	if r.col == nil {
		return nil, ErrUnavailable
	}
	values, err := r.col.Distinct(ctx, "tags", bson.M{})
	if err != nil {
		return nil, err
	}
	tags := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			tags = append(tags, s)
		}
	}
	sort.Strings(tags)
	return tags, nil
}
