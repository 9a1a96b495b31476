package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type NewsRepository struct {
	coll *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{coll: db.Collection(newsCollection)}
}

func (r *NewsRepository) Create(ctx context.Context, item *entity.NewsItem) error {
	_, err := r.coll.InsertOne(ctx, item)
	return mapError(err, entity.ErrNotFound)
}

func (r *NewsRepository) Update(ctx context.Context, item *entity.NewsItem) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return mapError(err, entity.ErrNotFound)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *NewsRepository) FindAll(ctx context.Context, publishedOnly bool) ([]entity.NewsItem, error) {
	cur, err := r.coll.Find(ctx, publishedFilter(bson.M{}, publishedOnly), options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]entity.NewsItem, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id string) (*entity.NewsItem, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *NewsRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.NewsItem, error) {
	return r.findOne(ctx, publishedFilter(bson.M{"slug": slug}, publishedOnly))
}

func (r *NewsRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, slugFilter(slug, excludeID), options.Count().SetLimit(1))
	return n > 0, err
}

func (r *NewsRepository) findOne(ctx context.Context, filter bson.M) (*entity.NewsItem, error) {
	var item entity.NewsItem
	if err := r.coll.FindOne(ctx, filter).Decode(&item); err != nil {
		return nil, mapError(err, entity.ErrNotFound)
	}
	return &item, nil
}

func publishedFilter(filter bson.M, publishedOnly bool) bson.M {
	if publishedOnly {
		filter["published"] = true
	}
	return filter
}
