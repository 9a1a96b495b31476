package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type ResultSessionRepository struct {
	coll *mongo.Collection
}

func NewResultSessionRepository(db *mongo.Database) *ResultSessionRepository {
	return &ResultSessionRepository{coll: db.Collection(resultsCollection)}
}

func (r *ResultSessionRepository) Create(ctx context.Context, s *entity.ResultSession) error {
	_, err := r.coll.InsertOne(ctx, s)
	return mapError(err, entity.ErrNotFound)
}

func (r *ResultSessionRepository) Update(ctx context.Context, s *entity.ResultSession) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return mapError(err, entity.ErrNotFound)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ResultSessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ResultSessionRepository) FindAll(ctx context.Context) ([]entity.ResultSession, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sessions := make([]entity.ResultSession, 0)
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].Images == nil {
			sessions[i].Images = []string{}
		}
	}
	return sessions, nil
}

func (r *ResultSessionRepository) FindByID(ctx context.Context, id string) (*entity.ResultSession, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ResultSessionRepository) FindBySlug(ctx context.Context, slug string) (*entity.ResultSession, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *ResultSessionRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, slugFilter(slug, excludeID), options.Count().SetLimit(1))
	return n > 0, err
}

func (r *ResultSessionRepository) findOne(ctx context.Context, filter bson.M) (*entity.ResultSession, error) {
	var s entity.ResultSession
	if err := r.coll.FindOne(ctx, filter).Decode(&s); err != nil {
		return nil, mapError(err, entity.ErrNotFound)
	}
	if s.Images == nil {
		s.Images = []string{}
	}
	return &s, nil
}
