package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type LeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{coll: db.Collection(leadsCollection)}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	_, err := r.coll.InsertOne(ctx, lead)
	return mapError(err, entity.ErrLeadNotFound)
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	var l entity.Lead
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		return nil, mapError(err, entity.ErrLeadNotFound)
	}
	return &l, nil
}

// UpdateStatus is a single-document $set, so concurrent writers never
// observe a partially written lead.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) (*entity.Lead, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var l entity.Lead
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&l)
	if err != nil {
		return nil, mapError(err, entity.ErrLeadNotFound)
	}
	return &l, nil
}

func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *LeadRepository) CountByStatus(ctx context.Context) (map[entity.LeadStatus]int64, error) {
	counts := make(map[entity.LeadStatus]int64, len(entity.LeadStatuses))
	for _, st := range entity.LeadStatuses {
		n, err := r.coll.CountDocuments(ctx, bson.M{"status": st})
		if err != nil {
			return nil, err
		}
		if n > 0 {
			counts[st] = n
		}
	}
	return counts, nil
}

func (r *LeadRepository) FindByDateRange(ctx context.Context, from, to *time.Time) ([]entity.Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return r.find(ctx, dateRangeFilter(from, to), opts)
}

func (r *LeadRepository) find(ctx context.Context, filter any, opts *options.FindOptions) ([]entity.Lead, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	leads := make([]entity.Lead, 0)
	if err := cur.All(ctx, &leads); err != nil {
		return nil, err
	}
	for i := range leads {
		leads[i].Date = leads[i].Date.UTC()
	}
	return leads, nil
}

// dateRangeFilter builds an inclusive filter on date. Nil bounds are open.
func dateRangeFilter(from, to *time.Time) bson.M {
	cond := bson.M{}
	if from != nil {
		cond["$gte"] = *from
	}
	if to != nil {
		cond["$lte"] = *to
	}
	if len(cond) == 0 {
		return bson.M{}
	}
	return bson.M{"date": cond}
}
