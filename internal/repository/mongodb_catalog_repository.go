package repository

import (
	"context"

	pkgdto "github.com/palrajin0126/admin-panel/pkg/dto"
	"github.com/palrajin0126/admin-panel/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Product and category documents are keyed by the same string identifier
// used by the relational rows, so _id is a plain string, not an ObjectID.
type MongoDBCatalogRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBCatalogRepository(db *mongo.Database) CatalogRepository {
	return &MongoDBCatalogRepositoryImpl{db: db}
}

func (r *MongoDBCatalogRepositoryImpl) AddProduct(ctx context.Context, id string, doc map[string]interface{}) (err error) {
	insert := bson.M{"_id": id}
	for k, v := range doc {
		insert[k] = v
	}

	_, err = r.db.Collection("products").InsertOne(ctx, insert)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return
}

func (r *MongoDBCatalogRepositoryImpl) UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.M(fields)}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product document")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCatalogRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	_, err = r.db.Collection("products").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	return
}

func (r *MongoDBCatalogRepositoryImpl) GetProductByID(ctx context.Context, id string) (doc map[string]interface{}, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return nil, err
	}

	return doc, nil
}

func (r *MongoDBCatalogRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (docs []map[string]interface{}, total int64, err error) {
	query := bson.M{}
	if filter.Search != "" {
		query["productName"] = primitive.Regex{Pattern: filter.Search, Options: "i"}
	}

	total, err = r.db.Collection("products").CountDocuments(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	opts := options.Find()
	if filter.Limit != 0 && filter.Page != 0 {
		opts.SetSkip((int64(filter.Page) - 1) * int64(filter.Limit)).SetLimit(int64(filter.Limit))
	}

	cursor, err := r.db.Collection("products").Find(ctx, query, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &docs); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return docs, total, nil
}

func (r *MongoDBCatalogRepositoryImpl) AddCategory(ctx context.Context, id string, doc map[string]interface{}) (err error) {
	insert := bson.M{"_id": id}
	for k, v := range doc {
		insert[k] = v
	}

	_, err = r.db.Collection("categories").InsertOne(ctx, insert)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategory").Msg("")
		return
	}

	return
}

func (r *MongoDBCatalogRepositoryImpl) UpdateCategory(ctx context.Context, id string, fields map[string]interface{}) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.M(fields)}}

	result, err := r.db.Collection("categories").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateCategory").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCatalogRepositoryImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	_, err = r.db.Collection("categories").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCategory").Msg("")
		return
	}

	return
}

func (r *MongoDBCatalogRepositoryImpl) GetCategories(ctx context.Context) (docs []map[string]interface{}, err error) {
	cursor, err := r.db.Collection("categories").Find(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	if err = cursor.All(ctx, &docs); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	return docs, nil
}
