package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"AtsAssistant/entity"
)

const schoolsCollection = "schools"

// GetAllSchools returns the stored catalog ordered by school id.
func (m *MongoDB) GetAllSchools(ctx context.Context) ([]entity.School, error) {
	connection, err := m.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(schoolsCollection)

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find schools: %w", err)
	}
	defer cursor.Close(ctx)

	schools := make([]entity.School, 0)
	if err = cursor.All(ctx, &schools); err != nil {
		return nil, fmt.Errorf("decode schools: %w", err)
	}

	return schools, nil
}

// UpsertSchools writes the schools keyed by id. Rows sharing an id keep the last one.
func (m *MongoDB) UpsertSchools(ctx context.Context, schools []entity.School) (int64, error) {
	if len(schools) == 0 {
		return 0, nil
	}

	connection, err := m.connect(ctx)
	if err != nil {
		return 0, err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(schoolsCollection)

	models := make([]mongo.WriteModel, 0, len(schools))
	for _, school := range schools {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: "_id", Value: school.ID}}).
			SetReplacement(school).
			SetUpsert(true))
	}

	res, err := collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return 0, fmt.Errorf("upsert schools: %w", err)
	}
	return res.UpsertedCount + res.ModifiedCount, nil
}

func (m *MongoDB) CountSchools(ctx context.Context) (int64, error) {
	connection, err := m.connect(ctx)
	if err != nil {
		return 0, err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(schoolsCollection)

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count schools: %w", err)
	}
	return count, nil
}
