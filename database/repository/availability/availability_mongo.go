package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"clinibook/database"
	"clinibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &MongoAvailabilityRepo{
		coll: database.DB().Collection("availability"),
	}
}

func (repo *MongoAvailabilityRepo) GetWindow(ctx context.Context, doctorID, specialty, dateKey string) (*models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctor_id": doctorID, "specialty": specialty, "date_key": dateKey}
	var window models.AvailabilityWindow
	if err := repo.coll.FindOne(ctx, filter).Decode(&window); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching availability window: %w", err)
	}
	return &window, nil
}

func (repo *MongoAvailabilityRepo) GetByDoctorAndKey(ctx context.Context, doctorID, dateKey string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctor_id": doctorID, "date_key": dateKey}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching availability for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("error decoding availability windows: %w", err)
	}
	return windows, nil
}

func (repo *MongoAvailabilityRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"doctor_id": doctorID})
	if err != nil {
		return nil, fmt.Errorf("error fetching availability for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("error decoding availability windows: %w", err)
	}
	return windows, nil
}

func (repo *MongoAvailabilityRepo) Upsert(ctx context.Context, window models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctor_id": window.DoctorID,
		"specialty": window.Specialty,
		"date_key":  window.DateKey,
	}
	update := bson.M{"$set": window}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error saving availability window: %w", err)
	}
	return nil
}
