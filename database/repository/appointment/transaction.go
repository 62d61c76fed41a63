package appointmentRepo

import (
	"context"
	"fmt"

	"clinibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfSlotFree inserts the appointment inside a transaction after
// re-checking that the slot is still free. Two racing bookings for the same
// doctor/date/slot therefore cannot both commit.
func (repo *MongoAppointmentRepo) CreateIfSlotFree(
	ctx context.Context,
	appt *models.Appointment,
	freeingStates []models.AppointmentState,
) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"doctor_id": appt.DoctorID,
			"date":      appt.Date,
			"horario":   appt.Horario,
		}
		if len(freeingStates) > 0 {
			filter["state"] = bson.M{"$nin": freeingStates}
		}

		count, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("error checking slot occupancy: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		if _, err := repo.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
