package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type bookingMongoRepository struct {
	Collection *mongo.Collection
	Counters   *mongo.Collection
	Log        *zap.Logger
}

type bookingCounter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

func NewBookingMongoRepository(db *mongo.Client, dbName string, logger *zap.Logger) contracts.BookingRepository {
	database := db.Database(dbName)
	return &bookingMongoRepository{
		Collection: database.Collection(constvars.MongoCollectionBookings),
		Counters:   database.Collection(constvars.MongoCollectionCounters),
		Log:        logger,
	}
}

// EnsureBookingMongoIndexes creates the indexes listing and ownership
// lookups rely on. Creating an existing index is a no-op.
func EnsureBookingMongoIndexes(ctx context.Context, db *mongo.Client, dbName string) error {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionBookings)
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	return err
}

func (repo *bookingMongoRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingMongoRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	findOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "start_time", Value: 1},
		{Key: "_id", Value: 1},
	})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		repo.Log.Error("bookingMongoRepository.FindAll error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	bookings := make([]models.Booking, 0)
	err = cursor.All(ctx, &bookings)
	if err != nil {
		repo.Log.Error("bookingMongoRepository.FindAll error decoding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	repo.Log.Info("bookingMongoRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)
	return bookings, nil
}

func (repo *bookingMongoRepository) FindByID(ctx context.Context, bookingID int64) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingMongoRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	var booking models.Booking
	err := repo.Collection.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Log.Error("bookingMongoRepository.FindByID error finding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	return &booking, nil
}

// UpsertMany checks ownership before writing anything. Without a replica set
// there is no multi-document transaction, so a concurrent writer can still
// slip in between the check and the bulk write.
func (repo *bookingMongoRepository) UpsertMany(ctx context.Context, ownerID string, bookings []models.Booking) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingMongoRepository.UpsertMany called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, ownerID),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)

	if len(bookings) == 0 {
		return []models.Booking{}, nil
	}

	var (
		explicitIDs []int64
		missing     int64
	)
	for _, booking := range bookings {
		if booking.HasID() {
			explicitIDs = append(explicitIDs, booking.ID)
		} else {
			missing++
		}
	}

	if len(explicitIDs) > 0 {
		err := repo.ensureOwnership(ctx, ownerID, explicitIDs)
		if err != nil {
			return nil, err
		}
	}

	var nextID int64
	if missing > 0 {
		lastID, err := repo.reserveIDs(ctx, missing)
		if err != nil {
			repo.Log.Error("bookingMongoRepository.UpsertMany error reserving ids",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrMongoDBGenerateID(err)
		}
		nextID = lastID - missing + 1
	}

	now := time.Now().UTC()
	saved := make([]models.Booking, len(bookings))
	writes := make([]mongo.WriteModel, len(bookings))
	for i, booking := range bookings {
		if !booking.HasID() {
			booking.ID = nextID
			nextID++
		}
		booking.UserID = ownerID
		booking.UpdatedAt = now
		if booking.CreatedAt.IsZero() {
			booking.CreatedAt = now
		}
		saved[i] = booking

		update := mongo.NewUpdateOneModel()
		if bookings[i].HasID() {
			update.SetFilter(bson.M{"_id": booking.ID, "user_id": ownerID})
		} else {
			update.SetFilter(bson.M{"_id": booking.ID}).SetUpsert(true)
		}
		writes[i] = update.SetUpdate(bson.M{
			"$set": bson.M{
				"title":      booking.Title,
				"date":       booking.Date,
				"start_time": booking.StartTime,
				"end_time":   booking.EndTime,
				"user_id":    booking.UserID,
				"updated_at": booking.UpdatedAt,
			},
			"$setOnInsert": bson.M{"created_at": booking.CreatedAt},
		})
	}

	_, err := repo.Collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	if err != nil {
		repo.Log.Error("bookingMongoRepository.UpsertMany error writing documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBUpsertDocument(err)
	}

	repo.Log.Info("bookingMongoRepository.UpsertMany succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, ownerID),
		zap.Int(constvars.LoggingBookingCountKey, len(saved)),
	)
	return saved, nil
}

// ensureOwnership loads the documents behind bookingIDs. Ids are replace
// keys only: an id with no document is a 404, a document of another user a 403.
func (repo *bookingMongoRepository) ensureOwnership(ctx context.Context, ownerID string, bookingIDs []int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cursor, err := repo.Collection.Find(ctx,
		bson.M{"_id": bson.M{"$in": bookingIDs}},
		options.Find().SetProjection(bson.M{"_id": 1, "user_id": 1}),
	)
	if err != nil {
		repo.Log.Error("bookingMongoRepository.ensureOwnership error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBFindDocument(err)
	}

	var existing []models.Booking
	err = cursor.All(ctx, &existing)
	if err != nil {
		return exceptions.ErrMongoDBIterateDocuments(err)
	}

	found := make(map[int64]struct{}, len(existing))
	for _, booking := range existing {
		found[booking.ID] = struct{}{}
		if booking.UserID != ownerID {
			repo.Log.Warn("bookingMongoRepository.ensureOwnership booking owned by another user",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, ownerID),
				zap.Int64(constvars.LoggingBookingIDKey, booking.ID),
			)
			return exceptions.ErrBookingNotOwned(nil, booking.ID)
		}
	}

	for _, bookingID := range bookingIDs {
		if _, ok := found[bookingID]; !ok {
			repo.Log.Warn("bookingMongoRepository.ensureOwnership booking not found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingBookingIDKey, bookingID),
			)
			return exceptions.ErrBookingNotFound(nil, bookingID)
		}
	}
	return nil
}

// reserveIDs advances the booking counter by count and returns the last
// reserved id.
func (repo *bookingMongoRepository) reserveIDs(ctx context.Context, count int64) (int64, error) {
	var counter bookingCounter
	err := repo.Counters.FindOneAndUpdate(ctx,
		bson.M{"_id": constvars.MongoCounterBookingIDName},
		bson.M{"$inc": bson.M{"seq": count}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (repo *bookingMongoRepository) DeleteByID(ctx context.Context, bookingID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingMongoRepository.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": bookingID})
	if err != nil {
		repo.Log.Error("bookingMongoRepository.DeleteByID error deleting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrBookingNotFound(nil, bookingID)
	}

	repo.Log.Info("bookingMongoRepository.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)
	return nil
}
