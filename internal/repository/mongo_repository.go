package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cuisinecraft-hub/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoMenuRepository struct {
	coll   *mongo.Collection
	logger zerolog.Logger
}

// NewMongoMenuRepository creates a document-store menu repository.
func NewMongoMenuRepository(db *mongo.Database, logger zerolog.Logger) MenuRepository {
	return &mongoMenuRepository{
		coll:   db.Collection(menuCollection),
		logger: logger.With().Str("repository", "menu").Str("driver", "mongo").Logger(),
	}
}

func (r *mongoMenuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := findAll(ctx, r.coll, bson.D{}, (*menuDoc).toModel)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list menu")
		return nil, err
	}
	return items, nil
}

func (r *mongoMenuRepository) GetByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return []model.MenuItem{}, nil
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := objectID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}}
	items, err := findAll(ctx, r.coll, filter, (*menuDoc).toModel, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query menu items by IDs")
		return nil, err
	}
	return items, nil
}

func (r *mongoMenuRepository) Create(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, &menuDoc{
		Name:     item.Name,
		Recipe:   item.Recipe,
		Image:    item.Image,
		Category: item.Category,
		Price:    item.Price,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("name", item.Name).Msg("failed to create menu item")
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return insertedObjectID(res), nil
}

func (r *mongoMenuRepository) Update(ctx context.Context, id string, item *model.MenuItem) (*model.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: item.Name},
		{Key: "recipe", Value: item.Recipe},
		{Key: "image", Value: item.Image},
		{Key: "category", Value: item.Category},
		{Key: "price", Value: item.Price},
	}}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_item_id", id).Msg("failed to update menu item")
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return updateResult(res), nil
}

func (r *mongoMenuRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return deleteByID(ctx, r.coll, id, r.logger)
}

func (r *mongoMenuRepository) Count(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, r.coll)
}

type mongoReviewRepository struct {
	coll   *mongo.Collection
	logger zerolog.Logger
}

// NewMongoReviewRepository creates a document-store review repository.
func NewMongoReviewRepository(db *mongo.Database, logger zerolog.Logger) ReviewRepository {
	return &mongoReviewRepository{
		coll:   db.Collection(reviewCollection),
		logger: logger.With().Str("repository", "review").Str("driver", "mongo").Logger(),
	}
}

func (r *mongoReviewRepository) List(ctx context.Context) ([]model.Review, error) {
	return findAll(ctx, r.coll, bson.D{}, (*reviewDoc).toModel)
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *model.Review) (*model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, &reviewDoc{Name: review.Name, Details: review.Details, Rating: review.Rating})
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return insertedObjectID(res), nil
}

type mongoRecommendationRepository struct {
	coll   *mongo.Collection
	logger zerolog.Logger
}

// NewMongoRecommendationRepository creates a document-store chef recommendation repository.
func NewMongoRecommendationRepository(db *mongo.Database, logger zerolog.Logger) RecommendationRepository {
	return &mongoRecommendationRepository{
		coll:   db.Collection(recommendationCollection),
		logger: logger.With().Str("repository", "chef_recommendation").Str("driver", "mongo").Logger(),
	}
}

func (r *mongoRecommendationRepository) List(ctx context.Context) ([]model.Recommendation, error) {
	return findAll(ctx, r.coll, bson.D{}, (*recommendationDoc).toModel)
}

func (r *mongoRecommendationRepository) Create(ctx context.Context, rec *model.Recommendation) (*model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, &recommendationDoc{
		Name:     rec.Name,
		Recipe:   rec.Recipe,
		Image:    rec.Image,
		Category: rec.Category,
		Price:    rec.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chef recommendation: %w", err)
	}
	return insertedObjectID(res), nil
}

type mongoContactRepository struct {
	coll   *mongo.Collection
	logger zerolog.Logger
}

// NewMongoContactRepository creates a document-store contact message repository.
func NewMongoContactRepository(db *mongo.Database, logger zerolog.Logger) ContactRepository {
	return &mongoContactRepository{
		coll:   db.Collection(contactCollection),
		logger: logger.With().Str("repository", "contact").Str("driver", "mongo").Logger(),
	}
}

func (r *mongoContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findAll(ctx, r.coll, bson.D{}, (*contactDoc).toModel, opts)
}

func (r *mongoContactRepository) Create(ctx context.Context, msg *model.ContactMessage) (*model.InsertResult, error) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, &contactDoc{
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("email", msg.Email).Msg("failed to create contact message")
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}
	return insertedObjectID(res), nil
}

type mongoCartRepository struct {
	coll   *mongo.Collection
	logger zerolog.Logger
}

// NewMongoCartRepository creates a document-store cart repository.
func NewMongoCartRepository(db *mongo.Database, logger zerolog.Logger) CartRepository {
	return &mongoCartRepository{
		coll:   db.Collection(cartCollection),
		logger: logger.With().Str("repository", "cart").Str("driver", "mongo").Logger(),
	}
}

func (r *mongoCartRepository) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	items, err := findAll(ctx, r.coll, bson.D{{Key: "email", Value: email}}, (*cartDoc).toModel)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query cart")
		return nil, err
	}
	return items, nil
}

func (r *mongoCartRepository) Add(ctx context.Context, item *model.CartItem) (*model.InsertResult, error) {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, &cartDoc{
		Email:      item.Email,
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		Image:      item.Image,
		Price:      item.Price,
		CreatedAt:  item.CreatedAt,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("email", item.Email).Msg("failed to add cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	return insertedObjectID(res), nil
}

func (r *mongoCartRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return deleteByID(ctx, r.coll, id, r.logger)
}

type mongoUserRepository struct {
	coll   *mongo.Collection
	logger zerolog.Logger
}

// NewMongoUserRepository creates a document-store user repository.
func NewMongoUserRepository(db *mongo.Database, logger zerolog.Logger) UserRepository {
	return &mongoUserRepository{
		coll:   db.Collection(userCollection),
		logger: logger.With().Str("repository", "user").Str("driver", "mongo").Logger(),
	}
}

func (r *mongoUserRepository) List(ctx context.Context) ([]model.User, error) {
	return findAll(ctx, r.coll, bson.D{}, (*userDoc).toModel)
}

func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var d userDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	u := d.toModel()
	return &u, nil
}

func (r *mongoUserRepository) IsAdmin(ctx context.Context, email string) (bool, error) {
	filter := bson.D{{Key: "email", Value: email}, {Key: "role", Value: model.RoleAdmin}}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to look up admin role")
		return false, fmt.Errorf("failed to look up admin role: %w", err)
	}
	return n > 0, nil
}

// CreateIfAbsent upserts on email so only the first registration inserts. A duplicate key
// error means a concurrent request won the race.
func (r *mongoUserRepository) CreateIfAbsent(ctx context.Context, user *model.User) (bool, error) {
	filter := bson.D{{Key: "email", Value: user.Email}}
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "email", Value: user.Email},
		{Key: "username", Value: user.Username},
	}}}

	res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		r.logger.Error().Err(err).Str("email", user.Email).Msg("failed to create user")
		return false, fmt.Errorf("failed to create user: %w", err)
	}

	if res.UpsertedCount == 0 {
		return false, nil
	}

	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return true, nil
}

func (r *mongoUserRepository) PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: model.RoleAdmin}}}})
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", id).Msg("failed to promote user")
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}
	return updateResult(res), nil
}

func (r *mongoUserRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return deleteByID(ctx, r.coll, id, r.logger)
}

func (r *mongoUserRepository) Count(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, r.coll)
}

type mongoPaymentRepository struct {
	client   *mongo.Client
	payments *mongo.Collection
	cart     *mongo.Collection
	logger   zerolog.Logger
}

// NewMongoPaymentRepository creates a document-store payment repository. Checkout needs a
// replica set for its session transaction.
func NewMongoPaymentRepository(db *mongo.Database, logger zerolog.Logger) PaymentRepository {
	return &mongoPaymentRepository{
		client:   db.Client(),
		payments: db.Collection(paymentCollection),
		cart:     db.Collection(cartCollection),
		logger:   logger.With().Str("repository", "payment").Str("driver", "mongo").Logger(),
	}
}

func (r *mongoPaymentRepository) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	payments, err := findAll(ctx, r.payments, bson.D{{Key: "email", Value: email}}, (*paymentDoc).toModel, opts)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query payments")
		return nil, err
	}
	return payments, nil
}

func (r *mongoPaymentRepository) Checkout(ctx context.Context, payment *model.Payment) (*model.CheckoutResult, error) {
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	doc := &paymentDoc{
		Email:         payment.Email,
		Price:         payment.Price,
		TransactionID: payment.TransactionID,
		Date:          payment.Date,
		CartIDs:       nonNil(payment.CartIDs),
		MenuItemIDs:   nonNil(payment.MenuItemIDs),
		Status:        payment.Status,
	}

	sess, err := r.client.StartSession()
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to start session")
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.EndSession(ctx)

	out, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		ins, err := r.payments.InsertOne(sc, doc)
		if err != nil {
			return nil, fmt.Errorf("failed to insert payment: %w", err)
		}

		del, err := r.cart.DeleteMany(sc, bson.D{{Key: "email", Value: payment.Email}})
		if err != nil {
			return nil, fmt.Errorf("failed to clear cart: %w", err)
		}

		return &model.CheckoutResult{
			PaymentResult: *insertedObjectID(ins),
			DeleteRes:     model.DeleteResult{Acknowledged: true, DeletedCount: del.DeletedCount},
		}, nil
	})
	if err != nil {
		r.logger.Error().Err(err).Str("email", payment.Email).Msg("checkout transaction failed")
		return nil, fmt.Errorf("checkout transaction failed: %w", err)
	}

	result := out.(*model.CheckoutResult)
	payment.ID = result.PaymentResult.InsertedID

	r.logger.Info().
		Str("payment_id", payment.ID).
		Int64("cart_items_removed", result.DeleteRes.DeletedCount).
		Msg("payment recorded")

	return result, nil
}

func (r *mongoPaymentRepository) Count(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, r.payments)
}

func (r *mongoPaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}

	cur, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to sum revenue")
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %w", err)
	}

	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}

type categoryStatDoc struct {
	Category string  `bson:"_id"`
	Quantity int64   `bson:"quantity"`
	Revenue  float64 `bson:"revenue"`
}

// SoldStats unwinds menuItemId, looks each id up in the menu and groups by category.
// Ids that are not valid object ids convert to null and match nothing.
func (r *mongoPaymentRepository) SoldStats(ctx context.Context, email string) ([]model.CategoryStat, error) {
	pipeline := mongo.Pipeline{}
	if email != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{{Key: "email", Value: email}}}})
	}

	canonicalID := bson.D{{Key: "$toLower", Value: bson.D{{Key: "$trim", Value: bson.D{{Key: "input", Value: "$menuItemId"}}}}}}
	toObjectID := bson.D{{Key: "$convert", Value: bson.D{
		{Key: "input", Value: canonicalID},
		{Key: "to", Value: "objectId"},
		{Key: "onError", Value: nil},
		{Key: "onNull", Value: nil},
	}}}

	pipeline = append(pipeline,
		bson.D{{Key: "$unwind", Value: "$menuItemId"}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: menuCollection},
			{Key: "let", Value: bson.D{{Key: "itemId", Value: toObjectID}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{"$_id", "$$itemId"}},
				}}}}},
			}},
			{Key: "as", Value: "menuItems"},
		}}},
		bson.D{{Key: "$unwind", Value: "$menuItems"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	)

	cur, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to aggregate sold items")
		return nil, fmt.Errorf("failed to aggregate sold items: %w", err)
	}
	defer cur.Close(ctx)

	stats := make([]model.CategoryStat, 0)
	for cur.Next(ctx) {
		var d categoryStatDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode category stat: %w", err)
		}
		stats = append(stats, model.CategoryStat(d))
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category stats: %w", err)
	}

	return stats, nil
}

type mongoReservationRepository struct {
	coll   *mongo.Collection
	logger zerolog.Logger
}

// NewMongoReservationRepository creates a document-store reservation repository.
func NewMongoReservationRepository(db *mongo.Database, logger zerolog.Logger) ReservationRepository {
	return &mongoReservationRepository{
		coll:   db.Collection(reservationCollection),
		logger: logger.With().Str("repository", "reservation").Str("driver", "mongo").Logger(),
	}
}

func (r *mongoReservationRepository) List(ctx context.Context) ([]model.Reservation, error) {
	return findAll(ctx, r.coll, bson.D{}, (*reservationDoc).toModel)
}

func (r *mongoReservationRepository) ListByEmail(ctx context.Context, email string) ([]model.Reservation, error) {
	filter := bson.D{{Key: "reservationData.userEmail", Value: email}}
	return findAll(ctx, r.coll, filter, (*reservationDoc).toModel)
}

func (r *mongoReservationRepository) Create(ctx context.Context, res *model.Reservation) (*model.InsertResult, error) {
	out, err := r.coll.InsertOne(ctx, &reservationDoc{ReservationData: reservationDataDoc(res.ReservationData)})
	if err != nil {
		r.logger.Error().Err(err).Str("email", res.ReservationData.UserEmail).Msg("failed to create reservation")
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return insertedObjectID(out), nil
}

// Confirm relies on the server reporting modifiedCount 0 when the status is already confirmed.
func (r *mongoReservationRepository) Confirm(ctx context.Context, id string) (*model.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "reservationData.status", Value: model.ReservationConfirmed}}}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		r.logger.Error().Err(err).Str("reservation_id", id).Msg("failed to confirm reservation")
		return nil, fmt.Errorf("failed to confirm reservation: %w", err)
	}
	return updateResult(res), nil
}

func (r *mongoReservationRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return deleteByID(ctx, r.coll, id, r.logger)
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string, logger zerolog.Logger) (*model.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to delete document")
		return nil, fmt.Errorf("failed to delete from %s: %w", coll.Name(), err)
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func estimatedCount(ctx context.Context, coll *mongo.Collection) (int64, error) {
	n, err := coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", coll.Name(), err)
	}
	return n, nil
}
