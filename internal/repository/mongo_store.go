package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cuisinecraft-hub/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names of the document store.
const (
	menuCollection           = "menu"
	reviewCollection         = "review"
	recommendationCollection = "chefRecommend"
	cartCollection           = "cart"
	userCollection           = "user"
	contactCollection        = "contactUs"
	paymentCollection        = "payments"
	reservationCollection    = "reservation"
)

// NewMongoStore wires every repository to one database of the document store.
func NewMongoStore(db *mongo.Database, logger zerolog.Logger) *Store {
	return &Store{
		Menu:            NewMongoMenuRepository(db, logger),
		Reviews:         NewMongoReviewRepository(db, logger),
		Recommendations: NewMongoRecommendationRepository(db, logger),
		Contacts:        NewMongoContactRepository(db, logger),
		Cart:            NewMongoCartRepository(db, logger),
		Users:           NewMongoUserRepository(db, logger),
		Payments:        NewMongoPaymentRepository(db, logger),
		Reservations:    NewMongoReservationRepository(db, logger),
		ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, readpref.Primary())
		},
	}
}

type menuDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Recipe   string             `bson:"recipe"`
	Image    string             `bson:"image"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
}

func (d *menuDoc) toModel() model.MenuItem {
	return model.MenuItem{ID: d.ID.Hex(), Name: d.Name, Recipe: d.Recipe, Image: d.Image, Category: d.Category, Price: d.Price}
}

type recommendationDoc menuDoc

func (d *recommendationDoc) toModel() model.Recommendation {
	return model.Recommendation{ID: d.ID.Hex(), Name: d.Name, Recipe: d.Recipe, Image: d.Image, Category: d.Category, Price: d.Price}
}

type reviewDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Details string             `bson:"details"`
	Rating  float64            `bson:"rating"`
}

func (d *reviewDoc) toModel() model.Review {
	return model.Review{ID: d.ID.Hex(), Name: d.Name, Details: d.Details, Rating: d.Rating}
}

type contactDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *contactDoc) toModel() model.ContactMessage {
	return model.ContactMessage{ID: d.ID.Hex(), Name: d.Name, Email: d.Email, Phone: d.Phone, Message: d.Message, CreatedAt: d.CreatedAt}
}

type cartDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	MenuItemID string             `bson:"menuItemId"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image"`
	Price      float64            `bson:"price"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d *cartDoc) toModel() model.CartItem {
	return model.CartItem{
		ID:         d.ID.Hex(),
		Email:      d.Email,
		MenuItemID: d.MenuItemID,
		Name:       d.Name,
		Image:      d.Image,
		Price:      d.Price,
		CreatedAt:  d.CreatedAt,
	}
}

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Username string             `bson:"username"`
	Role     string             `bson:"role,omitempty"`
}

func (d *userDoc) toModel() model.User {
	return model.User{ID: d.ID.Hex(), Email: d.Email, Username: d.Username, Role: d.Role}
}

type paymentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Price         float64            `bson:"price"`
	TransactionID string             `bson:"transactionId"`
	Date          time.Time          `bson:"date"`
	CartIDs       []string           `bson:"cartIds"`
	MenuItemIDs   []string           `bson:"menuItemId"`
	Status        string             `bson:"status"`
}

func (d *paymentDoc) toModel() model.Payment {
	return model.Payment{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		Price:         d.Price,
		TransactionID: d.TransactionID,
		Date:          d.Date,
		CartIDs:       nonNil(d.CartIDs),
		MenuItemIDs:   nonNil(d.MenuItemIDs),
		Status:        d.Status,
	}
}

type reservationDataDoc struct {
	UserEmail string `bson:"userEmail"`
	UserName  string `bson:"userName"`
	Phone     string `bson:"phone"`
	Date      string `bson:"date"`
	Time      string `bson:"time"`
	Guests    int    `bson:"guests"`
	Status    string `bson:"status"`
}

type reservationDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ReservationData reservationDataDoc `bson:"reservationData"`
}

func (d *reservationDoc) toModel() model.Reservation {
	return model.Reservation{ID: d.ID.Hex(), ReservationData: model.ReservationData(d.ReservationData)}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, model.ErrInvalidID
	}
	return oid, nil
}

func insertedObjectID(res *mongo.InsertOneResult) *model.InsertResult {
	out := &model.InsertResult{Acknowledged: true}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.InsertedID = oid.Hex()
	}
	return out
}

func updateResult(res *mongo.UpdateResult) *model.UpdateResult {
	return &model.UpdateResult{Acknowledged: true, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
}

// findAll decodes every document matching filter and converts it, returning a non-nil slice.
func findAll[D any, M any](ctx context.Context, coll *mongo.Collection, filter interface{}, convert func(*D) M, opts ...*options.FindOptions) ([]M, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := make([]M, 0)
	for cur.Next(ctx) {
		var d D
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", coll.Name(), err)
		}
		out = append(out, convert(&d))
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", coll.Name(), err)
	}

	return out, nil
}
