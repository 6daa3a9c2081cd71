package couponRepo

import (
	"context"
	"fmt"
	"time"

	"cleanly/models"
	"cleanly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CouponRepository defines methods for coupon data access.
type CouponRepository interface {
	// GetActiveByCode retrieves an active coupon by exact code; nil if absent.
	GetActiveByCode(code string) (*models.Coupon, error)
	// GetByID retrieves a coupon by its unique ID; nil if absent.
	GetByID(id string) (*models.Coupon, error)
	// GetAll retrieves every coupon.
	GetAll() ([]models.Coupon, error)
	// Create inserts a new coupon record; a duplicate code yields a
	// ConflictError.
	Create(coupon *models.Coupon) error
	// SetActive toggles a coupon's eligibility flag.
	SetActive(id string, active bool) error
	// Delete removes a coupon record by its ID.
	Delete(id string) error
}

// MongoCouponRepo implements CouponRepository using MongoDB.
type MongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo creates a new instance of CouponRepository using MongoDB.
func NewMongoCouponRepo(db *mongo.Database) CouponRepository {
	repo := &MongoCouponRepo{coll: db.Collection("coupons")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCouponRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetActiveByCode retrieves an active coupon by exact code match.
func (r *MongoCouponRepo) GetActiveByCode(code string) (*models.Coupon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"code": code, "isActive": true}
	var coupon models.Coupon
	if err := r.coll.FindOne(ctx, filter).Decode(&coupon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch coupon with code %s: %w", code, err)
	}
	return &coupon, nil
}

// GetByID retrieves a coupon by its unique ID.
func (r *MongoCouponRepo) GetByID(id string) (*models.Coupon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var coupon models.Coupon
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&coupon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch coupon with id %s: %w", id, err)
	}
	return &coupon, nil
}

// GetAll retrieves every coupon.
func (r *MongoCouponRepo) GetAll() ([]models.Coupon, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve coupons: %w", err)
	}
	defer cursor.Close(ctx)

	var coupons []models.Coupon
	for cursor.Next(ctx) {
		var c models.Coupon
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode coupon: %w", err)
		}
		coupons = append(coupons, c)
	}
	return coupons, nil
}

// Create inserts a new coupon document.
func (r *MongoCouponRepo) Create(coupon *models.Coupon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	coupon.CreatedAt = now
	coupon.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, coupon); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError{Reason: "Coupon code already exists"}
		}
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// SetActive toggles a coupon's eligibility flag.
func (r *MongoCouponRepo) SetActive(id string, active bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": active, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update coupon with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("coupon with id %s not found", id)
	}
	return nil
}

// Delete removes a coupon document by its ID.
func (r *MongoCouponRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete coupon with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("coupon with id %s not found", id)
	}
	return nil
}
