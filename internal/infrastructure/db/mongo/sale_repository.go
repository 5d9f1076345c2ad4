package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freshmart/inventory-api/internal/core/domain"
	"github.com/freshmart/inventory-api/internal/core/ports"
)

const collectionSales = "sales"

// SaleRepository implements ports.SaleRepository using MongoDB.
// The sales collection is append-only: no update or delete paths exist.
type SaleRepository struct {
	col *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{col: db.Collection(collectionSales)}
}

type saleDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ProductID   string             `bson:"product_id"`
	ProductName string             `bson:"product_name"`
	Quantity    int                `bson:"quantity"`
	TotalAmount float64            `bson:"total_amount"`
	UserID      string             `bson:"user_id"`
	Date        time.Time          `bson:"date"`
}

func (d saleDoc) toDomain() *domain.Sale {
	return &domain.Sale{
		ID:          d.ID.Hex(),
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		Quantity:    d.Quantity,
		TotalAmount: d.TotalAmount,
		UserID:      d.UserID,
		Date:        d.Date,
	}
}

// Create appends a sale to the ledger and returns it with the generated id.
func (r *SaleRepository) Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := saleDoc{
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		TotalAmount: s.TotalAmount,
		UserID:      s.UserID,
		Date:        s.Date,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByRecorder returns the sales recorded by the given user, newest first.
func (r *SaleRepository) FindByRecorder(ctx context.Context, userID string) ([]*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sales := []*domain.Sale{}
	for cursor.Next(ctx) {
		var doc saleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		sales = append(sales, doc.toDomain())
	}
	return sales, cursor.Err()
}

// TotalsByRecorder aggregates quantity and revenue over the sales recorded by
// the given user.
func (r *SaleRepository) TotalsByRecorder(ctx context.Context, userID string) (ports.SaleTotals, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"total_quantity": bson.M{"$sum": "$quantity"},
			"total_revenue":  bson.M{"$sum": "$total_amount"},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return ports.SaleTotals{}, err
	}
	defer cursor.Close(ctx)

	var result struct {
		TotalQuantity int     `bson:"total_quantity"`
		TotalRevenue  float64 `bson:"total_revenue"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return ports.SaleTotals{}, err
		}
	}
	return ports.SaleTotals{Quantity: result.TotalQuantity, Revenue: result.TotalRevenue}, cursor.Err()
}

// EnsureIndexes creates necessary indexes on the sales collection.
func (r *SaleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "product_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
