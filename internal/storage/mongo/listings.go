package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/storage"
)

type listingDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	User            string             `bson:"user"`
	UserID          string             `bson:"user_id,omitempty"`
	Name            string             `bson:"name"`
	Qty             float64            `bson:"qty"`
	Price           float64            `bson:"price"`
	Icon            string             `bson:"icon"`
	Color           string             `bson:"color"`
	Contact         string             `bson:"contact"`
	Notes           string             `bson:"notes"`
	ImageURL        string             `bson:"image_url,omitempty"`
	SoldOut         bool               `bson:"sold_out"`
	CommunityPostID string             `bson:"community_post_id,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d *listingDoc) toModel() models.Listing {
	return models.Listing{
		ID:              d.ID.Hex(),
		User:            d.User,
		UserID:          d.UserID,
		Name:            d.Name,
		Qty:             d.Qty,
		Price:           d.Price,
		Icon:            d.Icon,
		Color:           d.Color,
		Contact:         d.Contact,
		Notes:           d.Notes,
		ImageURL:        d.ImageURL,
		SoldOut:         d.SoldOut,
		CommunityPostID: d.CommunityPostID,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
}

// SaveListing вставляет объявление.
func (m *Mongo) SaveListing(ctx context.Context, listing *models.Listing) error {
	const op = "storage/mongo/SaveListing"

	now := toMS(time.Now())
	doc := listingDoc{
		User:            listing.User,
		UserID:          listing.UserID,
		Name:            listing.Name,
		Qty:             listing.Qty,
		Price:           listing.Price,
		Icon:            listing.Icon,
		Color:           listing.Color,
		Contact:         listing.Contact,
		Notes:           listing.Notes,
		ImageURL:        listing.ImageURL,
		SoldOut:         listing.SoldOut,
		CommunityPostID: listing.CommunityPostID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res, err := m.listings.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("%s: inserted id type", op)
	}

	listing.ID = oid.Hex()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	return nil
}

// ListingByID возвращает объявление; некорректный id — storage.ErrNotFound.
func (m *Mongo) ListingByID(ctx context.Context, id string) (*models.Listing, error) {
	const op = "storage/mongo/ListingByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc listingDoc
	if err := m.listings.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// ListListings возвращает все объявления, сначала новые.
func (m *Mongo) ListListings(ctx context.Context) ([]models.Listing, error) {
	const op = "storage/mongo/ListListings"

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := m.listings.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	items := []models.Listing{}
	for cur.Next(ctx) {
		var doc listingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		items = append(items, doc.toModel())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}

// UpdateListing перезаписывает изменяемые поля; владелец и дата создания не меняются.
func (m *Mongo) UpdateListing(ctx context.Context, listing *models.Listing) error {
	const op = "storage/mongo/UpdateListing"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(listing.ID))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	now := toMS(time.Now())
	res, err := m.listings.UpdateByID(ctx, oid, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "name", Value: listing.Name},
			{Key: "qty", Value: listing.Qty},
			{Key: "price", Value: listing.Price},
			{Key: "icon", Value: listing.Icon},
			{Key: "color", Value: listing.Color},
			{Key: "contact", Value: listing.Contact},
			{Key: "notes", Value: listing.Notes},
			{Key: "image_url", Value: listing.ImageURL},
			{Key: "sold_out", Value: listing.SoldOut},
			{Key: "updated_at", Value: now},
		}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	listing.UpdatedAt = now
	return nil
}

// SetListingPost проставляет ссылку на пост-зеркало; пустой postID её снимает.
func (m *Mongo) SetListingPost(ctx context.Context, id, postID string) error {
	const op = "storage/mongo/SetListingPost"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "community_post_id", Value: postID}}}}
	if postID == "" {
		update = bson.D{{Key: "$unset", Value: bson.D{{Key: "community_post_id", Value: ""}}}}
	}

	res, err := m.listings.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteListing удаляет объявление.
func (m *Mongo) DeleteListing(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteListing"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.listings.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
