package models

import "time"

// Listing — объявление о продаже урожая.
// Владелец определяется по имени (User); UserID заполняется, если известен.
// CommunityPostID указывает на пост-зеркало в ленте либо пуст.
type Listing struct {
	ID              string    `json:"id"`
	User            string    `json:"user"`
	UserID          string    `json:"userId,omitempty"`
	Name            string    `json:"name"`
	Qty             float64   `json:"qty"`
	Price           float64   `json:"price"`
	Icon            string    `json:"icon"`
	Color           string    `json:"color"`
	Contact         string    `json:"contact"`
	Notes           string    `json:"notes"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	SoldOut         bool      `json:"soldOut"`
	CommunityPostID string    `json:"communityPostId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ListingPatch — частичное обновление объявления; nil-поля не меняются.
type ListingPatch struct {
	Name     *string
	Qty      *float64
	Price    *float64
	Icon     *string
	Color    *string
	Contact  *string
	Notes    *string
	ImageURL *string
	SoldOut  *bool
}
