package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/pribylovaa/agro-community/internal/metrics"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/pkg/log"
	"github.com/pribylovaa/agro-community/internal/storage"
)

// ListingInput — создание объявления.
type ListingInput struct {
	User     string
	Name     string
	Qty      float64
	Price    float64
	Icon     string
	Color    string
	Contact  string
	Notes    string
	ImageURL string
	SoldOut  bool
}

type cropStyle struct {
	match string
	icon  string
	color string
}

// cropStyles — иконка и цвет по подстроке названия культуры, первое совпадение.
var cropStyles = []cropStyle{
	{match: "rice", icon: "fa-seedling", color: "yellow"},
	{match: "tomato", icon: "fa-apple-alt", color: "red"},
	{match: "potato", icon: "fa-cookie", color: "orange"},
	{match: "onion", icon: "fa-feather-alt", color: "purple"},
	{match: "chili", icon: "fa-pepper-hot", color: "red"},
}

const (
	defaultCropIcon  = "fa-leaf"
	defaultCropColor = "green"
)

// CropStyle подбирает иконку и цвет для культуры.
func CropStyle(name string) (icon, color string) {
	lower := strings.ToLower(name)
	for _, cs := range cropStyles {
		if strings.Contains(lower, cs.match) {
			return cs.icon, cs.color
		}
	}

	return defaultCropIcon, defaultCropColor
}

// MirrorText собирает текст поста-зеркала из полей объявления.
func MirrorText(l *models.Listing) string {
	lines := []string{
		"📢 নতুন বিক্রয় বিজ্ঞপ্তি!",
		"ফসল: " + l.Name,
		"পরিমাণ: " + formatAmount(l.Qty) + " কেজি",
		"দাম: ৳" + formatAmount(l.Price) + "/কেজি",
		"যোগাযোগ: " + l.Contact,
	}

	if notes := strings.TrimSpace(l.Notes); notes != "" {
		lines = append(lines, "নোট: "+notes)
	}

	return strings.Join(lines, "\n")
}

// CreateListing создаёт объявление и, если shareToFeed, пост-зеркало в ленте.
//
// Операция не транзакционна: сбой после вставки объявления логируется,
// объявление возвращается без ссылки на пост.
func (s *Service) CreateListing(ctx context.Context, in ListingInput, shareToFeed bool) (*models.Listing, error) {
	const op = "service/marketplace/CreateListing"

	listing := &models.Listing{
		User:     strings.TrimSpace(in.User),
		UserID:   callerID(ctx),
		Name:     strings.TrimSpace(in.Name),
		Qty:      in.Qty,
		Price:    in.Price,
		Icon:     strings.TrimSpace(in.Icon),
		Color:    strings.TrimSpace(in.Color),
		Contact:  strings.TrimSpace(in.Contact),
		Notes:    strings.TrimSpace(in.Notes),
		ImageURL: strings.TrimSpace(in.ImageURL),
		SoldOut:  in.SoldOut,
	}

	lg := log.From(ctx).With("op", op, "user", listing.User, "crop", listing.Name)

	if err := validateListing(listing); err != nil {
		lg.Warn("invalid argument: " + err.Error())
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	icon, color := CropStyle(listing.Name)
	listing.Icon = lo.Ternary(listing.Icon == "", icon, listing.Icon)
	listing.Color = lo.Ternary(listing.Color == "", color, listing.Color)

	if err := s.storage.SaveListing(ctx, listing); err != nil {
		return nil, storageErr(lg, op, "SaveListing", err)
	}

	if !shareToFeed {
		return listing, nil
	}

	post := mirrorPost(listing)
	if err := s.storage.SavePost(ctx, post); err != nil {
		metrics.Fallbacks.WithLabelValues("marketplace", "mirror_create").Inc()
		lg.Error("storage error on SavePost (mirror)", "listing_id", listing.ID, "err", err)
		return listing, nil
	}

	if err := s.storage.SetListingPost(ctx, listing.ID, post.ID); err != nil {
		metrics.Fallbacks.WithLabelValues("marketplace", "mirror_link").Inc()
		lg.Error("storage error on SetListingPost", "listing_id", listing.ID, "post_id", post.ID, "err", err)
		return listing, nil
	}

	listing.CommunityPostID = post.ID

	return listing, nil
}

// ListListings возвращает объявления, сначала новые.
// Ссылки на удалённые посты-зеркала очищаются при чтении.
func (s *Service) ListListings(ctx context.Context) ([]models.Listing, error) {
	const op = "service/marketplace/ListListings"

	lg := log.From(ctx).With("op", op)

	listings, err := s.storage.ListListings(ctx)
	if err != nil {
		return nil, storageErr(lg, op, "ListListings", err)
	}

	s.repairMirrors(ctx, listings)

	return listings, nil
}

// UpdateListing применяет частичное обновление объявления владельцем
// и синхронизирует пост-зеркало (текст, медиа, статус).
func (s *Service) UpdateListing(ctx context.Context, id, requester string, patch models.ListingPatch) (*models.Listing, error) {
	const op = "service/marketplace/UpdateListing"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "listing_id", id, "requester", requester)

	if id == "" || !hasRequester(ctx, requester) {
		lg.Warn("invalid argument: empty id or requester")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	listing, err := s.storage.ListingByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, "ListingByID", err)
	}

	if !owns(ctx, listing.User, listing.UserID, requester) {
		lg.Warn("forbidden: not the owner", "owner", listing.User)
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	applyListingPatch(listing, patch)

	if err := validateListing(listing); err != nil {
		lg.Warn("invalid argument: " + err.Error())
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.UpdateListing(ctx, listing); err != nil {
		return nil, storageErr(lg, op, "UpdateListing", err)
	}

	if listing.CommunityPostID == "" {
		return listing, nil
	}

	err = s.storage.UpdateMirror(ctx, listing.CommunityPostID, mirrorPatch(listing))
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		lg.Warn("mirror post vanished, clearing reference", "post_id", listing.CommunityPostID)
		if err := s.storage.SetListingPost(ctx, listing.ID, ""); err != nil {
			lg.Error("storage error on SetListingPost", "err", err)
		} else {
			listing.CommunityPostID = ""
		}
	default:
		metrics.Fallbacks.WithLabelValues("marketplace", "mirror_update").Inc()
		lg.Error("storage error on UpdateMirror", "post_id", listing.CommunityPostID, "err", err)
	}

	return listing, nil
}

// DeleteListing удаляет объявление владельцем, затем его пост-зеркало.
// Отсутствующее зеркало не считается ошибкой.
func (s *Service) DeleteListing(ctx context.Context, id, requester string) error {
	const op = "service/marketplace/DeleteListing"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "listing_id", id, "requester", requester)

	if id == "" || !hasRequester(ctx, requester) {
		lg.Warn("invalid argument: empty id or requester")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	listing, err := s.storage.ListingByID(ctx, id)
	if err != nil {
		return storageErr(lg, op, "ListingByID", err)
	}

	if !owns(ctx, listing.User, listing.UserID, requester) {
		lg.Warn("forbidden: not the owner", "owner", listing.User)
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if err := s.storage.DeleteListing(ctx, id); err != nil {
		return storageErr(lg, op, "DeleteListing", err)
	}

	if listing.CommunityPostID == "" {
		return nil
	}

	if err := s.storage.DeletePost(ctx, listing.CommunityPostID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		metrics.Fallbacks.WithLabelValues("marketplace", "mirror_delete").Inc()
		lg.Error("storage error on DeletePost (mirror)", "post_id", listing.CommunityPostID, "err", err)
	}

	return nil
}

// repairMirrors очищает ссылки на несуществующие посты. Ошибки не прерывают чтение.
func (s *Service) repairMirrors(ctx context.Context, listings []models.Listing) {
	lg := log.From(ctx).With("op", "service/marketplace/repairMirrors")

	ids := lo.FilterMap(listings, func(l models.Listing, _ int) (string, bool) {
		return l.CommunityPostID, l.CommunityPostID != ""
	})
	if len(ids) == 0 {
		return
	}

	posts, err := s.storage.PostsByIDs(ctx, ids)
	if err != nil {
		lg.Error("storage error on PostsByIDs", "err", err)
		return
	}

	alive := lo.KeyBy(posts, func(p models.Post) string { return p.ID })
	for i := range listings {
		l := &listings[i]
		if l.CommunityPostID == "" {
			continue
		}

		if _, ok := alive[l.CommunityPostID]; ok {
			continue
		}

		if err := s.storage.SetListingPost(ctx, l.ID, ""); err != nil {
			lg.Error("storage error on SetListingPost", "listing_id", l.ID, "err", err)
			continue
		}

		lg.Info("orphan mirror reference cleared", "listing_id", l.ID, "post_id", l.CommunityPostID)
		l.CommunityPostID = ""
	}
}

func validateListing(l *models.Listing) error {
	switch {
	case l.User == "":
		return errors.New("empty user")
	case l.Name == "":
		return errors.New("empty name")
	case l.Contact == "":
		return errors.New("empty contact")
	case l.Qty < 0 || l.Price < 0:
		return errors.New("negative qty or price")
	}

	return nil
}

func applyListingPatch(l *models.Listing, p models.ListingPatch) {
	trim := func(v *string) string { return strings.TrimSpace(*v) }

	if p.Name != nil {
		l.Name = trim(p.Name)
	}
	if p.Qty != nil {
		l.Qty = *p.Qty
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.Icon != nil {
		l.Icon = trim(p.Icon)
	}
	if p.Color != nil {
		l.Color = trim(p.Color)
	}
	if p.Contact != nil {
		l.Contact = trim(p.Contact)
	}
	if p.Notes != nil {
		l.Notes = trim(p.Notes)
	}
	if p.ImageURL != nil {
		l.ImageURL = trim(p.ImageURL)
	}
	if p.SoldOut != nil {
		l.SoldOut = *p.SoldOut
	}
}

func mirrorPost(l *models.Listing) *models.Post {
	mp := mirrorPatch(l)

	return &models.Post{
		User:         l.User,
		UserID:       l.UserID,
		Role:         models.RoleFarmer,
		Initial:      initialOf(l.User),
		Color:        defaultPostColor,
		Text:         mp.Text,
		MediaType:    mp.MediaType,
		MediaSrc:     mp.MediaSrc,
		MarketStatus: mp.MarketStatus,
	}
}

func mirrorPatch(l *models.Listing) models.MirrorPatch {
	mp := models.MirrorPatch{
		Text:         MirrorText(l),
		MarketStatus: lo.Ternary(l.SoldOut, models.MarketSoldOut, models.MarketAvailable),
	}

	if l.ImageURL != "" {
		mp.MediaType = models.MediaImage
		mp.MediaSrc = l.ImageURL
	}

	return mp
}

// formatAmount печатает число без лишних нулей: 50 -> "50", 12.5 -> "12.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
