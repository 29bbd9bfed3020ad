package queries

//go:generate mockgen -source=property.go -destination=../../../tests/mock/queries/property.go -package=queriesmock

import (
	"context"
	"encoding/json"
	"time"

	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"

	"github.com/google/uuid"
)

// Viewer is the optional caller of a public read.
type Viewer struct {
	ID   uuid.UUID
	Role user.Role
}

type PropertyReadStore interface {
	SearchFirstPage(ctx context.Context, filters PropertyFilters, limit int32) ([]*PropertyListItem, error)
	SearchKeyset(ctx context.Context, filters PropertyFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PropertyListItem, error)
	FindDetail(ctx context.Context, id uuid.UUID) (*PropertyDetail, error)
	CanReview(ctx context.Context, propertyID, tenantID uuid.UUID, today time.Time) (bool, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID) ([]*LandlordPropertyItem, error)
	ListForAdmin(ctx context.Context) ([]*AdminPropertyItem, error)
}

// PropertySearchCache is best effort: misses and failures fall through to the store.
type PropertySearchCache interface {
	GetSearch(ctx context.Context, key string) (result *PropertySearchResult, slot string, ok bool)
	SetSearch(ctx context.Context, slot string, result *PropertySearchResult)
}

type PropertyQueries interface {
	Search(ctx context.Context, filters PropertyFilters, cursor *Cursor, limit int) (*PropertySearchResult, error)
	GetByID(ctx context.Context, id uuid.UUID, viewer *Viewer) (*PropertyDetail, error)
	ListForLandlord(ctx context.Context, landlordID uuid.UUID) ([]*LandlordPropertyItem, error)
	ListForAdmin(ctx context.Context) ([]*AdminPropertyItem, error)
}

type propertyQueriesImpl struct {
	store PropertyReadStore
	cache PropertySearchCache
	clock clock.Clock
}

func NewPropertyQueries(store PropertyReadStore, cache PropertySearchCache, clk clock.Clock) PropertyQueries {
	return &propertyQueriesImpl{store: store, cache: cache, clock: clk}
}

func (q *propertyQueriesImpl) Search(ctx context.Context, filters PropertyFilters, cursor *Cursor, limit int) (*PropertySearchResult, error) {
	limit = ValidateLimit(limit)
	after := ""
	if cursor != nil {
		after = cursor.After
	}

	key := searchCacheKey(filters, after, limit)
	cached, slot, ok := q.cache.GetSearch(ctx, key)
	if ok {
		return cached, nil
	}

	var rows []*PropertyListItem
	var err error
	if after == "" {
		rows, err = q.store.SearchFirstPage(ctx, filters, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(after)
		if derr != nil {
			return nil, ErrInvalidCursor
		}
		rows, err = q.store.SearchKeyset(ctx, filters, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	}
	if err != nil {
		return nil, err
	}

	result := &PropertySearchResult{Items: rows}
	if len(rows) > limit {
		last := rows[limit-1]
		result.Next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		result.Items = rows[:limit]
	}
	if result.Items == nil {
		result.Items = []*PropertyListItem{}
	}

	q.cache.SetSearch(ctx, slot, result)
	return result, nil
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, viewer *Viewer) (*PropertyDetail, error) {
	detail, err := q.store.FindDetail(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, property.ErrNotFound
		}
		return nil, err
	}

	if viewer != nil && user.Authorize(viewer.Role, user.CapReviewCreate) {
		ok, err := q.store.CanReview(ctx, id, viewer.ID, q.clock.Now())
		if err != nil {
			return nil, err
		}
		detail.CanReview = ok
	}
	return detail, nil
}

func (q *propertyQueriesImpl) ListForLandlord(ctx context.Context, landlordID uuid.UUID) ([]*LandlordPropertyItem, error) {
	return q.store.ListByLandlord(ctx, landlordID)
}

func (q *propertyQueriesImpl) ListForAdmin(ctx context.Context) ([]*AdminPropertyItem, error) {
	return q.store.ListForAdmin(ctx)
}

func searchCacheKey(filters PropertyFilters, after string, limit int) string {
	payload, _ := json.Marshal(struct {
		Filters PropertyFilters `json:"f"`
		After   string          `json:"a,omitempty"`
		Limit   int             `json:"l"`
	}{filters, after, limit})
	return string(payload)
}
