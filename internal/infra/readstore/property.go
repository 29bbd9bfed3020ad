package readstore

import (
	"context"
	"math"
	"strings"
	"time"

	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PropertyReadQueries interface {
	GetPropertyAccess(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertyAccessRow, error)
	GetPropertyAccessForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertyAccessForUpdateRow, error)
	GetPropertyDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertyDetailRow, error)
	SearchPropertiesFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchPropertiesFirstPageParams) ([]sqlc.SearchPropertiesFirstPageRow, error)
	SearchPropertiesKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchPropertiesKeysetParams) ([]sqlc.SearchPropertiesKeysetRow, error)
	ListPropertyImagesByPropertyIDs(ctx context.Context, db sqlc.DBTX, propertyIds []uuid.UUID) ([]sqlc.PropertyImages, error)
	ListApprovedReviewsByProperty(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) ([]sqlc.ListApprovedReviewsByPropertyRow, error)
	ListPropertiesByLandlord(ctx context.Context, db sqlc.DBTX, landlordID uuid.UUID) ([]sqlc.ListPropertiesByLandlordRow, error)
	ListPropertiesForAdmin(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListPropertiesForAdminRow, error)
	HasCompletedStay(ctx context.Context, db sqlc.DBTX, arg sqlc.HasCompletedStayParams) (bool, error)
	ReviewExistsForTenant(ctx context.Context, db sqlc.DBTX, arg sqlc.ReviewExistsForTenantParams) (bool, error)
}

type PropertyReadStore struct {
	queries PropertyReadQueries
	db      sqlc.DBTX
}

func NewPropertyReadStore(queries PropertyReadQueries, db sqlc.DBTX) *PropertyReadStore {
	return &PropertyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyReadStore) Access(ctx context.Context, id uuid.UUID) (*property.Access, error) {
	row, err := r.queries.GetPropertyAccess(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get property access", err)
	}
	return &property.Access{ID: row.ID, LandlordID: row.LandlordID, IsAvailable: row.IsAvailable}, nil
}

// AccessForUpdate locks the property row until the surrounding transaction ends.
func (r *PropertyReadStore) AccessForUpdate(ctx context.Context, id uuid.UUID) (*property.Access, error) {
	row, err := r.queries.GetPropertyAccessForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock property", err)
	}
	return &property.Access{ID: row.ID, LandlordID: row.LandlordID, IsAvailable: row.IsAvailable}, nil
}

func (r *PropertyReadStore) SearchFirstPage(ctx context.Context, filters queries.PropertyFilters, limit int32) ([]*queries.PropertyListItem, error) {
	params := sqlc.SearchPropertiesFirstPageParams{
		City:      cityPattern(filters.City),
		MinRent:   rentBound(filters.MinRent),
		MaxRent:   rentBound(filters.MaxRent),
		Bedrooms:  pgconv.IntPtrToPgtype(filters.Bedrooms),
		Bathrooms: pgconv.IntPtrToPgtype(filters.Bathrooms),
		Limit:     limit,
	}
	rows, err := r.queries.SearchPropertiesFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search properties first page", err)
	}
	items := make([]*queries.PropertyListItem, len(rows))
	for i, row := range rows {
		items[i] = toPropertyListItem(sqlc.GetPropertyDetailRow(row))
	}
	return r.attachImages(ctx, items)
}

func (r *PropertyReadStore) SearchKeyset(ctx context.Context, filters queries.PropertyFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PropertyListItem, error) {
	params := sqlc.SearchPropertiesKeysetParams{
		City:      cityPattern(filters.City),
		MinRent:   rentBound(filters.MinRent),
		MaxRent:   rentBound(filters.MaxRent),
		Bedrooms:  pgconv.IntPtrToPgtype(filters.Bedrooms),
		Bathrooms: pgconv.IntPtrToPgtype(filters.Bathrooms),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	}
	rows, err := r.queries.SearchPropertiesKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search properties keyset", err)
	}
	items := make([]*queries.PropertyListItem, len(rows))
	for i, row := range rows {
		items[i] = toPropertyListItem(sqlc.GetPropertyDetailRow(row))
	}
	return r.attachImages(ctx, items)
}

func (r *PropertyReadStore) FindDetail(ctx context.Context, id uuid.UUID) (*queries.PropertyDetail, error) {
	row, err := r.queries.GetPropertyDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get property detail", err)
	}

	items, err := r.attachImages(ctx, []*queries.PropertyListItem{toPropertyListItem(row)})
	if err != nil {
		return nil, err
	}

	reviewRows, err := r.queries.ListApprovedReviewsByProperty(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved reviews", err)
	}
	reviews := make([]queries.PropertyReview, len(reviewRows))
	for i, rv := range reviewRows {
		reviews[i] = queries.PropertyReview{
			ID:         rv.ID,
			TenantID:   rv.TenantID,
			TenantName: rv.TenantName,
			Rating:     rv.Rating,
			ReviewText: pgconv.StringPtrFromPgtype(rv.ReviewText),
			CreatedAt:  pgconv.TimeFromPgtype(rv.CreatedAt),
		}
	}

	return &queries.PropertyDetail{PropertyListItem: *items[0], Reviews: reviews}, nil
}

// CanReview mirrors the submission rules: a completed approved stay and no earlier review.
func (r *PropertyReadStore) CanReview(ctx context.Context, propertyID, tenantID uuid.UUID, today time.Time) (bool, error) {
	completed, err := r.HasCompletedStay(ctx, propertyID, tenantID, today)
	if err != nil || !completed {
		return false, err
	}
	reviewed, err := r.HasReviewed(ctx, propertyID, tenantID)
	if err != nil {
		return false, err
	}
	return !reviewed, nil
}

func (r *PropertyReadStore) HasCompletedStay(ctx context.Context, propertyID, tenantID uuid.UUID, today time.Time) (bool, error) {
	ok, err := r.queries.HasCompletedStay(ctx, r.db, sqlc.HasCompletedStayParams{
		PropertyID: propertyID,
		TenantID:   tenantID,
		Today:      pgconv.DateToPgtype(today),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check completed stay", err)
	}
	return ok, nil
}

func (r *PropertyReadStore) HasReviewed(ctx context.Context, propertyID, tenantID uuid.UUID) (bool, error) {
	ok, err := r.queries.ReviewExistsForTenant(ctx, r.db, sqlc.ReviewExistsForTenantParams{
		PropertyID: propertyID,
		TenantID:   tenantID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing review", err)
	}
	return ok, nil
}

func (r *PropertyReadStore) ListByLandlord(ctx context.Context, landlordID uuid.UUID) ([]*queries.LandlordPropertyItem, error) {
	rows, err := r.queries.ListPropertiesByLandlord(ctx, r.db, landlordID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list landlord properties", err)
	}
	result := make([]*queries.LandlordPropertyItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.LandlordPropertyItem{
			ID:              row.ID,
			Title:           row.Title,
			City:            row.City,
			Rent:            pgconv.Float64FromNumeric(row.Rent),
			IsAvailable:     row.IsAvailable,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
			PendingBookings: row.PendingBookings,
			TotalBookings:   row.TotalBookings,
			TotalReviews:    row.TotalReviews,
		}
	}
	return result, nil
}

func (r *PropertyReadStore) ListForAdmin(ctx context.Context) ([]*queries.AdminPropertyItem, error) {
	rows, err := r.queries.ListPropertiesForAdmin(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties for admin", err)
	}
	result := make([]*queries.AdminPropertyItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.AdminPropertyItem{
			ID:          row.ID,
			Title:       row.Title,
			City:        row.City,
			Rent:        pgconv.Float64FromNumeric(row.Rent),
			IsAvailable: row.IsAvailable,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			Landlord: queries.Contact{
				ID:    row.LandlordID,
				Name:  row.LandlordName,
				Email: row.LandlordEmail,
			},
			TotalBookings: row.TotalBookings,
			TotalReviews:  row.TotalReviews,
		}
	}
	return result, nil
}

func (r *PropertyReadStore) attachImages(ctx context.Context, items []*queries.PropertyListItem) ([]*queries.PropertyListItem, error) {
	if len(items) == 0 {
		return items, nil
	}
	ids := make([]uuid.UUID, len(items))
	byID := make(map[uuid.UUID]*queries.PropertyListItem, len(items))
	for i, it := range items {
		ids[i] = it.ID
		byID[it.ID] = it
		it.Images = []queries.ImageView{}
	}

	rows, err := r.queries.ListPropertyImagesByPropertyIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list property images", err)
	}
	for _, img := range rows {
		if it, ok := byID[img.PropertyID]; ok {
			it.Images = append(it.Images, queries.ImageView{URL: img.Url, IsPrimary: img.IsPrimary})
		}
	}
	return items, nil
}

func toPropertyListItem(row sqlc.GetPropertyDetailRow) *queries.PropertyListItem {
	return &queries.PropertyListItem{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Address:       row.Address,
		City:          row.City,
		PostalCode:    row.PostalCode,
		Rent:          pgconv.Float64FromNumeric(row.Rent),
		Bedrooms:      row.Bedrooms,
		Bathrooms:     row.Bathrooms,
		AvailableFrom: pgconv.DateFromPgtype(row.AvailableFrom),
		IsAvailable:   row.IsAvailable,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		Landlord: queries.Contact{
			ID:    row.LandlordID,
			Name:  row.LandlordName,
			Email: row.LandlordEmail,
		},
		ReviewCount:   row.TotalReviews,
		AverageRating: pgconv.Float64FromNumeric(row.AverageRating),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// cityPattern escapes LIKE wildcards so the filter is a literal substring match.
func cityPattern(city *string) pgtype.Text {
	if city == nil || strings.TrimSpace(*city) == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: likeEscaper.Replace(strings.TrimSpace(*city)), Valid: true}
}

func rentBound(v *float64) pgtype.Numeric {
	if v == nil {
		return pgtype.Numeric{}
	}
	cents := int64(math.Round(*v * 100))
	return pgconv.CentsToNumeric(cents)
}
