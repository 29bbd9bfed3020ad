//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const TestPassword = "password123"

var (
	passwordHashOnce sync.Once
	passwordHash     string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	passwordHashOnce.Do(func() {
		b, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		if err == nil {
			passwordHash = string(b)
		}
	})
	require.NotEmpty(t, passwordHash, "failed to hash test password")
	return passwordHash
}

// CreateTestUser inserts a user whose password is TestPassword. An existing email is reused.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	name := strings.Split(email, "@")[0]

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, name, strings.ToLower(email), testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", strings.ToLower(email)).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestProperty(t *testing.T, db DBLike, landlordID uuid.UUID, city string, rent float64) uuid.UUID {
	t.Helper()

	propertyID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO properties (id, landlord_id, title, description, address, city, postal_code, rent, bedrooms, bathrooms, available_from)
		VALUES ($1, $2, 'Test property', 'A place to stay', '1 Main St', $3, '12345', $4, 2, 1, '2025-01-01')`,
		propertyID, landlordID, city, rent)
	require.NoError(t, err)

	return propertyID
}

func SetPropertyAvailability(t *testing.T, db DBLike, propertyID uuid.UUID, available bool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE properties SET is_available = $2 WHERE id = $1", propertyID, available)
	require.NoError(t, err)
}

// CreateTestBooking inserts a booking directly, bypassing the overlap check in the command layer.
func CreateTestBooking(t *testing.T, db DBLike, propertyID, tenantID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO bookings (id, property_id, tenant_id, start_date, end_date, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, 100, $6)`,
		bookingID, propertyID, tenantID, start.Format("2006-01-02"), end.Format("2006-01-02"), status)
	require.NoError(t, err)

	return bookingID
}

func CreateTestReview(t *testing.T, db DBLike, propertyID, tenantID uuid.UUID, rating int, approved bool) uuid.UUID {
	t.Helper()

	reviewID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO reviews (id, property_id, tenant_id, rating, review_text, is_approved)
		VALUES ($1, $2, $3, $4, 'Nice stay', $5)`,
		reviewID, propertyID, tenantID, rating, approved)
	require.NoError(t, err)

	return reviewID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
