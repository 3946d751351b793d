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
)

// DefaultPhoneNumberID is the provider phone number id of the seeded owner.
const DefaultPhoneNumberID = "PNID"

func CreateTestOwner(t *testing.T, db DBLike, name, phoneNumberID string) uuid.UUID {
	t.Helper()

	ownerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO owners (id, name, phone_number_id, bot_number) VALUES ($1, $2, $3, '551140000000')
		ON CONFLICT (phone_number_id) DO NOTHING`, ownerID, name, phoneNumberID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM owners WHERE phone_number_id = $1", phoneNumberID).Scan(&ownerID)
	}

	return ownerID
}

func DefaultOwnerID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var ownerID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM owners WHERE phone_number_id = $1", DefaultPhoneNumberID).Scan(&ownerID)
	require.NoError(t, err)
	return ownerID
}

func CreateTestAdmin(t *testing.T, db DBLike, ownerID uuid.UUID, phone string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO admins (owner_id, phone, name) VALUES ($1, $2, 'Admin') RETURNING id", ownerID, phone).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCustomer(t *testing.T, db DBLike, ownerID uuid.UUID, phone string, balanceCents int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO customers (owner_id, phone, name, balance_cents) VALUES ($1, $2, 'Ana', $3) RETURNING id",
		ownerID, phone, balanceCents).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCategory(t *testing.T, db DBLike, ownerID uuid.UUID, name string, priceCents int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO categories (owner_id, name, price_cents) VALUES ($1, $2, $3) RETURNING id",
		ownerID, name, priceCents).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestProduct(t *testing.T, db DBLike, categoryID int64, content string, stock int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO products (category_id, content, stock) VALUES ($1, $2, $3) RETURNING id",
		categoryID, content, stock).Scan(&id)
	require.NoError(t, err)
	return id
}

func ProductStock(t *testing.T, db DBLike, productID int64) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", productID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func CustomerBalance(t *testing.T, db DBLike, customerID int64) int64 {
	t.Helper()

	var balance int64
	err := db.QueryRow(context.Background(), "SELECT balance_cents FROM customers WHERE id = $1", customerID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func CountPurchases(t *testing.T, db DBLike, customerID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM purchases WHERE customer_id = $1", customerID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO owners (name, phone_number_id, bot_number) VALUES
		    ('Loja Padrão', $1, '551140000000')
		ON CONFLICT (phone_number_id) DO NOTHING;
	`, DefaultPhoneNumberID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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

	return SeedReferenceData(pool)
}
