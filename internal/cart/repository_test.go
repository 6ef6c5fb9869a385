package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_UpsertLine(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "owner_key", "product_id", "quantity", "created_at", "updated_at"}).
			AddRow("cart-1", "sess-1", "prod-1", 2, time.Now(), time.Now())

		mock.ExpectQuery("INSERT INTO cart_items").
			WithArgs("sess-1", "prod-1", 2).
			WillReturnRows(rows)

		item, err := repo.UpsertLine(context.Background(), "sess-1", "prod-1", 2)

		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "cart-1", item.ID)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("Conflict merges quantity", func(t *testing.T) {
		// The upsert returns the summed quantity for an existing line.
		rows := sqlmock.NewRows([]string{"id", "owner_key", "product_id", "quantity", "created_at", "updated_at"}).
			AddRow("cart-1", "sess-1", "prod-1", 5, time.Now(), time.Now())

		mock.ExpectQuery("INSERT INTO cart_items").
			WithArgs("sess-1", "prod-1", 3).
			WillReturnRows(rows)

		item, err := repo.UpsertLine(context.Background(), "sess-1", "prod-1", 3)

		assert.NoError(t, err)
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO cart_items").
			WillReturnError(errors.New("db error"))

		_, err := repo.UpsertLine(context.Background(), "sess-1", "prod-1", 1)
		assert.Error(t, err)
	})
}

func TestRepository_SetQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE cart_items SET quantity = \\$1").
			WithArgs(5, "sess-1", "prod-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetQuantity(context.Background(), "sess-1", "prod-1", 5)
		assert.NoError(t, err)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE cart_items SET quantity").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetQuantity(context.Background(), "sess-1", "prod-1", 5)
		assert.Equal(t, ErrLineNotFound, err)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("UPDATE cart_items SET quantity").
			WillReturnError(errors.New("db error"))

		err := repo.SetQuantity(context.Background(), "sess-1", "prod-1", 5)
		assert.Error(t, err)
	})
}

func TestRepository_DeleteLine(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs("sess-1", "prod-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteLine(context.Background(), "sess-1", "prod-1")
		assert.NoError(t, err)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteLine(context.Background(), "sess-1", "prod-1")
		assert.Equal(t, ErrLineNotFound, err)
	})
}

func TestRepository_Clear(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs("sess-1").
			WillReturnResult(sqlmock.NewResult(0, 3))

		err := repo.Clear(context.Background(), "sess-1")
		assert.NoError(t, err)
	})

	t.Run("Empty cart is fine", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs("sess-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Clear(context.Background(), "sess-1")
		assert.NoError(t, err)
	})
}

func TestRepository_GetCartRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"c_id", "c_owner_key", "c_product_id", "c_quantity", "c_created_at", "c_updated_at",
			"p_id", "p_name", "p_description", "p_price", "p_image_url",
			"p_category", "p_stock_quantity", "p_featured", "p_created_at", "p_updated_at",
		}).AddRow(
			"cart-1", "sess-1", "prod-1", 2, time.Now(), time.Now(),
			"prod-1", "Silk Scarf", "Hand-rolled edges", 79.99, "img.jpg",
			"Accessories", 50, false, time.Now(), time.Now(),
		)

		mock.ExpectQuery("SELECT .* FROM cart_items c").
			WithArgs("sess-1").
			WillReturnRows(rows)

		items, err := repo.GetCartRows(context.Background(), "sess-1")

		assert.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "prod-1", items[0].ProductID)
		require.NotNil(t, items[0].Product)
		assert.Equal(t, 79.99, items[0].Product.Price)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM cart_items c").
			WithArgs("sess-2").
			WillReturnRows(sqlmock.NewRows([]string{"c_id"}))

		items, err := repo.GetCartRows(context.Background(), "sess-2")

		assert.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestRepository_MergeOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO cart_items").
			WithArgs("user:7", "sess-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs("sess-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := repo.MergeOwner(context.Background(), "sess-1", "user:7")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback on failure", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO cart_items").
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		err := repo.MergeOwner(context.Background(), "sess-1", "user:7")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
