package tests

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"orderiq/order-svc/internal/domain"
	"orderiq/order-svc/internal/storage"
)

func TestPostgresProfileRepository_InsertProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresProfileRepository(db)

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs("rest_user1", "restaurant@demo.com", "restaurant", "Demo Owner",
			"03001234567", "rest1", "Karachi Biryani House", "Lahore, Punjab", "Pakistani").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.InsertProfile(&storage.ProfileRecord{
		ID: "rest_user1", Email: "restaurant@demo.com", Role: domain.RoleRestaurant,
		Name: "Demo Owner", Phone: "03001234567",
		RestaurantID: "rest1", RestaurantName: "Karachi Biryani House",
		Address: "Lahore, Punjab", Cuisine: "Pakistani",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProfileRepository_InsertProfile_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresProfileRepository(db)

	mock.ExpectExec("INSERT INTO profiles").WillReturnError(assert.AnError)

	err = repo.InsertProfile(&storage.ProfileRecord{
		ID: "cust1", Email: "customer@demo.com", Role: domain.RoleCustomer,
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProfileRepository_GetProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresProfileRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "email", "role", "name", "phone",
		"restaurant_id", "restaurant_name", "address", "cuisine",
	}).AddRow("cust1", "customer@demo.com", "customer", "Demo Customer", "",
		"", "", "", "")

	mock.ExpectQuery("SELECT id, email, role").
		WithArgs("cust1").
		WillReturnRows(rows)

	rec, err := repo.GetProfile("cust1")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, rec.Role)
	assert.Equal(t, "Demo Customer", rec.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProfileRepository_GetProfile_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresProfileRepository(db)

	mock.ExpectQuery("SELECT id, email, role").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "role", "name", "phone",
			"restaurant_id", "restaurant_name", "address", "cuisine",
		}))

	rec, err := repo.GetProfile("ghost")
	assert.Error(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, mock.ExpectationsWereMet())
}
