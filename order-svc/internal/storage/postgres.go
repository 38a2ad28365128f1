package storage

import (
	"database/sql"

	"orderiq/order-svc/internal/domain"
)

// ProfileRecord is the durable profile row keyed by the identity id. Current
// scope is insert and point-lookup only.
type ProfileRecord struct {
	ID             string
	Email          string
	Role           domain.Role
	Name           string
	Phone          string
	RestaurantID   string
	RestaurantName string
	Address        string
	Cuisine        string
}

type PostgresProfileRepository struct {
	DB *sql.DB
}

func NewPostgresProfileRepository(db *sql.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{DB: db}
}

func (r *PostgresProfileRepository) InsertProfile(rec *ProfileRecord) error {
	_, err := r.DB.Exec(
		`INSERT INTO profiles (id, email, role, name, phone, restaurant_id, restaurant_name, address, cuisine)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.Email, string(rec.Role), rec.Name, rec.Phone,
		rec.RestaurantID, rec.RestaurantName, rec.Address, rec.Cuisine,
	)
	return err
}

func (r *PostgresProfileRepository) GetProfile(id string) (*ProfileRecord, error) {
	var rec ProfileRecord
	var role string
	err := r.DB.QueryRow(
		`SELECT id, email, role, COALESCE(name, ''), COALESCE(phone, ''),
		        COALESCE(restaurant_id, ''), COALESCE(restaurant_name, ''),
		        COALESCE(address, ''), COALESCE(cuisine, '')
		 FROM profiles WHERE id = $1`, id).
		Scan(&rec.ID, &rec.Email, &role, &rec.Name, &rec.Phone,
			&rec.RestaurantID, &rec.RestaurantName, &rec.Address, &rec.Cuisine)
	if err != nil {
		return nil, err
	}
	rec.Role = domain.Role(role)
	return &rec, nil
}
