package orders

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/cart"
	"storefront/error_messages"
)

// PostgresStore keeps orders in the hosted database. Customer details and the
// item snapshot are stored as JSONB columns, mirroring the nested records of
// the orders table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Submit(customer Customer, items []cart.Item) (Order, error) {
	order := NewOrder(customer, items)

	customerJSON, err := json.Marshal(order.Customer)
	if err != nil {
		return Order{}, fmt.Errorf("marshal order customer: %w", err)
	}
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return Order{}, fmt.Errorf("marshal order items: %w", err)
	}

	row := s.db.QueryRow(
		`INSERT INTO orders (customer, items, total, status, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		customerJSON, itemsJSON, order.Total, string(order.Status), order.CreatedAt)
	if err := row.Scan(&order.ID); err != nil {
		return Order{}, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

func (s *PostgresStore) List() ([]Order, error) {
	rows, err := s.db.Query(
		`SELECT id, customer, items, total, status, created_at
		 FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var all []Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	return all, nil
}

func (s *PostgresStore) UpdateStatus(id int, status Status) (Order, error) {
	row := s.db.QueryRow(
		`UPDATE orders SET status = $1 WHERE id = $2
		 RETURNING id, customer, items, total, status, created_at`,
		string(status), id)

	order, err := scanOrder(row)
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

func (s *PostgresStore) Delete(id int) error {
	res, err := s.db.Exec("DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
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

func (s *PostgresStore) DeleteByStatus(status Status) error {
	_, err := s.db.Exec("DELETE FROM orders WHERE status = $1", string(status))
	if err != nil {
		return fmt.Errorf("delete orders by status: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var order Order
	var customerJSON, itemsJSON []byte
	var status string

	err := row.Scan(&order.ID, &customerJSON, &itemsJSON, &order.Total, &status, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, error_messages.ErrNotExists
		}
		return Order{}, err
	}

	if err := json.Unmarshal(customerJSON, &order.Customer); err != nil {
		return Order{}, fmt.Errorf("unmarshal order customer: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return Order{}, fmt.Errorf("unmarshal order items: %w", err)
	}
	order.Status = Status(status)
	return order, nil
}
