package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/printeasy/printeasy/internal/domain/errors"
	"github.com/printeasy/printeasy/internal/domain/model"
	"github.com/printeasy/printeasy/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage needs; tests substitute
// a pgxmock pool through it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type complaintRepository struct {
	storage *Storage
}

type mediaDeletionRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Complaints() repository.ComplaintRepository {
	return &complaintRepository{storage: s}
}

func (s *Storage) MediaDeletions() repository.MediaDeletionRepository {
	return &mediaDeletionRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS carts (
            user_id BIGINT PRIMARY KEY REFERENCES users(id),
            items JSONB NOT NULL DEFAULT '[]',
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            items JSONB NOT NULL,
            subtotal DOUBLE PRECISION NOT NULL,
            delivery_fee DOUBLE PRECISION NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            ship_name TEXT NOT NULL DEFAULT '',
            ship_email TEXT NOT NULL DEFAULT '',
            ship_phone TEXT NOT NULL DEFAULT '',
            ship_address TEXT NOT NULL DEFAULT '',
            ship_city TEXT NOT NULL DEFAULT '',
            ship_state TEXT NOT NULL DEFAULT '',
            ship_pincode TEXT NOT NULL DEFAULT '',
            gateway_order_id TEXT NOT NULL DEFAULT '',
            payment_id TEXT NOT NULL DEFAULT '',
            payment_time TIMESTAMPTZ,
            payment_error TEXT NOT NULL DEFAULT '',
            cancellation_reason TEXT NOT NULL DEFAULT '',
            refund_status TEXT,
            refund_transaction_id TEXT NOT NULL DEFAULT '',
            refund_processed_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_status_log (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_notes (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            note TEXT NOT NULL,
            visible_to_customer BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS complaints (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            order_id BIGINT NOT NULL REFERENCES orders(id),
            message TEXT NOT NULL,
            image_url TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            rating INT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS complaint_responses (
            id SERIAL PRIMARY KEY,
            complaint_id BIGINT NOT NULL REFERENCES complaints(id),
            message TEXT NOT NULL,
            from_staff BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS media_deletions (
            id SERIAL PRIMARY KEY,
            remote_id TEXT NOT NULL,
            attempts INT NOT NULL DEFAULT 0,
            last_error TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
		`CREATE INDEX IF NOT EXISTS idx_status_log_order ON order_status_log(order_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_complaints_user ON complaints(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, name, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.Name = name
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, is_admin, created_at FROM users WHERE email=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, is_admin, created_at FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Admin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- CartRepository implementation ---

func (r *cartRepository) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	const query = `SELECT items, updated_at FROM carts WHERE user_id=$1`
	var raw []byte
	cart := model.Cart{UserID: userID}
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&raw, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.Cart{UserID: userID}, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &cart.Items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return &cart, nil
}

func (r *cartRepository) Put(ctx context.Context, userID int64, items []model.LineItem) (*model.Cart, error) {
	if items == nil {
		items = []model.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode cart items: %w", err)
	}

	const query = `INSERT INTO carts (user_id, items, updated_at) VALUES ($1, $2, NOW())
                   ON CONFLICT (user_id) DO UPDATE SET items=EXCLUDED.items, updated_at=NOW()
                   RETURNING updated_at`
	cart := model.Cart{UserID: userID, Items: items}
	if err := r.storage.pool.QueryRow(ctx, query, userID, raw).Scan(&cart.UpdatedAt); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM carts WHERE user_id=$1`, userID)
	return err
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, items, subtotal, delivery_fee, total_amount, status,
        ship_name, ship_email, ship_phone, ship_address, ship_city, ship_state, ship_pincode,
        gateway_order_id, payment_id, payment_time, payment_error, cancellation_reason,
        refund_status, refund_transaction_id, refund_processed_at, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o            model.Order
		items        []byte
		refundStatus *string
		refundTxID   string
		refundAt     *time.Time
	)
	err := row.Scan(
		&o.ID, &o.UserID, &items, &o.Subtotal, &o.DeliveryFee, &o.TotalAmount, &o.Status,
		&o.Shipping.Name, &o.Shipping.Email, &o.Shipping.Phone, &o.Shipping.Address,
		&o.Shipping.City, &o.Shipping.State, &o.Shipping.Pincode,
		&o.GatewayOrderID, &o.PaymentID, &o.PaymentTime, &o.PaymentError, &o.CancellationReason,
		&refundStatus, &refundTxID, &refundAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	if refundStatus != nil {
		o.Refund = &model.Refund{
			Status:        model.RefundStatus(*refundStatus),
			TransactionID: refundTxID,
			ProcessedAt:   refundAt,
		}
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}

	created := *order
	err = r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO orders (
                user_id, items, subtotal, delivery_fee, total_amount, status,
                ship_name, ship_email, ship_phone, ship_address, ship_city, ship_state, ship_pincode)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
            RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, query,
			order.UserID, items, order.Subtotal, order.DeliveryFee, order.TotalAmount, order.Status,
			order.Shipping.Name, order.Shipping.Email, order.Shipping.Phone, order.Shipping.Address,
			order.Shipping.City, order.Shipping.State, order.Shipping.Pincode,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return err
		}

		const logQuery = `INSERT INTO order_status_log (order_id, status, created_at) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, logQuery, created.ID, order.Status, created.CreatedAt); err != nil {
			return err
		}
		created.StatusLog = []model.StatusLogEntry{{Status: order.Status, Timestamp: created.CreatedAt}}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if order.StatusLog, err = r.statusLog(ctx, id); err != nil {
		return nil, err
	}
	if order.Notes, err = r.notes(ctx, id); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) statusLog(ctx context.Context, orderID int64) ([]model.StatusLogEntry, error) {
	const query = `SELECT status, created_at FROM order_status_log WHERE order_id=$1 ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var log []model.StatusLogEntry
	for rows.Next() {
		var entry model.StatusLogEntry
		if err := rows.Scan(&entry.Status, &entry.Timestamp); err != nil {
			return nil, err
		}
		log = append(log, entry)
	}
	return log, rows.Err()
}

func (r *orderRepository) notes(ctx context.Context, orderID int64) ([]model.OrderNote, error) {
	const query = `SELECT note, visible_to_customer, created_at FROM order_notes WHERE order_id=$1 ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.OrderNote
	for rows.Next() {
		var note model.OrderNote
		if err := rows.Scan(&note.Text, &note.VisibleToCustomer, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status == "" {
		query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1`
		rows, err = r.storage.pool.Query(ctx, query, limit)
	} else {
		query := `SELECT ` + orderColumns + ` FROM orders WHERE status=$1 ORDER BY created_at DESC LIMIT $2`
		rows, err = r.storage.pool.Query(ctx, query, status, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	return result, rows.Err()
}

func (r *orderRepository) Transition(ctx context.Context, orderID int64, from, to model.OrderStatus, at time.Time) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateQuery = `UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3 AND status=$4`
		tag, err := tx.Exec(ctx, updateQuery, to, at, orderID, from)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			var current model.OrderStatus
			err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1`, orderID).Scan(&current)
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			if err != nil {
				return err
			}
			return domainErrors.ErrStatusConflict
		}

		const logQuery = `INSERT INTO order_status_log (order_id, status, created_at) VALUES ($1, $2, $3)`
		_, err = tx.Exec(ctx, logQuery, orderID, to, at)
		return err
	})
}

func (r *orderRepository) SetPayment(ctx context.Context, orderID int64, paymentID string, paidAt time.Time) error {
	const query = `UPDATE orders SET payment_id=$1, payment_time=$2, payment_error='', updated_at=NOW() WHERE id=$3`
	return r.exec(ctx, query, paymentID, paidAt, orderID)
}

func (r *orderRepository) SetPaymentError(ctx context.Context, orderID int64, message string) error {
	const query = `UPDATE orders SET payment_error=$1, updated_at=NOW() WHERE id=$2`
	return r.exec(ctx, query, message, orderID)
}

func (r *orderRepository) SetGatewayOrder(ctx context.Context, orderID int64, gatewayOrderID string) error {
	const query = `UPDATE orders SET gateway_order_id=$1, updated_at=NOW() WHERE id=$2`
	return r.exec(ctx, query, gatewayOrderID, orderID)
}

func (r *orderRepository) SetCancellation(ctx context.Context, orderID int64, reason string, openRefund bool) error {
	if openRefund {
		const query = `UPDATE orders SET cancellation_reason=$1, refund_status=$2, updated_at=NOW()
                       WHERE id=$3 AND refund_status IS NULL`
		return r.exec(ctx, query, reason, model.RefundStatusPending, orderID)
	}
	const query = `UPDATE orders SET cancellation_reason=$1, updated_at=NOW() WHERE id=$2`
	return r.exec(ctx, query, reason, orderID)
}

func (r *orderRepository) ProcessRefund(ctx context.Context, orderID int64, transactionID string, at time.Time) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var status *string
		err := tx.QueryRow(ctx, `SELECT refund_status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		if err != nil {
			return err
		}
		if status == nil {
			return domainErrors.ErrNotFound
		}
		if model.RefundStatus(*status) == model.RefundStatusProcessed {
			return domainErrors.ErrRefundProcessed
		}

		const query = `UPDATE orders SET refund_status=$1, refund_transaction_id=$2, refund_processed_at=$3, updated_at=NOW()
                       WHERE id=$4`
		_, err = tx.Exec(ctx, query, model.RefundStatusProcessed, transactionID, at, orderID)
		return err
	})
}

func (r *orderRepository) AddNote(ctx context.Context, orderID int64, note model.OrderNote) error {
	const query = `INSERT INTO order_notes (order_id, note, visible_to_customer, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.storage.pool.Exec(ctx, query, orderID, note.Text, note.VisibleToCustomer, note.CreatedAt)
	return err
}

func (r *orderRepository) exec(ctx context.Context, query string, args ...any) error {
	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ComplaintRepository implementation ---

func (r *complaintRepository) Create(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	const query = `INSERT INTO complaints (user_id, order_id, message, image_url, status)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *complaint
	created.Status = model.ComplaintStatusOpen
	err := r.storage.pool.QueryRow(ctx, query,
		complaint.UserID, complaint.OrderID, complaint.Message, complaint.ImageURL, created.Status,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *complaintRepository) GetByID(ctx context.Context, id int64) (*model.Complaint, error) {
	const query = `SELECT id, user_id, order_id, message, image_url, status, rating, created_at
                   FROM complaints WHERE id=$1`
	var c model.Complaint
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.OrderID, &c.Message, &c.ImageURL, &c.Status, &c.Rating, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const responsesQuery = `SELECT message, from_staff, created_at FROM complaint_responses
                            WHERE complaint_id=$1 ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, responsesQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var resp model.ComplaintResponse
		if err := rows.Scan(&resp.Message, &resp.FromStaff, &resp.CreatedAt); err != nil {
			return nil, err
		}
		c.Responses = append(c.Responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *complaintRepository) ListByUser(ctx context.Context, userID int64) ([]model.Complaint, error) {
	const query = `SELECT id, user_id, order_id, message, image_url, status, rating, created_at
                   FROM complaints WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComplaints(rows)
}

func (r *complaintRepository) ListByStatus(ctx context.Context, status model.ComplaintStatus, limit int) ([]model.Complaint, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status == "" {
		const query = `SELECT id, user_id, order_id, message, image_url, status, rating, created_at
                       FROM complaints ORDER BY created_at DESC LIMIT $1`
		rows, err = r.storage.pool.Query(ctx, query, limit)
	} else {
		const query = `SELECT id, user_id, order_id, message, image_url, status, rating, created_at
                       FROM complaints WHERE status=$1 ORDER BY created_at DESC LIMIT $2`
		rows, err = r.storage.pool.Query(ctx, query, status, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComplaints(rows)
}

func collectComplaints(rows pgx.Rows) ([]model.Complaint, error) {
	var result []model.Complaint
	for rows.Next() {
		var c model.Complaint
		if err := rows.Scan(&c.ID, &c.UserID, &c.OrderID, &c.Message, &c.ImageURL, &c.Status, &c.Rating, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *complaintRepository) AddResponse(ctx context.Context, id int64, response model.ComplaintResponse, status model.ComplaintStatus) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertQuery = `INSERT INTO complaint_responses (complaint_id, message, from_staff, created_at)
                             VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, insertQuery, id, response.Message, response.FromStaff, response.CreatedAt); err != nil {
			return err
		}

		const updateQuery = `UPDATE complaints SET status=$1 WHERE id=$2`
		tag, err := tx.Exec(ctx, updateQuery, status, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

func (r *complaintRepository) SetStatus(ctx context.Context, id int64, status model.ComplaintStatus) error {
	const query = `UPDATE complaints SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *complaintRepository) SetRating(ctx context.Context, id int64, rating int) error {
	const query = `UPDATE complaints SET rating=$1 WHERE id=$2 AND status=$3 AND rating=0`
	tag, err := r.storage.pool.Exec(ctx, query, rating, id, model.ComplaintStatusClosed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrRatingNotAllowed
	}
	return nil
}

// --- MediaDeletionRepository implementation ---

func (r *mediaDeletionRepository) Enqueue(ctx context.Context, remoteIDs []string) error {
	const query = `INSERT INTO media_deletions (remote_id) VALUES ($1)`
	for _, id := range remoteIDs {
		if id == "" {
			continue
		}
		if _, err := r.storage.pool.Exec(ctx, query, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *mediaDeletionRepository) SelectBatch(ctx context.Context, limit int) ([]model.MediaDeletion, error) {
	const selectQuery = `SELECT id, remote_id, attempts, last_error, created_at
                         FROM media_deletions
                         ORDER BY created_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var batch []model.MediaDeletion
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var d model.MediaDeletion
			if err := rows.Scan(&d.ID, &d.RemoteID, &d.Attempts, &d.LastError, &d.CreatedAt); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `UPDATE media_deletions SET attempts=attempts+1 WHERE id=$1`, d.ID); err != nil {
				return err
			}
			d.Attempts++
			batch = append(batch, d)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (r *mediaDeletionRepository) MarkDone(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM media_deletions WHERE id=$1`, id)
	return err
}

func (r *mediaDeletionRepository) MarkFailed(ctx context.Context, id int64, message string) error {
	_, err := r.storage.pool.Exec(ctx, `UPDATE media_deletions SET last_error=$1 WHERE id=$2`, message, id)
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
