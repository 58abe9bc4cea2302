package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	model "rewear/internal/models"
	"rewear/internal/swaperrors"
)

// All SQL is explicit. Conditional updates carry the expectation in the WHERE
// clause; zero rows affected means either the row is gone or the expectation
// no longer holds, which the caller distinguishes with a follow-up read.
const (
	sqlSchema = `
		CREATE TABLE IF NOT EXISTS users (
			user_id       TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			points        INTEGER NOT NULL CHECK (points >= 0),
			role          TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS items (
			item_id     TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL,
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			category    TEXT NOT NULL,
			type        TEXT NOT NULL,
			size        TEXT NOT NULL,
			condition   TEXT NOT NULL,
			tags        TEXT NOT NULL,
			status      TEXT NOT NULL,
			points      INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS swaps (
			swap_id         TEXT PRIMARY KEY,
			item_id         TEXT NOT NULL,
			offered_item_id TEXT NOT NULL DEFAULT '',
			requester_id    TEXT NOT NULL,
			owner_id        TEXT NOT NULL,
			status          TEXT NOT NULL,
			created_at      TEXT NOT NULL
		);`

	sqlGetUser        = `SELECT user_id, name, email, password_hash, points, role FROM users WHERE user_id = ?`
	sqlGetUserByEmail = `SELECT user_id, name, email, password_hash, points, role FROM users WHERE email = ? COLLATE NOCASE`
	sqlInsertUser     = `INSERT INTO users (user_id, name, email, password_hash, points, role) VALUES (?, ?, ?, ?, ?, ?)`
	sqlUpdateUser     = `UPDATE users SET name = ?, email = ?, password_hash = ?, points = ?, role = ? WHERE user_id = ? AND points = ?`
	sqlListUsers      = `SELECT user_id, name, email, password_hash, points, role FROM users ORDER BY user_id`

	sqlGetItem           = `SELECT item_id, user_id, title, description, category, type, size, condition, tags, status, points FROM items WHERE item_id = ?`
	sqlInsertItem        = `INSERT INTO items (item_id, user_id, title, description, category, type, size, condition, tags, status, points) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	sqlUpdateItem        = `UPDATE items SET user_id = ?, title = ?, description = ?, category = ?, type = ?, size = ?, condition = ?, tags = ?, status = ?, points = ? WHERE item_id = ? AND status = ?`
	sqlDeleteItem        = `DELETE FROM items WHERE item_id = ?`
	sqlListItemsByStatus = `SELECT item_id, user_id, title, description, category, type, size, condition, tags, status, points FROM items WHERE status = ? ORDER BY item_id`
	sqlListItemsByUser   = `SELECT item_id, user_id, title, description, category, type, size, condition, tags, status, points FROM items WHERE user_id = ? ORDER BY item_id`

	sqlGetSwap              = `SELECT swap_id, item_id, offered_item_id, requester_id, owner_id, status, created_at FROM swaps WHERE swap_id = ?`
	sqlInsertSwap           = `INSERT INTO swaps (swap_id, item_id, offered_item_id, requester_id, owner_id, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	sqlUpdateSwap           = `UPDATE swaps SET item_id = ?, offered_item_id = ?, requester_id = ?, owner_id = ?, status = ? WHERE swap_id = ? AND status = ?`
	sqlListSwaps            = `SELECT swap_id, item_id, offered_item_id, requester_id, owner_id, status, created_at FROM swaps ORDER BY created_at, swap_id`
	sqlListSwapsByRequester = `SELECT swap_id, item_id, offered_item_id, requester_id, owner_id, status, created_at FROM swaps WHERE requester_id = ? ORDER BY created_at, swap_id`
	sqlListSwapsByOwner     = `SELECT swap_id, item_id, offered_item_id, requester_id, owner_id, status, created_at FROM swaps WHERE owner_id = ? ORDER BY created_at, swap_id`
)

// SQLiteRepo is a LedgerStore backed by a SQLite database
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo opens (and if needed creates) the database at path and
// ensures the schema exists. Use ":memory:" for an ephemeral store.
func NewSQLiteRepo(path string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store %s: %w", path, err)
	}
	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY errors under concurrent settlement operations.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqlSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return &SQLiteRepo{db: db}, nil
}

// Close releases the underlying database handle
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.Points, &u.Role)
	return u, err
}

// GetUser returns the user with the given id
func (r *SQLiteRepo) GetUser(userID string) (model.User, error) {
	user, err := scanUser(r.db.QueryRow(sqlGetUser, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, swaperrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

// GetUserByEmail returns the user registered under the given email
func (r *SQLiteRepo) GetUserByEmail(email string) (model.User, error) {
	user, err := scanUser(r.db.QueryRow(sqlGetUserByEmail, email))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, swaperrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, err)
	}
	return user, nil
}

// CreateUser stores a new user. The email must not already be registered.
func (r *SQLiteRepo) CreateUser(user model.User) error {
	_, err := r.db.Exec(sqlInsertUser, user.UserID, user.Name, user.Email, user.PasswordHash, user.Points, user.Role)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return fmt.Errorf("create user %s: %w", user.UserID, swaperrors.ErrEmailTaken)
		}
		return fmt.Errorf("create user %s: %w", user.UserID, err)
	}
	return nil
}

// UpdateUser replaces the stored user if their points balance still matches
// expectedPriorPoints at write time.
func (r *SQLiteRepo) UpdateUser(user model.User, expectedPriorPoints int) error {
	res, err := r.db.Exec(sqlUpdateUser,
		user.Name, user.Email, user.PasswordHash, user.Points, user.Role,
		user.UserID, expectedPriorPoints)
	if err != nil {
		return fmt.Errorf("update user %s: %w", user.UserID, err)
	}
	return r.checkConditionalWrite(res, "update user "+user.UserID, func() error {
		_, err := r.GetUser(user.UserID)
		return err
	})
}

// ListUsers returns all registered users
func (r *SQLiteRepo) ListUsers() ([]model.User, error) {
	rows, err := r.db.Query(sqlListUsers)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.Points, &u.Role); err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanItem(scan func(dest ...any) error) (model.Item, error) {
	var i model.Item
	var tags string
	err := scan(&i.ItemID, &i.UserID, &i.Title, &i.Description, &i.Category, &i.Type,
		&i.Size, &i.Condition, &tags, &i.Status, &i.Points)
	if tags != "" {
		i.Tags = strings.Split(tags, ",")
	}
	return i, err
}

// GetItem returns the item with the given id
func (r *SQLiteRepo) GetItem(itemID string) (model.Item, error) {
	item, err := scanItem(r.db.QueryRow(sqlGetItem, itemID).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, swaperrors.ErrItemNotFound)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, err)
	}
	return item, nil
}

// CreateItem stores a new item
func (r *SQLiteRepo) CreateItem(item model.Item) error {
	_, err := r.db.Exec(sqlInsertItem,
		item.ItemID, item.UserID, item.Title, item.Description, item.Category,
		item.Type, item.Size, item.Condition, strings.Join(item.Tags, ","),
		string(item.Status), item.Points)
	if err != nil {
		return fmt.Errorf("create item %s: %w", item.ItemID, err)
	}
	return nil
}

// UpdateItem replaces the stored item if its status still matches
// expectedPriorStatus at write time.
func (r *SQLiteRepo) UpdateItem(item model.Item, expectedPriorStatus model.ItemStatus) error {
	res, err := r.db.Exec(sqlUpdateItem,
		item.UserID, item.Title, item.Description, item.Category, item.Type,
		item.Size, item.Condition, strings.Join(item.Tags, ","), string(item.Status), item.Points,
		item.ItemID, string(expectedPriorStatus))
	if err != nil {
		return fmt.Errorf("update item %s: %w", item.ItemID, err)
	}
	return r.checkConditionalWrite(res, "update item "+item.ItemID, func() error {
		_, err := r.GetItem(item.ItemID)
		return err
	})
}

// DeleteItem removes an item
func (r *SQLiteRepo) DeleteItem(itemID string) error {
	res, err := r.db.Exec(sqlDeleteItem, itemID)
	if err != nil {
		return fmt.Errorf("delete item %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete item %s: %w", itemID, swaperrors.ErrItemNotFound)
	}
	return nil
}

func (r *SQLiteRepo) queryItems(query string, args ...any) ([]model.Item, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("query items: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListItemsByStatus returns all items currently in the given status
func (r *SQLiteRepo) ListItemsByStatus(status model.ItemStatus) ([]model.Item, error) {
	return r.queryItems(sqlListItemsByStatus, string(status))
}

// ListItemsByUser returns all items owned by a user
func (r *SQLiteRepo) ListItemsByUser(userID string) ([]model.Item, error) {
	return r.queryItems(sqlListItemsByUser, userID)
}

func scanSwap(scan func(dest ...any) error) (model.Swap, error) {
	var s model.Swap
	var created string
	err := scan(&s.SwapID, &s.ItemID, &s.OfferedItemID, &s.RequesterID, &s.OwnerID, &s.Status, &created)
	if err == nil {
		s.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	}
	return s, err
}

// GetSwap returns the swap with the given id
func (r *SQLiteRepo) GetSwap(swapID string) (model.Swap, error) {
	swap, err := scanSwap(r.db.QueryRow(sqlGetSwap, swapID).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Swap{}, fmt.Errorf("get swap %s: %w", swapID, swaperrors.ErrSwapNotFound)
	}
	if err != nil {
		return model.Swap{}, fmt.Errorf("get swap %s: %w", swapID, err)
	}
	return swap, nil
}

// CreateSwap stores a new swap request
func (r *SQLiteRepo) CreateSwap(swap model.Swap) error {
	_, err := r.db.Exec(sqlInsertSwap,
		swap.SwapID, swap.ItemID, swap.OfferedItemID, swap.RequesterID, swap.OwnerID,
		string(swap.Status), swap.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("create swap %s: %w", swap.SwapID, err)
	}
	return nil
}

// UpdateSwap replaces the stored swap if its status still matches
// expectedPriorStatus at write time.
func (r *SQLiteRepo) UpdateSwap(swap model.Swap, expectedPriorStatus model.SwapStatus) error {
	res, err := r.db.Exec(sqlUpdateSwap,
		swap.ItemID, swap.OfferedItemID, swap.RequesterID, swap.OwnerID, string(swap.Status),
		swap.SwapID, string(expectedPriorStatus))
	if err != nil {
		return fmt.Errorf("update swap %s: %w", swap.SwapID, err)
	}
	return r.checkConditionalWrite(res, "update swap "+swap.SwapID, func() error {
		_, err := r.GetSwap(swap.SwapID)
		return err
	})
}

func (r *SQLiteRepo) querySwaps(query string, args ...any) ([]model.Swap, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query swaps: %w", err)
	}
	defer rows.Close()

	swaps := make([]model.Swap, 0)
	for rows.Next() {
		swap, err := scanSwap(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("query swaps: %w", err)
		}
		swaps = append(swaps, swap)
	}
	return swaps, rows.Err()
}

// ListSwaps returns all swaps in creation order
func (r *SQLiteRepo) ListSwaps() ([]model.Swap, error) {
	return r.querySwaps(sqlListSwaps)
}

// ListSwapsByRequester returns the swaps a user has proposed, in creation order
func (r *SQLiteRepo) ListSwapsByRequester(userID string) ([]model.Swap, error) {
	return r.querySwaps(sqlListSwapsByRequester, userID)
}

// ListSwapsByOwner returns the swaps targeting a user's items, in creation order
func (r *SQLiteRepo) ListSwapsByOwner(userID string) ([]model.Swap, error) {
	return r.querySwaps(sqlListSwapsByOwner, userID)
}

// checkConditionalWrite turns a zero-rows-affected conditional update into
// either a not-found error (reported by reread) or a store conflict.
func (r *SQLiteRepo) checkConditionalWrite(res sql.Result, op string, reread func() error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n > 0 {
		return nil
	}
	if err := reread(); err != nil {
		return err
	}
	return fmt.Errorf("%s: %w", op, swaperrors.ErrStoreConflict)
}

var _ LedgerStore = (*MemoryRepo)(nil)
var _ LedgerStore = (*SQLiteRepo)(nil)
