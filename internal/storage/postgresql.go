// Package storage provides primitives for connecting to and interacting with data storage systems.
// It defines the Storage interface along with a PostgreSQL implementation that manages identities,
// the sticker catalog, ownership records, friendships and trade settlement.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sticker_album/internal/models"
	"sticker_album/internal/pkg/logger"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Sentinel errors reported by conditional state transitions. The app layer
// maps them onto its own error taxonomy.
var (
	// ErrAlreadyResolved indicates that a pending record was already accepted or declined.
	ErrAlreadyResolved = errors.New("storage: already resolved")
	// ErrInsufficientInventory indicates that a guarded quantity decrement would go below zero.
	ErrInsufficientInventory = errors.New("storage: insufficient inventory")
)

const (
	createAuthTokenQuery  = `INSERT INTO content.auth_tokens (id, email, secret_hash, expires_at) VALUES ($1, $2, $3, $4);`
	getAuthTokenQuery     = `SELECT id, email, secret_hash, expires_at, consumed_at FROM content.auth_tokens WHERE id = $1;`
	consumeAuthTokenQuery = `UPDATE content.auth_tokens SET consumed_at = NOW() WHERE id = $1 AND consumed_at IS NULL;`

	createIdentityQuery          = `INSERT INTO content.users (id, email, username, avatar_path, friend_code) VALUES ($1, $2, $3, $4, $5);`
	getIdentityByIDQuery         = `SELECT id, email, username, avatar_path, friend_code, created_at FROM content.users WHERE id = $1;`
	getIdentityByEmailQuery      = `SELECT id, email, username, avatar_path, friend_code, created_at FROM content.users WHERE email = $1;`
	getIdentityByFriendCodeQuery = `SELECT id, email, username, avatar_path, friend_code, created_at FROM content.users WHERE friend_code = $1;`
	updateIdentityQuery          = `UPDATE content.users SET username = $1, avatar_path = $2, updated_at = NOW() WHERE id = $3;`

	listAlbumsQuery        = `SELECT id, name, description, total_stickers, image_url, is_active FROM content.albums WHERE is_active ORDER BY name;`
	getAlbumQuery          = `SELECT id, name, description, total_stickers, image_url, is_active FROM content.albums WHERE id = $1;`
	listStickersQuery      = `SELECT s.id, s.album_id, s.sticker_number, s.name, s.image_url, s.rarity FROM content.stickers s JOIN content.albums a ON a.id = s.album_id WHERE a.is_active;`
	listAlbumStickersQuery = `SELECT s.id, s.album_id, s.sticker_number, s.name, s.image_url, s.rarity, COALESCE(us.quantity, 0) FROM content.stickers s LEFT JOIN content.user_stickers us ON us.sticker_id = s.id AND us.user_id = $1 WHERE s.album_id = $2 ORDER BY s.sticker_number;`
	listOwnedStickersQuery = `SELECT s.id, s.album_id, s.sticker_number, s.name, s.image_url, s.rarity, us.quantity FROM content.user_stickers us JOIN content.stickers s ON s.id = us.sticker_id WHERE us.user_id = $1 AND ($2 = '' OR s.album_id::text = $2) ORDER BY s.album_id, s.sticker_number;`

	getOwnedQuantitiesQuery = `SELECT sticker_id, quantity FROM content.user_stickers WHERE user_id = $1 AND sticker_id::text = ANY($2);`
	upsertStickerQuery      = `INSERT INTO content.user_stickers (id, user_id, sticker_id, quantity) VALUES ($1, $2, $3, $4) ON CONFLICT (user_id, sticker_id) DO UPDATE SET quantity = user_stickers.quantity + EXCLUDED.quantity;`
	decrementStickerQuery   = `UPDATE content.user_stickers SET quantity = quantity - $3 WHERE user_id = $1 AND sticker_id = $2 AND quantity >= $3;`
	deleteZeroStickerQuery  = `DELETE FROM content.user_stickers WHERE user_id = $1 AND sticker_id = $2 AND quantity = 0;`

	albumCollectedQuery   = `SELECT COUNT(*) FROM content.user_stickers us JOIN content.stickers s ON s.id = us.sticker_id WHERE us.user_id = $1 AND s.album_id = $2;`
	albumTotalQuery       = `SELECT total_stickers FROM content.albums WHERE id = $1;`
	// Collected and total must range over the same albums: stickers from
	// retired albums stay owned but no longer count towards completion.
	overallCollectedQuery = `SELECT COUNT(*) FROM content.user_stickers us JOIN content.stickers s ON s.id = us.sticker_id JOIN content.albums a ON a.id = s.album_id WHERE us.user_id = $1 AND a.is_active;`
	overallTotalQuery     = `SELECT COALESCE(SUM(total_stickers), 0) FROM content.albums WHERE is_active;`

	createFriendshipQuery           = `INSERT INTO content.friendships (id, user_id, friend_id, status) VALUES ($1, $2, $3, $4);`
	getFriendshipQuery              = `SELECT id, user_id, friend_id, status, created_at FROM content.friendships WHERE id = $1;`
	friendshipBetweenQuery          = `SELECT id, user_id, friend_id, status, created_at FROM content.friendships WHERE ((user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)) AND status IN ('pending', 'accepted') LIMIT 1;`
	acceptFriendshipQuery           = `UPDATE content.friendships SET status = 'accepted' WHERE id = $1 AND status = 'pending';`
	deletePendingFriendshipQuery    = `DELETE FROM content.friendships WHERE id = $1 AND status = 'pending';`
	listFriendIdentitiesQuery       = `SELECT u.id, u.email, u.username, u.avatar_path, u.friend_code, u.created_at FROM content.friendships f JOIN content.users u ON u.id = CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END WHERE (f.user_id = $1 OR f.friend_id = $1) AND f.status = 'accepted';`
	listIncomingFriendRequestsQuery = `SELECT f.id, f.created_at, u.id, u.email, u.username, u.avatar_path, u.friend_code, u.created_at FROM content.friendships f JOIN content.users u ON u.id = f.user_id WHERE f.friend_id = $1 AND f.status = 'pending' ORDER BY f.created_at DESC;`
	countPendingFriendRequestsQuery = `SELECT COUNT(*) FROM content.friendships WHERE friend_id = $1 AND status = 'pending';`

	createTradeQuery        = `INSERT INTO content.trades (id, requester_id, responder_id, status) VALUES ($1, $2, $3, $4);`
	createTradeItemQuery    = `INSERT INTO content.trade_items (id, trade_id, sticker_id, quantity, direction) VALUES ($1, $2, $3, $4, $5);`
	getTradeQuery           = `SELECT id, requester_id, responder_id, status, created_at, updated_at FROM content.trades WHERE id = $1;`
	getTradeItemsQuery      = `SELECT sticker_id, quantity, direction FROM content.trade_items WHERE trade_id = $1;`
	listIncomingTradesQuery = `SELECT id, requester_id, responder_id, status, created_at, updated_at FROM content.trades WHERE responder_id = $1 AND status = 'pending' ORDER BY created_at DESC;`
	listOutgoingTradesQuery = `SELECT id, requester_id, responder_id, status, created_at, updated_at FROM content.trades WHERE requester_id = $1 ORDER BY created_at DESC;`
	acceptTradeQuery        = `UPDATE content.trades SET status = 'accepted', updated_at = NOW() WHERE id = $1 AND status = 'pending';`
	declineTradeQuery       = `UPDATE content.trades SET status = 'declined', updated_at = NOW() WHERE id = $1 AND status = 'pending';`
	completeTradeQuery      = `UPDATE content.trades SET status = 'completed', updated_at = NOW() WHERE id = $1;`
	countPendingTradesQuery = `SELECT COUNT(*) FROM content.trades WHERE responder_id = $1 AND status = 'pending';`
)

// Storage defines the methods required for data storage operations.
type Storage interface {
	// Close closes the database connection.
	Close()

	// Passwordless login token methods.
	CreateAuthToken(ctx context.Context, token *models.AuthToken) error
	GetAuthToken(ctx context.Context, id string) (*models.AuthToken, error)
	ConsumeAuthToken(ctx context.Context, id string) (bool, error)

	// Identity methods.
	CreateIdentity(ctx context.Context, identity *models.Identity) error
	GetIdentityByID(ctx context.Context, id string) (*models.Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (*models.Identity, error)
	GetIdentityByFriendCode(ctx context.Context, code string) (*models.Identity, error)
	UpdateIdentity(ctx context.Context, identity *models.Identity) error

	// Catalog methods.
	ListAlbums(ctx context.Context) ([]models.Album, error)
	GetAlbum(ctx context.Context, id string) (*models.Album, error)
	ListStickers(ctx context.Context) ([]models.Sticker, error)
	ListAlbumStickers(ctx context.Context, userID, albumID string) ([]models.OwnedSticker, error)
	ListOwnedStickers(ctx context.Context, userID, albumID string) ([]models.OwnedSticker, error)

	// Ownership methods.
	GetOwnedQuantities(ctx context.Context, userID string, stickerIDs []string) (map[string]int, error)
	AddStickers(ctx context.Context, userID string, stickerIDs []string) error

	// Progress methods.
	AlbumProgress(ctx context.Context, userID, albumID string) (collected, total int, err error)
	OverallProgress(ctx context.Context, userID string) (collected, total int, err error)

	// Friendship methods.
	CreateFriendship(ctx context.Context, friendship *models.Friendship) error
	GetFriendship(ctx context.Context, id string) (*models.Friendship, error)
	FriendshipBetween(ctx context.Context, userID, otherID string) (*models.Friendship, error)
	AcceptFriendship(ctx context.Context, id string) (bool, error)
	DeletePendingFriendship(ctx context.Context, id string) (bool, error)
	ListFriendIdentities(ctx context.Context, userID string) ([]models.Identity, error)
	ListIncomingFriendRequests(ctx context.Context, userID string) ([]models.FriendRequest, error)
	CountPendingFriendRequests(ctx context.Context, userID string) (int, error)

	// Trade methods.
	CreateTrade(ctx context.Context, trade *models.Trade) error
	GetTrade(ctx context.Context, id string) (*models.Trade, error)
	ListIncomingTrades(ctx context.Context, userID string) ([]models.Trade, error)
	ListOutgoingTrades(ctx context.Context, userID string) ([]models.Trade, error)
	DeclineTrade(ctx context.Context, id string) (bool, error)
	SettleTrade(ctx context.Context, trade *models.Trade) error
	CountPendingTrades(ctx context.Context, userID string) (int, error)
}

// PostgreSQL implements the Storage interface using a PostgreSQL database.
type PostgreSQL struct {
	db  *sql.DB        // Connection to the database.
	log *logger.Logger // Logger for recording events and errors.
}

// NewPostgreSQL creates a new PostgreSQL instance with the provided connection string and logger.
// It opens the connection and pings the database to ensure connectivity.
func NewPostgreSQL(configDBString string, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	return &PostgreSQL{db: db, log: l}, nil
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

// CreateAuthToken stores a new passwordless login token.
func (postgresql *PostgreSQL) CreateAuthToken(ctx context.Context, token *models.AuthToken) error {
	_, err := postgresql.db.ExecContext(ctx, createAuthTokenQuery, token.ID, token.Email, token.SecretHash, token.ExpiresAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createAuthTokenQuery: %s", err)
		return err
	}
	return nil
}

// GetAuthToken retrieves a login token by its identifier.
func (postgresql *PostgreSQL) GetAuthToken(ctx context.Context, id string) (*models.AuthToken, error) {
	token := &models.AuthToken{}

	err := postgresql.db.QueryRowContext(ctx, getAuthTokenQuery, id).
		Scan(&token.ID, &token.Email, &token.SecretHash, &token.ExpiresAt, &token.ConsumedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query getAuthTokenQuery: %s", err)
		}
		return nil, err
	}

	return token, nil
}

// ConsumeAuthToken marks a login token as used. It reports false when the
// token was already consumed or does not exist, which makes the links single-use.
func (postgresql *PostgreSQL) ConsumeAuthToken(ctx context.Context, id string) (bool, error) {
	result, err := postgresql.db.ExecContext(ctx, consumeAuthTokenQuery, id)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query consumeAuthTokenQuery: %s", err)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in consumeAuthTokenQuery: %s", err)
		return false, err
	}
	return rows > 0, nil
}

// CreateIdentity inserts a new collector profile. Unique-constraint
// violations (email, username, friend code) bubble up as pg errors for the
// caller to classify.
func (postgresql *PostgreSQL) CreateIdentity(ctx context.Context, identity *models.Identity) error {
	_, err := postgresql.db.ExecContext(ctx, createIdentityQuery,
		identity.ID, identity.Email, identity.Username, identity.AvatarPath, identity.FriendCode)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createIdentityQuery: %s", err)
		return err
	}
	return nil
}

func (postgresql *PostgreSQL) scanIdentity(row *sql.Row, queryName string) (*models.Identity, error) {
	identity := &models.Identity{}
	err := row.Scan(&identity.ID, &identity.Email, &identity.Username,
		&identity.AvatarPath, &identity.FriendCode, &identity.CreatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query %s: %s", queryName, err)
		}
		return nil, err
	}
	return identity, nil
}

// GetIdentityByID retrieves an identity by its identifier.
func (postgresql *PostgreSQL) GetIdentityByID(ctx context.Context, id string) (*models.Identity, error) {
	return postgresql.scanIdentity(postgresql.db.QueryRowContext(ctx, getIdentityByIDQuery, id), "getIdentityByIDQuery")
}

// GetIdentityByEmail retrieves an identity by the authenticated email address.
func (postgresql *PostgreSQL) GetIdentityByEmail(ctx context.Context, email string) (*models.Identity, error) {
	return postgresql.scanIdentity(postgresql.db.QueryRowContext(ctx, getIdentityByEmailQuery, email), "getIdentityByEmailQuery")
}

// GetIdentityByFriendCode retrieves an identity by its public friend code.
func (postgresql *PostgreSQL) GetIdentityByFriendCode(ctx context.Context, code string) (*models.Identity, error) {
	return postgresql.scanIdentity(postgresql.db.QueryRowContext(ctx, getIdentityByFriendCodeQuery, code), "getIdentityByFriendCodeQuery")
}

// UpdateIdentity persists the mutable profile fields (username, avatar).
func (postgresql *PostgreSQL) UpdateIdentity(ctx context.Context, identity *models.Identity) error {
	result, err := postgresql.db.ExecContext(ctx, updateIdentityQuery, identity.Username, identity.AvatarPath, identity.ID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query updateIdentityQuery: %s", err)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in updateIdentityQuery: %s", err)
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListAlbums retrieves the active albums ordered by name.
func (postgresql *PostgreSQL) ListAlbums(ctx context.Context) ([]models.Album, error) {
	rows, err := postgresql.db.QueryContext(ctx, listAlbumsQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listAlbumsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	const initialAlbumCapacity = 10
	albums := make([]models.Album, 0, initialAlbumCapacity)

	for rows.Next() {
		album := models.Album{}
		if err := rows.Scan(&album.ID, &album.Name, &album.Description,
			&album.TotalStickers, &album.ImageURL, &album.IsActive); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan album information in ListAlbums method: %s", err)
			return nil, err
		}
		albums = append(albums, album)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListAlbums method: %s", err)
		return albums, err
	}

	return albums, nil
}

// GetAlbum retrieves a single album by its identifier.
func (postgresql *PostgreSQL) GetAlbum(ctx context.Context, id string) (*models.Album, error) {
	album := &models.Album{}

	err := postgresql.db.QueryRowContext(ctx, getAlbumQuery, id).
		Scan(&album.ID, &album.Name, &album.Description, &album.TotalStickers, &album.ImageURL, &album.IsActive)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query getAlbumQuery: %s", err)
		}
		return nil, err
	}

	return album, nil
}

// ListStickers retrieves the full sticker catalog across all albums.
func (postgresql *PostgreSQL) ListStickers(ctx context.Context) ([]models.Sticker, error) {
	rows, err := postgresql.db.QueryContext(ctx, listStickersQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listStickersQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	const initialCatalogCapacity = 100
	stickers := make([]models.Sticker, 0, initialCatalogCapacity)

	for rows.Next() {
		sticker := models.Sticker{}
		if err := rows.Scan(&sticker.ID, &sticker.AlbumID, &sticker.Number,
			&sticker.Name, &sticker.ImageURL, &sticker.Rarity); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan sticker information in ListStickers method: %s", err)
			return nil, err
		}
		stickers = append(stickers, sticker)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListStickers method: %s", err)
		return stickers, err
	}

	return stickers, nil
}

func (postgresql *PostgreSQL) scanOwnedStickers(rows *sql.Rows, methodName string) ([]models.OwnedSticker, error) {
	defer rows.Close()

	const initialOwnedCapacity = 50
	stickers := make([]models.OwnedSticker, 0, initialOwnedCapacity)

	for rows.Next() {
		owned := models.OwnedSticker{}
		if err := rows.Scan(&owned.ID, &owned.AlbumID, &owned.Number,
			&owned.Name, &owned.ImageURL, &owned.Rarity, &owned.Quantity); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan sticker information in %s method: %s", methodName, err)
			return nil, err
		}
		stickers = append(stickers, owned)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in %s method: %s", methodName, err)
		return stickers, err
	}

	return stickers, nil
}

// ListAlbumStickers retrieves every sticker of an album together with the
// quantity the given user owns, 0 for stickers not yet collected.
func (postgresql *PostgreSQL) ListAlbumStickers(ctx context.Context, userID, albumID string) ([]models.OwnedSticker, error) {
	rows, err := postgresql.db.QueryContext(ctx, listAlbumStickersQuery, userID, albumID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listAlbumStickersQuery: %s", err)
		return nil, err
	}
	return postgresql.scanOwnedStickers(rows, "ListAlbumStickers")
}

// ListOwnedStickers retrieves the stickers a user owns, optionally limited
// to a single album when albumID is non-empty.
func (postgresql *PostgreSQL) ListOwnedStickers(ctx context.Context, userID, albumID string) ([]models.OwnedSticker, error) {
	rows, err := postgresql.db.QueryContext(ctx, listOwnedStickersQuery, userID, albumID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listOwnedStickersQuery: %s", err)
		return nil, err
	}
	return postgresql.scanOwnedStickers(rows, "ListOwnedStickers")
}

// GetOwnedQuantities returns the quantities the user currently holds for the
// given sticker ids. Stickers without an ownership record are absent from the map.
func (postgresql *PostgreSQL) GetOwnedQuantities(ctx context.Context, userID string, stickerIDs []string) (map[string]int, error) {
	rows, err := postgresql.db.QueryContext(ctx, getOwnedQuantitiesQuery, userID, stickerIDs)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getOwnedQuantitiesQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	quantities := make(map[string]int, len(stickerIDs))
	for rows.Next() {
		var stickerID string
		var quantity int
		if err := rows.Scan(&stickerID, &quantity); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan quantity information in GetOwnedQuantities method: %s", err)
			return nil, err
		}
		quantities[stickerID] = quantity
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in GetOwnedQuantities method: %s", err)
		return quantities, err
	}

	return quantities, nil
}

// AddStickers records newly acquired stickers within a single transaction.
// Each id adds one copy: a fresh ownership row at quantity 1, or an
// increment of the existing row.
func (postgresql *PostgreSQL) AddStickers(ctx context.Context, userID string, stickerIDs []string) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stickerID := range stickerIDs {
		_, err := tx.ExecContext(ctx, upsertStickerQuery, uuid.NewString(), userID, stickerID, 1)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query upsertStickerQuery: %s", err)
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}

// AlbumProgress counts the distinct stickers the user collected in an album
// and returns it together with the album's declared total.
// sql.ErrNoRows is returned for an unknown album.
func (postgresql *PostgreSQL) AlbumProgress(ctx context.Context, userID, albumID string) (int, int, error) {
	var total int
	err := postgresql.db.QueryRowContext(ctx, albumTotalQuery, albumID).Scan(&total)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query albumTotalQuery: %s", err)
		}
		return 0, 0, err
	}

	var collected int
	err = postgresql.db.QueryRowContext(ctx, albumCollectedQuery, userID, albumID).Scan(&collected)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query albumCollectedQuery: %s", err)
		return 0, 0, err
	}

	return collected, total, nil
}

// OverallProgress counts the distinct stickers the user collected across the
// whole catalog and the summed declared totals of all active albums.
func (postgresql *PostgreSQL) OverallProgress(ctx context.Context, userID string) (int, int, error) {
	var collected int
	err := postgresql.db.QueryRowContext(ctx, overallCollectedQuery, userID).Scan(&collected)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query overallCollectedQuery: %s", err)
		return 0, 0, err
	}

	var total int
	err = postgresql.db.QueryRowContext(ctx, overallTotalQuery).Scan(&total)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query overallTotalQuery: %s", err)
		return 0, 0, err
	}

	return collected, total, nil
}

// CreateFriendship inserts a new friendship record.
func (postgresql *PostgreSQL) CreateFriendship(ctx context.Context, friendship *models.Friendship) error {
	_, err := postgresql.db.ExecContext(ctx, createFriendshipQuery,
		friendship.ID, friendship.RequesterID, friendship.RecipientID, friendship.Status)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createFriendshipQuery: %s", err)
		return err
	}
	return nil
}

// GetFriendship retrieves a friendship record by its identifier.
func (postgresql *PostgreSQL) GetFriendship(ctx context.Context, id string) (*models.Friendship, error) {
	friendship := &models.Friendship{}

	err := postgresql.db.QueryRowContext(ctx, getFriendshipQuery, id).
		Scan(&friendship.ID, &friendship.RequesterID, &friendship.RecipientID, &friendship.Status, &friendship.CreatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query getFriendshipQuery: %s", err)
		}
		return nil, err
	}

	return friendship, nil
}

// FriendshipBetween finds a pending or accepted friendship between two
// identities in either direction. sql.ErrNoRows means none exists.
func (postgresql *PostgreSQL) FriendshipBetween(ctx context.Context, userID, otherID string) (*models.Friendship, error) {
	friendship := &models.Friendship{}

	err := postgresql.db.QueryRowContext(ctx, friendshipBetweenQuery, userID, otherID).
		Scan(&friendship.ID, &friendship.RequesterID, &friendship.RecipientID, &friendship.Status, &friendship.CreatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query friendshipBetweenQuery: %s", err)
		}
		return nil, err
	}

	return friendship, nil
}

// AcceptFriendship transitions a friendship from pending to accepted.
// The update is conditional on the record still being pending, so concurrent
// responders race safely; it reports whether the transition happened.
func (postgresql *PostgreSQL) AcceptFriendship(ctx context.Context, id string) (bool, error) {
	result, err := postgresql.db.ExecContext(ctx, acceptFriendshipQuery, id)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query acceptFriendshipQuery: %s", err)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in acceptFriendshipQuery: %s", err)
		return false, err
	}
	return rows > 0, nil
}

// DeletePendingFriendship removes a pending friendship record (a decline).
// It reports whether a pending record was actually deleted.
func (postgresql *PostgreSQL) DeletePendingFriendship(ctx context.Context, id string) (bool, error) {
	result, err := postgresql.db.ExecContext(ctx, deletePendingFriendshipQuery, id)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deletePendingFriendshipQuery: %s", err)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in deletePendingFriendshipQuery: %s", err)
		return false, err
	}
	return rows > 0, nil
}

// ListFriendIdentities retrieves the identities on the other side of all
// accepted friendships of the given user.
func (postgresql *PostgreSQL) ListFriendIdentities(ctx context.Context, userID string) ([]models.Identity, error) {
	rows, err := postgresql.db.QueryContext(ctx, listFriendIdentitiesQuery, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listFriendIdentitiesQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	const initialFriendCapacity = 10
	friends := make([]models.Identity, 0, initialFriendCapacity)

	for rows.Next() {
		identity := models.Identity{}
		if err := rows.Scan(&identity.ID, &identity.Email, &identity.Username,
			&identity.AvatarPath, &identity.FriendCode, &identity.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan identity information in ListFriendIdentities method: %s", err)
			return nil, err
		}
		friends = append(friends, identity)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListFriendIdentities method: %s", err)
		return friends, err
	}

	return friends, nil
}

// ListIncomingFriendRequests retrieves pending requests addressed to the
// user, newest first, each with the requester's profile attached.
func (postgresql *PostgreSQL) ListIncomingFriendRequests(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	rows, err := postgresql.db.QueryContext(ctx, listIncomingFriendRequestsQuery, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listIncomingFriendRequestsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	const initialRequestCapacity = 10
	requests := make([]models.FriendRequest, 0, initialRequestCapacity)

	for rows.Next() {
		request := models.FriendRequest{}
		if err := rows.Scan(&request.ID, &request.CreatedAt,
			&request.Requester.ID, &request.Requester.Email, &request.Requester.Username,
			&request.Requester.AvatarPath, &request.Requester.FriendCode, &request.Requester.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan request information in ListIncomingFriendRequests method: %s", err)
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListIncomingFriendRequests method: %s", err)
		return requests, err
	}

	return requests, nil
}

// CountPendingFriendRequests counts pending requests addressed to the user.
func (postgresql *PostgreSQL) CountPendingFriendRequests(ctx context.Context, userID string) (int, error) {
	var count int
	err := postgresql.db.QueryRowContext(ctx, countPendingFriendRequestsQuery, userID).Scan(&count)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query countPendingFriendRequestsQuery: %s", err)
		return 0, err
	}
	return count, nil
}

// CreateTrade inserts a trade proposal together with its offered and
// requested items within a single transaction.
func (postgresql *PostgreSQL) CreateTrade(ctx context.Context, trade *models.Trade) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, createTradeQuery, trade.ID, trade.InitiatorID, trade.PartnerID, trade.Status)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createTradeQuery: %s", err)
		return err
	}

	for _, item := range trade.Offered {
		_, err = tx.ExecContext(ctx, createTradeItemQuery, uuid.NewString(), trade.ID, item.StickerID, item.Quantity, models.TradeDirectionOffered)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query createTradeItemQuery: %s", err)
			return err
		}
	}
	for _, item := range trade.Requested {
		_, err = tx.ExecContext(ctx, createTradeItemQuery, uuid.NewString(), trade.ID, item.StickerID, item.Quantity, models.TradeDirectionRequested)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query createTradeItemQuery: %s", err)
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (postgresql *PostgreSQL) attachTradeItems(ctx context.Context, trade *models.Trade) error {
	rows, err := postgresql.db.QueryContext(ctx, getTradeItemsQuery, trade.ID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getTradeItemsQuery: %s", err)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.TradeItem
		var direction string
		if err := rows.Scan(&item.StickerID, &item.Quantity, &direction); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan item information in attachTradeItems method: %s", err)
			return err
		}
		if direction == models.TradeDirectionOffered {
			trade.Offered = append(trade.Offered, item)
		} else {
			trade.Requested = append(trade.Requested, item)
		}
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in attachTradeItems method: %s", err)
		return err
	}

	return nil
}

// GetTrade retrieves a trade with both item lists attached.
func (postgresql *PostgreSQL) GetTrade(ctx context.Context, id string) (*models.Trade, error) {
	trade := &models.Trade{}

	err := postgresql.db.QueryRowContext(ctx, getTradeQuery, id).
		Scan(&trade.ID, &trade.InitiatorID, &trade.PartnerID, &trade.Status, &trade.CreatedAt, &trade.UpdatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query getTradeQuery: %s", err)
		}
		return nil, err
	}

	if err := postgresql.attachTradeItems(ctx, trade); err != nil {
		return nil, err
	}

	return trade, nil
}

func (postgresql *PostgreSQL) listTrades(ctx context.Context, query, userID, methodName string) ([]models.Trade, error) {
	rows, err := postgresql.db.QueryContext(ctx, query, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query in %s method: %s", methodName, err)
		return nil, err
	}

	defer rows.Close()

	const initialTradeCapacity = 10
	trades := make([]models.Trade, 0, initialTradeCapacity)

	for rows.Next() {
		trade := models.Trade{}
		if err := rows.Scan(&trade.ID, &trade.InitiatorID, &trade.PartnerID,
			&trade.Status, &trade.CreatedAt, &trade.UpdatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan trade information in %s method: %s", methodName, err)
			return nil, err
		}
		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in %s method: %s", methodName, err)
		return nil, err
	}
	rows.Close()

	for i := range trades {
		if err := postgresql.attachTradeItems(ctx, &trades[i]); err != nil {
			return nil, err
		}
	}

	return trades, nil
}

// ListIncomingTrades retrieves pending trades addressed to the user, newest first.
func (postgresql *PostgreSQL) ListIncomingTrades(ctx context.Context, userID string) ([]models.Trade, error) {
	return postgresql.listTrades(ctx, listIncomingTradesQuery, userID, "ListIncomingTrades")
}

// ListOutgoingTrades retrieves trades initiated by the user, newest first.
func (postgresql *PostgreSQL) ListOutgoingTrades(ctx context.Context, userID string) ([]models.Trade, error) {
	return postgresql.listTrades(ctx, listOutgoingTradesQuery, userID, "ListOutgoingTrades")
}

// DeclineTrade transitions a trade from pending to declined. The update is
// conditional on the record still being pending; it reports whether the
// transition happened. Ownership records are never touched by a decline.
func (postgresql *PostgreSQL) DeclineTrade(ctx context.Context, id string) (bool, error) {
	result, err := postgresql.db.ExecContext(ctx, declineTradeQuery, id)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query declineTradeQuery: %s", err)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in declineTradeQuery: %s", err)
		return false, err
	}
	return rows > 0, nil
}

// SettleTrade accepts and settles a trade as one transaction.
//
// The pending->accepted transition is a conditional single-row update, so
// only one responder can ever settle a given trade; the loser of the race
// gets ErrAlreadyResolved. Quantities are re-validated here against current
// inventory rather than trusting the amounts captured at proposal time:
// every decrement carries a quantity >= n guard, and a guard miss aborts the
// whole transaction with ErrInsufficientInventory, leaving all ownership
// rows unchanged. Rows driven to zero are deleted, never stored.
func (postgresql *PostgreSQL) SettleTrade(ctx context.Context, trade *models.Trade) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, acceptTradeQuery, trade.ID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query acceptTradeQuery: %s", err)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in acceptTradeQuery: %s", err)
		return err
	}
	if rows == 0 {
		return ErrAlreadyResolved
	}

	moveSticker := func(fromID, toID string, item models.TradeItem) error {
		result, err := tx.ExecContext(ctx, decrementStickerQuery, fromID, item.StickerID, item.Quantity)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query decrementStickerQuery: %s", err)
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in decrementStickerQuery: %s", err)
			return err
		}
		if rows == 0 {
			return ErrInsufficientInventory
		}

		if _, err := tx.ExecContext(ctx, deleteZeroStickerQuery, fromID, item.StickerID); err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query deleteZeroStickerQuery: %s", err)
			return err
		}

		if _, err := tx.ExecContext(ctx, upsertStickerQuery, uuid.NewString(), toID, item.StickerID, item.Quantity); err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query upsertStickerQuery: %s", err)
			return err
		}

		return nil
	}

	for _, item := range trade.Offered {
		if err := moveSticker(trade.InitiatorID, trade.PartnerID, item); err != nil {
			return err
		}
	}
	for _, item := range trade.Requested {
		if err := moveSticker(trade.PartnerID, trade.InitiatorID, item); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, completeTradeQuery, trade.ID); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query completeTradeQuery: %s", err)
		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}

// CountPendingTrades counts pending trades addressed to the user.
func (postgresql *PostgreSQL) CountPendingTrades(ctx context.Context, userID string) (int, error) {
	var count int
	err := postgresql.db.QueryRowContext(ctx, countPendingTradesQuery, userID).Scan(&count)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query countPendingTradesQuery: %s", err)
		return 0, err
	}
	return count, nil
}
