// Package app provides the core business logic for the sticker album service.
// It handles passwordless sign-in, profile onboarding, collection progress,
// the friendship and trade workflows, and pack opening.
// The package integrates with the storage layer for data persistence and uses the auth package for token generation.
// Logging functionality is provided via the logger package.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"sticker_album/internal/config"
	"sticker_album/internal/models"
	"sticker_album/internal/pkg/auth"
	"sticker_album/internal/pkg/logger"
	"sticker_album/internal/pkg/security"
	"sticker_album/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Predefined domain errors surfaced to the HTTP layer.
var (
	// ErrMissingEmail indicates that no email address was provided for sign-in.
	ErrMissingEmail = errors.New("app: missing email")
	// ErrInvalidLink indicates an unknown, expired, consumed or tampered login link.
	ErrInvalidLink = errors.New("app: invalid or expired login link")
	// ErrInvalidUsername indicates a username outside the 3-20 word-character format.
	ErrInvalidUsername = errors.New("app: invalid username")
	// ErrProfileNotFound indicates the authenticated principal has not completed onboarding.
	ErrProfileNotFound = errors.New("app: profile not found")
	// ErrProfileExists indicates the authenticated principal already completed onboarding.
	ErrProfileExists = errors.New("app: profile already exists")
	// ErrNotFound indicates a missing record (album, friend code, request, trade).
	ErrNotFound = errors.New("app: not found")
	// ErrForbidden indicates the caller lacks rights over the target record.
	ErrForbidden = errors.New("app: forbidden")
	// ErrSelfReference indicates an operation targeting the caller's own identity.
	ErrSelfReference = errors.New("app: self reference")
	// ErrDuplicate indicates a friendship already exists between the pair.
	ErrDuplicate = errors.New("app: duplicate")
	// ErrAlreadyResolved indicates a re-entry into a settled state machine.
	ErrAlreadyResolved = errors.New("app: already resolved")
	// ErrInvalidOffer indicates empty or malformed trade lists.
	ErrInvalidOffer = errors.New("app: invalid offer")
	// ErrInsufficientInventory indicates a party lacks the declared quantities.
	ErrInsufficientInventory = errors.New("app: insufficient inventory")
	// ErrNoStickersAvailable indicates an empty sticker catalog.
	ErrNoStickersAvailable = errors.New("app: no stickers available")
)

// loginLinkTTL bounds how long a passwordless link stays valid.
const loginLinkTTL = 15 * time.Minute

// friendCodeRetries bounds retries on generated friend-code collisions.
const friendCodeRetries = 5

var usernamePattern = regexp.MustCompile(`^\w{3,20}$`)

// App encapsulates the application logic and dependencies required to process requests.
// It interacts with the storage layer and uses a logger for error and activity logging.
type App struct {
	db  storage.Storage // Database storage layer for persistent data operations.
	log *logger.Logger  // Logger for logging application events and errors.
}

// NewApp creates and returns a new instance of App with the provided storage and logger dependencies.
func NewApp(db storage.Storage, log *logger.Logger) *App {
	return &App{db: db, log: log}
}

// RequestLoginLink starts the passwordless sign-in flow for an email address.
// It stores a single-use token (secret hashed at rest) and returns the link
// token. Delivering the link by email is out of scope for this service.
func (app *App) RequestLoginLink(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrMissingEmail
	}

	secret, err := security.GenerateSecret(32)
	if err != nil {
		return "", err
	}

	token := &models.AuthToken{
		ID:         uuid.NewString(),
		Email:      email,
		SecretHash: security.HashSecret(secret),
		ExpiresAt:  time.Now().Add(loginLinkTTL),
	}
	if err := app.db.CreateAuthToken(ctx, token); err != nil {
		return "", err
	}

	app.log.Sugar().Infof("login link issued for %s", email)
	return token.ID + "." + secret, nil
}

// VerifyLoginLink exchanges a link token for a session JWT. Links are
// single-use and expire after loginLinkTTL; every failure mode collapses
// into ErrInvalidLink so callers cannot probe token state.
func (app *App) VerifyLoginLink(ctx context.Context, linkToken string) (string, error) {
	parts := strings.SplitN(linkToken, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", ErrInvalidLink
	}

	token, err := app.db.GetAuthToken(ctx, parts[0])
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidLink
	}
	if err != nil {
		return "", err
	}

	if token.ConsumedAt != nil || time.Now().After(token.ExpiresAt) {
		return "", ErrInvalidLink
	}
	if err := security.CheckSecret(token.SecretHash, parts[1]); err != nil {
		return "", ErrInvalidLink
	}

	consumed, err := app.db.ConsumeAuthToken(ctx, token.ID)
	if err != nil {
		return "", err
	}
	if !consumed {
		return "", ErrInvalidLink
	}

	return auth.GenerateToken(token.Email)
}

// identity resolves the authenticated email to a collector profile.
func (app *App) identity(ctx context.Context, email string) (*models.Identity, error) {
	identity, err := app.db.GetIdentityByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return identity, nil
}

// GetProfile returns the profile of the authenticated principal, or
// ErrProfileNotFound while onboarding is still incomplete.
func (app *App) GetProfile(ctx context.Context, email string) (*models.Identity, error) {
	return app.identity(ctx, email)
}

// CompleteProfile finishes onboarding: it validates the chosen username,
// generates a unique friend code and creates the identity record.
// A username collision surfaces as a pg unique violation for the handler to
// classify; friend-code collisions are retried internally.
func (app *App) CompleteProfile(ctx context.Context, email string, req models.CompleteProfileRequest) (*models.Identity, error) {
	if !usernamePattern.MatchString(req.Username) {
		return nil, ErrInvalidUsername
	}

	_, err := app.db.GetIdentityByEmail(ctx, email)
	if err == nil {
		return nil, ErrProfileExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	identity := &models.Identity{
		ID:         uuid.NewString(),
		Email:      email,
		Username:   req.Username,
		AvatarPath: req.AvatarPath,
	}

	var pgError *pgconn.PgError
	for attempt := 0; attempt < friendCodeRetries; attempt++ {
		code, err := security.GenerateFriendCode()
		if err != nil {
			return nil, err
		}
		identity.FriendCode = code

		err = app.db.CreateIdentity(ctx, identity)
		if err == nil {
			identity.CreatedAt = time.Now()
			return identity, nil
		}
		if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation &&
			pgError.ConstraintName == "users_friend_code_key" {
			app.log.Sugar().Infof("friend code collision, retrying (attempt %d)", attempt+1)
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("app: could not generate a unique friend code after %d attempts", friendCodeRetries)
}

// UpdateProfile changes the caller's username and/or avatar. Empty fields
// are left unchanged. Only the owner can reach this path: the identity is
// resolved from the session itself.
func (app *App) UpdateProfile(ctx context.Context, email string, req models.UpdateProfileRequest) (*models.Identity, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		if !usernamePattern.MatchString(req.Username) {
			return nil, ErrInvalidUsername
		}
		identity.Username = req.Username
	}
	if req.AvatarPath != "" {
		identity.AvatarPath = req.AvatarPath
	}

	if err := app.db.UpdateIdentity(ctx, identity); err != nil {
		return nil, err
	}

	return identity, nil
}

// ListAlbums returns the active albums of the catalog.
func (app *App) ListAlbums(ctx context.Context) ([]models.Album, error) {
	return app.db.ListAlbums(ctx)
}

// GetAlbum returns a single album.
func (app *App) GetAlbum(ctx context.Context, albumID string) (*models.Album, error) {
	album, err := app.db.GetAlbum(ctx, albumID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return album, nil
}

// percentage computes the round-half-up completion percentage clamped to
// [0,100]. An empty album (total 0) is defined as 0 percent, not an error.
func percentage(collected, total int) int {
	if total <= 0 {
		return 0
	}
	pct := (collected*100*2 + total) / (total * 2)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// AlbumProgress computes the caller's completion statistics for one album.
func (app *App) AlbumProgress(ctx context.Context, email, albumID string) (*models.Progress, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}

	collected, total, err := app.db.AlbumProgress(ctx, identity.ID, albumID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &models.Progress{Collected: collected, Total: total, Percentage: percentage(collected, total)}, nil
}

// OverallProgress computes the caller's completion statistics across the
// whole catalog.
func (app *App) OverallProgress(ctx context.Context, email string) (*models.Progress, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}
	return app.overallProgressFor(ctx, identity.ID)
}

func (app *App) overallProgressFor(ctx context.Context, identityID string) (*models.Progress, error) {
	collected, total, err := app.db.OverallProgress(ctx, identityID)
	if err != nil {
		return nil, err
	}
	return &models.Progress{Collected: collected, Total: total, Percentage: percentage(collected, total)}, nil
}

// AlbumCollection returns every sticker of an album with the caller's owned
// quantity, 0 for stickers not yet collected.
func (app *App) AlbumCollection(ctx context.Context, email, albumID string) ([]models.OwnedSticker, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}

	if _, err := app.db.GetAlbum(ctx, albumID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return app.db.ListAlbumStickers(ctx, identity.ID, albumID)
}

// SendFriendRequest creates a pending friendship addressed to the identity
// behind the given friend code.
func (app *App) SendFriendRequest(ctx context.Context, email, friendCode string) (*models.Friendship, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(friendCode))
	target, err := app.db.GetIdentityByFriendCode(ctx, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if target.ID == identity.ID {
		return nil, ErrSelfReference
	}

	_, err = app.db.FriendshipBetween(ctx, identity.ID, target.ID)
	if err == nil {
		return nil, ErrDuplicate
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	friendship := &models.Friendship{
		ID:          uuid.NewString(),
		RequesterID: identity.ID,
		RecipientID: target.ID,
		Status:      models.FriendshipPending,
	}
	if err := app.db.CreateFriendship(ctx, friendship); err != nil {
		// The pair index catches requests racing past the lookup above,
		// including ones sent in opposite directions at the same time.
		var pgError *pgconn.PgError
		if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	friendship.CreatedAt = time.Now()

	return friendship, nil
}

// RespondFriendRequest accepts or declines a pending friend request.
// Only the recipient may respond; a decline deletes the record.
func (app *App) RespondFriendRequest(ctx context.Context, email, requestID string, accept bool) error {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return err
	}

	friendship, err := app.db.GetFriendship(ctx, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if friendship.RecipientID != identity.ID {
		return ErrForbidden
	}
	if friendship.Status != models.FriendshipPending {
		return ErrAlreadyResolved
	}

	var resolved bool
	if accept {
		resolved, err = app.db.AcceptFriendship(ctx, requestID)
	} else {
		resolved, err = app.db.DeletePendingFriendship(ctx, requestID)
	}
	if err != nil {
		return err
	}
	if !resolved {
		return ErrAlreadyResolved
	}

	return nil
}

// ListFriendRequests returns incoming pending friend requests, newest first.
func (app *App) ListFriendRequests(ctx context.Context, email string) ([]models.FriendRequest, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}
	return app.db.ListIncomingFriendRequests(ctx, identity.ID)
}

// ListFriends returns the caller's friends enriched with overall progress,
// ordered by completion percentage descending with ties broken by username.
func (app *App) ListFriends(ctx context.Context, email string) ([]models.FriendEntry, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}

	friends, err := app.db.ListFriendIdentities(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.FriendEntry, 0, len(friends))
	for _, friend := range friends {
		progress, err := app.overallProgressFor(ctx, friend.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.FriendEntry{Identity: friend, Progress: *progress})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Progress.Percentage != entries[j].Progress.Percentage {
			return entries[i].Progress.Percentage > entries[j].Progress.Percentage
		}
		return entries[i].Username < entries[j].Username
	})

	return entries, nil
}

// FriendCollection returns a friend's owned stickers, optionally limited to
// one album. Callers may only look at accepted friends.
func (app *App) FriendCollection(ctx context.Context, email, friendID, albumID string) ([]models.OwnedSticker, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}

	friendship, err := app.db.FriendshipBetween(ctx, identity.ID, friendID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	if friendship.Status != models.FriendshipAccepted {
		return nil, ErrForbidden
	}

	return app.db.ListOwnedStickers(ctx, friendID, albumID)
}

// validateTradeItems rejects empty lists, non-positive quantities and
// repeated stickers within one list.
func validateTradeItems(items []models.TradeItem) error {
	if len(items) == 0 {
		return ErrInvalidOffer
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.StickerID == "" || item.Quantity < 1 || seen[item.StickerID] {
			return ErrInvalidOffer
		}
		seen[item.StickerID] = true
	}
	return nil
}

// ProposeTrade creates a pending trade proposal towards an accepted friend.
// Both parties' inventories are checked here as a fast fail: the initiator
// must own the offered quantities and the partner the requested ones. The
// authoritative re-validation happens again at settlement time.
func (app *App) ProposeTrade(ctx context.Context, email string, req models.ProposeTradeRequest) (*models.Trade, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := validateTradeItems(req.Offered); err != nil {
		return nil, err
	}
	if err := validateTradeItems(req.Requested); err != nil {
		return nil, err
	}
	if req.PartnerID == identity.ID {
		return nil, ErrSelfReference
	}

	if _, err := app.db.GetIdentityByID(ctx, req.PartnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	friendship, err := app.db.FriendshipBetween(ctx, identity.ID, req.PartnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	if friendship.Status != models.FriendshipAccepted {
		return nil, ErrForbidden
	}

	offeredIDs := make([]string, 0, len(req.Offered))
	for _, item := range req.Offered {
		offeredIDs = append(offeredIDs, item.StickerID)
	}
	owned, err := app.db.GetOwnedQuantities(ctx, identity.ID, offeredIDs)
	if err != nil {
		return nil, err
	}
	for _, item := range req.Offered {
		if owned[item.StickerID] < item.Quantity {
			return nil, ErrInsufficientInventory
		}
	}

	requestedIDs := make([]string, 0, len(req.Requested))
	for _, item := range req.Requested {
		requestedIDs = append(requestedIDs, item.StickerID)
	}
	partnerOwned, err := app.db.GetOwnedQuantities(ctx, req.PartnerID, requestedIDs)
	if err != nil {
		return nil, err
	}
	for _, item := range req.Requested {
		if partnerOwned[item.StickerID] < item.Quantity {
			return nil, ErrInsufficientInventory
		}
	}

	trade := &models.Trade{
		ID:          uuid.NewString(),
		InitiatorID: identity.ID,
		PartnerID:   req.PartnerID,
		Status:      models.TradePending,
		Offered:     req.Offered,
		Requested:   req.Requested,
	}
	if err := app.db.CreateTrade(ctx, trade); err != nil {
		return nil, err
	}
	trade.CreatedAt = time.Now()
	trade.UpdatedAt = trade.CreatedAt

	return trade, nil
}

// RespondTrade accepts or declines a pending trade. Only the partner may
// respond. Acceptance settles both sides atomically; losing a response race
// surfaces as ErrAlreadyResolved, never as a double settlement.
func (app *App) RespondTrade(ctx context.Context, email, tradeID string, accept bool) (*models.Trade, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}

	trade, err := app.db.GetTrade(ctx, tradeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if trade.PartnerID != identity.ID {
		return nil, ErrForbidden
	}
	if trade.Status != models.TradePending {
		return nil, ErrAlreadyResolved
	}

	if !accept {
		declined, err := app.db.DeclineTrade(ctx, tradeID)
		if err != nil {
			return nil, err
		}
		if !declined {
			return nil, ErrAlreadyResolved
		}
		trade.Status = models.TradeDeclined
		return trade, nil
	}

	err = app.db.SettleTrade(ctx, trade)
	if errors.Is(err, storage.ErrAlreadyResolved) {
		return nil, ErrAlreadyResolved
	}
	if errors.Is(err, storage.ErrInsufficientInventory) {
		return nil, ErrInsufficientInventory
	}
	if err != nil {
		return nil, err
	}

	trade.Status = models.TradeCompleted
	return trade, nil
}

// ListIncomingTrades returns pending trades addressed to the caller, newest first.
func (app *App) ListIncomingTrades(ctx context.Context, email string) ([]models.Trade, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}
	return app.db.ListIncomingTrades(ctx, identity.ID)
}

// ListOutgoingTrades returns trades the caller initiated, newest first.
func (app *App) ListOutgoingTrades(ctx context.Context, email string) ([]models.Trade, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}
	return app.db.ListOutgoingTrades(ctx, identity.ID)
}

// PendingCounts returns the badge counters for pending friend requests and
// incoming trades. Clients poll this endpoint; there is no push channel.
func (app *App) PendingCounts(ctx context.Context, email string) (*models.NotificationCounts, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}

	friendRequests, err := app.db.CountPendingFriendRequests(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	trades, err := app.db.CountPendingTrades(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	return &models.NotificationCounts{FriendRequests: friendRequests, Trades: trades}, nil
}

// InviteLink builds the WhatsApp deep link used to invite friends, carrying
// the caller's friend code and the public address of this service.
func (app *App) InviteLink(ctx context.Context, email string) (string, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return "", err
	}

	message := fmt.Sprintf("Join my sticker album! Use my friend code %s at %s",
		identity.FriendCode, config.PublicBaseURL)
	return "https://wa.me/?text=" + url.QueryEscape(message), nil
}
