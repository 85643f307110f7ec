// Package service contains HTTP handler implementations for the sticker album API endpoints.
// It orchestrates request parsing, calls the underlying business logic in the app package,
// handles errors (including database-specific errors), and writes appropriate HTTP responses.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"sticker_album/internal/app"
	"sticker_album/internal/models"
	"sticker_album/internal/pkg/auth"
	"sticker_album/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
	pgconn "github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	pgx_pgconn "github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation classifies unique-constraint errors from both pgconn
// generations, since mocks and the pgx driver wrap different types.
func isUniqueViolation(err error) bool {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation {
		return true
	}
	var pgxError *pgx_pgconn.PgError
	return errors.As(err, &pgxError) && pgxError.Code == pgerrcode.UniqueViolation
}

const requestTimeout = 10 * time.Second

// handlers aggregates dependencies needed by HTTP handlers,
// including the application business logic and logger.
type handlers struct {
	app *app.App
	log *logger.Logger
}

// newHandlers initializes a new handlers instance with the provided app and logger dependencies.
func newHandlers(app *app.App, l *logger.Logger) *handlers {
	return &handlers{app: app, log: l}
}

// emailFromContext extracts the session email placed into the request
// context by the JWT middleware.
func emailFromContext(req *http.Request) (string, bool) {
	email, ok := req.Context().Value(auth.ContextEmail).(string)
	return email, ok && email != ""
}

// readJSONBody reads and unmarshals the request body into target.
func readJSONBody(req *http.Request, target interface{}) error {
	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(requestBody, target)
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}

func writeJSONResponse(res http.ResponseWriter, statusCode int, payload interface{}) {
	result, err := json.Marshal(payload)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	res.Write(result)
}

// writeAppError maps the domain error taxonomy onto HTTP statuses.
// Handlers deal with their endpoint-specific errors first and fall back here.
func writeAppError(res http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrProfileNotFound):
		writeErrorResponse(res, "profile not found, complete onboarding first", http.StatusNotFound)
	case errors.Is(err, app.ErrNotFound):
		writeErrorResponse(res, "not found", http.StatusNotFound)
	case errors.Is(err, app.ErrForbidden):
		writeErrorResponse(res, "forbidden", http.StatusForbidden)
	case errors.Is(err, app.ErrSelfReference):
		writeErrorResponse(res, "operation targets your own identity", http.StatusBadRequest)
	case errors.Is(err, app.ErrDuplicate):
		writeErrorResponse(res, "friendship already exists between the pair", http.StatusConflict)
	case errors.Is(err, app.ErrAlreadyResolved):
		writeErrorResponse(res, "request was already resolved", http.StatusConflict)
	case errors.Is(err, app.ErrInvalidOffer):
		writeErrorResponse(res, "trade lists are empty or malformed", http.StatusBadRequest)
	case errors.Is(err, app.ErrInsufficientInventory):
		writeErrorResponse(res, "insufficient sticker inventory", http.StatusBadRequest)
	case errors.Is(err, app.ErrNoStickersAvailable):
		writeErrorResponse(res, "no stickers available", http.StatusConflict)
	case errors.Is(err, app.ErrInvalidUsername):
		writeErrorResponse(res, "username must be 3-20 letters, digits or underscores", http.StatusBadRequest)
	default:
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
	}
}

// requestLinkHandler starts the passwordless sign-in flow.
// The generated link token is returned directly; email delivery is out of scope.
func (handlers *handlers) requestLinkHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var linkRequest models.LoginLinkRequest
	if err := readJSONBody(req, &linkRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	linkToken, err := handlers.app.RequestLoginLink(ctx, linkRequest.Email)
	if err != nil {
		if errors.Is(err, app.ErrMissingEmail) {
			writeErrorResponse(res, "missing or malformed email", http.StatusBadRequest)
			return
		}
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, http.StatusOK, models.LoginLinkResponse{LinkToken: linkToken})
}

// verifyLinkHandler exchanges a login link token for a session token.
func (handlers *handlers) verifyLinkHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var verifyRequest models.VerifyLinkRequest
	if err := readJSONBody(req, &verifyRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := handlers.app.VerifyLoginLink(ctx, verifyRequest.Token)
	if err != nil {
		if errors.Is(err, app.ErrInvalidLink) {
			writeErrorResponse(res, "invalid or expired login link", http.StatusUnauthorized)
			return
		}
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, http.StatusOK, models.AuthResponse{Token: token})
}

// getProfileHandler returns the caller's profile, or 404 while onboarding is incomplete.
func (handlers *handlers) getProfileHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	identity, err := handlers.app.GetProfile(ctx, email)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, identity)
}

// completeProfileHandler finishes onboarding by creating the identity record.
func (handlers *handlers) completeProfileHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var profileRequest models.CompleteProfileRequest
	if err := readJSONBody(req, &profileRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	identity, err := handlers.app.CompleteProfile(ctx, email, profileRequest)
	if err != nil {
		if errors.Is(err, app.ErrProfileExists) {
			writeErrorResponse(res, "profile already exists", http.StatusConflict)
			return
		}
		if isUniqueViolation(err) {
			writeErrorResponse(res, "username already taken", http.StatusConflict)
			return
		}
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusCreated, identity)
}

// updateProfileHandler changes the caller's username and/or avatar.
func (handlers *handlers) updateProfileHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var profileRequest models.UpdateProfileRequest
	if err := readJSONBody(req, &profileRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	identity, err := handlers.app.UpdateProfile(ctx, email, profileRequest)
	if err != nil {
		if isUniqueViolation(err) {
			writeErrorResponse(res, "username already taken", http.StatusConflict)
			return
		}
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, identity)
}

// listAlbumsHandler returns the active albums of the catalog.
func (handlers *handlers) listAlbumsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	albums, err := handlers.app.ListAlbums(ctx)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, albums)
}

// getAlbumHandler returns a single album.
func (handlers *handlers) getAlbumHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	album, err := handlers.app.GetAlbum(ctx, chi.URLParam(req, "albumID"))
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, album)
}

// albumProgressHandler returns the caller's completion statistics for one album.
func (handlers *handlers) albumProgressHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	progress, err := handlers.app.AlbumProgress(ctx, email, chi.URLParam(req, "albumID"))
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, progress)
}

// albumStickersHandler returns an album's stickers with owned quantities.
func (handlers *handlers) albumStickersHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	stickers, err := handlers.app.AlbumCollection(ctx, email, chi.URLParam(req, "albumID"))
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, stickers)
}

// overallProgressHandler returns the caller's completion statistics across the catalog.
func (handlers *handlers) overallProgressHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	progress, err := handlers.app.OverallProgress(ctx, email)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, progress)
}

// sendFriendRequestHandler creates a pending friendship from a friend code.
func (handlers *handlers) sendFriendRequestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var friendRequest models.SendFriendRequestRequest
	if err := readJSONBody(req, &friendRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	friendship, err := handlers.app.SendFriendRequest(ctx, email, friendRequest.FriendCode)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			writeErrorResponse(res, "no identity matches the provided friend code", http.StatusNotFound)
			return
		}
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusCreated, friendship)
}

// listFriendRequestsHandler returns incoming pending friend requests.
func (handlers *handlers) listFriendRequestsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	requests, err := handlers.app.ListFriendRequests(ctx, email)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, requests)
}

// respondFriendRequestHandler accepts or declines a pending friend request.
func (handlers *handlers) respondFriendRequestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var respondRequest models.RespondRequest
	if err := readJSONBody(req, &respondRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	err := handlers.app.RespondFriendRequest(ctx, email, chi.URLParam(req, "requestID"), respondRequest.Accept)
	if err != nil {
		writeAppError(res, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// listFriendsHandler returns the caller's friends as a progress leaderboard.
func (handlers *handlers) listFriendsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	friends, err := handlers.app.ListFriends(ctx, email)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, friends)
}

// friendStickersHandler returns a friend's owned stickers, optionally
// filtered by the album query parameter.
func (handlers *handlers) friendStickersHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	friendID := chi.URLParam(req, "friendID")
	albumID := req.URL.Query().Get("album")

	stickers, err := handlers.app.FriendCollection(ctx, email, friendID, albumID)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, stickers)
}

// proposeTradeHandler creates a pending trade proposal.
func (handlers *handlers) proposeTradeHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var tradeRequest models.ProposeTradeRequest
	if err := readJSONBody(req, &tradeRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	trade, err := handlers.app.ProposeTrade(ctx, email, tradeRequest)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusCreated, trade)
}

// listIncomingTradesHandler returns pending trades addressed to the caller.
func (handlers *handlers) listIncomingTradesHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	trades, err := handlers.app.ListIncomingTrades(ctx, email)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, trades)
}

// listOutgoingTradesHandler returns trades the caller initiated.
func (handlers *handlers) listOutgoingTradesHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	trades, err := handlers.app.ListOutgoingTrades(ctx, email)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, trades)
}

// respondTradeHandler accepts (settles) or declines a pending trade.
func (handlers *handlers) respondTradeHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var respondRequest models.RespondRequest
	if err := readJSONBody(req, &respondRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	trade, err := handlers.app.RespondTrade(ctx, email, chi.URLParam(req, "tradeID"), respondRequest.Accept)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, trade)
}

// openPackHandler draws a pack of stickers for the caller.
func (handlers *handlers) openPackHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	draws, err := handlers.app.OpenPack(ctx, email)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, draws)
}

// notificationsHandler returns the pending friend-request and trade counters.
func (handlers *handlers) notificationsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	counts, err := handlers.app.PendingCounts(ctx, email)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, counts)
}

// inviteLinkHandler returns the WhatsApp deep link carrying the caller's friend code.
func (handlers *handlers) inviteLinkHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	email, ok := emailFromContext(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	link, err := handlers.app.InviteLink(ctx, email)
	if err != nil {
		writeAppError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, models.InviteLinkResponse{URL: link})
}
