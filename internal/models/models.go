// Package models defines the data structures used throughout the application.
// It includes the persisted entities (identities, albums, stickers, ownership
// records, friendships and trades) as well as the request and response
// payloads of the HTTP API.
package models

import "time"

// Rarity is the rarity tier of a sticker. It determines the relative
// sampling weight used when opening a pack.
type Rarity string

// Rarity tiers in ascending order of scarcity.
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// FriendshipStatus is the state of a friendship record.
type FriendshipStatus string

// Friendship states. A declined request is deleted, not retained.
const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipBlocked  FriendshipStatus = "blocked"
)

// TradeStatus is the state of a trade proposal.
type TradeStatus string

// Trade states. Accepted trades settle immediately and end up completed.
const (
	TradePending   TradeStatus = "pending"
	TradeAccepted  TradeStatus = "accepted"
	TradeDeclined  TradeStatus = "declined"
	TradeCompleted TradeStatus = "completed"
)

// TradeItemDirection marks which side of a trade an item belongs to.
const (
	TradeDirectionOffered   = "offered"
	TradeDirectionRequested = "requested"
)

// Identity represents a registered collector profile.
type Identity struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	AvatarPath string    `json:"avatarPath"`
	FriendCode string    `json:"friendCode"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Album is a named collection of stickers with a declared target count.
// Albums are seeded administratively and read-only through the API.
type Album struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	TotalStickers int    `json:"totalStickers"`
	ImageURL      string `json:"imageUrl"`
	IsActive      bool   `json:"isActive"`
}

// Sticker is a single catalog item belonging to one album.
type Sticker struct {
	ID       string `json:"id"`
	AlbumID  string `json:"albumId"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Rarity   Rarity `json:"rarity"`
}

// OwnedSticker pairs a sticker with the quantity a given identity holds.
// Quantity is 0 for catalog listings of stickers the identity does not own.
type OwnedSticker struct {
	Sticker
	Quantity int `json:"quantity"`
}

// Friendship is a directed friend-request record. Once accepted it counts
// as a friendship for both sides.
type Friendship struct {
	ID          string           `json:"id"`
	RequesterID string           `json:"requesterId"`
	RecipientID string           `json:"recipientId"`
	Status      FriendshipStatus `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// FriendRequest is an incoming pending friendship enriched with the
// requester's profile for display.
type FriendRequest struct {
	ID        string    `json:"id"`
	Requester Identity  `json:"requester"`
	CreatedAt time.Time `json:"createdAt"`
}

// Progress holds completion statistics for an album or the whole catalog.
type Progress struct {
	Collected  int `json:"collected"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// FriendEntry is a friend enriched with overall progress for the leaderboard.
type FriendEntry struct {
	Identity
	Progress Progress `json:"progress"`
}

// TradeItem is one sticker+quantity entry on either side of a trade.
type TradeItem struct {
	StickerID string `json:"stickerId"`
	Quantity  int    `json:"quantity"`
}

// Trade is a bilateral sticker exchange proposal between two identities.
type Trade struct {
	ID          string      `json:"id"`
	InitiatorID string      `json:"initiatorId"`
	PartnerID   string      `json:"partnerId"`
	Status      TradeStatus `json:"status"`
	Offered     []TradeItem `json:"offered"`
	Requested   []TradeItem `json:"requested"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// PackDraw is a single sticker drawn from a pack. WasNew reports whether the
// identity owned zero copies before the pack was opened.
type PackDraw struct {
	Sticker Sticker `json:"sticker"`
	WasNew  bool    `json:"wasNew"`
}

// AuthToken backs one passwordless login link. The link secret is stored
// bcrypt-hashed; the plaintext leaves the server only inside the link itself.
type AuthToken struct {
	ID         string
	Email      string
	SecretHash string
	ExpiresAt  time.Time
	ConsumedAt *time.Time
}

// LoginLinkRequest represents the payload requesting a passwordless login link.
type LoginLinkRequest struct {
	Email string `json:"email"`
}

// LoginLinkResponse carries the generated link token back to the caller.
// Delivering it over email is out of scope for this service.
type LoginLinkResponse struct {
	LinkToken string `json:"linkToken"`
}

// VerifyLinkRequest represents the payload exchanging a link token for a session.
type VerifyLinkRequest struct {
	Token string `json:"token"`
}

// AuthResponse contains the session token issued on successful verification.
type AuthResponse struct {
	Token string `json:"token"`
}

// CompleteProfileRequest represents the onboarding payload creating an identity.
type CompleteProfileRequest struct {
	Username   string `json:"username"`
	AvatarPath string `json:"avatarPath"`
}

// UpdateProfileRequest represents a partial profile update. Empty fields are
// left unchanged.
type UpdateProfileRequest struct {
	Username   string `json:"username"`
	AvatarPath string `json:"avatarPath"`
}

// SendFriendRequestRequest represents the payload initiating a friendship.
type SendFriendRequestRequest struct {
	FriendCode string `json:"friendCode"`
}

// RespondRequest represents the accept/decline payload shared by the
// friendship and trade workflows.
type RespondRequest struct {
	Accept bool `json:"accept"`
}

// ProposeTradeRequest represents the payload creating a trade proposal.
type ProposeTradeRequest struct {
	PartnerID string      `json:"partnerId"`
	Offered   []TradeItem `json:"offered"`
	Requested []TradeItem `json:"requested"`
}

// NotificationCounts carries the pull-based badge counters for pending
// friend requests and incoming trades.
type NotificationCounts struct {
	FriendRequests int `json:"friendRequests"`
	Trades         int `json:"trades"`
}

// InviteLinkResponse contains the messaging deep link used to invite friends.
type InviteLinkResponse struct {
	URL string `json:"url"`
}

// ErrorResponse represents a generic error response payload.
// It contains a string describing the encountered error.
type ErrorResponse struct {
	Errors string `json:"errors"`
}
