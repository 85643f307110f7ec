package integrations

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"sticker_album/internal/app"
	"sticker_album/internal/models"
	"sticker_album/internal/pkg/logger"
	"sticker_album/internal/service"
	"sticker_album/internal/storage"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"
)

var testDatabaseURI, testServerPort string

func init() {
	if err := godotenv.Load("../integration/.env"); err != nil {
		log.Println("No .env file found, using default values")
	}

	testDatabaseURI = os.Getenv("TEST_DATABASE_URI")
	testServerPort = os.Getenv("TEST_SERVER_PORT")
}

// Fixed catalog rows seeded once per database; reruns hit ON CONFLICT DO NOTHING.
const (
	seedAlbumID          = "9e107d9d-0000-4000-8000-000000000001"
	seedStickerID1       = "9e107d9d-0000-4000-8000-000000000011"
	seedStickerID2       = "9e107d9d-0000-4000-8000-000000000012"
	seedRetiredAlbumID   = "9e107d9d-0000-4000-8000-000000000002"
	seedRetiredStickerID = "9e107d9d-0000-4000-8000-000000000021"
)

type IntegrationTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
	db     *storage.PostgreSQL
	seed   *sql.DB
}

func (s *IntegrationTestSuite) SetupSuite() {
	if testDatabaseURI == "" {
		s.T().Skip("TEST_DATABASE_URI is not set, skipping integration tests")
	}

	var l *logger.Logger
	var err error
	if l, err = logger.CreateLogger("info"); err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	s.db, err = storage.NewPostgreSQL(testDatabaseURI, l)
	s.Require().NoError(err, "Error connecting to test database")

	s.seedCatalog()

	appInstance := app.NewApp(s.db, l)
	serviceInstance := service.NewService(appInstance, "localhost:"+testServerPort, l)

	s.server = httptest.NewServer(serviceInstance.NewRouter())
	s.client = s.server.Client()
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.seed != nil {
		s.seed.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
}

// seedCatalog inserts a small active album for pack opening plus a retired
// one that must stay out of progress figures.
func (s *IntegrationTestSuite) seedCatalog() {
	var err error
	s.seed, err = sql.Open("pgx", testDatabaseURI)
	s.Require().NoError(err, "Error opening seed connection")

	_, err = s.seed.Exec(`INSERT INTO content.albums (id, name, description, total_stickers, is_active)
		VALUES ($1, 'World Cup Legends', 'Catalog used by the integration suite', 2, TRUE),
		       ($2, 'Retired Classics', 'Inactive album used by the integration suite', 1, FALSE)
		ON CONFLICT (id) DO NOTHING`, seedAlbumID, seedRetiredAlbumID)
	s.Require().NoError(err, "Error seeding albums")

	_, err = s.seed.Exec(`INSERT INTO content.stickers (id, album_id, sticker_number, name, rarity)
		VALUES ($1, $2, 1, 'Golden Boot', 'common'), ($3, $2, 2, 'Keeper Gloves', 'common'), ($4, $5, 1, 'Vintage Crest', 'common')
		ON CONFLICT (id) DO NOTHING`, seedStickerID1, seedAlbumID, seedStickerID2, seedRetiredStickerID, seedRetiredAlbumID)
	s.Require().NoError(err, "Error seeding stickers")
}

// signUp walks the full onboarding flow and returns a session token plus the
// created profile.
func (s *IntegrationTestSuite) signUp(username string) (string, models.Identity) {
	email := fmt.Sprintf("%s@example.com", username)

	reqBody, err := json.Marshal(models.LoginLinkRequest{Email: email})
	s.Require().NoError(err, "Error marshaling login link request")

	resp, err := s.client.Post(s.server.URL+"/api/auth/link", "application/json", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error requesting login link")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for login link request")

	var linkResp models.LoginLinkResponse
	err = json.NewDecoder(resp.Body).Decode(&linkResp)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding login link response")
	s.Require().NotEmpty(linkResp.LinkToken, "Link token should not be empty")

	reqBody, err = json.Marshal(models.VerifyLinkRequest{Token: linkResp.LinkToken})
	s.Require().NoError(err, "Error marshaling verify request")

	resp, err = s.client.Post(s.server.URL+"/api/auth/verify", "application/json", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error verifying login link")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for link verification")

	var authResp models.AuthResponse
	err = json.NewDecoder(resp.Body).Decode(&authResp)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding auth response")
	s.Require().NotEmpty(authResp.Token, "Session token should not be empty")

	reqBody, err = json.Marshal(models.CompleteProfileRequest{Username: username})
	s.Require().NoError(err, "Error marshaling profile request")

	req, err := http.NewRequest("POST", s.server.URL+"/api/profile", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error creating profile request")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authResp.Token)

	resp, err = s.client.Do(req)
	s.Require().NoError(err, "Error completing profile")
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "Expected status 201 for onboarding")

	var identity models.Identity
	err = json.NewDecoder(resp.Body).Decode(&identity)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding identity")
	s.Require().Len(identity.FriendCode, 6, "Friend code should have 6 characters")

	return authResp.Token, identity
}

func (s *IntegrationTestSuite) getJSON(path, token string, target interface{}) {
	req, err := http.NewRequest("GET", s.server.URL+path, nil)
	s.Require().NoError(err, "Error creating GET request")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Error executing GET request")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for "+path)

	err = json.NewDecoder(resp.Body).Decode(target)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding response for "+path)
}

func (s *IntegrationTestSuite) postJSON(path, token string, payload interface{}, expectedStatus int, target interface{}) {
	reqBody, err := json.Marshal(payload)
	s.Require().NoError(err, "Error marshaling request payload")

	req, err := http.NewRequest("POST", s.server.URL+path, bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error creating POST request")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Error executing POST request")
	s.Require().Equal(expectedStatus, resp.StatusCode, "Unexpected status for "+path)

	if target != nil {
		err = json.NewDecoder(resp.Body).Decode(target)
		s.Require().NoError(err, "Error decoding response for "+path)
	}
	resp.Body.Close()
}

// ownedQuantities returns the collector's per-sticker quantities in the
// seeded album, keyed by sticker ID; unowned stickers map to 0.
func (s *IntegrationTestSuite) ownedQuantities(token string) map[string]int {
	var stickers []models.OwnedSticker
	s.getJSON("/api/albums/"+seedAlbumID+"/stickers", token, &stickers)
	quantities := make(map[string]int, len(stickers))
	for _, sticker := range stickers {
		quantities[sticker.ID] = sticker.Quantity
	}
	return quantities
}

// collectBothStickers opens packs until the collector holds both seeded
// stickers, so trades can be pinned to distinct catalog entries.
func (s *IntegrationTestSuite) collectBothStickers(token string) {
	for i := 0; i < 10; i++ {
		quantities := s.ownedQuantities(token)
		if quantities[seedStickerID1] > 0 && quantities[seedStickerID2] > 0 {
			return
		}
		var draws []models.PackDraw
		s.postJSON("/api/packs/open", token, nil, http.StatusOK, &draws)
	}
	s.Require().Fail("collector should own both seeded stickers after several packs")
}

func (s *IntegrationTestSuite) TestPackAndProgress() {
	suffix := time.Now().UnixNano() % 1_000_000_000
	token, identity := s.signUp(fmt.Sprintf("packer%d", suffix))

	var draws []models.PackDraw
	s.postJSON("/api/packs/open", token, nil, http.StatusOK, &draws)
	s.Require().Len(draws, 5, "A pack should contain 5 stickers")

	var progress models.Progress
	s.getJSON("/api/albums/"+seedAlbumID+"/progress", token, &progress)
	s.Require().Equal(2, progress.Total, "Album total should match the seeded catalog")
	s.Require().GreaterOrEqual(progress.Collected, 1, "A 5-draw pack over 2 stickers collects at least one")
	s.Require().GreaterOrEqual(progress.Percentage, 50)

	var overall models.Progress
	s.getJSON("/api/progress", token, &overall)
	s.Require().Equal(progress.Collected, overall.Collected, "Single active album: overall equals album progress")

	// A sticker from a retired album stays owned but must not move the
	// completion figures.
	_, err := s.seed.Exec(`INSERT INTO content.user_stickers (id, user_id, sticker_id, quantity)
		VALUES (gen_random_uuid(), $1, $2, 1)`, identity.ID, seedRetiredStickerID)
	s.Require().NoError(err, "Error granting retired-album sticker")

	var after models.Progress
	s.getJSON("/api/progress", token, &after)
	s.Require().Equal(overall, after, "Retired-album ownership should not count towards progress")
}

func (s *IntegrationTestSuite) TestFriendshipAndTrade() {
	suffix := time.Now().UnixNano() % 1_000_000_000
	tokenA, identityA := s.signUp(fmt.Sprintf("trader%da", suffix))
	tokenB, identityB := s.signUp(fmt.Sprintf("trader%db", suffix))

	// Both parties need inventory on both catalog entries before trading.
	s.collectBothStickers(tokenA)
	s.collectBothStickers(tokenB)

	var friendship models.Friendship
	s.postJSON("/api/friends/requests", tokenA,
		models.SendFriendRequestRequest{FriendCode: identityB.FriendCode},
		http.StatusCreated, &friendship)
	s.Require().Equal(identityA.ID, friendship.RequesterID)
	s.Require().Equal(identityB.ID, friendship.RecipientID)

	var counts models.NotificationCounts
	s.getJSON("/api/notifications", tokenB, &counts)
	s.Require().Equal(1, counts.FriendRequests, "Recipient should see one pending friend request")

	s.postJSON("/api/friends/requests/"+friendship.ID+"/respond", tokenB,
		models.RespondRequest{Accept: true}, http.StatusOK, nil)

	var friends []models.FriendEntry
	s.getJSON("/api/friends", tokenA, &friends)
	s.Require().Len(friends, 1, "Requester should now have one friend")
	s.Require().Equal(identityB.ID, friends[0].ID)

	beforeA := s.ownedQuantities(tokenA)
	beforeB := s.ownedQuantities(tokenB)

	// Offer the initiator's full holding of sticker 1, so settlement drives
	// the quantity to zero and the ownership row is deleted.
	offeredQty := beforeA[seedStickerID1]
	proposal := models.ProposeTradeRequest{
		PartnerID: identityB.ID,
		Offered:   []models.TradeItem{{StickerID: seedStickerID1, Quantity: offeredQty}},
		Requested: []models.TradeItem{{StickerID: seedStickerID2, Quantity: 1}},
	}

	var trade, doomedTrade models.Trade
	s.postJSON("/api/trades", tokenA, proposal, http.StatusCreated, &trade)
	s.Require().Equal(models.TradePending, trade.Status)
	// An identical proposal passes the same proposal-time checks, but the
	// first settlement will have drained the initiator's copies.
	s.postJSON("/api/trades", tokenA, proposal, http.StatusCreated, &doomedTrade)

	var incoming []models.Trade
	s.getJSON("/api/trades/incoming", tokenB, &incoming)
	s.Require().Len(incoming, 2, "Partner should see both pending trades")

	var settled models.Trade
	s.postJSON("/api/trades/"+trade.ID+"/respond", tokenB,
		models.RespondRequest{Accept: true}, http.StatusOK, &settled)
	s.Require().Equal(models.TradeCompleted, settled.Status, "Accepted trade should settle immediately")

	afterA := s.ownedQuantities(tokenA)
	afterB := s.ownedQuantities(tokenB)
	s.Require().Equal(0, afterA[seedStickerID1], "Initiator should have traded away every copy")
	s.Require().Equal(beforeA[seedStickerID2]+1, afterA[seedStickerID2], "Initiator should have received the requested sticker")
	s.Require().Equal(beforeB[seedStickerID1]+offeredQty, afterB[seedStickerID1], "Partner should have received the offered copies")
	s.Require().Equal(beforeB[seedStickerID2]-1, afterB[seedStickerID2], "Partner should have given up one requested sticker")

	// The second trade now offers copies the initiator no longer holds:
	// settlement must fail and leave both inventories untouched.
	s.postJSON("/api/trades/"+doomedTrade.ID+"/respond", tokenB,
		models.RespondRequest{Accept: true}, http.StatusBadRequest, nil)
	s.Require().Equal(afterA, s.ownedQuantities(tokenA), "Failed settlement must not change the initiator's inventory")
	s.Require().Equal(afterB, s.ownedQuantities(tokenB), "Failed settlement must not change the partner's inventory")

	// A second response must lose the race against the settled state.
	reqBody, err := json.Marshal(models.RespondRequest{Accept: true})
	s.Require().NoError(err, "Error marshaling repeat response")
	req, err := http.NewRequest("POST", s.server.URL+"/api/trades/"+trade.ID+"/respond", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error creating repeat response request")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokenB)
	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Error executing repeat response request")
	s.Require().Equal(http.StatusConflict, resp.StatusCode, "Repeated response should conflict")
	resp.Body.Close()
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
