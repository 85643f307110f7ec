package service

import (
	"sticker_album/internal/app"
	"sticker_album/internal/pkg/auth"
	"sticker_album/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Service encapsulates the HTTP server configuration, including the application's business logic,
// HTTP handlers, the server's run address, and a logger for event and error logging.
type Service struct {
	handlers   *handlers
	app        *app.App
	runAddress string
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
// It sets up the handlers using the provided application and logger,
// and configures the server's run address.
func NewService(app *app.App, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(app, l)
	return &Service{handlers: handlers, app: app, runAddress: runAddress, log: l}
}

// NewRouter sets up and returns a new chi.Router instance with the necessary middleware and routes.
// It applies logging middleware globally, and JWT authentication middleware for everything
// except the passwordless sign-in endpoints.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())
	router.Post("/api/auth/link", service.handlers.requestLinkHandler)
	router.Post("/api/auth/verify", service.handlers.verifyLinkHandler)
	router.Route("/", func(r chi.Router) {
		r.Use(auth.CheckJWTMiddleware())

		r.Get("/api/profile", service.handlers.getProfileHandler)
		r.Post("/api/profile", service.handlers.completeProfileHandler)
		r.Patch("/api/profile", service.handlers.updateProfileHandler)

		r.Get("/api/albums", service.handlers.listAlbumsHandler)
		r.Get("/api/albums/{albumID}", service.handlers.getAlbumHandler)
		r.Get("/api/albums/{albumID}/progress", service.handlers.albumProgressHandler)
		r.Get("/api/albums/{albumID}/stickers", service.handlers.albumStickersHandler)
		r.Get("/api/progress", service.handlers.overallProgressHandler)

		r.Post("/api/friends/requests", service.handlers.sendFriendRequestHandler)
		r.Get("/api/friends/requests", service.handlers.listFriendRequestsHandler)
		r.Post("/api/friends/requests/{requestID}/respond", service.handlers.respondFriendRequestHandler)
		r.Get("/api/friends", service.handlers.listFriendsHandler)
		r.Get("/api/friends/{friendID}/stickers", service.handlers.friendStickersHandler)

		r.Post("/api/trades", service.handlers.proposeTradeHandler)
		r.Get("/api/trades/incoming", service.handlers.listIncomingTradesHandler)
		r.Get("/api/trades/outgoing", service.handlers.listOutgoingTradesHandler)
		r.Post("/api/trades/{tradeID}/respond", service.handlers.respondTradeHandler)

		r.Post("/api/packs/open", service.handlers.openPackHandler)
		r.Get("/api/notifications", service.handlers.notificationsHandler)
		r.Get("/api/invite", service.handlers.inviteLinkHandler)
	})
	return router
}
