package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Rafhi-Arizkia/kenangan-backend/api/controllers"
	ordercontrollers "github.com/Rafhi-Arizkia/kenangan-backend/api/controllers/orders"
	"github.com/Rafhi-Arizkia/kenangan-backend/api/middleware"
	"github.com/Rafhi-Arizkia/kenangan-backend/internal/gifts"
	"github.com/Rafhi-Arizkia/kenangan-backend/internal/orders"
	"github.com/Rafhi-Arizkia/kenangan-backend/internal/reviews"
	"github.com/Rafhi-Arizkia/kenangan-backend/internal/shops"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/config"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/logger"
	pkgredis "github.com/Rafhi-Arizkia/kenangan-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	cache pkgredis.Pinger,
	idempotencyStore pkgredis.IdempotencyStore,
	ordersService orders.Service,
	shopsService shops.Service,
	giftsService gifts.Service,
	reviewsService reviews.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Idempotency(idempotencyStore, logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, cache))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/order-groups", func(r chi.Router) {
			r.Post("/", ordercontrollers.CreateGroup(ordersService, logg))
			r.Get("/{groupID}", ordercontrollers.GroupDetail(ordersService, logg))
			r.Get("/{groupID}/audit", ordercontrollers.GroupAudit(ordersService, logg))
			r.Get("/{groupID}/orders", ordercontrollers.GroupOrders(ordersService, logg))
			r.Delete("/{groupID}", ordercontrollers.DeleteGroup(ordersService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", ordercontrollers.Create(ordersService, logg))
			r.Get("/{orderID}", ordercontrollers.Detail(ordersService, logg))
			r.Get("/{orderID}/items", ordercontrollers.ListItems(ordersService, logg))
			r.Get("/{orderID}/statuses", ordercontrollers.ListStatuses(ordersService, logg))
			r.Post("/{orderID}/statuses", ordercontrollers.UpdateStatus(ordersService, logg))
			r.Get("/{orderID}/shipments", ordercontrollers.OrderShipment(ordersService, logg))
			r.Post("/{orderID}/shipments", ordercontrollers.CreateShipment(ordersService, logg))
		})

		r.Route("/shipments", func(r chi.Router) {
			r.Get("/{shipmentID}", ordercontrollers.ShipmentDetail(ordersService, logg))
			r.Put("/{shipmentID}", ordercontrollers.UpdateShipment(ordersService, logg))
		})

		r.Route("/shops", func(r chi.Router) {
			r.Post("/", controllers.CreateShop(shopsService, logg))
			r.Get("/", controllers.ListOwnerShops(shopsService, logg))
			r.Get("/{shopID}", controllers.ShopDetail(shopsService, logg))
			r.Put("/{shopID}", controllers.UpdateShop(shopsService, logg))
			r.Delete("/{shopID}", controllers.DeleteShop(shopsService, logg))
			r.Get("/{shopID}/orders", ordercontrollers.ListByShop(ordersService, logg))
			r.Get("/{shopID}/gifts", controllers.ListShopGifts(giftsService, logg))
		})

		r.Route("/gifts", func(r chi.Router) {
			r.Post("/", controllers.CreateGift(giftsService, logg))
			r.Get("/{giftID}", controllers.GiftDetail(giftsService, logg))
			r.Put("/{giftID}", controllers.UpdateGift(giftsService, logg))
			r.Delete("/{giftID}", controllers.DeleteGift(giftsService, logg))
			r.Post("/{giftID}/specifications", controllers.AddGiftSpecification(giftsService, logg))
			r.Post("/{giftID}/variants", controllers.AddGiftVariant(giftsService, logg))
			r.Get("/{giftID}/reviews", controllers.ListGiftReviews(reviewsService, logg))
		})

		r.Route("/gift-categories", func(r chi.Router) {
			r.Post("/", controllers.CreateGiftCategory(giftsService, logg))
			r.Get("/", controllers.ListGiftCategories(giftsService, logg))
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Post("/", controllers.CreateReview(reviewsService, logg))
			r.Delete("/{reviewID}", controllers.DeleteReview(reviewsService, logg))
		})
	})

	return r
}
