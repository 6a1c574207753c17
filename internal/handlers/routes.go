package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/silkway-travel/tour-booking-api/internal/auth"
)

func RegisterRoutes(
	r *chi.Mux,
	authHandler *auth.AuthHandler,
	intakeHandler *IntakeHandler,
	tourHandler *TourHandler,
	contentHandler *ContentHandler,
	adminHandler *AdminHandler,
	apiKeyHandler *APIKeyHandler,
) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Tour Booking API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Post("/admin/login", authHandler.HandleLogin)

	// Intake
	huma.Post(api, "/main/send-requests", intakeHandler.HandleSendRequest)
	huma.Post(api, "/main/feedback", intakeHandler.HandleFeedback)
	huma.Post(api, "/main/create-your-tour", intakeHandler.HandleCreateYourTour)
	huma.Post(api, "/main/car-rent", intakeHandler.HandleCarRent)
	huma.Post(api, "/main/site-review-create", intakeHandler.HandleSiteReviewCreate)
	huma.Post(api, "/tours/{id}/request", intakeHandler.HandleTourRequest)
	huma.Post(api, "/tours/{id}/review", intakeHandler.HandleTourReview)
	huma.Post(api, "/tours/{id}/lead", intakeHandler.HandleLead)

	// Catalogue and content
	huma.Get(api, "/tours", tourHandler.HandleTourList)
	huma.Get(api, "/tours/{id}", tourHandler.HandleTourDetail)
	huma.Get(api, "/main/site-review-list", contentHandler.HandleSiteReviewList)
	huma.Get(api, "/main/sliders", contentHandler.HandleSliders)
	huma.Get(api, "/{lang}/article/nav", contentHandler.HandleArticleNav)
	huma.Get(api, "/{lang}/main/faq", contentHandler.HandleFAQ)
	huma.Get(api, "/{lang}/main/params", contentHandler.HandleParams)
	huma.Get(api, "/{lang}/main/articles", contentHandler.HandleArticles)
	huma.Get(api, "/article/list/{cat_id}", contentHandler.HandleArticleList)
	huma.Get(api, "/article/detail/{id}", contentHandler.HandleArticleDetail)
	huma.Get(api, "/{lang}/gallery/list", contentHandler.HandleGalleryList)
	huma.Get(api, "/gallery/detail/{gallery_id}", contentHandler.HandleGalleryDetail)

	// Admin surface. The operations go through a separate adapter bound to the
	// middleware-wrapped group router, so the session check runs before any of
	// them. The doc routes stay on the main API only.
	r.Group(func(admin chi.Router) {
		admin.Use(authHandler.AuthMiddleware)

		adminConfig := huma.DefaultConfig("Tour Booking API", "1.0.0")
		adminConfig.Components.SecuritySchemes = config.Components.SecuritySchemes
		adminConfig.OpenAPIPath = ""
		adminConfig.DocsPath = ""
		adminConfig.SchemasPath = ""
		adminAPI := humachi.New(admin, adminConfig)

		huma.Get(adminAPI, "/admin/intake/{kind}", adminHandler.HandleIntakeList, func(o *huma.Operation) {
			o.Security = []map[string][]string{{"cookieAuth": {}}}
		})
		huma.Patch(adminAPI, "/admin/intake/{kind}/{id}/status", adminHandler.HandleUpdateStatus, func(o *huma.Operation) {
			o.Security = []map[string][]string{{"cookieAuth": {}}}
		})
		huma.Post(adminAPI, "/admin/api-keys", apiKeyHandler.HandleCreate, func(o *huma.Operation) {
			o.Security = []map[string][]string{{"cookieAuth": {}}}
		})
		huma.Get(adminAPI, "/admin/api-keys", apiKeyHandler.HandleList, func(o *huma.Operation) {
			o.Security = []map[string][]string{{"cookieAuth": {}}}
		})
		huma.Delete(adminAPI, "/admin/api-keys/{id}", apiKeyHandler.HandleDelete, func(o *huma.Operation) {
			o.Security = []map[string][]string{{"cookieAuth": {}}}
		})
	})
}
