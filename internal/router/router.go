package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/middleware"
)

type Handler interface {
	Protected(c *ginext.Context)
	SelectRole(c *ginext.Context)
	GetOrganizerProfile(c *ginext.Context)
	SaveOrganizerProfile(c *ginext.Context)
	PredictFood(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	MyEvents(c *ginext.Context)
	CompleteEvent(c *ginext.Context)
	GetCatererProfile(c *ginext.Context)
	CreateCatererProfile(c *ginext.Context)
	UpdateCatererProfile(c *ginext.Context)
	MatchCaterers(c *ginext.Context)
	RequestBooking(c *ginext.Context)
	RespondBooking(c *ginext.Context)
	CatererRequests(c *ginext.Context)
	EventBookingStatus(c *ginext.Context)
	RegisterNGO(c *ginext.Context)
	NgoMe(c *ginext.Context)
	SubmitDocument(c *ginext.Context)
	ListDocuments(c *ginext.Context)
	DocumentsStatus(c *ginext.Context)
	GetNGOProfile(c *ginext.Context)
	SaveNGOProfile(c *ginext.Context)
	AdminListNGOs(c *ginext.Context)
	VerifyNGO(c *ginext.Context)
	RejectNGO(c *ginext.Context)
	SuspendNGO(c *ginext.Context)
	ApproveDocument(c *ginext.Context)
	RejectDocument(c *ginext.Context)
	UploadNGOImage(c *ginext.Context)
	UploadCatererImage(c *ginext.Context)
	UploadOrganizerImage(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(authMW)
	{
		api.GET("/protected", h.Protected)

		users := api.Group("/users")
		{
			users.POST("/select-role", h.SelectRole)
		}

		organizers := api.Group("/organizers")
		organizers.Use(middleware.RequireRole(domain.RoleOrganizer))
		{
			organizers.GET("/profile", h.GetOrganizerProfile)
			organizers.POST("/profile", h.SaveOrganizerProfile)
			organizers.PUT("/profile", h.SaveOrganizerProfile)
			organizers.POST("/upload-image", h.UploadOrganizerImage)
		}

		events := api.Group("/events")
		events.Use(middleware.RequireRole(domain.RoleOrganizer))
		{
			events.POST("/predict-food", h.PredictFood)
			events.POST("", h.CreateEvent)
			events.GET("/my-events", h.MyEvents)
			events.PATCH("/:id/complete", h.CompleteEvent)
		}

		caterers := api.Group("/caterers")
		{
			profile := caterers.Group("")
			profile.Use(middleware.RequireRole(domain.RoleCaterer))
			{
				profile.GET("/profile", h.GetCatererProfile)
				profile.POST("/profile", h.CreateCatererProfile)
				profile.PUT("/profile", h.UpdateCatererProfile)
				profile.POST("/upload-image", h.UploadCatererImage)
			}

			search := caterers.Group("")
			search.Use(middleware.RequireRole(domain.RoleOrganizer))
			{
				search.GET("/match/:eventId", h.MatchCaterers)
				search.POST("/book/:eventId/:catererId", h.RequestBooking)
			}
		}

		bookings := api.Group("/bookings")
		{
			catererSide := bookings.Group("")
			catererSide.Use(middleware.RequireRole(domain.RoleCaterer))
			{
				catererSide.GET("/caterer-requests", h.CatererRequests)
				catererSide.PATCH("/respond/:bookingId", h.RespondBooking)
			}

			organizerSide := bookings.Group("")
			organizerSide.Use(middleware.RequireRole(domain.RoleOrganizer))
			{
				organizerSide.GET("/event/:eventId", h.EventBookingStatus)
			}
		}

		ngos := api.Group("/ngos")
		ngos.Use(middleware.RequireRole(domain.RoleNGO))
		{
			ngos.POST("/register", h.RegisterNGO)
			ngos.GET("/me", h.NgoMe)
			ngos.POST("/documents", h.SubmitDocument)
			ngos.GET("/documents", h.ListDocuments)
			ngos.GET("/documents/status", h.DocumentsStatus)
			ngos.POST("/upload-image", h.UploadNGOImage)
		}

		ngoProfile := api.Group("/ngo")
		ngoProfile.Use(middleware.RequireRole(domain.RoleNGO))
		{
			ngoProfile.GET("/profile", h.GetNGOProfile)
			ngoProfile.POST("/profile", h.SaveNGOProfile)
			ngoProfile.PUT("/profile", h.SaveNGOProfile)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireRole(domain.RoleAdmin))
		{
			admin.GET("/ngos", h.AdminListNGOs)
			admin.PATCH("/ngos/:id/verify", h.VerifyNGO)
			admin.PATCH("/ngos/:id/reject", h.RejectNGO)
			admin.PATCH("/ngos/:id/suspend", h.SuspendNGO)
			admin.PATCH("/documents/:id/approve", h.ApproveDocument)
			admin.PATCH("/documents/:id/reject", h.RejectDocument)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
