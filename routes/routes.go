package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pgstay-backend/controllers"
	"pgstay-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires all controllers into the gin engine.
func SetupRouter(
	ac *controllers.AuthController,
	dc *controllers.DiscoveryController,
	ec *controllers.EnquiryController,
	pc *controllers.PropertyController,
	rc *controllers.RoomController,
	bc *controllers.BedController,
	gc *controllers.GuestController,
	sc *controllers.SafetyAuditController,
	uc *controllers.UploadController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", ac.Login)

		// Public discovery + enquiry intake.
		api.GET("/properties", dc.ListProperties)
		api.GET("/properties/:slug", dc.GetProperty)
		api.POST("/enquiries", ec.Create)

		// Owner console, Bearer-authenticated.
		admin := api.Group("", middleware.OwnerAuth())
		{
			admin.GET("/enquiries", ec.ListAll)
			admin.PATCH("/enquiries/:id/status", ec.UpdateStatus)

			admin.POST("/upload", uc.Upload)

			pgs := admin.Group("/pgs")
			{
				pgs.GET("", pc.List)
				pgs.POST("", pc.Create)
				pgs.GET("/:pgId", pc.Get)
				pgs.PATCH("/:pgId", pc.Update)
				pgs.PUT("/:pgId", pc.Update)
				pgs.DELETE("/:pgId", pc.Delete)

				pgs.GET("/:pgId/enquiries", ec.ListForProperty)

				rooms := pgs.Group("/:pgId/rooms")
				{
					rooms.GET("", rc.List)
					rooms.POST("", rc.Create)
					rooms.GET("/:roomId", rc.Get)
					rooms.PATCH("/:roomId", rc.Update)
					rooms.PUT("/:roomId", rc.Update)
					rooms.DELETE("/:roomId", rc.Delete)

					beds := rooms.Group("/:roomId/beds")
					{
						beds.GET("", bc.List)
						beds.POST("", bc.Create)
						beds.GET("/:bedId", bc.Get)
						beds.PATCH("/:bedId", bc.Update)
						beds.PUT("/:bedId", bc.Update)
						beds.DELETE("/:bedId", bc.Delete)
					}
				}

				guests := pgs.Group("/:pgId/guests")
				{
					guests.GET("", gc.List)
					guests.POST("", gc.Create)
					guests.PATCH("/:guestId", gc.Update)
					guests.PUT("/:guestId", gc.Update)
					guests.POST("/:guestId/checkout", gc.CheckOut)
					guests.DELETE("/:guestId", gc.Delete)
				}

				audits := pgs.Group("/:pgId/safety-audits")
				{
					audits.GET("", sc.List)
					audits.POST("", sc.Create)
					audits.PATCH("/:auditId", sc.Update)
					audits.PUT("/:auditId", sc.Update)
					audits.DELETE("/:auditId", sc.Delete)
				}
			}
		}
	}

	return r
}
