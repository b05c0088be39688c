// server/internal/api/routes/routes.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taller-api-server/internal/api/handlers"
	"taller-api-server/internal/api/middleware"
	"taller-api-server/internal/auth"
	"taller-api-server/internal/models"
	"taller-api-server/internal/service"
	"taller-api-server/internal/socket"
	"taller-api-server/internal/store"
)

// Deps bundles everything the router needs.
type Deps struct {
	Auth      *auth.Manager
	Hub       *socket.Hub
	Log       *logrus.Logger
	Orders    *service.OrderService
	Inventory *service.InventoryService
	Tools     *service.ToolService
	Center    *service.NotificationCenter
	Profiles  store.ProfileStore
	Mechanics store.MechanicStore
	Clients   store.ClientStore
	Vehicles  store.VehicleStore
	Zones     store.ZoneStore
	Catalog   store.CatalogStore
}

func SetupRouter(d Deps) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	userHandler := &handlers.UserHandler{Profiles: d.Profiles, Mechanics: d.Mechanics, Auth: d.Auth}
	intakeHandler := &handlers.IntakeHandler{Orders: d.Orders, Clients: d.Clients, Vehicles: d.Vehicles, Catalog: d.Catalog}
	orderHandler := &handlers.OrderHandler{Orders: d.Orders}
	inventoryHandler := &handlers.InventoryHandler{Inventory: d.Inventory}
	toolHandler := &handlers.ToolHandler{Tools: d.Tools}
	notificationHandler := &handlers.NotificationHandler{Center: d.Center}
	adminHandler := &handlers.AdminHandler{Zones: d.Zones, Catalog: d.Catalog}
	webSocketHandler := &handlers.WebSocketHandler{Hub: d.Hub, Auth: d.Auth, Log: d.Log}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/login", userHandler.Login)
		}

		// Administration: user registration and reference tables.
		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate(d.Auth))
		admin.Use(middleware.Authorize(models.RoleAdmin))
		{
			admin.POST("/users", userHandler.CreateUser)

			zones := admin.Group("/zones")
			{
				zones.POST("/", adminHandler.CreateZone)
				zones.GET("/", adminHandler.ListZones)
			}

			catalog := admin.Group("/catalog")
			{
				catalog.POST("/brands", adminHandler.CreateBrand)
				catalog.POST("/models", adminHandler.CreateModel)
				catalog.POST("/specialties", adminHandler.CreateSpecialty)
				catalog.GET("/specialties", adminHandler.ListSpecialties)
				catalog.POST("/services", adminHandler.CreateService)
				catalog.POST("/suppliers", adminHandler.CreateSupplier)
				catalog.GET("/suppliers", adminHandler.ListSuppliers)
			}
		}

		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate(d.Auth))
		{
			// Reads shared by every authenticated role.
			protected.GET("/brands", intakeHandler.ListBrands)
			protected.GET("/brands/:brand/models", intakeHandler.ListModelsByBrand)
			protected.GET("/services", adminHandler.ListServices)
			protected.GET("/mechanics", userHandler.ListMechanics)
			protected.GET("/notifications/my", notificationHandler.My)
			protected.POST("/notifications/:id/read", notificationHandler.MarkRead)

			// Front desk.
			reception := protected.Group("/")
			reception.Use(middleware.Authorize(models.RoleReceptionist))
			{
				reception.POST("/intake", intakeHandler.Intake)
				reception.GET("/clients", intakeHandler.ListClients)
				reception.GET("/clients/:rut/vehicles", intakeHandler.GetClientVehicles)
			}

			// Shop manager: assignment, quality, delays, reports,
			// line items.
			orders := protected.Group("/orders")
			{
				managerOrders := orders.Group("/")
				managerOrders.Use(middleware.Authorize(models.RoleShopManager))
				{
					managerOrders.GET("/", orderHandler.List)
					managerOrders.POST("/:id/assign", orderHandler.Assign)
					managerOrders.POST("/:id/quality-check", orderHandler.QualityCheck)
					managerOrders.POST("/delay-scan", orderHandler.DelayScan)
					managerOrders.GET("/:id/report", orderHandler.Report)
					managerOrders.POST("/:id/service-items", orderHandler.AddServiceItem)
					managerOrders.POST("/:id/part-items", orderHandler.AddPartItem)
				}

				sharedOrders := orders.Group("/")
				sharedOrders.Use(middleware.Authorize(models.RoleShopManager, models.RoleReceptionist, models.RoleMechanic))
				{
					sharedOrders.GET("/:id", orderHandler.Get)
				}

				mechanicOrders := orders.Group("/")
				mechanicOrders.Use(middleware.Authorize(models.RoleMechanic))
				{
					mechanicOrders.GET("/my", orderHandler.MyOrders)
					mechanicOrders.POST("/:id/logs", orderHandler.RecordLog)
				}
			}

			// Warehouse.
			parts := protected.Group("/parts")
			parts.Use(middleware.Authorize(models.RoleWarehouseManager, models.RoleShopManager))
			{
				parts.POST("/", inventoryHandler.CreatePart)
				parts.GET("/", inventoryHandler.ListParts)
				parts.GET("/low-stock", inventoryHandler.LowStock)
				parts.GET("/:code", inventoryHandler.GetPart)
				parts.POST("/:code/movements", inventoryHandler.Move)
				parts.GET("/:code/movements", inventoryHandler.Movements)
			}

			// Tool custody.
			tools := protected.Group("/tools")
			{
				tools.GET("/", toolHandler.ListTools)

				warehouseTools := tools.Group("/")
				warehouseTools.Use(middleware.Authorize(models.RoleWarehouseManager))
				{
					warehouseTools.POST("/", toolHandler.CreateTool)
				}

				mechanicTools := tools.Group("/")
				mechanicTools.Use(middleware.Authorize(models.RoleMechanic))
				{
					mechanicTools.POST("/:code/checkout", toolHandler.Checkout)
					mechanicTools.POST("/:code/checkin", toolHandler.Checkin)
				}
			}
		}
	}

	return router
}
