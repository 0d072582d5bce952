package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/controllers"
	"github.com/alesxandro/barfesta-app/middlewares"
	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/services"
)

// SetupRouter monta todas as rotas. O provisionador de tenants chega pronto
// para o main (e os testes) escolherem o banco mestre.
func SetupRouter(db *gorm.DB, provisioner *services.TenantProvisioner) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.DBCheck(db))

	authCtrl := controllers.NewAuthController(db)
	unitCtrl := controllers.NewUnitController(db)
	tableCtrl := controllers.NewTableController(db)
	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db)
	customerCtrl := controllers.NewCustomerController(db)
	userCtrl := controllers.NewUserController(db)
	reservationCtrl := controllers.NewReservationController(db)
	rentalCtrl := controllers.NewRentalController(db)
	dashboardCtrl := controllers.NewDashboardController(db)
	financeCtrl := controllers.NewFinanceController(db)
	tenantCtrl := controllers.NewTenantController(provisioner)

	// ----------------------------------------------------------------
	//                      ROTAS PÚBLICAS
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/api/login", authCtrl.Login)
	}

	// Bootstrap administrativo de instalações.
	r.POST("/api/tenants", tenantCtrl.CreateTenant)

	// ----------------------------------------------------------------
	//                      ROTAS AUTENTICADAS
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware(db))

	manageOnly := middlewares.CheckRole(models.RoleAdmin, models.RoleManager)

	auth.GET("/api/test", authCtrl.TestConnection)

	// UNIDADES
	auth.GET("/api/units", unitCtrl.ListUnits)
	auth.POST("/api/units", manageOnly, unitCtrl.CreateUnit)
	auth.PUT("/api/units/:unitId", manageOnly, unitCtrl.UpdateUnit)
	auth.DELETE("/api/units/:unitId", manageOnly, unitCtrl.DeleteUnit)

	// MESAS
	auth.GET("/api/units/:unitId/tables", tableCtrl.ListTables)
	auth.POST("/api/units/:unitId/tables", manageOnly, tableCtrl.CreateTable)
	auth.PATCH("/api/units/:unitId/tables/:tableId", manageOnly, tableCtrl.UpdateTableStatus)
	auth.PUT("/api/units/:unitId/tables/:tableId", manageOnly, tableCtrl.UpdateTable)
	auth.DELETE("/api/units/:unitId/tables/:tableId", manageOnly, tableCtrl.DeleteTable)

	// PRODUTOS (estoque do restaurante + inventário de locação)
	auth.GET("/api/products", productCtrl.ListProducts)
	auth.POST("/api/products", manageOnly, productCtrl.CreateProduct)
	auth.PUT("/api/products/:productId", manageOnly, productCtrl.UpdateProduct)
	auth.DELETE("/api/products/:productId", manageOnly, productCtrl.DeleteProduct)

	// PEDIDOS (kanban + cozinha via ?status=preparando)
	auth.GET("/orders", orderCtrl.ListOrders)
	auth.GET("/orders/:orderId", orderCtrl.GetOrderByID)
	auth.POST("/api/orders", orderCtrl.CreateOrder)
	auth.PATCH("/orders/:orderId/status", orderCtrl.SetOrderStatus)
	auth.POST("/orders/:orderId/advance", orderCtrl.AdvanceOrder)

	// CLIENTES
	auth.GET("/api/customers", customerCtrl.ListCustomers)
	auth.POST("/api/customers", customerCtrl.CreateCustomer)
	auth.GET("/api/customers/:customerId", customerCtrl.GetCustomerByID)
	auth.PUT("/api/customers/:customerId", customerCtrl.UpdateCustomer)
	auth.DELETE("/api/customers/:customerId", customerCtrl.DeleteCustomer)

	// FUNCIONÁRIOS
	auth.GET("/api/users", userCtrl.ListUsers)
	auth.GET("/api/users/:userId", userCtrl.GetUserByID)
	auth.POST("/api/users", manageOnly, userCtrl.CreateUser)
	auth.PUT("/api/users/:userId", manageOnly, userCtrl.UpdateUser)
	auth.DELETE("/api/users/:userId", manageOnly, userCtrl.DeleteUser)

	// RESERVAS
	auth.GET("/api/reservations", reservationCtrl.ListReservations)
	auth.POST("/api/reservations", reservationCtrl.CreateReservation)
	auth.PUT("/api/reservations/:reservationId", reservationCtrl.UpdateReservation)
	auth.DELETE("/api/reservations/:reservationId", reservationCtrl.DeleteReservation)

	// LOCAÇÕES
	auth.GET("/api/rentals", rentalCtrl.ListRentals)
	auth.POST("/api/rentals", rentalCtrl.CreateRental)
	auth.PUT("/api/rentals/:rentalId", rentalCtrl.UpdateRental)
	auth.DELETE("/api/rentals/:rentalId", rentalCtrl.DeleteRental)

	// DASHBOARD
	auth.GET("/api/dashboard/stats", dashboardCtrl.GetStats)
	auth.GET("/api/dashboard/recent-orders", dashboardCtrl.GetRecentOrders)
	auth.GET("/api/dashboard/recent-rentals", dashboardCtrl.GetRecentRentals)

	// FINANCEIRO DE LOCAÇÃO
	auth.GET("/api/rental/finance/summary", financeCtrl.GetSummary)
	auth.GET("/api/rental/finance/monthly", financeCtrl.GetMonthly)
	auth.GET("/api/rental/finance/event-type", financeCtrl.GetByEventType)
	auth.GET("/api/rental/finance/transactions", financeCtrl.GetTransactions)

	// WebSocket do kanban/cozinha
	ws := r.Group("/ws")
	ws.Use(middlewares.WebSocketAuthMiddleware(db))
	{
		ws.GET("/:role", controllers.KDSHandler)
	}

	return r
}
