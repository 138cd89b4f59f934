package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"proforge/cmd/fx/account_fx"
	"proforge/cmd/fx/admin_fx"
	"proforge/cmd/fx/auth_fx"
	"proforge/cmd/fx/config_fx"
	"proforge/cmd/fx/controllers_fx"
	"proforge/cmd/fx/db_fx"
	"proforge/cmd/fx/logger_fx"
	"proforge/cmd/fx/mail_fx"
	"proforge/cmd/fx/memcache_fx"
	"proforge/cmd/fx/plan_fx"
	"proforge/cmd/fx/product_fx"
	"proforge/cmd/fx/profile_fx"
	"proforge/cmd/fx/redis_fx"
	"proforge/cmd/fx/subscription_fx"
	"proforge/cmd/fx/wallet_fx"
	"proforge/internal/api/controllers"
	"proforge/internal/config"
	"proforge/pkg/middleware"
	"proforge/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		redis_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		auth_fx.Module,

		account_fx.Module,
		plan_fx.Module,
		subscription_fx.Module,
		profile_fx.Module,
		product_fx.Module,
		wallet_fx.Module,
		admin_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.Int("port", cfg.App.Port))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

type routerDeps struct {
	fx.In

	Config       *config.Config
	TokenIssuer  *utils.TokenIssuer
	Blocklist    middleware.TokenBlocklist
	Account      *controllers.AccountController
	Plan         *controllers.PlanController
	Subscription *controllers.SubscriptionController
	Profile      *controllers.ProfileController
	Public       *controllers.PublicController
	Product      *controllers.ProductController
	Wallet       *controllers.WalletController
	Admin        *controllers.AdminController
}

func ProvideRouter(deps routerDeps) *gin.Engine {
	if !deps.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, deps)

	return r
}

func RegisterRoutes(r *gin.Engine, deps routerDeps) {
	auth := middleware.JWTAuthMiddleware(deps.TokenIssuer, deps.Blocklist)

	v1 := r.Group("/api/v1")

	// Public surface.
	v1.GET("/u/:customURL", deps.Public.ViewProfile)
	v1.GET("/plans", deps.Plan.ListPlans)
	v1.GET("/plans/:id", deps.Plan.GetPlan)

	accounts := v1.Group("/accounts")
	accounts.POST("/register", deps.Account.Register)
	accounts.POST("/login", deps.Account.Login)
	accounts.POST("/forgot-password", deps.Account.ForgotPassword)
	accounts.POST("/verify-otp", deps.Account.VerifyOtpToken)
	accounts.POST("/reset-password", deps.Account.ResetPasswordWithOtp)
	accounts.POST("/logout", auth, deps.Account.Logout)
	accounts.GET("/me", auth, deps.Account.Me)

	subscriptions := v1.Group("/subscriptions", auth)
	subscriptions.POST("", deps.Subscription.Subscribe)
	subscriptions.GET("", deps.Subscription.History)
	subscriptions.GET("/current", deps.Subscription.Current)

	v1.GET("/quota/:resource", auth, deps.Subscription.CheckQuota)

	templates := v1.Group("/templates", auth)
	templates.GET("", deps.Profile.ListTemplates)
	templates.GET("/:id/access", deps.Profile.CheckTemplateAccess)

	profiles := v1.Group("/profiles", auth)
	profiles.POST("", deps.Profile.Create)
	profiles.GET("", deps.Profile.ListMine)
	profiles.GET("/:id", deps.Profile.Get)
	profiles.PUT("/:id", deps.Profile.Update)
	profiles.DELETE("/:id", deps.Profile.Delete)

	products := v1.Group("/products", auth)
	products.POST("", deps.Product.Create)
	products.GET("", deps.Product.ListMine)
	products.PUT("/:id", deps.Product.Update)
	products.DELETE("/:id", deps.Product.Delete)

	wallet := v1.Group("/wallet", auth)
	wallet.GET("", deps.Wallet.GetWallet)
	wallet.GET("/transactions", deps.Wallet.ListTransactions)
	wallet.POST("/deposit", deps.Wallet.Deposit)
	wallet.POST("/withdraw", deps.Wallet.Withdraw)

	// Deposit instructions are shown before login.
	v1.GET("/payment-settings", deps.Wallet.GetPaymentSettings)

	referrals := v1.Group("/referrals", auth)
	referrals.GET("/stats", deps.Wallet.ReferralStats)
	referrals.GET("/earnings", deps.Wallet.ReferralEarnings)

	admin := v1.Group("/admin", auth, middleware.RoleMiddleware("admin"))
	admin.GET("/users", deps.Admin.ListUsers)
	admin.PUT("/users/:id/active", deps.Admin.SetUserActive)
	admin.PUT("/products/:id/active", deps.Admin.SetProductActive)
	admin.GET("/transactions", deps.Admin.ListTransactions)
	admin.POST("/transactions/:id/approve", deps.Admin.ApproveTransaction)
	admin.POST("/transactions/:id/reject", deps.Admin.RejectTransaction)
	admin.GET("/plans", deps.Plan.ListAllPlans)
	admin.POST("/plans", deps.Plan.CreatePlan)
	admin.PUT("/plans/:id", deps.Plan.UpdatePlan)
	admin.DELETE("/plans/:id", deps.Plan.DeletePlan)
	admin.PUT("/payment-settings", deps.Admin.UpdatePaymentSettings)
	admin.GET("/dashboard/stats", deps.Admin.Dashboard)
}
