package routes

import (
	"context"
	"strconv"
	"time"

	_ "assessment_checkout/docs" // This will be auto-generated
	"assessment_checkout/internal/adapter/http/handlers"
	"assessment_checkout/internal/adapter/http/middleware"
	"assessment_checkout/internal/adapter/persistence/store"
	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/infrastructure/api"
	"assessment_checkout/internal/infrastructure/checkout"
	"assessment_checkout/internal/infrastructure/clock"
	"assessment_checkout/internal/infrastructure/config"
	"assessment_checkout/internal/infrastructure/database"
	"assessment_checkout/internal/infrastructure/identity"
	"assessment_checkout/internal/infrastructure/metrics"
	"assessment_checkout/internal/infrastructure/payments"
	"assessment_checkout/internal/usecase"
	"assessment_checkout/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const startupTimeout = 10 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	sysClock := clock.System{}
	kv := newKeyValueStore(ctx, cfg, sysClock)
	paymentAPI := api.NewPaymentAPIClient(cfg.PaymentAPIBaseURL, cfg.PaymentAPITimeout)
	catalog := loadCatalog(ctx, cfg, paymentAPI)

	sessionUseCase := usecase.NewSessionUseCase(kv, sysClock)
	pricingUseCase := usecase.NewPricingUseCase(sysClock, cfg.EarlyBirdDuration)
	authUseCase := usecase.NewAuthGateUseCase(newIdentityProvider(cfg), sessionUseCase, sysClock)
	orderUseCase := usecase.NewOrderUseCase(authUseCase, sessionUseCase, pricingUseCase, paymentAPI, catalog, sysClock)
	analytics := metrics.NewAnalyticsSink()

	broker := checkout.NewBroker()
	attempts := checkout.NewAttempts(broker, checkout.DefaultRetention)

	deps := payments.Deps{
		Orders:        orderUseCase,
		Auth:          authUseCase,
		Session:       sessionUseCase,
		PricingEngine: pricingUseCase,
		API:           paymentAPI,
		Catalog:       catalog,
		Clock:         sysClock,
		Analytics:     analytics,
	}
	razorpay := payments.NewRazorpayAdapter(payments.NewRazorpayLoader(cfg.Razorpay, broker), deps, payments.RazorpayAdapterOptions{
		CompanyName:       cfg.Razorpay.CompanyName,
		ThemeColor:        cfg.Razorpay.ThemeColor,
		VerifyWithBackend: cfg.VerifyWithBackend,
	})
	paypal := payments.NewPayPalAdapter(payments.NewPayPalLoader(cfg.PayPal, broker), deps, payments.PayPalAdapterOptions{
		BrandName: cfg.PayPal.BrandName,
	})

	paymentUseCase := usecase.NewPaymentUseCase(
		[]interfaces.IGatewayAdapter{razorpay, paypal},
		authUseCase, sessionUseCase, pricingUseCase, analytics,
	)

	healthHandler := handlers.NewHealthHandler(paymentAPI)
	sessionHandler := handlers.NewSessionHandler(sessionUseCase, pricingUseCase, catalog)
	pricingHandler := handlers.NewPricingHandler(sessionUseCase, pricingUseCase, paymentUseCase, catalog)
	gatewayHandler := handlers.NewGatewayHandler(paymentUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, attempts, broker, handlers.DefaultStartWait)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1, healthHandler)
	addCheckoutRoutes(v1, checkoutHandlers{
		session: sessionHandler,
		pricing: pricingHandler,
		gateway: gatewayHandler,
		auth:    authHandler,
		payment: paymentHandler,
	})
}

func setMiddlewares(cfg config.Config) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("path", c.Request.URL.Path).Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.ScopeHeader, middleware.CurrentPathHeader},
		ExposeHeaders:    []string{middleware.ScopeHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(metrics.PrometheusMiddleware(metrics.ServiceName))
	router.Use(middleware.CheckoutScope())
	router.Use(middleware.ClientInfo())
}

func newKeyValueStore(ctx context.Context, cfg config.Config, c interfaces.IClock) interfaces.IKeyValueStore {
	switch cfg.KVBackend {
	case config.KVRedis:
		client, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		return store.NewRedisStore(client)
	case config.KVDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettingsFromEnv())
		if err != nil {
			log.Fatalf("failed to create dynamodb client: %v", err)
		}
		return store.NewDynamoStore(ddb, cfg.CheckoutKVTable, c)
	default:
		log.Info("[store][memory] checkout state kept in process memory")
		return store.NewMemoryStore(c)
	}
}

// newIdentityProvider returns nil when sign-in is not configured; the auth
// gate then reports ErrIdentityNotConfigured.
func newIdentityProvider(cfg config.Config) interfaces.IIdentityProvider {
	if cfg.AuthMock {
		log.Warn("[identity] AUTH_MOCK enabled, every bearer token signs in the dev user")
		return identity.NewMockProvider(entities.User{})
	}
	if cfg.FirebaseCredentialsFile == "" {
		log.Warn("[identity] FIREBASE_CREDENTIALS_FILE not set, sign-in disabled")
		return nil
	}
	// Not bound to the startup deadline; the auth client lives for the process.
	provider, err := identity.InitFirebase(context.Background(), cfg.FirebaseCredentialsFile)
	if err != nil {
		if cfg.IsProduction() {
			log.Fatalf("failed to initialize firebase: %v", err)
		}
		log.WithError(err).Warn("[identity] firebase unavailable, sign-in disabled")
		return nil
	}
	return provider
}

func loadCatalog(ctx context.Context, cfg config.Config, paymentAPI interfaces.IPaymentAPI) entities.PricingCatalog {
	if !cfg.PricingFromBackend {
		return cfg.Catalog
	}
	remote, err := paymentAPI.GetPricing(ctx)
	if err != nil {
		log.WithError(err).Warn("[pricing] backend catalog unavailable, using configured prices")
		return cfg.Catalog
	}
	log.Info("[pricing] using backend price catalog")
	return remote
}
