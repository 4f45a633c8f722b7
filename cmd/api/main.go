package main

import (
	_ "assessment_checkout/docs"
	"assessment_checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Assessment Checkout API
// @version         1.0
// @description     Payment orchestration for assessment results: time-based pricing, Razorpay and PayPal checkouts, sign-in gating.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the Firebase ID token.

func main() {
	routes.Run()
}
