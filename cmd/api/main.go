package main

import (
	_ "rede_saude/docs"
	"rede_saude/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout Payment API
// @version         1.0
// @description     Checkout orchestration for healthcare plan subscriptions (plans, card/pix/boleto payments) backed by DynamoDB and Mercado Pago.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
