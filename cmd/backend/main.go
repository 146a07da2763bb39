package main

import (
	"log"

	"heavyprofile/internal/api"
)

// @title Тяжёлый Профиль API
// @version 1.0
// @description Бэкенд сайта стаффинговой компании: каталог услуг с правками из админки, заявки в Telegram, тексты страниц.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Введите токен в формате: Bearer {token}

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
