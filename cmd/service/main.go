// File: cmd/service/main.go
// @title        Daily Pulse API
// @version      1.0
// @description  Daily Pulse 後端 API 文件：使用者認證與個人指標設定
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Auth-Token
package main

import (
	"log"
)

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
