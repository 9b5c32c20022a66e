// file: main.go
package main

import (
	"log"

	"github.com/fontyslads/ctf-portal-sub001/config"
	"github.com/fontyslads/ctf-portal-sub001/database"
	"github.com/fontyslads/ctf-portal-sub001/routes"
	"github.com/fontyslads/ctf-portal-sub001/services"
)

func main() {
	config.Load()

	database.Connect()
	database.InitRedis()

	// 禁用自动迁移 (推荐)
	// database.MigrateTables()

	// 引擎依赖注入：MySQL 关卡存储 + 系统时钟
	services.Init(database.NewFlagStore(database.DB), services.SystemClock{})

	r := routes.SetupRouter()

	log.Printf("Starting server on %s", config.C.ListenAddr)
	if err := r.Run(config.C.ListenAddr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
