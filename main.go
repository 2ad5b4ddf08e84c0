// file: main.go
package main

import (
	"CTFLab/config"
	"CTFLab/database"
	"CTFLab/logging"
	"CTFLab/routes"
	"CTFLab/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	config.SetupCommon()
	logging.Init()

	cfg := config.New()

	database.Connect(cfg.MySQLDSN)
	database.MigrateTables()
	database.InitRedis(cfg.RedisAddr, cfg.RedisPassword)
	utils.InitJWT(cfg.JWTSecret)

	r := routes.SetupRouter()

	logrus.Infof("Starting server on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logrus.Fatalf("Failed to run server: %v", err)
	}
}
