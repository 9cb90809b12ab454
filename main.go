package main

import (
	"github.com/Donadams50/TechTestMarch25/config"
	"github.com/Donadams50/TechTestMarch25/routes"
	"github.com/Donadams50/TechTestMarch25/store"
	"github.com/Donadams50/TechTestMarch25/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	db := config.InitDatabase()
	defer config.CloseDatabase()

	r := routes.SetupRouter(store.NewMongoStore(db), utils.Logger)

	utils.Sugar.Infof("starting server on port %s", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
