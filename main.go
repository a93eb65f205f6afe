package main

import (
	"github.com/bluecotton/board/config"
	"github.com/bluecotton/board/models"
	"github.com/bluecotton/board/routes"
	"github.com/bluecotton/board/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.Member{},
		&models.SomCategory{},
		&models.SomCategoryMember{},
		&models.Post{},
		&models.PostImage{},
		&models.Comment{},
		&models.Reply{},
		&models.PostLike{},
		&models.CommentLike{},
		&models.ReplyLike{},
		&models.Draft{},
		&models.PostReport{},
		&models.CommentReport{},
		&models.ReplyReport{},
		&models.RecentView{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
