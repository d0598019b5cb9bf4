package wire

import (
	"Dramaboard/internal/api"
	"Dramaboard/internal/api/config"
	"Dramaboard/internal/api/handler"
	"Dramaboard/internal/job"
	"Dramaboard/internal/pkg/catalog"
	"Dramaboard/internal/pkg/cron"
	"Dramaboard/internal/repository"
	"Dramaboard/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *mongo.Database
	CronMgr *cron.Manager
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	dramaRepo := repository.NewDramaRepo(db)

	scraper := catalog.NewScraper(cfg.Catalog.SourceURL, time.Duration(cfg.Catalog.Timeout)*time.Second)

	userService := service.NewUserService(userRepo, postRepo, commentRepo, dramaRepo)
	postService := service.NewPostService(postRepo, commentRepo, userRepo, dramaRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	voteService := service.NewVoteService(postRepo, commentRepo)
	membershipService := service.NewMembershipService(userRepo, dramaRepo)
	dramaService := service.NewDramaService(dramaRepo, postRepo, scraper)

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService),
		PostHandler:    handler.NewPostHandler(postService, voteService),
		CommentHandler: handler.NewCommentHandler(commentService, voteService),
		DramaHandler:   handler.NewDramaHandler(dramaService, membershipService),
	}

	router := api.SetupRouter(handlers)

	ledgerAuditJob := job.NewLedgerAuditJob(membershipService, voteService)
	cronMgr := cron.NewCronManager(ledgerAuditJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
