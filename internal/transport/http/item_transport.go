package httpt

import (
	"catalog/internal/config"
	"catalog/internal/service"
	"catalog/pkg/logger"
	"catalog/pkg/metric"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	svc     *service.ItemService
	log     logger.Logger
	metrics metric.HTTP
	router  *gin.Engine
}

func NewItemHandler(
	svc *service.ItemService,
	cfg *config.CORS,
	log logger.Logger,
	metrics metric.HTTP,
) *ItemHandler {
	h := &ItemHandler{
		svc:     svc,
		log:     log,
		metrics: metrics,
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           cfg.MaxAge,
	}))

	h.router = router
	h.setupRoutes()

	return h
}

func (h *ItemHandler) Engine() *gin.Engine {
	return h.router
}
