package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	statsUC "github.com/GaluhWikri/Portofolio-Galuh/internal/application/usecase/stats"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

type StatsHandler struct {
	statsUseCase *statsUC.GitHubStatsUseCase
	logger       logger.Logger
}

func NewStatsHandler(uc *statsUC.GitHubStatsUseCase, log logger.Logger) *StatsHandler {
	return &StatsHandler{statsUseCase: uc, logger: log}
}

func (h *StatsHandler) GetGitHubStats(c *gin.Context) {
	output, err := h.statsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Stats)
}
