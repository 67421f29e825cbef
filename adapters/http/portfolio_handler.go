package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/GaluhWikri/Portofolio-Galuh/internal/application/usecase/portfolio"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

type PortfolioHandler struct {
	getUseCase  *portfolioUC.GetPortfolioUseCase
	saveUseCase *portfolioUC.SavePortfolioUseCase
	logger      logger.Logger
}

func NewPortfolioHandler(getUC *portfolioUC.GetPortfolioUseCase, saveUC *portfolioUC.SavePortfolioUseCase, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		getUseCase:  getUC,
		saveUseCase: saveUC,
		logger:      log,
	}
}

func (h *PortfolioHandler) GetData(c *gin.Context) {
	output, err := h.getUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPortfolioDocumentDTO(output.Document))
}

func (h *PortfolioHandler) SaveData(c *gin.Context) {
	var req PortfolioDocumentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for portfolio save", err))
		return
	}

	input := portfolioUC.SavePortfolioInput{Document: req.ToDomain()}
	if err := h.saveUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data berhasil disimpan!"})
}
