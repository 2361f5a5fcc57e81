package handlers

import (
	"github.com/labstack/echo/v4"

	"precario/internal/app"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	// Marcas
	marcaHandler := NewMarcaHandler(services.MarcaRepo)
	api.GET("/marcas", marcaHandler.List)

	// Catálogo de componentes
	componenteHandler := NewComponenteHandler(services.ComponenteRepo)
	componentes := api.Group("/componentes")
	componentes.GET("", componenteHandler.List)
	componentes.GET("/count", componenteHandler.Count)

	// Histórico de preços (só leitura)
	historicoHandler := NewHistoricoHandler(services.HistoricoRepo)
	api.GET("/historico", historicoHandler.List)

	// Descontos
	descontoHandler := NewDescontoHandler(services.DescontoService)
	api.GET("/marcas/:idmarca/descontos", descontoHandler.ListByMarca)
	api.POST("/descontos/import", descontoHandler.Import)

	// Importação de preçários
	importHandler := NewImportJobHandler(services.ImportService)
	importGroup := api.Group("/import")
	importGroup.POST("/pricelist", importHandler.CreateImportJob)
	importGroup.GET("/jobs", importHandler.ListImportJobs)
	importGroup.GET("/jobs/:id/progress", importHandler.GetImportJobProgress)

	// Progresso em tempo real por WebSocket
	wsHandler := NewProgressWSHandler(services.ImportService, services.ProgressHub)
	importGroup.GET("/jobs/:id/ws", wsHandler.HandleProgress)
}
