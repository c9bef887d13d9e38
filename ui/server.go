package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"goroster/app"
	"goroster/internal/config"
	"goroster/ports"
)

//go:embed templates/*.html static/* help.md
var embeddedFiles embed.FS

// demoSeed keeps the /demo flow deterministic across requests
const demoSeed = 20240301

// Server is the web UI: upload form, roster preview, styled download
type Server struct {
	router    *gin.Engine
	service   *app.RosterService
	exporter  ports.GridExporterPort
	csvWriter ports.GridCSVWriterPort
	templates *template.Template
	config    *config.Config
}

// NewServer creates the UI server and wires its routes
func NewServer(cfg *config.Config, service *app.RosterService, exporter ports.GridExporterPort, csvWriter ports.GridCSVWriterPort) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"pct": func(part, total int) string {
			if total == 0 {
				return "0%"
			}
			return fmt.Sprintf("%.0f%%", 100*float64(part)/float64(total))
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	server := &Server{
		router:    gin.Default(),
		service:   service,
		exporter:  exporter,
		csvWriter: csvWriter,
		templates: templates,
		config:    cfg,
	}
	server.router.SetHTMLTemplate(templates)
	server.setupRoutes()

	return server, nil
}

func (s *Server) setupRoutes() {
	staticFiles, err := staticFS()
	if err != nil {
		log.Printf("[Server] Static assets unavailable: %v", err)
	} else {
		s.router.StaticFS("/static", staticFiles)
	}

	s.router.GET("/", s.handleIndex)
	s.router.POST("/roster", s.handleCreateRoster)
	s.router.GET("/roster/:id", s.handleShowRoster)
	s.router.GET("/roster/:id/download", s.handleDownload)
	s.router.GET("/roster/:id/export.csv", s.handleExportCSV)
	s.router.GET("/demo", s.handleDemo)
	s.router.GET("/help", s.handleHelp)
}

// Run starts the HTTP server on the configured port
func (s *Server) Run() error {
	addr := ":" + s.config.Server.Port
	log.Printf("[Server] UI listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func staticFS() (http.FileSystem, error) {
	sub, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
