package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getalerts "react-golang/http-server/alerts/get"
	genexcel "react-golang/http-server/generate-report/generate-excel"
	getprefix "react-golang/http-server/prefix/get"
	upprefix "react-golang/http-server/prefix/update"
	getreport "react-golang/http-server/report/get"
	"react-golang/http-server/upload"
	"react-golang/internal/config"
	"react-golang/internal/middleware/auth"
	generate_excel "react-golang/internal/service/generate-excel"
	"react-golang/internal/service/report"
	"react-golang/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, reportService *report.Service, genService *generate_excel.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"}, // frontend em dev
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// upload da planilha de apontamento, responde com os grupos prontos
	router.Post("/api/upload", upload.UploadReport(log, cfg.UploadLimitMB, reportService))

	// último relatório e histórico de uploads
	router.Get("/api/report/latest", getreport.GetLatestReport(log, storage))
	router.Get("/api/reports", getreport.GetReports(log, storage))

	// exporta o último relatório como planilha de status
	router.Get("/api/report/excel", genexcel.GenerateReportExcel(log, genService))

	// alertas de prazo derivados do último relatório
	router.Get("/api/alerts", getalerts.GetAlerts(log, storage))

	// tabela efetiva de prefixos (padrão + overrides)
	router.Get("/api/prefixes", getprefix.GetPrefixNames(log, storage))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Put("/prefixes/{prefix}", upprefix.UpdatePrefixNameAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	// estática do frontend React; sem a pasta o servidor vira só API
	frontendDir := cfg.FrontendDir
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("pasta do frontend não encontrada, servindo só a API", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: qualquer outro caminho -> index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
