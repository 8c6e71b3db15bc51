package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/recyclink/recyclink/internal/assist"
	"github.com/recyclink/recyclink/internal/config"
	"github.com/recyclink/recyclink/internal/content"
	"github.com/recyclink/recyclink/internal/handlers"
	"github.com/recyclink/recyclink/internal/storage"
	"github.com/recyclink/recyclink/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		port       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the RecycLink website and API",
		Long: `Starts the RecycLink website on the specified port.

The site serves the marketing page plus the JSON endpoints behind the
scrap identifier, value calculator, contact form, and chat widget. With
no API key configured, all AI answers come from the built-in mock.`,
		Example: `  # Start server on default port 8888
  recyclink serve

  # Start server on custom port with a config file
  recyclink serve --port 3000 --config recyclink.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			assistant, err := assist.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := assistant.Close(); err != nil {
					slog.Error("Unable to close assistant", "err", err)
				}
			}()
			slog.Info("Assistant ready", "provider", assistant.Name())

			siteContent, err := content.Load(cfg.ContentFile)
			if err != nil {
				return err
			}
			pages, err := web.New(siteContent)
			if err != nil {
				return err
			}

			sessions := storage.New()
			handler := handlers.New(assistant, sessions, cfg.ContactDelay)

			// Sweep idle chat sessions for as long as the server runs.
			go func() {
				ticker := time.NewTicker(cfg.SessionTTL / 2)
				defer ticker.Stop()
				for {
					select {
					case <-cmd.Context().Done():
						return
					case <-ticker.C:
						if n := sessions.Sweep(cfg.SessionTTL); n > 0 {
							slog.Info("Swept idle chat sessions", "count", n)
						}
					}
				}
			}()

			// Set up routes
			r := chi.NewRouter()
			r.Use(middleware.RequestID)
			r.Use(middleware.RealIP)
			r.Use(middleware.Recoverer)
			r.Use(middleware.Timeout(60 * time.Second))

			corsOpts := cors.Options{
				AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}
			if cfg.AllowAllOrigins {
				corsOpts.AllowedOrigins = []string{"*"}
			}
			r.Use(cors.Handler(corsOpts))

			r.Get("/", pages.HandleIndex)
			r.Get("/static/*", pages.HandleStatic)
			r.Post("/api/identify", handler.HandleIdentify)
			r.Post("/api/calculate", handler.HandleCalculate)
			r.Post("/api/contact", handler.HandleContact)
			r.Post("/api/chat", handler.HandleChat)
			r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + cfg.Port
			server := &http.Server{
				Addr:    addr,
				Handler: r,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("RecycLink available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVarP(&configPath, "config", "c", "recyclink.yml", "Path to YAML config file")

	return cmd
}
