/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/perelay/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP translation relay",
	Long: `Run the HTTP server.

Endpoints:
  POST /api/translate   {"source_lang","target_lang","text"} -> {"translated_text","src","dest","error"}
  GET  /api/health      {"status":"ok"}
  GET  /api/languages   languages supported by the configured provider

Translation failures are reported in the "error" field with HTTP 200.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, svc, rl, err := loadRelay()
		if err != nil {
			return err
		}

		if cfg.Server.Debug {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}

		if err := svc.IsAvailable(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: provider %s not available: %v\n", svc.Name(), err)
		}

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           server.New(svc, rl, cfg.Server.AllowedOrigins).Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Printf("perelay listening on %s (provider %s, timeout %s)", cfg.Server.Addr, svc.Name(), cfg.Provider.Timeout)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Provider.Timeout+5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8000", "Listen address")
	serveCmd.Flags().StringSlice("allowed-origins", nil, "CORS allowed origins (comma-separated; default list used if empty)")
	serveCmd.Flags().Bool("debug", false, "Run gin in debug mode")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("server.allowed_origins", serveCmd.Flags().Lookup("allowed-origins"))
	viper.BindPFlag("server.debug", serveCmd.Flags().Lookup("debug"))
}
