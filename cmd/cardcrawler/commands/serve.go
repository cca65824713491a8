package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/Elwinc2799/credit-card-crawler/internal/api/handlers"
	"github.com/Elwinc2799/credit-card-crawler/internal/services"
)

var port int

var serveCmd = &cobra.Command{
	Use:   "serve [--port <port>]",
	Short: "Serves scrape runs and the last export over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.shutdown()

		if port == 0 {
			port = a.cfg.App.Port
		}

		scrapingHandler := handlers.NewScrapingHandler(a.scraper, a.repo.Path())
		api := handlers.NewAPIHandler(services.NewRecordService(a.repo), scrapingHandler)

		r := mux.NewRouter()
		api.RegisterRoutes(r)

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-cmd.Context().Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()

		a.log.Infow("server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default from app.port).")
	rootCmd.AddCommand(serveCmd)
}
