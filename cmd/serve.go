package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graph-gophers/graphql-go/relay"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/whiskerworks/catnip/internal/config"
	"github.com/whiskerworks/catnip/internal/graph"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the GraphQL server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST)
  - GraphiQL at /graphql (GET) for interactive queries

Examples:
  # Start server on the configured port
  catnip serve

  # Start server on a custom port
  catnip serve --port 4321`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	port := servePort
	if port == 0 {
		port = cfg.Server.Port
	}

	schema := graph.NewSchema(core)
	gqlHandler := &relay.Handler{Schema: schema}

	mux := http.NewServeMux()

	// GraphQL endpoint - serves both the API and GraphiQL
	mux.Handle("/graphql", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(graphiqlPage)
			return
		}
		gqlHandler.ServeHTTP(w, r)
	}))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      requestLogger(log, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Reload the allowed-colors list and ID settings when catnip.toml
	// changes on disk. The listen port stays fixed for the process.
	stopWatch, err := config.Watch(projectRoot, func(newCfg *config.Config) {
		core.SetConfig(newCfg)
		log.WithField("colors", newCfg.ColorList()).Info("config reloaded")
	})
	if err != nil {
		log.WithError(err).Warn("config watching disabled")
	} else {
		defer stopWatch()
	}

	// Set up signal handling with context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)

	go func() {
		log.WithField("addr", fmt.Sprintf("http://localhost:%d/graphql", port)).Info("server listening")
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Info("server stopped")
	}

	return nil
}

// requestLogger logs one line per request with method, path, and duration.
func requestLogger(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

var graphiqlPage = []byte(`
<!DOCTYPE html>
<html>
	<head>
		<title>Catnip GraphQL</title>
		<link href="https://cdnjs.cloudflare.com/ajax/libs/graphiql/3.0.6/graphiql.min.css" rel="stylesheet" />
		<script src="https://cdnjs.cloudflare.com/ajax/libs/react/18.2.0/umd/react.production.min.js"></script>
		<script src="https://cdnjs.cloudflare.com/ajax/libs/react-dom/18.2.0/umd/react-dom.production.min.js"></script>
		<script src="https://cdnjs.cloudflare.com/ajax/libs/graphiql/3.0.6/graphiql.min.js"></script>
	</head>
	<body style="width: 100%; height: 100%; margin: 0; overflow: hidden;">
		<div id="graphiql" style="height: 100vh;">Loading...</div>
		<script>
			const fetcher = GraphiQL.createFetcher({ url: "/graphql" });
			ReactDOM.createRoot(document.getElementById("graphiql")).render(
				React.createElement(GraphiQL, { fetcher: fetcher })
			);
		</script>
	</body>
</html>
`)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (defaults to the configured port)")
	rootCmd.AddCommand(serveCmd)
}
