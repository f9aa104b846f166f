package http

import (
	_ "embed"
	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	websocketTransport "github.com/kahvecikaan/socialposts/internal/transport/websocket"
	"net/http"
)

//go:embed swagger.yaml
var swaggerSpec []byte

func NewRouter(
	ph *PostHandler,
	logger hclog.Logger,
	wsh *websocketTransport.Handler,
	corsConfig *CORSConfig,
) *mux.Router {
	router := mux.NewRouter()

	mw := NewMiddleware(logger, corsConfig)

	// Apply global middleware
	router.Use(handlers.RecoveryHandler(
		handlers.RecoveryLogger(logger.StandardLogger(&hclog.StandardLoggerOptions{ForceLevel: hclog.Error})),
		handlers.PrintRecoveryStack(true),
	))
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.CORSMiddleware)

	// JSON API, gzip compressed. The websocket route stays outside so the
	// connection can be hijacked.
	api := router.PathPrefix("/api").Subrouter()
	api.Use(mw.ContentTypeMiddleware)
	api.Use(handlers.CompressHandler)
	api.HandleFunc("/generate", ph.GeneratePosts).Methods("POST", "OPTIONS")
	api.HandleFunc("/description", ph.GenerateDescription).Methods("POST", "OPTIONS")
	api.HandleFunc("/options", ph.ListOptions).Methods("GET", "OPTIONS")

	router.HandleFunc("/ws", wsh.HandleWebSocket).Methods("GET")

	// Swagger specification and Redoc UI
	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(swaggerSpec)
	}).Methods("GET")

	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	swaggerHandler := middleware.Redoc(swaggerOpts, nil)
	router.Handle("/docs", swaggerHandler).Methods("GET")

	return router
}
