package middlewarex

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the browser front end at origins to call the API.
func CORS(origins []string) func(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", HeaderTraceID},
		ExposedHeaders: []string{HeaderTraceID, "Content-Disposition"},
	}).Handler
}
