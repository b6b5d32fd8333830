package routes

import (
	"fmt"
	"net/http"

	"HouseTelemetry.api/internal/controller"
	"github.com/gorilla/mux"
)

// SetupRouter defines all API routes.
func SetupRouter(controller *controller.TelemetryController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", controller.HandleIndex).Methods("GET")
	router.HandleFunc("/house", controller.HandleHouse).Methods("GET")

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}).Methods("GET")

	return router
}
