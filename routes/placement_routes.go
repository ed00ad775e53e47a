package routes

import (
	"github.com/gorilla/mux"

	"marketing-tracker/controllers"
	"marketing-tracker/services"
)

func PlacementRoutes(router *mux.Router, placements *services.PlacementService) {
	router.HandleFunc("/placements", controllers.ListPlacements(placements)).Methods("GET")
	router.HandleFunc("/placements/create", controllers.NewPlacementForm(placements)).Methods("GET")
	router.HandleFunc("/placements/create", controllers.CreatePlacement(placements)).Methods("POST")
	router.HandleFunc("/placements/{id:[0-9]+}/edit", controllers.EditPlacementForm(placements)).Methods("GET")
	router.HandleFunc("/placements/{id:[0-9]+}/edit", controllers.UpdatePlacement(placements)).Methods("POST")
}
