package routes

import (
	"github.com/gorilla/mux"

	"marketing-tracker/controllers"
	"marketing-tracker/services"
)

func ClientRoutes(router *mux.Router, clients *services.ClientService) {
	router.HandleFunc("/clients", controllers.ListClients(clients)).Methods("GET")
	router.HandleFunc("/clients/create", controllers.NewClientForm()).Methods("GET")
	router.HandleFunc("/clients/create", controllers.CreateClient(clients)).Methods("POST")
	router.HandleFunc("/clients/{id:[0-9]+}/edit", controllers.EditClientForm(clients)).Methods("GET")
	router.HandleFunc("/clients/{id:[0-9]+}/edit", controllers.UpdateClient(clients)).Methods("POST")
}
