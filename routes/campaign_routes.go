package routes

import (
	"github.com/gorilla/mux"

	"marketing-tracker/controllers"
	"marketing-tracker/services"
)

func CampaignRoutes(router *mux.Router, campaigns *services.CampaignService) {
	router.HandleFunc("/campaigns", controllers.ListCampaigns(campaigns)).Methods("GET")
	router.HandleFunc("/campaigns/create", controllers.NewCampaignForm(campaigns)).Methods("GET")
	router.HandleFunc("/campaigns/create", controllers.CreateCampaign(campaigns)).Methods("POST")
	router.HandleFunc("/campaigns/{id:[0-9]+}/edit", controllers.EditCampaignForm(campaigns)).Methods("GET")
	router.HandleFunc("/campaigns/{id:[0-9]+}/edit", controllers.UpdateCampaign(campaigns)).Methods("POST")
}
