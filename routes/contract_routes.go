package routes

import (
	"github.com/gorilla/mux"

	"marketing-tracker/controllers"
	"marketing-tracker/services"
)

func ContractRoutes(
	router *mux.Router,
	contracts *services.ContractService,
	campaigns *services.CampaignService,
	programs *services.ProgramService,
	placements *services.PlacementService,
) {
	router.HandleFunc("/contracts", controllers.ListContracts(contracts)).Methods("GET")
	router.HandleFunc("/contracts/api/brands/{pharmaID:[0-9]+}", controllers.BrandsForPharma(contracts)).Methods("GET")
	router.HandleFunc("/contracts/create", controllers.NewContractForm(contracts)).Methods("GET")
	router.HandleFunc("/contracts/create", controllers.CreateContract(contracts)).Methods("POST")
	router.HandleFunc("/contracts/{id:[0-9]+}", controllers.ViewContract(contracts)).Methods("GET")
	router.HandleFunc("/contracts/{id:[0-9]+}/edit", controllers.EditContractForm(contracts)).Methods("GET")
	router.HandleFunc("/contracts/{id:[0-9]+}/edit", controllers.UpdateContract(contracts)).Methods("POST")

	// nested creates on the contract view
	router.HandleFunc("/contracts/{id:[0-9]+}/create-campaign", controllers.ContractCreateCampaign(contracts, campaigns)).Methods("POST")
	router.HandleFunc("/contracts/{id:[0-9]+}/create-program", controllers.ContractCreateProgram(contracts, programs)).Methods("POST")
	router.HandleFunc("/contracts/{id:[0-9]+}/create-placement", controllers.ContractCreatePlacement(contracts, placements)).Methods("POST")
}
