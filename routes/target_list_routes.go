package routes

import (
	"github.com/gorilla/mux"

	"marketing-tracker/controllers"
	"marketing-tracker/services"
)

func TargetListRoutes(router *mux.Router, targetLists *services.TargetListService) {
	router.HandleFunc("/target-lists", controllers.ListTargetLists(targetLists)).Methods("GET")
	router.HandleFunc("/target-lists/upload", controllers.UploadTargetListForm()).Methods("GET")
	router.HandleFunc("/target-lists/upload", controllers.UploadTargetList(targetLists)).Methods("POST")
	router.HandleFunc("/target-lists/{id:[0-9]+}/edit", controllers.EditTargetListForm(targetLists)).Methods("GET")
	router.HandleFunc("/target-lists/{id:[0-9]+}/edit", controllers.UpdateTargetList(targetLists)).Methods("POST")
	router.HandleFunc("/target-lists/{id:[0-9]+}/download", controllers.DownloadTargetList(targetLists)).Methods("GET")
}
