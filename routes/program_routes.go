package routes

import (
	"github.com/gorilla/mux"

	"marketing-tracker/controllers"
	"marketing-tracker/services"
)

func ProgramRoutes(router *mux.Router, programs *services.ProgramService) {
	router.HandleFunc("/programs", controllers.ListPrograms(programs)).Methods("GET")
	router.HandleFunc("/programs/api/target-lists", controllers.ProgramTargetLists(programs)).Methods("GET")
	router.HandleFunc("/programs/create", controllers.NewProgramForm(programs)).Methods("GET")
	router.HandleFunc("/programs/create", controllers.CreateProgram(programs)).Methods("POST")
	router.HandleFunc("/programs/{id:[0-9]+}/edit", controllers.EditProgramForm(programs)).Methods("GET")
	router.HandleFunc("/programs/{id:[0-9]+}/edit", controllers.UpdateProgram(programs)).Methods("POST")
}
