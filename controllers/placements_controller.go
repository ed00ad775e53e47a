package controllers

import (
	"net/http"

	"marketing-tracker/services"
)

func ListPlacements(svc *services.PlacementService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		page, perPage, q := getPage(r), getPerPage(r), getQuery(r)
		rows, total, err := svc.List(page, perPage, q)
		if err != nil {
			serviceError(rw, err)
			return
		}
		listResponse(rw, rows, total, page, perPage, q)
	}
}

func NewPlacementForm(svc *services.PlacementService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		programs, err := svc.Programs()
		if err != nil {
			serviceError(rw, err)
			return
		}
		formResponse(rw, map[string]interface{}{
			"placement":            nil,
			"programs":             programs,
			"selected_program_ids": []uint{},
		})
	}
}

func CreatePlacement(svc *services.PlacementService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		_, err := svc.Create(placementInput(r))
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, "/placements", http.StatusSeeOther)
	}
}

func EditPlacementForm(svc *services.PlacementService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			serviceError(rw, err)
			return
		}
		placement, err := svc.Get(id)
		if err != nil {
			serviceError(rw, err)
			return
		}
		programs, err := svc.Programs()
		if err != nil {
			serviceError(rw, err)
			return
		}

		selected := make([]uint, 0, len(placement.Programs))
		for _, p := range placement.Programs {
			selected = append(selected, p.ID)
		}
		formResponse(rw, map[string]interface{}{
			"placement":            placement,
			"programs":             programs,
			"selected_program_ids": selected,
		})
	}
}

func UpdatePlacement(svc *services.PlacementService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			serviceError(rw, err)
			return
		}
		if err := r.ParseForm(); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		_, err = svc.Update(id, placementInput(r))
		if err != nil {
			serviceError(rw, err)
			return
		}
		if next := r.FormValue("next"); next != "" {
			http.Redirect(rw, r, next, http.StatusSeeOther)
			return
		}
		http.Redirect(rw, r, "/placements", http.StatusSeeOther)
	}
}

func placementInput(r *http.Request) services.PlacementInput {
	return services.PlacementInput{
		Name:           r.FormValue("name"),
		ProgramIDs:     formUintList(r, "program_ids"),
		Channel:        r.FormValue("channel"),
		Status:         r.FormValue("status"),
		StartDate:      formDate(r, "start_date"),
		EndDate:        formDate(r, "end_date"),
		PlacementCode:  r.FormValue("placement_code"),
		Format:         r.FormValue("format"),
		FrequencyCap:   formIntPtr(r, "frequency_cap"),
		AdServer:       r.FormValue("ad_server"),
		ImpressionGoal: formInt64Ptr(r, "impression_goal"),
		ClickGoal:      formInt64Ptr(r, "click_goal"),
	}
}
