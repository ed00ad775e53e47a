package controllers

import (
	"net/http"

	"marketing-tracker/models"
	"marketing-tracker/responses"
	"marketing-tracker/services"
)

func ListPrograms(svc *services.ProgramService) http.HandlerFunc {
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

// ProgramTargetLists backs the target-list picker on program forms. With
// all=1 it returns every list; otherwise it narrows to the lists eligible
// for the campaign's contract, force-including current_tl_id so an already
// selected value stays visible. Without a campaign_id it returns an empty
// array rather than an error.
func ProgramTargetLists(svc *services.ProgramService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("all") == "1" {
			all, err := svc.AllTargetLists()
			if err != nil {
				serviceError(rw, err)
				return
			}
			writeJSON(rw, http.StatusOK, labelOptions(all))
			return
		}

		campaignID := queryUint(r, "campaign_id")
		if campaignID == 0 {
			writeJSON(rw, http.StatusOK, []responses.LabelOption{})
			return
		}

		eligible, err := svc.EligibleTargetLists(campaignID, queryUint(r, "current_tl_id"))
		if err != nil {
			serviceError(rw, err)
			return
		}
		writeJSON(rw, http.StatusOK, labelOptions(eligible))
	}
}

func NewProgramForm(svc *services.ProgramService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		campaigns, err := svc.Campaigns()
		if err != nil {
			serviceError(rw, err)
			return
		}
		tls, err := svc.AllTargetLists()
		if err != nil {
			serviceError(rw, err)
			return
		}
		formResponse(rw, map[string]interface{}{
			"program":      nil,
			"campaigns":    campaigns,
			"target_lists": labelOptions(tls),
		})
	}
}

func CreateProgram(svc *services.ProgramService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		_, err := svc.Create(programInput(r))
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, "/programs", http.StatusSeeOther)
	}
}

// EditProgramForm preloads the eligible target lists for the program's
// campaign so the picker opens with valid choices.
func EditProgramForm(svc *services.ProgramService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			serviceError(rw, err)
			return
		}
		program, err := svc.Get(id)
		if err != nil {
			serviceError(rw, err)
			return
		}
		campaigns, err := svc.Campaigns()
		if err != nil {
			serviceError(rw, err)
			return
		}

		var currentTLID uint
		if program.TargetListID != nil {
			currentTLID = *program.TargetListID
		}
		eligible, err := svc.EligibleTargetLists(program.CampaignID, currentTLID)
		if err != nil {
			serviceError(rw, err)
			return
		}
		formResponse(rw, map[string]interface{}{
			"program":      program,
			"campaigns":    campaigns,
			"target_lists": labelOptions(eligible),
		})
	}
}

func UpdateProgram(svc *services.ProgramService) http.HandlerFunc {
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
		_, err = svc.Update(id, programInput(r))
		if err != nil {
			serviceError(rw, err)
			return
		}
		if next := r.FormValue("next"); next != "" {
			http.Redirect(rw, r, next, http.StatusSeeOther)
			return
		}
		http.Redirect(rw, r, "/programs", http.StatusSeeOther)
	}
}

func labelOptions(tls []models.TargetList) []responses.LabelOption {
	options := make([]responses.LabelOption, 0, len(tls))
	for _, tl := range tls {
		options = append(options, responses.LabelOption{ID: tl.ID, Label: tl.Label})
	}
	return options
}

func programInput(r *http.Request) services.ProgramInput {
	return services.ProgramInput{
		Name:         r.FormValue("name"),
		CampaignID:   formUint(r, "campaign_id"),
		TargetListID: formUintPtr(r, "target_list_id"),
		Platform:     r.FormValue("platform"),
		AssetID:      r.FormValue("asset_id"),
	}
}
