package controllers

import (
	"net/http"

	"marketing-tracker/services"
)

func ListCampaigns(svc *services.CampaignService) http.HandlerFunc {
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

func NewCampaignForm(svc *services.CampaignService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		contracts, err := svc.Contracts()
		if err != nil {
			serviceError(rw, err)
			return
		}
		formResponse(rw, map[string]interface{}{
			"campaign":  nil,
			"contracts": contracts,
		})
	}
}

func CreateCampaign(svc *services.CampaignService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		_, err := svc.Create(r.FormValue("name"), formUint(r, "contract_id"), r.FormValue("description"))
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, "/campaigns", http.StatusSeeOther)
	}
}

func EditCampaignForm(svc *services.CampaignService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			serviceError(rw, err)
			return
		}
		campaign, err := svc.Get(id)
		if err != nil {
			serviceError(rw, err)
			return
		}
		contracts, err := svc.Contracts()
		if err != nil {
			serviceError(rw, err)
			return
		}
		formResponse(rw, map[string]interface{}{
			"campaign":  campaign,
			"contracts": contracts,
		})
	}
}

func UpdateCampaign(svc *services.CampaignService) http.HandlerFunc {
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
		_, err = svc.Update(id, r.FormValue("name"), formUint(r, "contract_id"), r.FormValue("description"))
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, "/campaigns", http.StatusSeeOther)
	}
}
