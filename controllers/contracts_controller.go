package controllers

import (
	"fmt"
	"net/http"

	"marketing-tracker/responses"
	"marketing-tracker/services"
)

func ListContracts(svc *services.ContractService) http.HandlerFunc {
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

// ViewContract aggregates a contract with its campaigns and, per campaign,
// its programs.
func ViewContract(svc *services.ContractService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			serviceError(rw, err)
			return
		}
		detail, err := svc.Detail(id)
		if err != nil {
			serviceError(rw, err)
			return
		}
		formResponse(rw, map[string]interface{}{
			"contract":             detail.Contract,
			"campaigns":            detail.Campaigns,
			"programs_by_campaign": detail.ProgramsByCampaign,
			"all_programs":         detail.AllPrograms,
		})
	}
}

// BrandsForPharma backs the cascading brand picker on contract forms.
func BrandsForPharma(svc *services.ContractService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		pharmaID, err := pathID(r, "pharmaID")
		if err != nil {
			serviceError(rw, err)
			return
		}
		brands, err := svc.BrandsForPharma(pharmaID)
		if err != nil {
			serviceError(rw, err)
			return
		}
		options := make([]responses.Option, 0, len(brands))
		for _, b := range brands {
			options = append(options, responses.Option{ID: b.ID, Name: b.Name})
		}
		writeJSON(rw, http.StatusOK, options)
	}
}

func NewContractForm(svc *services.ContractService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		pharmas, err := svc.Pharmas()
		if err != nil {
			serviceError(rw, err)
			return
		}
		formResponse(rw, map[string]interface{}{
			"contract": nil,
			"pharmas":  pharmas,
		})
	}
}

func CreateContract(svc *services.ContractService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		contract, err := svc.Create(contractInput(r))
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, fmt.Sprintf("/contracts/%d", contract.ID), http.StatusSeeOther)
	}
}

func EditContractForm(svc *services.ContractService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			serviceError(rw, err)
			return
		}
		contract, err := svc.Get(id)
		if err != nil {
			serviceError(rw, err)
			return
		}
		pharmas, err := svc.Pharmas()
		if err != nil {
			serviceError(rw, err)
			return
		}

		selected := make([]uint, 0, len(contract.Brands))
		for _, b := range contract.Brands {
			selected = append(selected, b.ID)
		}
		formResponse(rw, map[string]interface{}{
			"contract":        contract,
			"pharmas":         pharmas,
			"brands_selected": selected,
		})
	}
}

func UpdateContract(svc *services.ContractService) http.HandlerFunc {
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
		contract, err := svc.Update(id, contractInput(r))
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, fmt.Sprintf("/contracts/%d", contract.ID), http.StatusSeeOther)
	}
}

// ContractCreateCampaign is the nested create on the contract view.
func ContractCreateCampaign(contracts *services.ContractService, campaigns *services.CampaignService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		contract, ok := nestedContract(rw, r, contracts)
		if !ok {
			return
		}
		_, err := campaigns.Create(r.FormValue("name"), contract.ID, r.FormValue("description"))
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, fmt.Sprintf("/contracts/%d", contract.ID), http.StatusSeeOther)
	}
}

func ContractCreateProgram(contracts *services.ContractService, programs *services.ProgramService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		contract, ok := nestedContract(rw, r, contracts)
		if !ok {
			return
		}
		_, err := programs.Create(services.ProgramInput{
			Name:         r.FormValue("name"),
			CampaignID:   formUint(r, "campaign_id"),
			TargetListID: formUintPtr(r, "target_list_id"),
			Platform:     r.FormValue("platform"),
			AssetID:      r.FormValue("asset_id"),
		})
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, fmt.Sprintf("/contracts/%d", contract.ID), http.StatusSeeOther)
	}
}

func ContractCreatePlacement(contracts *services.ContractService, placements *services.PlacementService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		contract, ok := nestedContract(rw, r, contracts)
		if !ok {
			return
		}
		_, err := placements.Create(placementInput(r))
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, fmt.Sprintf("/contracts/%d", contract.ID), http.StatusSeeOther)
	}
}

// nestedContract resolves and parses a nested-create request; the contract
// must exist before anything is created under it.
func nestedContract(rw http.ResponseWriter, r *http.Request, contracts *services.ContractService) (*nestedTarget, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		serviceError(rw, err)
		return nil, false
	}
	contract, err := contracts.Get(id)
	if err != nil {
		serviceError(rw, err)
		return nil, false
	}
	if err := r.ParseForm(); err != nil {
		errorResponse(rw, err, http.StatusBadRequest)
		return nil, false
	}
	return &nestedTarget{ID: contract.ID}, true
}

type nestedTarget struct {
	ID uint
}

func contractInput(r *http.Request) services.ContractInput {
	return services.ContractInput{
		Name:       r.FormValue("name"),
		PharmaID:   formUint(r, "pharma_id"),
		PharmaName: r.FormValue("pharma"),
		BrandIDs:   formUintList(r, "brand_ids"),
		BrandsCSV:  r.FormValue("brands"),
		StartDate:  formDate(r, "start_date"),
		EndDate:    formDate(r, "end_date"),
	}
}
