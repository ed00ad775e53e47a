package controllers

import (
	"fmt"
	"net/http"

	"marketing-tracker/services"
)

func ListClients(svc *services.ClientService) http.HandlerFunc {
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

func NewClientForm() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		formResponse(rw, map[string]interface{}{
			"client":        nil,
			"mapped_brands": []interface{}{},
		})
	}
}

func CreateClient(svc *services.ClientService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		_, err := svc.Create(r.FormValue("name"), r.FormValue("notes"), r.FormValue("default_brands"))
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, "/clients", http.StatusSeeOther)
	}
}

func EditClientForm(svc *services.ClientService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			serviceError(rw, err)
			return
		}
		client, err := svc.Get(id)
		if err != nil {
			serviceError(rw, err)
			return
		}

		data := map[string]interface{}{
			"client":        client,
			"pharma_name":   nil,
			"mapped_brands": []interface{}{},
		}
		if pharma, err := svc.MappedPharma(client); err != nil {
			serviceError(rw, err)
			return
		} else if pharma != nil {
			data["pharma_name"] = pharma.Name
			data["mapped_brands"] = pharma.Brands
		}
		formResponse(rw, data)
	}
}

func UpdateClient(svc *services.ClientService) http.HandlerFunc {
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
		client, err := svc.Update(id, r.FormValue("name"), r.FormValue("notes"), r.FormValue("default_brands"))
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, fmt.Sprintf("/clients/%d/edit", client.ID), http.StatusSeeOther)
	}
}
