package controllers

import (
	"net/http"

	"marketing-tracker/services"
)

// uploadFormMemory bounds the multipart parse buffer; larger files spill
// to temp files. The overall body cap is enforced by the server.
const uploadFormMemory = 32 << 20

func ListTargetLists(svc *services.TargetListService) http.HandlerFunc {
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

func UploadTargetListForm() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		formResponse(rw, map[string]interface{}{"target_list": nil})
	}
}

// UploadTargetList stores the file in the object store first and only then
// records the row; a failed commit can orphan the stored object, which is
// accepted.
func UploadTargetList(svc *services.TargetListService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(uploadFormMemory); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		defer file.Close()

		_, err = svc.Upload(r.Context(), file, services.UploadInput{
			Label:     r.FormValue("label"),
			Filename:  header.Filename,
			SizeBytes: header.Size,
			PharmaIDs: formUintList(r, "pharma_ids"),
			BrandIDs:  formUintList(r, "brand_ids"),
		})
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, "/target-lists", http.StatusSeeOther)
	}
}

func EditTargetListForm(svc *services.TargetListService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			serviceError(rw, err)
			return
		}
		tl, err := svc.Get(id)
		if err != nil {
			serviceError(rw, err)
			return
		}
		formResponse(rw, map[string]interface{}{"target_list": tl})
	}
}

func UpdateTargetList(svc *services.TargetListService) http.HandlerFunc {
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
		_, err = svc.Update(id, r.FormValue("label"), formUintList(r, "pharma_ids"), formUintList(r, "brand_ids"))
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, "/target-lists", http.StatusSeeOther)
	}
}

// DownloadTargetList redirects to a time-limited signed URL for the stored
// file.
func DownloadTargetList(svc *services.TargetListService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			serviceError(rw, err)
			return
		}
		url, err := svc.DownloadURL(r.Context(), id, services.DefaultDownloadTTL)
		if err != nil {
			serviceError(rw, err)
			return
		}
		http.Redirect(rw, r, url, http.StatusFound)
	}
}
