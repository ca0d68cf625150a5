package controllers

import (
	"net/http"

	"tuition-calculator/models"
	"tuition-calculator/utils"
)

// LookupController handles /lookup submissions.
type LookupController struct{}

// Lookup fetches the stored tuition record for an exact (first name, last
// name) match and renders it. A name pair with no stored record deliberately
// reads as a database error, not a "not found" page.
func (lc LookupController) Lookup(state *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			utils.RenderError(w, "Error while parsing form: "+err.Error())
			return
		}

		req, err := models.ParseLookupForm(r.PostForm)
		if err != nil {
			utils.RenderError(w, err.Error())
			return
		}

		var record models.UserTuition
		err = state.DB.QueryRow(
			`SELECT FirstName, LastName, TuitionCost FROM UserTuition WHERE FirstName = ? AND LastName = ?`,
			req.FirstName, req.LastName,
		).Scan(&record.FirstName, &record.LastName, &record.TuitionCost)
		if err != nil {
			utils.RenderError(w, "Error while accessing database: "+err.Error())
			return
		}

		utils.RenderLookup(w, utils.LookupView{
			Name:    record.FirstName + " " + record.LastName,
			Tuition: record.TuitionCost.StringFixed(2),
		})
	}
}
