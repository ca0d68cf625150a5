package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"tuition-calculator/models"
	"tuition-calculator/utils"
)

// TuitionController handles /calculate submissions.
type TuitionController struct{}

// Calculate validates the submitted form, prices the tuition from the rate
// tables, stores the result for the student (insert on first calculation,
// update afterwards) and renders the breakdown.
func (tc TuitionController) Calculate(state *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			utils.RenderError(w, "Error while parsing form: "+err.Error())
			return
		}

		req, err := models.ParseTuitionForm(r.PostForm)
		if err != nil {
			utils.RenderError(w, err.Error())
			return
		}

		db := state.DB

		// Rate row for the validated (studies, residency) pair. Zero rows is
		// a database error here, not a pricing decision.
		var rates models.TuitionRates
		err = db.QueryRow(
			`SELECT CreditsCost, NonresidencyFee FROM CreditCosts WHERE Studies = ? AND Residency = ?`,
			string(req.StudentStudies), string(req.StudentType),
		).Scan(&rates.CreditsCost, &rates.NonresidencyFee)
		if err != nil {
			utils.RenderError(w, "Error while accessing database: "+err.Error())
			return
		}

		// The orientation fee applies only when the box was ticked.
		orientationFee := decimal.Zero
		if req.Orientation {
			var fee models.OrientationFee
			if err := db.QueryRow(`SELECT Fee FROM orientation_fee`).Scan(&fee.Fee); err != nil {
				utils.RenderError(w, "Error while accessing database: "+err.Error())
				return
			}
			orientationFee = fee.Fee
		}

		total := models.TotalTuition(rates, orientationFee, req.NumCredits)
		log.Infof("The total tuition cost is $%s", total.StringFixed(2))

		// See if a record already exists. Any fetch failure counts as absent;
		// a genuine database fault then surfaces on the write below.
		var firstName, lastName string
		err = db.QueryRow(
			`SELECT FirstName, LastName FROM UserTuition WHERE FirstName = ? AND LastName = ?`,
			req.FirstName, req.LastName,
		).Scan(&firstName, &lastName)
		userExists := err == nil

		if !userExists {
			_, err = db.Exec(
				`INSERT INTO UserTuition (FirstName, LastName, TuitionCost) VALUES (?, ?, ?)`,
				req.FirstName, req.LastName, total,
			)
			if err != nil {
				utils.RenderError(w, "Error while inserting to the database: "+err.Error())
				return
			}
		} else {
			_, err = db.Exec(
				`UPDATE UserTuition SET TuitionCost = ? WHERE FirstName = ? AND LastName = ?`,
				total, req.FirstName, req.LastName,
			)
			if err != nil {
				utils.RenderError(w, "Error while updating the database: "+err.Error())
				return
			}
		}

		utils.RenderResults(w, utils.ResultsView{
			Name:            req.FirstName + " " + req.LastName,
			Residency:       req.StudentType.Label(),
			Studies:         req.StudentStudies.Label(),
			NewStudent:      yesNo(req.NewStudent),
			OrientationFee:  orientationFee.StringFixed(2),
			NonresidencyFee: rates.NonresidencyFee.StringFixed(2),
			NumCredits:      req.NumCredits,
			CreditsCost:     rates.CreditsCost.StringFixed(2),
			Total:           total.StringFixed(2),
		})
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
