package controllers

import (
	"net/http"

	"tuition-calculator/utils"
)

// PageController serves the static landing page and stylesheet.
type PageController struct{}

func (pc PageController) Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RenderIndex(w)
	}
}

func (pc PageController) Style() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RenderStyle(w)
	}
}
