package utils

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"
)

//go:embed htdoc
var htdoc embed.FS

var (
	indexPage  = mustRead("htdoc/index.html")
	errorPage  = mustRead("htdoc/error.html")
	styleSheet = mustRead("htdoc/style.css")

	resultsTmpl = template.Must(template.ParseFS(htdoc, "htdoc/results.html"))
	lookupTmpl  = template.Must(template.ParseFS(htdoc, "htdoc/lookup.html"))
)

func mustRead(name string) []byte {
	data, err := htdoc.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// ResultsView is the data behind the calculation confirmation page. Money
// fields are preformatted strings; the template only prints them.
type ResultsView struct {
	Name            string
	Residency       string
	Studies         string
	NewStudent      string
	OrientationFee  string
	NonresidencyFee string
	NumCredits      uint8
	CreditsCost     string
	Total           string
}

// LookupView is the data behind the stored-tuition page.
type LookupView struct {
	Name    string
	Tuition string
}

// RenderHTML writes an HTML response with the canonical content type.
func RenderHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(body); err != nil {
		log.Println("Error writing response:", err)
	}
}

// RenderError logs the diagnostic for the operator and answers with the
// generic error page. The status stays 200 and the page carries no detail:
// users see the same page for every logical failure, operators read the log.
func RenderError(w http.ResponseWriter, diagnostic string) {
	log.Error(diagnostic)
	RenderHTML(w, errorPage)
}

// RenderIndex serves the landing page with the calculation and lookup forms.
func RenderIndex(w http.ResponseWriter) {
	RenderHTML(w, indexPage)
}

// RenderStyle serves the stylesheet.
func RenderStyle(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/css")
	if _, err := w.Write(styleSheet); err != nil {
		log.Println("Error writing stylesheet:", err)
	}
}

// RenderResults serves the calculation confirmation page.
func RenderResults(w http.ResponseWriter, view ResultsView) {
	render(w, resultsTmpl, view)
}

// RenderLookup serves the stored-tuition page.
func RenderLookup(w http.ResponseWriter, view LookupView) {
	render(w, lookupTmpl, view)
}

func render(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		RenderError(w, "Error while rendering view: "+err.Error())
		return
	}
	RenderHTML(w, buf.Bytes())
}
