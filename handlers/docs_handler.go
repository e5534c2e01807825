package handlers

import (
	"html/template"
	"log"
	"net/http"
)

// DocHandler serves the static legal pages linked from the bot and the app.
type DocHandler struct {
	contactEmail string
}

func NewDocHandler(contactEmail string) *DocHandler {
	return &DocHandler{contactEmail: contactEmail}
}

type docSection struct {
	Heading    string
	Paragraphs []string
	Items      []string
}

type docPage struct {
	Title    string
	Updated  string
	Intro    string
	Sections []docSection
	Contact  string
}

var docTemplate = template.Must(template.New("doc").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{.Title}} - MisterMo</title>
	<style>
		body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; background-color: #f9f9f9; }
		.container { background-color: #fff; padding: 40px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
		h1 { color: #2c3e50; border-bottom: 2px solid #eee; padding-bottom: 10px; }
		h2 { color: #34495e; margin-top: 30px; }
		.date { color: #7f8c8d; font-style: italic; margin-bottom: 20px; }
		.contact { background-color: #e8f4f8; padding: 15px; border-radius: 5px; margin-top: 30px; }
	</style>
</head>
<body>
	<div class="container">
		<h1>{{.Title}}</h1>
		<div class="date">Last updated: {{.Updated}}</div>
		<p>{{.Intro}}</p>
		{{range $i, $s := .Sections}}
		<h2>{{$s.Heading}}</h2>
		{{range $s.Paragraphs}}<p>{{.}}</p>{{end}}
		{{if $s.Items}}<ul>{{range $s.Items}}<li>{{.}}</li>{{end}}</ul>{{end}}
		{{end}}
		{{if .Contact}}
		<div class="contact">Questions? Write to <strong><a href="mailto:{{.Contact}}">{{.Contact}}</a></strong></div>
		{{end}}
	</div>
</body>
</html>
`))

const docsUpdated = "October 1, 2026"

func (h *DocHandler) ServePrivacyPolicy(w http.ResponseWriter, r *http.Request) {
	h.render(w, docPage{
		Title:   "Privacy Policy",
		Updated: docsUpdated,
		Intro:   "MisterMo is a Telegram mini app for following the Morachkovsky daily schedule and tracking your progress. This page explains which data we keep and why.",
		Sections: []docSection{
			{
				Heading: "1. Information We Collect",
				Items: []string{
					"Your Telegram id, username and name, as sent by Telegram when you open the app.",
					"Daily progress you enter: weight, water, calories, steps, completed tasks and body measurements.",
					"Your onboarding questionnaire answers, including the health questions.",
				},
			},
			{
				Heading: "2. How We Use Your Information",
				Items: []string{
					"To show your schedule, progress and weight change over time.",
					"To unlock content that belongs to your subscription tier.",
					"To let the MisterMo team prepare your personal programme from your questionnaire.",
				},
			},
			{
				Heading:    "3. Sharing Your Information",
				Paragraphs: []string{"We do not sell your data. Questionnaire answers are shared only with the MisterMo team through a private spreadsheet."},
			},
			{
				Heading:    "4. Data Storage and Security",
				Paragraphs: []string{"Data is stored in our database and on your device. Sessions are signed and expire."},
			},
			{
				Heading:    "5. Your Rights",
				Paragraphs: []string{"You can ask us to export or delete your data at any time using the contact below."},
			},
		},
		Contact: h.contactEmail,
	})
}

func (h *DocHandler) ServeTermsOfService(w http.ResponseWriter, r *http.Request) {
	h.render(w, docPage{
		Title:   "Terms of Service",
		Updated: docsUpdated,
		Intro:   "By using MisterMo you agree to these terms.",
		Sections: []docSection{
			{
				Heading:    "1. Not Medical Advice",
				Paragraphs: []string{"The schedule, supplements and materials are general guidance. Talk to a doctor before changing your diet, fasting or taking supplements."},
			},
			{
				Heading: "2. Subscriptions",
				Items: []string{
					"Basic gives you the daily schedule and trackers.",
					"Advanced and Premium unlock additional books, videos and dashboard panels.",
				},
			},
			{
				Heading:    "3. Content",
				Paragraphs: []string{"Books, videos and downloads are for your personal use and may not be redistributed."},
			},
		},
		Contact: h.contactEmail,
	})
}

func (h *DocHandler) render(w http.ResponseWriter, page docPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := docTemplate.Execute(w, page); err != nil {
		log.Printf("Doc Handler: failed to render %s: %v", page.Title, err)
	}
}
