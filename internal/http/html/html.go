// Package html contains code relating specifically to the admin web UI.
package html

import (
	"html/template"
	"net/http"

	"github.com/a-h/templ"
)

const errorTemplateContent = `
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>error | chisel</title>
  <style>
  pre {
  	margin: auto;
	width: 60%;
	max-width: 72em;
	white-space: pre-wrap;
	border-style: solid;
	border-width: 1px;
	padding: 1em;
	}
  </style>
</head>
<body>
  <pre>{{ . }}</pre>
</body>

</html>
`

var errorTemplate = template.Must(template.New("error").Parse(errorTemplateContent))

// Render a templ component. Wraps the upstream templ handler so that every
// fragment is rendered with the same error handling.
func Render(c templ.Component, w http.ResponseWriter, r *http.Request, options ...func(*templ.ComponentHandler)) {
	errHandler := templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Error(w, err.Error(), http.StatusInternalServerError)
		})
	})
	templ.Handler(c, append(options, errHandler)...).ServeHTTP(w, r)
}

// Error sends an error notice to the user with the given http code.
func Error(w http.ResponseWriter, err string, code int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	errorTemplate.Execute(w, err)
}
