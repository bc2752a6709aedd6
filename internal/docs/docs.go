// Package docs serves the OpenAPI descriptor of the HTTP API and a Swagger
// UI page that renders it.
package docs

import (
	_ "embed"
	"net/http"
)

//go:embed swagger.json
var swaggerJSON []byte

const (
	// Path is where the Swagger UI page is mounted.
	Path = "/api-docs"
	// SpecPath is where the raw descriptor is served.
	SpecPath = Path + "/swagger.json"

	uiCDN = "https://unpkg.com/swagger-ui-dist@5"
)

var uiPage = []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Library API</title>
  <link rel="stylesheet" href="` + uiCDN + `/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="` + uiCDN + `/swagger-ui-bundle.js"></script>
  <script src="` + Path + `/init.js"></script>
</body>
</html>
`)

var initScript = []byte(`window.ui = SwaggerUIBundle({ url: "` + SpecPath + `", dom_id: "#swagger-ui" });
`)

// Spec returns a copy of the embedded descriptor.
func Spec() []byte {
	return append([]byte(nil), swaggerJSON...)
}

// SpecHandler serves the descriptor as JSON.
func SpecHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(swaggerJSON)
}

// UIHandler serves the Swagger UI page. The page loads its assets from a
// CDN, so the default content security policy is relaxed for it.
func UIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' "+uiCDN+"; style-src 'self' "+uiCDN+"; img-src 'self' data:")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(uiPage)
}

// InitScriptHandler serves the script that points the UI at SpecPath.
func InitScriptHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = w.Write(initScript)
}
