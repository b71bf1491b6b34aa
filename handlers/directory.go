package handlers

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/Loboo34/heliverse-api/utils"
)

var directoryTmpl = template.Must(template.New("directory").Parse(`<html>
  <head>
    <title>API Directory</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 0; padding: 0 20px; background-color: #f4f4f4; }
      h1 { background-color: #333; color: #fff; padding: 10px; text-align: center; }
      ul { list-style-type: none; padding: 0; }
      li { background-color: #fff; padding: 10px; margin: 5px 0; border-radius: 5px; box-shadow: 0 2px 5px rgba(0, 0, 0, 0.1); }
      li strong { color: #333; }
    </style>
  </head>
  <body>
    <h1>API Directory</h1>
    <ul>
{{- range .}}
      <li><strong>{{.Path}}</strong> - {{.Method}}: {{.Description}}</li>
{{- end}}
    </ul>
  </body>
</html>
`))

// Directory handles GET / with an HTML listing of the routes.
func (h *Handler) Directory(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := directoryTmpl.Execute(w, h.Routes()); err != nil {
		h.log.Error("render directory", zap.Error(err))
	}
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("store ping failed", zap.Error(err))
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
