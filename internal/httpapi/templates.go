package httpapi

import (
	"embed"
	"html/template"

	"github.com/dmitrymomot/waveshop/internal/catalog"
	"github.com/dmitrymomot/waveshop/internal/session"
)

//go:embed web
var webFS embed.FS

var indexTmpl = template.Must(template.ParseFS(webFS, "web/templates/index.html"))

type indexData struct {
	Products []catalog.Product
	Session  *session.Session
}
