package view

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"go-inventory-web/internal/model"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Engine builds the HTML template engine from the embedded templates.
func Engine() *html.Engine {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("money", func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	})
	engine.AddFunc("date", func(t model.Timestamp) string {
		if t.Time.IsZero() {
			return "-"
		}
		return t.Time.Format("1/2/2006")
	})
	return engine
}

// Static exposes the embedded static assets rooted at "static".
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
