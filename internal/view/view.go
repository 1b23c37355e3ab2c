package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/VladKvetkin/pedidos/internal/entities"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parse templates: %w", err)
	}

	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Index(w io.Writer) error {
	return r.execute(w, "index.html", nil)
}

func (r *Renderer) OrderReceived(w io.Writer, orderID int64) error {
	return r.execute(w, "pedido_recibido.html", struct{ OrderID int64 }{orderID})
}

func (r *Renderer) Admin(w io.Writer, orders []entities.Order, key string) error {
	return r.execute(w, "admin.html", struct {
		Orders []entities.Order
		Key    string
	}{orders, key})
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("error execute template %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
