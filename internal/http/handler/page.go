package handler

import (
	"bytes"
	"embed"
	"html/template"

	"postboard/internal/controller"
	"postboard/internal/model"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

type pageData struct {
	State   controller.State
	Visible []model.Post
}

func renderPage(st controller.State, pageSize int) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, pageData{State: st, Visible: st.Visible(pageSize)})
	return buf.Bytes(), err
}
