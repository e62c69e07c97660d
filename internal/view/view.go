// Package view рендерит HTML-страницу со списком активных пользователей и формой регистрации.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/magabrotheeeer/active-users/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// UserRow строка таблицы активных пользователей.
type UserRow struct {
	Username    string
	Amount      string
	ExitAddress string
	ExpiresAt   string
}

// IndexPage данные главной страницы.
type IndexPage struct {
	Users []UserRow
}

// NewIndexPage собирает данные страницы из регистраций, сохраняя их порядок.
func NewIndexPage(regs []models.Registration) IndexPage {
	rows := make([]UserRow, 0, len(regs))
	for _, reg := range regs {
		rows = append(rows, UserRow{
			Username:    reg.Username,
			Amount:      reg.Amount,
			ExitAddress: reg.ExitAddress,
			ExpiresAt:   reg.ExpiresAt.UTC().Format(time.RFC1123),
		})
	}
	return IndexPage{Users: rows}
}

// RenderIndex пишет главную страницу в w.
// Шаблон исполняется в буфер, чтобы при ошибке не отдать клиенту половину страницы.
func RenderIndex(w io.Writer, page IndexPage) error {
	const op = "view.RenderIndex"

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, page); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
