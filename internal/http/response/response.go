// Package response содержит вспомогательные типы и функции для формирования
// ответов HTTP-обработчиков: JSON-конверт для служебных эндпоинтов
// и текстовые сообщения для пользователей формы.
package response

import (
	"net/http"

	"github.com/go-chi/render"
)

// Response описывает стандартную структуру JSON-ответа сервера.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// Message отвечает пользователю простым текстом с кодом 200.
// Так форма получает сообщение об ошибке проверки.
func Message(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusOK)
	render.PlainText(w, r, msg)
}
