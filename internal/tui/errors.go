// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-chat-messenger/internal/request"

func errorText(err *request.Error) string {
	if err == nil {
		return ""
	}

	switch err.Kind {
	case request.KindNetwork:
		return "Отсутствует сеть или Сервер недоступен"
	case request.KindAuth:
		return "Доступ запрещён: " + err.Message
	case request.KindServer:
		return "Ошибка сервера: " + err.Message
	default:
		return err.Message
	}
}
