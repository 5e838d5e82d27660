package web

import (
	"encoding/json"
	"net/http"

	"ocorrenciaapp/internal/infrastructure/logger"

	"github.com/gorilla/mux"
)

// HandleGetOptions отдает документ опций выпадающих списков
func (app *WebApp) HandleGetOptions(w http.ResponseWriter, r *http.Request) {
	locale := mux.Vars(r)["locale"]

	doc, err := app.source.Document(r.Context())
	if err != nil {
		logger.Error("(" + r.RemoteAddr + ") HandleGetOptions. Не удалось получить опции: " + err.Error())
		http.Error(w, "Не удалось получить опции", http.StatusInternalServerError)
		return
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		logger.Error("(" + r.RemoteAddr + ") HandleGetOptions. Ошибка во время маршалинга JSON: " + err.Error())
		http.Error(w, "Ошибка во время маршалинга JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(jsonData)
	logger.Debugf("(%s) HandleGetOptions. Опции отданы, локаль %q", r.RemoteAddr, locale)
}
