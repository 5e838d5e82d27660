package web

import (
	"github.com/gorilla/mux"
)

// Маршрутизатор
func (app *WebApp) SetRoutes() *mux.Router {
	router := mux.NewRouter()

	// Ограничение количества запросов от одного IP
	router.Use(app.limiter.LimitMiddleware)

	router.HandleFunc("/options/", app.HandleGetOptions).Methods("GET")
	// Префикс локали i18n: /pt-br/options/, /en/options/
	router.HandleFunc("/{locale}/options/", app.HandleGetOptions).Methods("GET")

	return router
}
