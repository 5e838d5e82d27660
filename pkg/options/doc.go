// Пакет options кэширует документ опций для выпадающих списков формы ocorrência
// (системы по областям, проблемы по системам и по областям).
//
// Документ запрашивается один раз, лениво, при первом обращении:
//
//	provider := options.NewProvider(
//	    options.WithBaseURL("https://suporte.example.com"),
//	    options.WithPagePath("/pt-br/ocorrencia/"),
//	)
//	provider.OnReady(func() {
//	    fill(provider.SistemaOptions("immo"))
//	})
//
// До загрузки методы доступа возвращают пустые списки.
package options
