// Пакет interfaces описывает контракты логирования, на которые опираются
// остальные пакеты модуля. Конкретная реализация (zerolog) живет в pkg/logger,
// а потребители принимают самый узкий интерфейс, который им нужен:
//
//   - BasicLogger - совместим со стандартным log.Logger;
//   - SimpleLogger - уровни Info/Warn/Error/Debug и их форматированные версии;
//   - Logger - SimpleLogger плюс поля контекста (WithFields).
//
// Пример:
//
//	type Provider struct {
//	    log interfaces.SimpleLogger
//	}
package interfaces
