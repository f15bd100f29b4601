// internal/event/types.go
package event

const (
	ParamsChanged EventType = "ParamsChanged" // параметры доски изменились
	LayoutReady   EventType = "LayoutReady"   // раскладка пересчитана
	LayoutFailed  EventType = "LayoutFailed"  // параметры отклонены движком
	BoardExported EventType = "BoardExported" // SVG записан в файл или буфер обмена
)
