// Package dispatch отправляет сообщение link по всем его каналам.
//
// Dispatcher ищет определение link, разрешает параметры, подставляет их
// в шаблон сообщения и последовательно отправляет результат через каждый
// канал в порядке объявления. Первая ошибка канала прерывает отправку:
// оставшиеся каналы не вызываются.
package dispatch
