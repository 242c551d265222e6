// Package repo загружает определения link и workflow из YAML файлов.
//
// Каждое определение лежит в отдельном файле <dir>/<name>.yaml, имя
// определения совпадает с именем файла. Каталог читается один раз при
// первом обращении (sync.Once), после чего определения только читаются.
// Отсутствующий каталог означает пустой набор определений.
package repo
