package repo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// catalog хранит определения одного вида, загруженные из каталога.
type catalog[T any] struct {
	dir  string
	load func(name string, root *yaml.Node) (*T, error)

	once  sync.Once
	items map[string]*T
	names []string
	err   error
}

func newCatalog[T any](dir string, load func(name string, root *yaml.Node) (*T, error)) *catalog[T] {
	return &catalog[T]{dir: dir, load: load}
}

// ensure загружает каталог при первом вызове. Ошибка загрузки запоминается
// и возвращается при каждом следующем вызове.
func (c *catalog[T]) ensure() error {
	c.once.Do(func() {
		c.items, c.names, c.err = c.loadAll()
	})
	return c.err
}

func (c *catalog[T]) get(name string) (*T, bool, error) {
	if err := c.ensure(); err != nil {
		return nil, false, err
	}
	item, ok := c.items[name]
	return item, ok, nil
}

func (c *catalog[T]) list() ([]*T, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.items[name])
	}
	return out, nil
}

func (c *catalog[T]) loadAll() (map[string]*T, []string, error) {
	items := make(map[string]*T)

	info, err := os.Stat(c.dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return items, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", c.dir, err)
	}

	files, err := filepath.Glob(filepath.Join(c.dir, "*.yaml"))
	if err != nil {
		return nil, nil, fmt.Errorf("list %s: %w", c.dir, err)
	}
	sort.Strings(files)

	names := make([]string, 0, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".yaml")

		root, err := readYAML(file)
		if err != nil {
			return nil, nil, err
		}

		item, err := c.load(name, root)
		if err != nil {
			return nil, nil, err
		}
		if item == nil {
			continue
		}

		items[name] = item
		names = append(names, name)
	}

	return items, names, nil
}

// readYAML читает файл и возвращает корневой узел документа.
// Для пустого файла возвращается nil.
func readYAML(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidDefinition, path, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return doc.Content[0], nil
}

// isMapping проверяет, что узел является YAML mapping.
func isMapping(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.MappingNode
}

// isAbsent: поле отсутствует в YAML или равно null.
func isAbsent(n *yaml.Node) bool {
	return n == nil || n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}
