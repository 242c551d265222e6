package repo

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/shaiso/Linker/internal/domain"
	"github.com/shaiso/Linker/internal/engine"
	"github.com/shaiso/Linker/internal/transport"
)

// LinkRepo: каталог определений link.
type LinkRepo struct {
	catalog *catalog[domain.LinkDefinition]
}

// NewLinkRepo создаёт LinkRepo для каталога dir. Файлы читаются при первом обращении.
func NewLinkRepo(dir string, logger *slog.Logger) *LinkRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &LinkRepo{
		catalog: newCatalog(dir, func(name string, root *yaml.Node) (*domain.LinkDefinition, error) {
			return parseLink(name, root, logger)
		}),
	}
}

// GetLink возвращает link по имени.
func (r *LinkRepo) GetLink(ctx context.Context, name string) (*domain.LinkDefinition, error) {
	link, ok, err := r.catalog.get(name)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}
	if !ok {
		return nil, engine.NewNotFoundError(engine.KindLink, name)
	}
	return link, nil
}

// Has возвращает true, если link с таким именем существует.
func (r *LinkRepo) Has(ctx context.Context, name string) (bool, error) {
	_, ok, err := r.catalog.get(name)
	if err != nil {
		return false, fmt.Errorf("load links: %w", err)
	}
	return ok, nil
}

// List возвращает все link, отсортированные по имени.
func (r *LinkRepo) List(ctx context.Context) ([]*domain.LinkDefinition, error) {
	links, err := r.catalog.list()
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}
	return links, nil
}

type yamlLink struct {
	MessageTemplate string        `yaml:"message_template"`
	Parameters      yaml.Node     `yaml:"parameters"`
	Channels        []yamlChannel `yaml:"channels"`
}

type yamlChannel struct {
	Transport *string           `yaml:"transport"`
	Options   map[string]string `yaml:"options"`
}

func parseLink(name string, root *yaml.Node, logger *slog.Logger) (*domain.LinkDefinition, error) {
	if !isMapping(root) {
		return nil, fmt.Errorf("%w: link %q must be a mapping", ErrInvalidDefinition, name)
	}

	var raw yamlLink
	if err := root.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: link %q: %v", ErrInvalidDefinition, name, err)
	}

	params, err := decodeParameters(&raw.Parameters, fmt.Sprintf("link %q", name))
	if err != nil {
		return nil, err
	}

	channels := make([]domain.ChannelDefinition, 0, len(raw.Channels))
	for i, ch := range raw.Channels {
		if ch.Transport == nil {
			return nil, fmt.Errorf("%w: Channel #%d in link %q is missing required \"transport\" field.",
				ErrInvalidDefinition, i, name)
		}
		options := ch.Options
		if options == nil {
			options = map[string]string{}
		}
		channels = append(channels, domain.ChannelDefinition{
			Transport: *ch.Transport,
			Options:   options,
		})
	}

	link := &domain.LinkDefinition{
		Name:            name,
		MessageTemplate: raw.MessageTemplate,
		Parameters:      params,
		Channels:        channels,
	}

	lintLink(link, logger)

	return link, nil
}

// lintLink предупреждает о проблемах, которые проявятся только при отправке.
func lintLink(link *domain.LinkDefinition, logger *slog.Logger) {
	for _, ch := range link.Channels {
		if transport.Classify(ch.Transport) == transport.KindUnsupported {
			logger.Warn("link uses unsupported transport", "link", link.Name, "transport", ch.Transport)
		}
	}

	declared := make(map[string]struct{}, len(link.Parameters))
	for _, p := range link.Parameters {
		declared[p.Name] = struct{}{}
	}
	for _, ph := range engine.Placeholders(link.MessageTemplate) {
		if _, ok := declared[ph]; !ok {
			logger.Warn("message template references undeclared parameter", "link", link.Name, "placeholder", ph)
		}
	}
}
