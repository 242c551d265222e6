package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaiso/Linker/internal/domain"
	"github.com/shaiso/Linker/internal/engine"
	"github.com/shaiso/Linker/internal/mq"
	"github.com/shaiso/Linker/internal/telemetry"
	"github.com/shaiso/Linker/internal/transport"
)

// --- fakes ---

type fakeLinks map[string]*domain.LinkDefinition

func (f fakeLinks) GetLink(_ context.Context, name string) (*domain.LinkDefinition, error) {
	link, ok := f[name]
	if !ok {
		return nil, engine.NewNotFoundError(engine.KindLink, name)
	}
	return link, nil
}

type call struct {
	kind, target, subject, message string
}

// recorder реализует все клиенты транспорта и записывает вызовы по порядку.
type recorder struct {
	calls  []call
	failOn map[string]error
}

func (r *recorder) Send(_ context.Context, name, message string) error {
	r.calls = append(r.calls, call{kind: "chat", target: name, message: message})
	return r.failOn[name]
}

type smsRecorder struct{ *recorder }

func (s smsRecorder) Send(_ context.Context, to, message string) error {
	s.calls = append(s.calls, call{kind: "sms", target: to, message: message})
	return s.failOn[transport.NameSMS]
}

type mailRecorder struct{ *recorder }

func (m mailRecorder) Send(_ context.Context, to, subject, body string) error {
	m.calls = append(m.calls, call{kind: "email", target: to, subject: subject, message: body})
	return m.failOn[transport.NameEmail]
}

type fakeEvents struct {
	payloads []mq.LinkDispatchedPayload
	err      error
}

func (f *fakeEvents) PublishLinkDispatched(_ context.Context, p mq.LinkDispatchedPayload) error {
	f.payloads = append(f.payloads, p)
	return f.err
}

func newDispatcher(links fakeLinks, rec *recorder, events EventPublisher) *Dispatcher {
	resolver := transport.NewResolver(transport.Senders{
		Chat: rec,
		SMS:  smsRecorder{rec},
		Mail: mailRecorder{rec},
	})
	return New(Config{
		Links:    links,
		Resolver: resolver,
		Events:   events,
		Logger:   telemetry.DiscardLogger(),
	})
}

func ptr(s string) *string { return &s }

func serverAlert() *domain.LinkDefinition {
	return &domain.LinkDefinition{
		Name:            "server-alert",
		MessageTemplate: "[{status}] {server}: {message}",
		Parameters: []domain.ParameterDefinition{
			{Name: "server", Required: true, Type: "string"},
			{Name: "status", Required: true, Type: "string"},
			{Name: "message", Required: false, Type: "string", Default: ptr("No details provided")},
		},
		Channels: []domain.ChannelDefinition{
			{Transport: "slack"},
			{Transport: "email", Options: map[string]string{"to": "ops@example.com", "subject": "Alert: {server}"}},
		},
	}
}

// --- tests ---

func TestSend_PreservesChannelOrder(t *testing.T) {
	rec := &recorder{}
	d := newDispatcher(fakeLinks{"server-alert": serverAlert()}, rec, nil)

	notified, err := d.Send(context.Background(), "server-alert", map[string]string{
		"server": "web1",
		"status": "critical",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"slack", "email"}, notified)

	require.Len(t, rec.calls, 2)
	assert.Equal(t, call{kind: "chat", target: "slack", message: "[critical] web1: No details provided"}, rec.calls[0])
	assert.Equal(t, call{
		kind:    "email",
		target:  "ops@example.com",
		subject: "Alert: web1",
		message: "[critical] web1: No details provided",
	}, rec.calls[1])
}

func TestSend_ZeroChannels(t *testing.T) {
	rec := &recorder{}
	link := &domain.LinkDefinition{Name: "quiet", MessageTemplate: "hello"}
	d := newDispatcher(fakeLinks{"quiet": link}, rec, nil)

	notified, err := d.Send(context.Background(), "quiet", nil)
	require.NoError(t, err)
	assert.NotNil(t, notified)
	assert.Empty(t, notified)
	assert.Empty(t, rec.calls)
}

func TestSend_ChannelFailureAbortsRemaining(t *testing.T) {
	sendErr := errors.New("discord is down")
	rec := &recorder{failOn: map[string]error{"discord": sendErr}}
	link := &domain.LinkDefinition{
		Name:            "fanout",
		MessageTemplate: "ping",
		Channels: []domain.ChannelDefinition{
			{Transport: "slack"},
			{Transport: "discord"},
			{Transport: "telegram"},
		},
	}
	events := &fakeEvents{}
	d := newDispatcher(fakeLinks{"fanout": link}, rec, events)

	notified, err := d.Send(context.Background(), "fanout", nil)
	require.Error(t, err)
	assert.Nil(t, notified)
	assert.ErrorIs(t, err, sendErr)
	assert.ErrorIs(t, err, transport.ErrSendFailed)

	var terr *transport.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "discord", terr.Transport)

	require.Len(t, rec.calls, 2, "third channel must not be called")
	assert.Equal(t, "slack", rec.calls[0].target)
	assert.Equal(t, "discord", rec.calls[1].target)

	require.Len(t, events.payloads, 1)
	assert.False(t, events.payloads[0].Success)
	assert.Equal(t, []string{"slack"}, events.payloads[0].Transports)
}

func TestSend_UnsupportedTransportFailsAtItsPosition(t *testing.T) {
	rec := &recorder{}
	link := &domain.LinkDefinition{
		Name:            "mixed",
		MessageTemplate: "ping",
		Channels: []domain.ChannelDefinition{
			{Transport: "slack"},
			{Transport: "pigeon"},
			{Transport: "telegram"},
		},
	}
	d := newDispatcher(fakeLinks{"mixed": link}, rec, nil)

	_, err := d.Send(context.Background(), "mixed", nil)
	require.ErrorIs(t, err, transport.ErrUnsupported)
	assert.EqualError(t, err, `Unsupported transport "pigeon".`)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "slack", rec.calls[0].target)
}

func TestSend_LinkNotFound(t *testing.T) {
	rec := &recorder{}
	d := newDispatcher(fakeLinks{}, rec, nil)

	_, err := d.Send(context.Background(), "missing", nil)
	require.ErrorIs(t, err, engine.ErrNotFound)
	assert.EqualError(t, err, `Link "missing" not found.`)
	assert.Empty(t, rec.calls)
}

func TestSend_InvalidParameters(t *testing.T) {
	rec := &recorder{}
	d := newDispatcher(fakeLinks{"server-alert": serverAlert()}, rec, nil)

	_, err := d.Send(context.Background(), "server-alert", map[string]string{"server": "web1"})

	var verr *engine.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Contains(t, verr.Errors[0], `"status"`)
	assert.NotContains(t, verr.Errors[0], "server")
	assert.Empty(t, rec.calls)
}

func TestSend_MissingToOptionFailsBeforeNetworkCall(t *testing.T) {
	for _, name := range []string{"sms", "email"} {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			link := &domain.LinkDefinition{
				Name:            "no-recipient",
				MessageTemplate: "ping",
				Channels:        []domain.ChannelDefinition{{Transport: name}},
			}
			d := newDispatcher(fakeLinks{"no-recipient": link}, rec, nil)

			_, err := d.Send(context.Background(), "no-recipient", nil)

			var terr *transport.Error
			require.ErrorAs(t, err, &terr)
			assert.ErrorIs(t, err, transport.ErrMissingOption)
			assert.Equal(t, name, terr.Transport)
			assert.Empty(t, rec.calls)
		})
	}
}

func TestSend_PublishesEvent(t *testing.T) {
	rec := &recorder{}
	events := &fakeEvents{err: errors.New("broker down")}
	d := newDispatcher(fakeLinks{"server-alert": serverAlert()}, rec, events)

	notified, err := d.Send(context.Background(), "server-alert", map[string]string{
		"server": "web1",
		"status": "ok",
	})
	require.NoError(t, err, "publish errors must not fail the dispatch")
	assert.Equal(t, []string{"slack", "email"}, notified)

	require.Len(t, events.payloads, 1)
	assert.Equal(t, mq.LinkDispatchedPayload{
		Link:       "server-alert",
		Success:    true,
		Transports: []string{"slack", "email"},
	}, events.payloads[0])
}
