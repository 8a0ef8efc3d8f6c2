package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain/notification"
)

const subscriberBuffer = 16

type Config struct {
	// Duration is how long success and error toasts live
	Duration time.Duration
}

type subscriber struct {
	audience string
	events   chan notification.Event
}

type impl struct {
	duration time.Duration

	mu     sync.Mutex
	toasts map[string][]notification.Toast
	subs   map[*subscriber]struct{}
}

// New keeps toasts in memory. Every replica serves the toasts of the requests
// it handled.
func New(cfg Config) notification.Usecase {
	if cfg.Duration <= 0 {
		cfg.Duration = notification.DefaultDuration
	}
	return &impl{
		duration: cfg.Duration,
		toasts:   make(map[string][]notification.Toast),
		subs:     make(map[*subscriber]struct{}),
	}
}

func (im *impl) Loading(c ctx.Ctx, audience, message string) func() {
	toast := im.add(audience, notification.KindLoading, message, nil)
	var once sync.Once
	return func() {
		once.Do(func() { im.remove(toast) })
	}
}

func (im *impl) Success(c ctx.Ctx, audience, message string) {
	im.expiring(c, audience, notification.KindSuccess, message)
}

func (im *impl) Error(c ctx.Ctx, audience, message string) {
	im.expiring(c, audience, notification.KindError, message)
}

func (im *impl) expiring(c ctx.Ctx, audience string, kind notification.Kind, message string) {
	expiresAt := time.Now().Add(im.duration)
	toast := im.add(audience, kind, message, &expiresAt)
	c.WithField("audience", audience).WithField("kind", kind).Info(message)
	time.AfterFunc(im.duration, func() { im.remove(toast) })
}

func (im *impl) add(audience string, kind notification.Kind, message string, expiresAt *time.Time) notification.Toast {
	toast := notification.Toast{
		Id:        uuid.NewString(),
		Audience:  audience,
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}

	im.mu.Lock()
	defer im.mu.Unlock()
	im.toasts[audience] = append(im.toasts[audience], toast)
	im.publish(notification.Event{Type: notification.EventAdd, Toast: toast})
	return toast
}

func (im *impl) remove(toast notification.Toast) {
	im.mu.Lock()
	defer im.mu.Unlock()

	list := im.toasts[toast.Audience]
	for i := range list {
		if list[i].Id != toast.Id {
			continue
		}
		list = append(list[:i:i], list[i+1:]...)
		if len(list) == 0 {
			delete(im.toasts, toast.Audience)
		} else {
			im.toasts[toast.Audience] = list
		}
		im.publish(notification.Event{Type: notification.EventRemove, Toast: toast})
		return
	}
}

// publish must be called with mu held. Slow subscribers lose events.
func (im *impl) publish(e notification.Event) {
	for s := range im.subs {
		if s.audience != e.Toast.Audience {
			continue
		}
		select {
		case s.events <- e:
		default:
		}
	}
}

func (im *impl) List(c ctx.Ctx, audience string) []notification.Toast {
	im.mu.Lock()
	defer im.mu.Unlock()

	res := make([]notification.Toast, len(im.toasts[audience]))
	copy(res, im.toasts[audience])
	return res
}

func (im *impl) Subscribe(audience string) (<-chan notification.Event, func()) {
	s := &subscriber{
		audience: audience,
		events:   make(chan notification.Event, subscriberBuffer),
	}

	im.mu.Lock()
	im.subs[s] = struct{}{}
	im.mu.Unlock()

	var once sync.Once
	return s.events, func() {
		once.Do(func() {
			im.mu.Lock()
			delete(im.subs, s)
			im.mu.Unlock()
			close(s.events)
		})
	}
}
