package notification

import (
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type Kind string

const (
	KindLoading Kind = "loading"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// AudiencePublic receives toasts of requests made without a wallet
const AudiencePublic = "public"

// DefaultDuration is how long success and error toasts stay visible
const DefaultDuration = 3000 * time.Millisecond

const (
	LoadingMessage = "Loading..."
	// ProcessingMessage is shown while a form submission is in flight
	ProcessingMessage = "Processing..."
)

type Toast struct {
	Id        string     `json:"id"`
	Audience  string     `json:"-"`
	Kind      Kind       `json:"kind"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type EventType string

const (
	EventAdd    EventType = "add"
	EventRemove EventType = "remove"
)

type Event struct {
	Type  EventType `json:"type"`
	Toast Toast     `json:"toast"`
}

// AudienceOf maps a possibly empty wallet address to its audience
func AudienceOf(address domain.Address) string {
	if address.IsEmpty() {
		return AudiencePublic
	}
	return address.ToLowerStr()
}

type Usecase interface {
	// Loading shows a toast until the returned dismiss is called
	Loading(c ctx.Ctx, audience, message string) (dismiss func())
	Success(c ctx.Ctx, audience, message string)
	Error(c ctx.Ctx, audience, message string)
	List(c ctx.Ctx, audience string) []Toast
	// Subscribe streams events of audience until cancel is called
	Subscribe(audience string) (events <-chan Event, cancel func())
}
