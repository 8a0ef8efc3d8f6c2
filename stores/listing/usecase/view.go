package usecase

import (
	"fmt"
	"sync"
	"time"

	bEth "github.com/x-xyz/storefront/base/ethereum"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/marketplace"
)

// viewKey is one wallet looking at one listing. Anonymous viewers share the
// empty address.
type viewKey struct {
	id     string
	viewer domain.Address
}

type viewState struct {
	minimumBid *marketplace.CurrencyValue
	touched    time.Time
}

// views keeps the per view state that outlives a single request. Entries
// idle for longer than ttl are dropped.
type views struct {
	mu    sync.Mutex
	ttl   time.Duration
	state map[viewKey]*viewState
}

func newViews(ttl time.Duration) *views {
	return &views{
		ttl:   ttl,
		state: make(map[viewKey]*viewState),
	}
}

func (v *views) minimumBid(k viewKey) *marketplace.CurrencyValue {
	v.mu.Lock()
	defer v.mu.Unlock()
	now := timeNow()
	v.pruneLocked(now)
	s, ok := v.state[k]
	if !ok {
		return nil
	}
	s.touched = now
	return s.minimumBid
}

func (v *views) setMinimumBid(k viewKey, val *marketplace.CurrencyValue) {
	v.mu.Lock()
	defer v.mu.Unlock()
	now := timeNow()
	v.pruneLocked(now)
	v.state[k] = &viewState{minimumBid: val, touched: now}
}

func (v *views) len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.state)
}

func (v *views) pruneLocked(now time.Time) {
	for k, s := range v.state {
		if now.Sub(s.touched) > v.ttl {
			delete(v.state, k)
		}
	}
}

func buyKey(id string, viewer domain.Address) string {
	return fmt.Sprintf("buy:%s:%s", id, viewer.ToLowerStr())
}

func offerKey(id string, viewer domain.Address) string {
	return fmt.Sprintf("offer:%s:%s", id, viewer.ToLowerStr())
}

// placeholder is the hint of the offer or bid input
func placeholder(t marketplace.ListingType, minimumBid *marketplace.CurrencyValue) string {
	if t == marketplace.ListingTypeDirect {
		return "Enter offer amount..."
	}
	if minimumBid == nil || bEth.IsZeroDisplay(minimumBid.DisplayValue) {
		return "Enter bid amount..."
	}
	return fmt.Sprintf("%s %s or more", minimumBid.DisplayValue, minimumBid.Symbol)
}

// countdown renders d as days:hours:minutes:seconds, zero once elapsed
func countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d:%02d", secs/86400, secs%86400/3600, secs%3600/60, secs%60)
}
