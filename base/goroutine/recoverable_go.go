package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/storefront/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type RecoverableGoOptions struct {
	logger         log.Logger
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
}

type RecoverableGoOptionsFunc = func(*RecoverableGoOptions)

func WithLogger(l log.Logger) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.logger = l
	}
}

func WithBeforeStart(f func()) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.beforeStart = f
	}
}

func WithAfterEnded(f func()) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f on its own goroutine. A panic is logged and sent on
// the returned channel, which is closed instead when f returns normally.
func RecoverableGo(f func(), fns ...RecoverableGoOptionsFunc) <-chan *PanicEvent {
	opts := RecoverableGoOptions{logger: log.Log()}
	for _, fn := range fns {
		fn(&opts)
	}

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if opts.afterEnded != nil {
				opts.afterEnded()
			}

			if p := recover(); p != nil {
				stack := debug.Stack()

				opts.logger.WithFields(log.Fields{
					"err":   p,
					"stack": string(stack),
				}).Error("panic")

				if opts.afterRecovered != nil {
					opts.afterRecovered(p, stack)
				}

				panicChan <- &PanicEvent{p, stack}
			} else {
				close(panicChan)
			}
		}()

		if opts.beforeStart != nil {
			opts.beforeStart()
		}

		f()
	}()

	return panicChan
}
