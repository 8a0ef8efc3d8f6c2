/*Package metrics wraps datadog-go to record storefront metrics.
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	withPodName bool
}

// WithoutPodName drops the pod tag, which otherwise produces a series per pod
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// podName example: storefront-api-6868d88fbd-bz8zv
func podName() string {
	return os.Getenv("PODNAME")
}

// New creates a metric client with pkgName as key prefix
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	ddTags := []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
	if o.withPodName {
		ddTags = append(ddTags, "pod:"+podName())
	}

	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{ddTags: ddTags},
	}
}

// Metrics prefixes keys with the package name and never lets a bump panic escape.
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

func (mt *Metrics) recoverBump(key string, tags []string) {
	if err := recover(); err != nil {
		mt.datadog.BumpSum("bump.panic", 1, 1, "tag", mt.key(key)+"#"+strings.Join(tags, "#"))
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverBump(key, tags)
	mt.datadog.BumpAvg(mt.key(key), val, 1, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump(key, tags)
	mt.datadog.BumpSum(mt.key(key), val, 1, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump(key, tags)
	mt.datadog.BumpHistogram(mt.key(key), val, 1, tags...)
}

// BumpTime starts a timer and returns its Ender:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		ddEnd: mt.datadog.BumpTime(mt.key(key), 1, tags...),
		panicHandler: func() {
			mt.datadog.BumpSum("bumptime.panic", 1, 1, "tag", mt.key(key)+"#"+strings.Join(tags, "#"))
		},
	}
}

type timeTracker struct {
	ddEnd        Ender
	panicHandler func()
}

func (t *timeTracker) End() {
	defer func() {
		if err := recover(); err != nil {
			t.panicHandler()
		}
	}()
	t.ddEnd.End()
}
