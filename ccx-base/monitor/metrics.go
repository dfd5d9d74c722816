package monitor

import (
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MetricsTags is tags of metrics.
type MetricsTags map[string]string

func (tags MetricsTags) slice() []string {
	if len(tags) == 0 {
		return nil
	}

	slice := make([]string, 0, len(tags))
	for k, v := range tags {
		slice = append(slice, k+":"+v)
	}
	return slice
}

// Metrics receives the measurements of rpc calls.
type Metrics interface {
	Count(name string, value int64, tags MetricsTags)
	Histogram(name string, value float64, tags MetricsTags)
}

// StatsdReporter represents a statsd client that report metrics every interval.
type StatsdReporter struct {
	sync.Mutex
	c         *statsd.Client
	interval  time.Duration
	quit      chan struct{}
	done      chan struct{}
	started   bool
	reporters []func() error
}

// NewStatsdReporter returns a report for sending messages to dogstatsd.
func NewStatsdReporter(addr, namespace string, tags []string) (*StatsdReporter, error) {
	c, err := statsd.New(addr,
		statsd.WithNamespace(namespace+"."),
		statsd.WithTags(tags),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "create statsd client for %s failed", addr)
	}

	return &StatsdReporter{
		c:        c,
		interval: 2 * time.Second,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start starts a statsd schedule.
func (s *StatsdReporter) Start() {
	s.Lock()
	s.started = true
	s.Unlock()

	ticker := time.NewTicker(s.interval)
	go func() {
		defer close(s.done)
		for {
			select {
			case <-ticker.C:
				s.reportMetrics()
			case <-s.quit:
				ticker.Stop()
				return
			}
		}
	}()
}

func (s *StatsdReporter) addMetrics(reporter func() error) {
	s.Lock()
	defer s.Unlock()

	s.reporters = append(s.reporters, reporter)
}

// Gauge measures the value of a metric at a particular time.
func (s *StatsdReporter) Gauge(name string, value float64, tags MetricsTags) {
	s.addMetrics(func() error {
		return s.c.Gauge(name, value, tags.slice(), 1)
	})
}

// Count tracks how many times something happened per second.
func (s *StatsdReporter) Count(name string, value int64, tags MetricsTags) {
	s.addMetrics(func() error {
		return s.c.Count(name, value, tags.slice(), 1)
	})
}

// Histogram tracks the statistical distribution of a set of values on each host.
func (s *StatsdReporter) Histogram(name string, value float64, tags MetricsTags) {
	s.addMetrics(func() error {
		return s.c.Histogram(name, value, tags.slice(), 1)
	})
}

// Pending returns the number of metrics waiting for the next report.
func (s *StatsdReporter) Pending() int {
	s.Lock()
	defer s.Unlock()

	return len(s.reporters)
}

// Close stops the schedule, reports what is pending and closes the statsd
// client. It must be called once.
func (s *StatsdReporter) Close() error {
	s.Lock()
	started := s.started
	s.Unlock()

	close(s.quit)
	if started {
		<-s.done
	}
	s.reportMetrics()
	return s.c.Close()
}

func (s *StatsdReporter) reportMetrics() {
	s.Lock()
	defer s.Unlock()

	for _, reporter := range s.reporters {
		if err := reporter(); err != nil {
			logrus.Warnf("report metrics failed, %v", err)
		}
	}
	s.reporters = nil
}
