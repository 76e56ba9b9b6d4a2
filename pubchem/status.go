package pubchem

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Status describes the reachability of the upstream api. Free-tier hosting
// of the proxy target sleeps between uses, so the frontend polls this state
// while the service warms up.
type Status string

const (
	// StatusWaking initial state until the first successful probe.
	StatusWaking Status = "waking"
	// StatusReady upstream responded.
	StatusReady Status = "ready"
	// StatusUnreachable upstream stopped responding.
	StatusUnreachable Status = "unreachable"
)

// wakingFailureLimit is how many consecutive failed probes are tolerated
// before a never-ready upstream is reported unreachable.
const wakingFailureLimit = 10

// StatusPoller probes the upstream on an interval and fans state changes
// out to subscribers.
type StatusPoller struct {
	client   *Client
	interval time.Duration

	mu          sync.RWMutex
	current     Status
	failures    int
	subscribers map[chan Status]bool
}

// NewStatusPoller constructor.
func NewStatusPoller(client *Client, interval time.Duration) *StatusPoller {
	return &StatusPoller{
		client:      client,
		interval:    interval,
		current:     StatusWaking,
		subscribers: map[chan Status]bool{},
	}
}

// Current returns the last observed status.
func (p *StatusPoller) Current() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Subscribe registers a status change listener. The returned cancel
// function must be called to release it.
func (p *StatusPoller) Subscribe() (<-chan Status, func()) {
	channel := make(chan Status, 4)

	p.mu.Lock()
	p.subscribers[channel] = true
	p.mu.Unlock()

	cancel := func() {
		p.mu.Lock()
		delete(p.subscribers, channel)
		p.mu.Unlock()
	}
	return channel, cancel
}

// Run probes the upstream until the context is cancelled.
func (p *StatusPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *StatusPoller) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	request, requestErr := http.NewRequestWithContext(
		probeCtx, http.MethodHead, p.client.baseUrl, nil,
	)
	if requestErr != nil {
		p.update(false)
		return
	}

	response, doErr := p.client.http.Do(request)
	if doErr != nil {
		p.update(false)
		return
	}
	_ = response.Body.Close()
	p.update(response.StatusCode < http.StatusInternalServerError)
}

func (p *StatusPoller) update(reachable bool) {
	p.mu.Lock()
	previous := p.current
	switch {
	case reachable:
		p.current = StatusReady
		p.failures = 0
	case previous == StatusReady:
		p.current = StatusUnreachable
	default:
		p.failures++
		if p.failures >= wakingFailureLimit {
			p.current = StatusUnreachable
		}
	}
	next := p.current
	changed := next != previous
	listeners := make([]chan Status, 0, len(p.subscribers))
	for channel := range p.subscribers {
		listeners = append(listeners, channel)
	}
	p.mu.Unlock()

	if !changed {
		return
	}
	log.Infof("upstream status changed %s -> %s", previous, next)
	for _, channel := range listeners {
		select {
		case channel <- next:
		default:
		}
	}
}
