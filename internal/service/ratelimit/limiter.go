package ratelimit

import (
    "context"
    "time"
)

// Pacer enforces a fixed pause after each provider retrieval so pitchers are
// fetched one at a time with a gap between them.
type Pacer struct {
    delay time.Duration
    sleep func(ctx context.Context, d time.Duration) error
}

func NewPacer(delay time.Duration) *Pacer { return &Pacer{delay: delay, sleep: sleepCtx} }

// Delay returns the configured pause.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Pause blocks for the configured delay or until ctx is done.
func (p *Pacer) Pause(ctx context.Context) error {
    if p == nil || p.delay <= 0 {
        return nil
    }
    return p.sleep(ctx, p.delay)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-t.C:
        return nil
    case <-ctx.Done():
        return ctx.Err()
    }
}
