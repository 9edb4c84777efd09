// Package service provides the start/stop lifecycle shared by the
// long-running components of the client, such as the chain head watcher.
package service

import (
	"context"
	"errors"
	"sync"

	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
)

var (
	// ErrAlreadyStarted is returned when starting a running service.
	ErrAlreadyStarted = errors.New("already started")
	// ErrAlreadyStopped is returned when starting or stopping a service that
	// has already been stopped. Services cannot be restarted.
	ErrAlreadyStopped = errors.New("already stopped")
	// ErrNotStarted is returned when stopping a service that never ran.
	ErrNotStarted = errors.New("not started")
)

// Service can be started once and stopped once.
type Service interface {
	// Start runs the service until Stop is called or ctx is done.
	Start(ctx context.Context) error
	// IsRunning reports whether the service has started and not yet stopped.
	IsRunning() bool
	// String names the service in logs.
	String() string
	// Wait blocks until the service is stopped.
	Wait()
}

// Implementation holds the hooks a BaseService drives.
type Implementation interface {
	Service

	// OnStart is called by Start. The service does not count as started
	// when it returns an error, so Start may be retried.
	OnStart(ctx context.Context) error

	// OnStop is called exactly once, by Stop or when the start context is
	// done.
	OnStop()
}

type state int

// lifecycle is shared by copies of a BaseService, which embedding types
// make when assigning the result of NewBaseService.
type lifecycle struct {
	mtx   sync.Mutex
	state state
}

const (
	stateIdle state = iota
	stateRunning
	stateStopped
)

/*
BaseService implements the lifecycle of Service for a concrete type that
embeds it and provides the Implementation hooks:

	type Poller struct {
		service.BaseService
		// private fields
	}

	func NewPoller(logger log.Logger) *Poller {
		p := &Poller{}
		p.BaseService = *service.NewBaseService(logger, "Poller", p)
		return p
	}

	func (p *Poller) OnStart(ctx context.Context) error {
		// spawn the polling goroutine bound to ctx
		return nil
	}

	func (p *Poller) OnStop() {
		// wait for the goroutine to exit
	}

Cancelling the context passed to Start stops the service.
*/
type BaseService struct {
	logger log.Logger
	name   string
	impl   Implementation

	lc   *lifecycle
	quit chan struct{}
}

// NewBaseService creates a new BaseService. A nil logger discards output.
func NewBaseService(logger log.Logger, name string, impl Implementation) *BaseService {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &BaseService{
		logger: logger.With("service", name),
		name:   name,
		impl:   impl,
		lc:     &lifecycle{},
		quit:   make(chan struct{}),
	}
}

// Start calls OnStart and arranges for the service to stop once ctx is done.
func (bs *BaseService) Start(ctx context.Context) error {
	bs.lc.mtx.Lock()
	defer bs.lc.mtx.Unlock()

	switch bs.lc.state {
	case stateRunning:
		return ErrAlreadyStarted
	case stateStopped:
		bs.logger.Error("not starting service; already stopped")
		return ErrAlreadyStopped
	}

	bs.logger.Info("starting service")
	if err := bs.impl.OnStart(ctx); err != nil {
		return err
	}
	bs.lc.state = stateRunning

	go bs.stopOnDone(ctx)
	return nil
}

func (bs *BaseService) stopOnDone(ctx context.Context) {
	select {
	case <-bs.quit:
	case <-ctx.Done():
		if err := bs.Stop(); err != nil && !errors.Is(err, ErrAlreadyStopped) {
			bs.logger.Error("stopping service", "err", err)
		}
	}
}

// Stop calls OnStop and releases everyone blocked in Wait.
func (bs *BaseService) Stop() error {
	bs.lc.mtx.Lock()
	switch bs.lc.state {
	case stateIdle:
		bs.lc.mtx.Unlock()
		bs.logger.Error("not stopping service; not started yet")
		return ErrNotStarted
	case stateStopped:
		bs.lc.mtx.Unlock()
		return ErrAlreadyStopped
	}
	bs.lc.state = stateStopped
	bs.lc.mtx.Unlock()

	bs.logger.Info("stopping service")
	bs.impl.OnStop()
	close(bs.quit)
	return nil
}

// IsRunning implements Service.
func (bs *BaseService) IsRunning() bool {
	bs.lc.mtx.Lock()
	defer bs.lc.mtx.Unlock()
	return bs.lc.state == stateRunning
}

// Wait implements Service.
func (bs *BaseService) Wait() { <-bs.quit }

// String implements Service.
func (bs *BaseService) String() string { return bs.name }
