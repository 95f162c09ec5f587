package app

import (
	"context"
	"log"

	"delta-robot.klederson.com/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// Sender is the part of tea.Program the reloader needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Reloader re-reads the config file whenever it changes and forwards the
// result to the program as a message.
type Reloader struct {
	path    string
	watcher *config.Watcher
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewReloader creates a reloader for path. Call Start to begin watching.
func NewReloader(path string) *Reloader {
	return &Reloader{path: path}
}

// Start begins watching. Messages are delivered through s.Send.
func (r *Reloader) Start(s Sender) error {
	w, err := config.NewWatcher(r.path)
	if err != nil {
		return err
	}
	r.watcher = w

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.loop(ctx, s)
	return nil
}

func (r *Reloader) loop(ctx context.Context, s Sender) {
	defer close(r.done)
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			p, err := config.Load(path)
			if err != nil {
				log.Printf("config reload failed: %v", err)
				s.Send(ConfigErrorMsg{Err: err})
				continue
			}
			log.Printf("config reloaded from %s", path)
			s.Send(ConfigReloadedMsg{Params: p, Path: path})
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config watcher: %v", err)
			s.Send(ConfigErrorMsg{Err: err})
		}
	}
}

// Stop halts the reloader. It is safe to call on a reloader that never
// started.
func (r *Reloader) Stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
	if r.watcher != nil {
		_ = r.watcher.Close()
	}
}
