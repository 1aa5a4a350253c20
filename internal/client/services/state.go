package services

import "sync"

// errState is the single-slot error shared by every service.
type errState struct {
	mu  sync.RWMutex
	msg string
}

// Err returns the last failure message, or "" when the last operation
// succeeded.
func (s *errState) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.msg
}

func (s *errState) begin() {
	s.mu.Lock()
	s.msg = ""
	s.mu.Unlock()
}

// fail records err (if any) and returns it unchanged.
func (s *errState) fail(err error) error {
	if err == nil {
		return nil
	}
	s.mu.Lock()
	s.msg = err.Error()
	s.mu.Unlock()
	return err
}

// ClearErr drops the recorded failure.
func (s *errState) ClearErr() {
	s.begin()
}
