package txn

import "log/slog"

// TransactionManager simulates transaction control around query execution.
// It only reports status; no state is kept.
type TransactionManager struct {
	logger *slog.Logger
}

// NewTransactionManager creates a TransactionManager logging through logger.
func NewTransactionManager(logger *slog.Logger) *TransactionManager {
	return &TransactionManager{logger: logger}
}

func (t *TransactionManager) Begin() {
	t.logger.Info("transaction started")
}

func (t *TransactionManager) Commit() {
	t.logger.Info("transaction committed")
}

func (t *TransactionManager) Rollback() {
	t.logger.Info("transaction rolled back")
}

// LockManager simulates per-resource locking. It only reports status; there
// is no blocking or contention.
type LockManager struct {
	logger *slog.Logger
}

// NewLockManager creates a LockManager logging through logger.
func NewLockManager(logger *slog.Logger) *LockManager {
	return &LockManager{logger: logger}
}

func (l *LockManager) Acquire(resource string) {
	l.logger.Info("lock acquired", "resource", resource)
}

func (l *LockManager) Release(resource string) {
	l.logger.Info("lock released", "resource", resource)
}
