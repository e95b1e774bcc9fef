package store

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type contextKey int

const (
	transactionKey contextKey = iota
)

type Tx struct {
	txId          int64
	tx            *gorm.DB
	afterCommit   []func()
	afterRollback []func()
}

func Commit(ctx context.Context) (context.Context, error) {
	tx, ok := ctx.Value(transactionKey).(*Tx)
	if !ok {
		return ctx, nil
	}

	newCtx := context.WithValue(ctx, transactionKey, nil)
	return newCtx, tx.Commit()
}

func Rollback(ctx context.Context) (context.Context, error) {
	tx, ok := ctx.Value(transactionKey).(*Tx)
	if !ok {
		return ctx, nil
	}

	newCtx := context.WithValue(ctx, transactionKey, nil)
	return newCtx, tx.Rollback()
}

func FromContext(ctx context.Context) *gorm.DB {
	if tx, found := ctx.Value(transactionKey).(*Tx); found {
		if dbTx, err := tx.Db(); err == nil {
			return dbTx
		}
	}
	return nil
}

// WithoutTransaction detaches ctx from the transaction it carries, so writes
// made with it outlive a rollback.
func WithoutTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, transactionKey, nil)
}

// SqlTxFromContext exposes the database/sql transaction behind the gorm
// transaction carried by ctx, so other clients can join it.
func SqlTxFromContext(ctx context.Context) (*sql.Tx, bool) {
	db := FromContext(ctx)
	if db == nil {
		return nil, false
	}
	sqlTx, ok := db.Statement.ConnPool.(*sql.Tx)
	return sqlTx, ok
}

// AfterCommit registers fn to run once the transaction carried by ctx commits.
// It returns false when ctx has no open transaction; fn is not called then.
func AfterCommit(ctx context.Context, fn func()) bool {
	tx, found := ctx.Value(transactionKey).(*Tx)
	if !found || tx.tx == nil {
		return false
	}
	tx.afterCommit = append(tx.afterCommit, fn)
	return true
}

// AfterRollback registers fn to run once the transaction carried by ctx is
// rolled back or fails to commit.
func AfterRollback(ctx context.Context, fn func()) bool {
	tx, found := ctx.Value(transactionKey).(*Tx)
	if !found || tx.tx == nil {
		return false
	}
	tx.afterRollback = append(tx.afterRollback, fn)
	return true
}

func newTransactionContext(ctx context.Context, db *gorm.DB) (context.Context, error) {
	//look into the context to see if we have another tx
	_, found := ctx.Value(transactionKey).(*Tx)
	if found {
		return ctx, nil
	}

	// create a new session
	conn := db.Session(&gorm.Session{
		Context: ctx,
	})

	tx, err := newTransaction(conn)
	if err != nil {
		return ctx, err
	}

	ctx = context.WithValue(ctx, transactionKey, tx)
	return ctx, nil
}

func newTransaction(db *gorm.DB) (*Tx, error) {
	// must call begin on 'db', which is Gorm.
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	// txid_current() only exists on postgres. The ids are not distinct across
	// time: postgres resets them when vacuuming.
	var txid struct{ ID int64 }
	if db.Dialector.Name() == "postgres" {
		tx.Raw("select txid_current() as id").Scan(&txid)
	}

	return &Tx{
		txId: txid.ID,
		tx:   tx,
	}, nil
}

func (t *Tx) Db() (*gorm.DB, error) {
	if t.tx != nil {
		return t.tx, nil
	}
	return nil, errors.New("transaction hasn't started yet")
}

func (t *Tx) Commit() error {
	if t.tx == nil {
		return errors.New("transaction hasn't started yet")
	}

	if err := t.tx.Commit().Error; err != nil {
		zap.S().Named("store").Errorf("failed to commit transaction %d: %v", t.txId, err)
		t.tx = nil
		t.runHooks(t.afterRollback)
		return err
	}
	zap.S().Named("store").Debugf("transaction %d commited", t.txId)
	t.tx = nil // in case we call commit twice

	t.runHooks(t.afterCommit)
	return nil
}

func (t *Tx) Rollback() error {
	if t.tx == nil {
		return errors.New("transaction hasn't started yet")
	}

	err := t.tx.Rollback().Error
	t.tx = nil
	t.runHooks(t.afterRollback)
	if err != nil {
		zap.S().Named("store").Errorf("failed to rollback transaction %d: %v", t.txId, err)
		return err
	}

	zap.S().Named("store").Debugf("transaction %d rollback", t.txId)
	return nil
}

func (t *Tx) runHooks(hooks []func()) {
	t.afterCommit = nil
	t.afterRollback = nil
	for _, fn := range hooks {
		fn()
	}
}
