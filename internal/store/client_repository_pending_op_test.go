package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/models"
)

func newTestPendingOpRepo(t *testing.T) (*localPendingOpRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &localPendingOpRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestEnqueuePendingOp_Success(t *testing.T) {
	repo, mock, db := newTestPendingOpRepo(t)
	defer db.Close()

	op := models.PendingSyncOp{
		ID:        "op-1",
		Type:      models.PendingOpDelete,
		Resource:  "inbox",
		RecordID:  "m-1",
		CreatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO pending_ops").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.EnqueuePendingOp(context.Background(), op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetAllPendingOps_OrderedByCreation(t *testing.T) {
	repo, mock, db := newTestPendingOpRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "type", "resource", "record_id", "payload", "created_at", "retries"}).
		AddRow("op-1", "create", "drafts", "m-1", []byte(`{}`), now.Add(-time.Minute), 0).
		AddRow("op-2", "delete", "inbox", "m-2", nil, now, 1)

	mock.ExpectQuery("SELECT(.|\n)*FROM pending_ops").
		WillReturnRows(rows)

	ops, err := repo.GetAllPendingOps(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	if ops[0].ID != "op-1" || ops[0].Type != models.PendingOpCreate {
		t.Errorf("unexpected first op: %+v", ops[0])
	}
	if ops[1].Retries != 1 {
		t.Errorf("expected retries 1, got %d", ops[1].Retries)
	}
}

func TestRemovePendingOp_NotFound(t *testing.T) {
	repo, mock, db := newTestPendingOpRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM pending_ops").
		WithArgs("op-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemovePendingOp(context.Background(), "op-404")
	if !errors.Is(err, ErrPendingOpNotFound) {
		t.Fatalf("expected ErrPendingOpNotFound, got %v", err)
	}
}

func TestRemovePendingOp_Success(t *testing.T) {
	repo, mock, db := newTestPendingOpRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM pending_ops").
		WithArgs("op-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RemovePendingOp(context.Background(), "op-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCountPendingOps(t *testing.T) {
	repo, mock, db := newTestPendingOpRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountPendingOps(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 pending ops, got %d", count)
	}
}
