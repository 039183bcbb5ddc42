package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avoronov/linkvault/internal/common"
	"github.com/avoronov/linkvault/internal/server/models"
)

func TestBookmarkCreate_SetsOwner(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{b: &fakeBookmarksRepo{}}
	s := NewBookmarkService(db, rm)

	got, err := s.Create(context.Background(), "u-1", "Go blog", "https://go.dev/blog", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" || got.OwnerID != "u-1" {
		t.Fatalf("unexpected bookmark: %+v", got)
	}
}

func TestBookmarkList_EmptyIsNotError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{b: &fakeBookmarksRepo{}}
	s := NewBookmarkService(db, rm)

	got, err := s.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
}

func TestBookmarkGet_UnownedLooksAbsent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{b: &fakeBookmarksRepo{getOwnedErr: common.ErrorNotFound}}
	s := NewBookmarkService(db, rm)

	_, err := s.Get(context.Background(), "u-2", "b-1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestBookmarkUpdate_AppliesPatchInTx(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{b: &fakeBookmarksRepo{
		getOut: &models.Bookmark{ID: "b-1", OwnerID: "u-1", Title: "old", Link: "https://a", Description: "d"},
	}}
	s := NewBookmarkService(db, rm)

	title := "new"
	got, err := s.Update(context.Background(), "u-1", "b-1", &title, nil, nil)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Title != "new" {
		t.Fatalf("title not applied: %+v", got)
	}
	if got.Link != "https://a" || got.Description != "d" {
		t.Fatalf("nil fields must be left unchanged: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestBookmarkUpdate_ForeignOwnerForbidden(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{b: &fakeBookmarksRepo{
		getOut: &models.Bookmark{ID: "b-1", OwnerID: "u-1"},
	}}
	s := NewBookmarkService(db, rm)

	title := "hijack"
	_, err := s.Update(context.Background(), "u-2", "b-1", &title, nil, nil)
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("want common.ErrorForbidden, got %v", err)
	}
}

func TestBookmarkDelete_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{b: &fakeBookmarksRepo{
		getOut: &models.Bookmark{ID: "b-1", OwnerID: "u-1"},
	}}
	s := NewBookmarkService(db, rm)

	if err := s.Delete(context.Background(), "u-1", "b-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestBookmarkDelete_ForeignOwnerForbidden(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{b: &fakeBookmarksRepo{
		getOut: &models.Bookmark{ID: "b-1", OwnerID: "u-1"},
	}}
	s := NewBookmarkService(db, rm)

	err := s.Delete(context.Background(), "u-2", "b-1")
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("want common.ErrorForbidden, got %v", err)
	}
}

func TestBookmarkDelete_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{b: &fakeBookmarksRepo{getErr: common.ErrorNotFound}}
	s := NewBookmarkService(db, rm)

	err := s.Delete(context.Background(), "u-1", "b-404")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
