package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestClassifyLookupFound(t *testing.T) {
	found, err := classifyLookup(nil)
	if !found || err != nil {
		t.Fatalf("classifyLookup(nil) = %v, %v, want true, nil", found, err)
	}
}

func TestClassifyLookupMissing(t *testing.T) {
	found, err := classifyLookup(gorm.ErrRecordNotFound)
	if found || err != nil {
		t.Fatalf("classifyLookup(ErrRecordNotFound) = %v, %v, want false, nil", found, err)
	}
}

func TestClassifyLookupQueryFailure(t *testing.T) {
	// A failed query must surface as an error, never as "row missing":
	// treating it as missing would create a duplicate log for the day.
	dbErr := errors.New("connection reset by peer")
	found, err := classifyLookup(dbErr)
	if found {
		t.Fatal("query failure reported as found")
	}
	if !errors.Is(err, dbErr) {
		t.Fatalf("err = %v, want %v", err, dbErr)
	}
}
