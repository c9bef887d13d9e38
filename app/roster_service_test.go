package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goroster/adapters/tabular"
	"goroster/domain/core"
	"goroster/domain/employee"
	"goroster/internal/errors"
	"goroster/internal/testkit"
)

func newTestService(t *testing.T) (*RosterService, *ResultStore) {
	t.Helper()
	store := NewResultStore(time.Minute)
	t.Cleanup(store.Stop)
	return NewRosterService(tabular.NewReader(), store, 2, 1<<20), store
}

const sampleCSV = "Employee ID,NAME,Department\nE1,Alice,Inbound\nE2,Bob,Returns\n"

// TestBuildPipeline runs the full decode→normalize→generate→store flow
func TestBuildPipeline(t *testing.T) {
	service, store := newTestService(t)

	result, err := service.Build(context.Background(), BuildRequest{
		Filename:    "staff.csv",
		Source:      strings.NewReader(sampleCSV),
		Size:        int64(len(sampleCSV)),
		Start:       core.NewDate(2024, time.March, 1),
		HorizonDays: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, employee.StrategyDeclaredHeader, result.Strategy)
	assert.Equal(t, 2, result.Grid.EmployeeCount())
	assert.Equal(t, 7, result.Grid.HorizonDays)
	assert.Equal(t, "staff.csv", result.SourceName)
	assert.NotEmpty(t, result.Fingerprint)
	assert.Equal(t, 1, store.Len())

	stored, err := service.Get(result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Fingerprint, stored.Fingerprint)
}

// TestBuildFingerprintStability tests that rebuilding identical input gives
// the same fingerprint under fresh result IDs.
func TestBuildFingerprintStability(t *testing.T) {
	service, _ := newTestService(t)
	start := core.NewDate(2024, time.March, 1)

	build := func() *struct {
		id          core.ResultID
		fingerprint core.Hash
	} {
		result, err := service.Build(context.Background(), BuildRequest{
			Filename: "staff.csv",
			Source:   strings.NewReader(sampleCSV),
			Size:     int64(len(sampleCSV)),
			Start:    start, HorizonDays: 30,
		})
		require.NoError(t, err)
		return &struct {
			id          core.ResultID
			fingerprint core.Hash
		}{result.ID, result.Fingerprint}
	}

	first := build()
	second := build()
	assert.NotEqual(t, first.id, second.id)
	assert.Equal(t, first.fingerprint, second.fingerprint)
}

// TestBuildValidation tests the upload guards: extension allowlist and size
// cap, both INVALID_INPUT.
func TestBuildValidation(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Build(context.Background(), BuildRequest{
		Filename: "staff.pdf",
		Source:   strings.NewReader(sampleCSV),
		Size:     10,
		Start:    core.NewDate(2024, time.March, 1),
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	_, err = service.Build(context.Background(), BuildRequest{
		Filename: "staff.csv",
		Source:   strings.NewReader(sampleCSV),
		Size:     2 << 20,
		Start:    core.NewDate(2024, time.March, 1),
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

// TestBuildNormalizationFailure tests that an unresolvable header surfaces
// as a VALIDATION_ERROR naming the missing column.
func TestBuildNormalizationFailure(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Build(context.Background(), BuildRequest{
		Filename: "staff.csv",
		Source:   strings.NewReader("x,y\n1,2\n"),
		Size:     8,
		Start:    core.NewDate(2024, time.March, 1),
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationError, errors.GetCode(err))
	assert.Contains(t, err.Error(), "Employee ID")
	assert.True(t, core.IsMissingColumnError(err))
}

// TestBuildDecodeFailure tests that unreadable bytes surface as DECODE_ERROR
func TestBuildDecodeFailure(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Build(context.Background(), BuildRequest{
		Filename: "staff.xlsx",
		Source:   strings.NewReader("not a workbook"),
		Size:     14,
		Start:    core.NewDate(2024, time.March, 1),
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeDecodeError, errors.GetCode(err))
}

// TestBuildFromTable runs the demo path on a generated messy table
func TestBuildFromTable(t *testing.T) {
	service, _ := newTestService(t)
	kit := testkit.NewTestKit(42)

	result, err := service.BuildFromTable(context.Background(), kit.BannerTable(6), "demo", core.NewDate(2024, time.March, 1), 14)
	require.NoError(t, err)
	assert.Equal(t, employee.StrategyHeaderRepair, result.Strategy)
	assert.Equal(t, 6, result.Grid.EmployeeCount())
}

// TestBuildFromEmployees tests the pre-normalized path used by the JSON API
func TestBuildFromEmployees(t *testing.T) {
	service, _ := newTestService(t)

	result, err := service.BuildFromEmployees(context.Background(), []employee.Record{
		{EmployeeID: "E1", Name: "Alice", Department: "Inbound"},
	}, "api", core.NewDate(2024, time.March, 1), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Grid.EmployeeCount())
	assert.Empty(t, result.Strategy)
}
