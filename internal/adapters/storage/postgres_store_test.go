package storage

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"captura/internal/domain"
)

func TestNewPostgresLeadStore_RequiresDSN(t *testing.T) {
	_, err := NewPostgresLeadStore("")

	var cerr *domain.ConfigurationError
	require.ErrorAs(t, err, &cerr)
}

func TestNewPostgresLeadStore_WrapsOpenFailure(t *testing.T) {
	original := openDB
	openDB = func(driverName, dataSourceName string) (*sql.DB, error) {
		return nil, errors.New("driver exploded")
	}
	t.Cleanup(func() { openDB = original })

	_, err := NewPostgresLeadStore("postgres://user:pw@localhost/leads")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver exploded")
}

type fakeRow struct {
	values []any
	err    error
}

func (f *fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, v := range f.values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		}
	}
	return nil
}

func TestScanLead_MapsStatusString(t *testing.T) {
	row := &fakeRow{values: []any{"rp_x_000000", "Maria Silva", "", "m@x.com", "completed", "reforma-pro"}}

	lead, err := scanLead(row)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, lead.Status)
	assert.Equal(t, "Maria Silva", lead.FullName)
}

func TestScanLead_PropagatesScanError(t *testing.T) {
	_, err := scanLead(&fakeRow{err: errors.New("bad row")})

	assert.Error(t, err)
}
