package scorecard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rwescore/domain/tabular"
)

func datasetOf(rows ...tabular.Row) tabular.Dataset {
	return tabular.New(rows)
}

func TestComputeEmptyDataset(t *testing.T) {
	m := Compute(tabular.Dataset{}, DefaultMetricsConfig())

	assert.Equal(t, 0, m.N)
	for _, dim := range []Dimension{Completeness, Consistency, Timeliness, Conformity} {
		assert.Equal(t, 0.0, m.Get(dim))
	}
}

func TestCompletenessMeanFraction(t *testing.T) {
	ds := datasetOf(
		tabular.Row{"a": 1, "b": nil},
		tabular.Row{"a": 2, "b": "x"},
	)
	cfg := DefaultMetricsConfig()
	cfg.RequiredFields = []string{"a", "b"}

	m := Compute(ds, cfg)

	assert.InDelta(t, 0.75, m.Get(Completeness), 1e-9)
}

func TestCompletenessAbsentColumnCountsZero(t *testing.T) {
	ds := datasetOf(
		tabular.Row{"a": 1},
		tabular.Row{"a": 2},
	)
	cfg := DefaultMetricsConfig()
	cfg.RequiredFields = []string{"a", "ghost"}

	m := Compute(ds, cfg)

	assert.InDelta(t, 0.5, m.Get(Completeness), 1e-9)
}

func TestCompletenessNoRequiredFieldsIsPerfect(t *testing.T) {
	ds := datasetOf(tabular.Row{"a": nil})
	m := Compute(ds, DefaultMetricsConfig())
	assert.Equal(t, 1.0, m.Get(Completeness))
}

func TestConsistencyCleanDataset(t *testing.T) {
	ds := datasetOf(
		tabular.Row{"id": "1", "v": "x"},
		tabular.Row{"id": "2", "v": "y"},
	)
	cfg := DefaultMetricsConfig()
	cfg.RequiredFields = []string{"id", "v"}

	m := Compute(ds, cfg)

	assert.Equal(t, 1.0, m.Get(Consistency))
}

func TestConsistencyMissingKeyColumnPenalty(t *testing.T) {
	ds := datasetOf(
		tabular.Row{"id": "1"},
		tabular.Row{"id": "2"},
	)
	cfg := DefaultMetricsConfig()
	cfg.ConsistencyKeys = []string{"id", "ghost"}

	m := Compute(ds, cfg)

	assert.InDelta(t, 0.9, m.Get(Consistency), 1e-9)
}

func TestConsistencyMissingKeyPenaltyCaps(t *testing.T) {
	ds := datasetOf(tabular.Row{"id": "1"})
	cfg := DefaultMetricsConfig()
	cfg.ConsistencyKeys = []string{"g1", "g2", "g3", "g4", "g5", "g6", "g7", "g8"}

	m := Compute(ds, cfg)

	assert.InDelta(t, 0.4, m.Get(Consistency), 1e-9)
}

func TestConsistencyDuplicateRowPenalty(t *testing.T) {
	ds := datasetOf(
		tabular.Row{"id": "1", "v": "x"},
		tabular.Row{"id": "1", "v": "x"},
		tabular.Row{"id": "2", "v": "y"},
		tabular.Row{"id": "3", "v": "z"},
	)

	m := Compute(ds, DefaultMetricsConfig())

	// One of four rows repeats, which doubles to 0.5 and caps at 0.4.
	assert.InDelta(t, 0.6, m.Get(Consistency), 1e-9)
}

func TestTimelinessWindow(t *testing.T) {
	ds := datasetOf(
		tabular.Row{"date": "2024-03-20"},
		tabular.Row{"date": "2024-03-10"},
		tabular.Row{"date": "2024-01-01"},
	)

	m := Compute(ds, DefaultMetricsConfig())

	// Window trails 14 days back from 2024-03-20.
	assert.InDelta(t, 2.0/3.0, m.Get(Timeliness), 1e-9)
}

func TestTimelinessNoDateColumnIsNeutral(t *testing.T) {
	ds := datasetOf(tabular.Row{"value": 3.2})
	m := Compute(ds, DefaultMetricsConfig())
	assert.Equal(t, 0.5, m.Get(Timeliness))
}

func TestTimelinessUnparseableDatesAreNeutral(t *testing.T) {
	ds := datasetOf(
		tabular.Row{"date": "not a date"},
		tabular.Row{"date": "also bad"},
	)
	m := Compute(ds, DefaultMetricsConfig())
	assert.Equal(t, 0.5, m.Get(Timeliness))
}

func TestTimelinessSkipsUnparseableRows(t *testing.T) {
	ds := datasetOf(
		tabular.Row{"date": "2024-03-20"},
		tabular.Row{"date": "garbage"},
	)
	m := Compute(ds, DefaultMetricsConfig())

	// Only parsed dates enter the denominator.
	assert.Equal(t, 1.0, m.Get(Timeliness))
}

func TestTimelinessExplicitColumnOverride(t *testing.T) {
	ds := datasetOf(
		tabular.Row{"date": "2020-01-01", "updated": "2024-03-20"},
		tabular.Row{"date": "2020-01-01", "updated": "2024-03-19"},
	)
	cfg := DefaultMetricsConfig()
	cfg.DateColumn = "updated"

	m := Compute(ds, cfg)

	assert.Equal(t, 1.0, m.Get(Timeliness))
}

func TestTimelinessConfiguredColumnMissingIsNeutral(t *testing.T) {
	ds := datasetOf(
		tabular.Row{"date": "2024-03-20"},
		tabular.Row{"date": "2024-03-19"},
	)
	cfg := DefaultMetricsConfig()
	cfg.DateColumn = "updated"

	m := Compute(ds, cfg)

	// The configured column is authoritative; its absence must not be
	// papered over by inferring the fresh "date" column.
	assert.Equal(t, 0.5, m.Get(Timeliness))
}

func TestConformityFractionOfPresentColumns(t *testing.T) {
	ds := datasetOf(tabular.Row{"a": 1, "b": nil})
	cfg := DefaultMetricsConfig()
	cfg.RequiredFields = []string{"a", "b", "c"}

	m := Compute(ds, cfg)

	// Presence counts even when every value is null.
	assert.InDelta(t, 2.0/3.0, m.Get(Conformity), 1e-9)
}

func TestConformityMonotoneInPresentColumns(t *testing.T) {
	cfg := DefaultMetricsConfig()
	cfg.RequiredFields = []string{"a", "b", "c"}

	sparse := Compute(datasetOf(tabular.Row{"a": 1}), cfg)
	richer := Compute(datasetOf(tabular.Row{"a": 1, "b": 2}), cfg)

	// Adding a previously absent required column never lowers conformity.
	assert.Greater(t, richer.Get(Conformity), sparse.Get(Conformity))
}

func TestConformityEmptyRequiredIsVacuouslyTrue(t *testing.T) {
	ds := datasetOf(tabular.Row{"a": 1})
	m := Compute(ds, DefaultMetricsConfig())
	assert.Equal(t, 1.0, m.Get(Conformity))
}

func TestComputeRecordsRowCount(t *testing.T) {
	ds := datasetOf(tabular.Row{"a": 1}, tabular.Row{"a": 2})
	m := Compute(ds, DefaultMetricsConfig())
	assert.Equal(t, 2, m.N)
}
