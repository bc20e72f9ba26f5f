package eventstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

func payloadOf(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

//nolint:funlen
func Test_Filter_Construction(t *testing.T) {
	tests := []struct {
		name     string
		build    func() eventstore.Filter
		validate func(t *testing.T, f eventstore.Filter)
	}{
		{
			name: "matching_any_event_creates_empty_filter",
			build: func() eventstore.Filter {
				return eventstore.MatchingAnyEvent()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Empty(t, f.Items())
				assert.True(t, f.SelectsEverything())
				assert.Equal(t, "*", f.String())
			},
		},
		{
			name: "event_types_are_sorted_and_deduplicated",
			build: func() eventstore.Filter {
				return eventstore.NewFilter(eventstore.Select("ReservationPlaced", "", "BookCopyLentToBorrower", "ReservationPlaced"))
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BookCopyLentToBorrower", "ReservationPlaced"}, f.Items()[0].EventTypes())
				assert.Empty(t, f.Items()[0].Predicates())
			},
		},
		{
			name: "partial_predicates_are_removed",
			build: func() eventstore.Filter {
				return eventstore.NewFilter(
					eventstore.Select("BookCopyLentToBorrower").
						Where(eventstore.P("TitleID", "t-1"), eventstore.P("", "x"), eventstore.P("CopyID", "")),
				)
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items()[0].Predicates(), 1)
				assert.Equal(t, "TitleID", f.Items()[0].Predicates()[0].Key())
				assert.Equal(t, "t-1", f.Items()[0].Predicates()[0].Val())
			},
		},
		{
			name: "predicates_are_sorted_by_key_and_value",
			build: func() eventstore.Filter {
				return eventstore.NewFilter(
					eventstore.SelectAnyEventType().
						Where(eventstore.P("TitleID", "b"), eventstore.P("BorrowerID", "z"), eventstore.P("TitleID", "a"), eventstore.P("TitleID", "a")),
				)
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				predicates := f.Items()[0].Predicates()
				assert.Len(t, predicates, 3)
				assert.Equal(t, eventstore.P("BorrowerID", "z"), predicates[0])
				assert.Equal(t, eventstore.P("TitleID", "a"), predicates[1])
				assert.Equal(t, eventstore.P("TitleID", "b"), predicates[2])
			},
		},
		{
			name: "empty_items_are_dropped",
			build: func() eventstore.Filter {
				return eventstore.NewFilter(eventstore.SelectAnyEventType(), eventstore.Select("BorrowerRegistered"))
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, "(BorrowerRegistered)", f.String())
			},
		},
		{
			name: "where_all_sets_the_and_flag",
			build: func() eventstore.Filter {
				return eventstore.NewFilter(
					eventstore.Select("FineCharged").WhereAll(eventstore.P("BorrowerID", "b-1"), eventstore.P("TitleID", "t-1")),
				)
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.True(t, f.Items()[0].AllPredicatesMustMatch())
				assert.Equal(t, "(FineCharged)[BorrowerID=b-1 & TitleID=t-1]", f.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.build())
		})
	}
}

func Test_Filter_Matches(t *testing.T) {
	titleStream := eventstore.NewFilter(
		eventstore.Select("BookCopyLentToBorrower", "BookCopyReturnedByBorrower").
			Where(eventstore.P("TitleID", "t-1")),
		eventstore.Select("FineCharged").
			WhereAll(eventstore.P("BorrowerID", "b-1"), eventstore.P("TitleID", "t-1")),
	)

	tests := []struct {
		name      string
		eventType string
		payload   map[string]string
		expected  bool
	}{
		{"type_and_predicate_match", "BookCopyLentToBorrower", map[string]string{"TitleID": "t-1"}, true},
		{"predicate_mismatch", "BookCopyLentToBorrower", map[string]string{"TitleID": "t-2"}, false},
		{"type_mismatch", "ReservationPlaced", map[string]string{"TitleID": "t-1"}, false},
		{"missing_key", "BookCopyReturnedByBorrower", map[string]string{"CopyID": "c-1"}, false},
		{"all_predicates_match", "FineCharged", map[string]string{"BorrowerID": "b-1", "TitleID": "t-1"}, true},
		{"only_one_of_all_predicates_matches", "FineCharged", map[string]string{"BorrowerID": "b-1", "TitleID": "t-9"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, titleStream.Matches(tt.eventType, payloadOf(tt.payload)))
		})
	}
}

func Test_Filter_MatchingAnyEvent_MatchesEverything(t *testing.T) {
	filter := eventstore.MatchingAnyEvent()

	assert.True(t, filter.Matches("Whatever", payloadOf(nil)))
}
