package card

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRatingOrdering(t *testing.T) {
	if !(RatingAgain < RatingHard && RatingHard < RatingGood && RatingGood < RatingEasy) {
		t.Fatal("rating severity ordering broken")
	}
}

func TestRatingRoundTrip(t *testing.T) {
	for _, r := range AllRatings() {
		parsed, err := ParseRating(r.String())
		if err != nil {
			t.Fatalf("ParseRating(%q): %v", r.String(), err)
		}
		if parsed != r {
			t.Errorf("round trip %v: got %v", r, parsed)
		}
	}
}

func TestParseRatingUnknown(t *testing.T) {
	if _, err := ParseRating("meh"); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("want ErrInvalidRating, got %v", err)
	}
}

func TestRatingIsCorrect(t *testing.T) {
	tests := []struct {
		rating Rating
		want   bool
	}{
		{RatingAgain, false},
		{RatingHard, false},
		{RatingGood, true},
		{RatingEasy, true},
	}
	for _, tt := range tests {
		if got := tt.rating.IsCorrect(); got != tt.want {
			t.Errorf("%v.IsCorrect() = %v, want %v", tt.rating, got, tt.want)
		}
	}
}

func TestRatingJSON(t *testing.T) {
	data, err := json.Marshal(RatingGood)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"good"` {
		t.Fatalf("marshal: got %s", data)
	}

	var r Rating
	if err := json.Unmarshal([]byte(`"easy"`), &r); err != nil {
		t.Fatal(err)
	}
	if r != RatingEasy {
		t.Fatalf("unmarshal: got %v", r)
	}

	if err := json.Unmarshal([]byte(`"bogus"`), &r); err == nil {
		t.Fatal("expected error for unknown rating")
	}
	if _, err := json.Marshal(Rating(99)); err == nil {
		t.Fatal("expected error marshaling invalid rating")
	}
}
