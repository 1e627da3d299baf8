package recommend

import (
	"testing"
	"time"

	"github.com/avelis/mnemo/internal/card"
	"github.com/avelis/mnemo/internal/progress"
)

var recNow = time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)

func dueCard(id, subject string, lapsed bool) card.Flashcard {
	c := card.New(id, subject, "q", "a", card.DifficultyMedium)
	c.TotalReviews = 4
	c.CorrectCount = 2
	c.RepetitionCount = 2
	if lapsed {
		c.RepetitionCount = 0
	}
	c.NextReviewDate = recNow.AddDate(0, 0, -1)
	return c
}

func futureCard(id, subject string) card.Flashcard {
	c := dueCard(id, subject, false)
	c.NextReviewDate = recNow.AddDate(0, 0, 3)
	return c
}

func emptyProgress() progress.LearningProgress {
	return progress.LearningProgress{Subjects: map[string]progress.SubjectProgress{}}
}

func typesOf(recs []Recommendation) map[Type]Recommendation {
	out := make(map[Type]Recommendation, len(recs))
	for _, r := range recs {
		out[r.Type] = r
	}
	return out
}

func TestRecommend_EmptyCards(t *testing.T) {
	recs, err := Recommend(nil, emptyProgress(), 0, recNow)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d recommendations, want 0", len(recs))
	}
}

func TestRecommend_OverdueIsAggregateAndCritical(t *testing.T) {
	cards := []card.Flashcard{
		dueCard("c1", "algebra", false),
		dueCard("c2", "algebra", false),
		dueCard("c3", "geometry", false),
	}

	recs, err := Recommend(cards, emptyProgress(), 0, recNow)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	overdueCount := 0
	for _, r := range recs {
		if r.Type == TypeOverdueReview {
			overdueCount++
			if r.Priority != PriorityCritical {
				t.Errorf("overdue priority = %v, want critical", r.Priority)
			}
		}
	}
	if overdueCount != 1 {
		t.Errorf("got %d overdue recommendations, want 1 aggregate", overdueCount)
	}
}

func TestRecommend_WeakAreaPerSubject(t *testing.T) {
	prog := progress.LearningProgress{Subjects: map[string]progress.SubjectProgress{
		"algebra":  {SubjectID: "algebra", ReviewedCards: 10, CorrectCount: 3, Accuracy: 0.3},
		"geometry": {SubjectID: "geometry", ReviewedCards: 10, CorrectCount: 9, Accuracy: 0.9},
	}}

	recs, err := Recommend([]card.Flashcard{futureCard("c1", "algebra")}, prog, 0, recNow)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	byType := typesOf(recs)
	weak, ok := byType[TypeWeakArea]
	if !ok {
		t.Fatal("expected a weak-area recommendation")
	}
	if weak.SubjectID != "algebra" {
		t.Errorf("weak area subject = %q, want algebra", weak.SubjectID)
	}
	if weak.Priority != PriorityHigh {
		t.Errorf("weak area priority = %v, want high", weak.Priority)
	}
}

func TestRecommend_LapsedAndNewContent(t *testing.T) {
	cards := []card.Flashcard{
		dueCard("c1", "algebra", true),
		card.New("c2", "algebra", "q", "a", card.DifficultyEasy),
	}

	recs, err := Recommend(cards, emptyProgress(), 0, recNow)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	byType := typesOf(recs)
	if _, ok := byType[TypeLapsedReview]; !ok {
		t.Error("expected a lapsed-review recommendation")
	}
	newContent, ok := byType[TypeNewContent]
	if !ok {
		t.Fatal("expected a new-content recommendation")
	}
	if newContent.Priority != PriorityMedium {
		t.Errorf("new content priority = %v, want medium", newContent.Priority)
	}
}

func TestRecommend_SortedByPriorityAndCapped(t *testing.T) {
	prog := progress.LearningProgress{Subjects: map[string]progress.SubjectProgress{
		"weak1": {SubjectID: "weak1", ReviewedCards: 5, CorrectCount: 1, Accuracy: 0.2},
		"weak2": {SubjectID: "weak2", ReviewedCards: 5, CorrectCount: 1, Accuracy: 0.2},
	}}
	cards := []card.Flashcard{
		dueCard("c1", "algebra", false),
		dueCard("c2", "algebra", true),
		card.New("c3", "algebra", "q", "a", card.DifficultyEasy),
	}

	recs, err := Recommend(cards, prog, 0, recNow)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) < 4 {
		t.Fatalf("got %d recommendations, want at least 4", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Priority < recs[i-1].Priority {
			t.Errorf("recommendations out of order at %d: %v after %v", i, recs[i].Priority, recs[i-1].Priority)
		}
	}
	if recs[0].Type != TypeOverdueReview {
		t.Errorf("first recommendation = %v, want overdue review", recs[0].Type)
	}

	capped, err := Recommend(cards, prog, 2, recNow)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(capped) != 2 {
		t.Errorf("got %d recommendations with limit 2, want 2", len(capped))
	}
}

func TestRecommend_UniqueIDsAndPositiveEstimates(t *testing.T) {
	cards := []card.Flashcard{
		dueCard("c1", "algebra", true),
		card.New("c2", "algebra", "q", "a", card.DifficultyEasy),
	}

	recs, err := Recommend(cards, emptyProgress(), 0, recNow)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	seen := make(map[string]bool)
	for _, r := range recs {
		if r.ID == "" || seen[r.ID] {
			t.Errorf("duplicate or empty recommendation ID %q", r.ID)
		}
		seen[r.ID] = true
		if r.EstimatedMinutes <= 0 {
			t.Errorf("%v: EstimatedMinutes = %d, want positive", r.Type, r.EstimatedMinutes)
		}
	}
}

func TestRecommend_NegativeLimit(t *testing.T) {
	if _, err := Recommend(nil, emptyProgress(), -1, recNow); err == nil {
		t.Error("expected error for negative limit")
	}
}
