package report

import (
	"fmt"
	"testing"
)

func TestScoreboardRanking(t *testing.T) {
	sb := NewScoreboard()
	sb.Add("Andi", 10)
	sb.Add("Budi", 25)
	sb.Add("Citra", 5)
	sb.Add("Andi", 7)
	sb.Add("Dewi", 0)

	got := sb.Ranking()
	wantNames := []string{"Budi", "Andi", "Citra"}
	if len(got) != len(wantNames) {
		t.Fatalf("got %d items, want %d (zero scores excluded)", len(got), len(wantNames))
	}
	for i, name := range wantNames {
		if got[i].Name != name || got[i].Rank != i+1 {
			t.Errorf("rank %d = %+v, want name %q", i+1, got[i], name)
		}
	}
	if got[0].Score != 25 || got[1].Score != 17 {
		t.Errorf("scores = %d, %d; want 25, 17", got[0].Score, got[1].Score)
	}
}

func TestScoreboardTiesKeepFirstSeenOrder(t *testing.T) {
	sb := NewScoreboard()
	sb.Add("Late", 1)
	sb.Add("First", 10)
	sb.Add("Second", 10)
	sb.Add("Third", 10)

	got := sb.Ranking()
	want := []string{"First", "Second", "Third", "Late"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d = %q, want %q (stable ties)", i, got[i].Name, name)
		}
	}
}

func TestScoreboardFoldsIdentity(t *testing.T) {
	sb := NewScoreboard()
	sb.Add("Andi", 10)
	sb.Add(" andi ", 5)
	sb.Add("ANDI", 3)

	got := sb.Ranking()
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1 folded identity", len(got))
	}
	if got[0].Name != "Andi" || got[0].Score != 18 {
		t.Errorf("folded = %+v, want Andi with 18", got[0])
	}
}

func TestScoreboardKeysFeedLabelNotScore(t *testing.T) {
	sb := NewScoreboard()
	sb.Label = func(score, distinct int) string {
		return fmt.Sprintf("%d qty • %d loc", score, distinct)
	}
	sb.Add("Andi", 20)
	sb.AddKey("Andi", "LOC-1")
	sb.AddKey("Andi", "LOC-1")
	sb.AddKey("Andi", "LOC-2")
	sb.AddKey("Budi", "LOC-1")

	got := sb.Ranking()
	// Budi only touched a location and never scored, so he is excluded.
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1", len(got))
	}
	if got[0].Score != 20 {
		t.Errorf("score = %d, want 20 (keys must not inflate it)", got[0].Score)
	}
	if got[0].Label != "20 qty • 2 loc" {
		t.Errorf("label = %q, want %q", got[0].Label, "20 qty • 2 loc")
	}
}

func TestScoreboardDescribe(t *testing.T) {
	sb := NewScoreboard()
	sb.Describe("Andi", "Inbound", "Receive")
	sb.Describe("Dewi", "Return", "Return")
	sb.Add("andi", 7)

	got := sb.Ranking()
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1 (described but unscored names excluded)", len(got))
	}
	if got[0].Divisi != "Inbound" || got[0].Jobdesc != "Receive" {
		t.Errorf("metadata = %+v, want Inbound/Receive", got[0])
	}
}

func TestSplitPodium(t *testing.T) {
	sb := NewScoreboard()
	for i, name := range []string{"A", "B", "C", "D", "E"} {
		sb.Add(name, 50-i)
	}
	b := SplitPodium("inspection", sb.Ranking())

	if b.Category != "inspection" {
		t.Errorf("category = %q", b.Category)
	}
	if len(b.Podium) != 3 || len(b.Others) != 2 {
		t.Fatalf("podium/others = %d/%d, want 3/2", len(b.Podium), len(b.Others))
	}
	if b.Others[0].Rank != 4 {
		t.Errorf("first non-podium rank = %d, want 4", b.Others[0].Rank)
	}
}

func TestSplitPodiumSmall(t *testing.T) {
	sb := NewScoreboard()
	sb.Add("Solo", 3)
	b := SplitPodium("vas", sb.Ranking())
	if len(b.Podium) != 1 || len(b.Others) != 0 {
		t.Errorf("podium/others = %d/%d, want 1/0", len(b.Podium), len(b.Others))
	}
}
