package report

import (
	"sort"
	"strings"

	"github.com/gudangops/whmonitor/internal/domain"
)

// Scoreboard accumulates per-identity scores while remembering first-seen
// order, so that equal scores rank in input-traversal order. Identities are
// folded case-insensitively; the first-seen spelling is kept for display.
type Scoreboard struct {
	order []string
	name  map[string]string
	score map[string]int
	keys  map[string]map[string]struct{}
	info  map[string]rankInfo

	// Label formats the score text per entry from its total score and its
	// distinct key count. Nil leaves the label empty.
	Label func(score, distinct int) string
}

type rankInfo struct {
	divisi  string
	jobdesc string
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{name: make(map[string]string), score: make(map[string]int)}
}

func identityKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *Scoreboard) touch(name string) string {
	id := identityKey(name)
	if _, ok := s.name[id]; !ok {
		s.order = append(s.order, id)
		s.name[id] = strings.TrimSpace(name)
		s.score[id] = 0
	}
	return id
}

// Add adds v to name's score. Empty names are skipped.
func (s *Scoreboard) Add(name string, v int) {
	if identityKey(name) == "" {
		return
	}
	id := s.touch(name)
	s.score[id] += v
}

// AddKey records a distinct non-empty key for name, for example a counted
// location. Keys feed the label only, never the score.
func (s *Scoreboard) AddKey(name, key string) {
	if identityKey(name) == "" || key == "" {
		return
	}
	id := s.touch(name)
	if s.keys == nil {
		s.keys = make(map[string]map[string]struct{})
	}
	set, ok := s.keys[id]
	if !ok {
		set = make(map[string]struct{})
		s.keys[id] = set
	}
	set[key] = struct{}{}
}

// Describe attaches division and jobdesc to name without scoring anything.
// Names never scored are not ranked, so describing the whole employee
// master is safe.
func (s *Scoreboard) Describe(name, divisi, jobdesc string) {
	id := identityKey(name)
	if id == "" {
		return
	}
	if s.info == nil {
		s.info = make(map[string]rankInfo)
	}
	s.info[id] = rankInfo{divisi: divisi, jobdesc: jobdesc}
}

// Ranking returns entries sorted by score descending, ties in first-seen
// order. Identities whose total score is zero are excluded entirely.
func (s *Scoreboard) Ranking() []domain.RankItem {
	items := make([]domain.RankItem, 0, len(s.order))
	for _, id := range s.order {
		score := s.score[id]
		if score == 0 {
			continue
		}
		it := domain.RankItem{Name: s.name[id], Score: score}
		if info, ok := s.info[id]; ok {
			it.Divisi = info.divisi
			it.Jobdesc = info.jobdesc
		}
		if s.Label != nil {
			it.Label = s.Label(score, len(s.keys[id]))
		}
		items = append(items, it)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	for i := range items {
		items[i].Rank = i + 1
	}

	return items
}

// SplitPodium packages a ranking as a leaderboard: the top three form the
// podium, the remainder a flat list starting at rank 4.
func SplitPodium(category string, items []domain.RankItem) domain.Leaderboard {
	b := domain.Leaderboard{Category: category, Podium: []domain.RankItem{}, Others: []domain.RankItem{}}
	for _, it := range items {
		if it.Rank <= 3 {
			b.Podium = append(b.Podium, it)
		} else {
			b.Others = append(b.Others, it)
		}
	}

	return b
}
