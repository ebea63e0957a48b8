// Package usecase_recommend implements the "What's Next" selector: rank
// unrated catalog titles for a source, shuffle, surface one pick plus a
// short queue of alternates.
package usecase_recommend

import (
	"math/rand"
	"sync"

	"github.com/reeltaste/core/internal/metrics"
	"github.com/reeltaste/core/internal/model"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
)

type Source string

const (
	SourceTaste     Source = "taste"
	SourceFriends   Source = "friends"
	SourceCommunity Source = "community"
)

func (s Source) Valid() bool {
	return s == SourceTaste || s == SourceFriends || s == SourceCommunity
}

type TypeFilter string

const (
	FilterMovie TypeFilter = "movie"
	FilterShow  TypeFilter = "show"
	FilterBoth  TypeFilter = "both"
)

func (f TypeFilter) Valid() bool {
	return f == FilterMovie || f == FilterShow || f == FilterBoth
}

// Number of alternates shown beside the pick; the rest stays queued.
const alternatesShown = 5

type Catalog interface {
	Movies() []model.Movie
	Shows() []model.Show
}

type Recommendation struct {
	Ref    model.ContentRef
	Title  string
	Year   int
	Genres []string
	Poster string
	Reason string
}

// SpinResult is what one spin surfaces. A nil Pick with a non-empty
// Message is the sentinel for an exhausted candidate pool.
type SpinResult struct {
	Pick       *Recommendation
	Alternates []Recommendation
	Message    string
}

type spinState struct {
	source Source
	filter TypeFilter
	queue  []Recommendation
	pos    int
}

type Usecase struct {
	catalog Catalog

	mu      sync.Mutex
	spins   map[string]*spinState
	shuffle func(n int, swap func(i, j int))
}

type UsecaseOption func(*Usecase)

// WithShuffle replaces the permutation, used by tests that need a stable
// order.
func WithShuffle(shuffle func(n int, swap func(i, j int))) UsecaseOption {
	return func(u *Usecase) {
		u.shuffle = shuffle
	}
}

func New(catalog Catalog, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		catalog: catalog,
		spins:   make(map[string]*spinState),
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Spin ranks the unrated candidates for the source, shuffles them and
// holds the remainder as the session's queue.
func (u *Usecase) Spin(s *usecase_session.Session, source Source, filter TypeFilter) SpinResult {
	metrics.SpinsTotal.WithLabelValues(string(source)).Inc()

	ranked := u.rank(s, source, filter)
	if len(ranked) == 0 {
		return SpinResult{Message: emptyPoolMessage(source)}
	}

	u.shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})

	u.mu.Lock()
	u.spins[s.ID()] = &spinState{source: source, filter: filter, queue: ranked, pos: 0}
	u.mu.Unlock()

	return u.resultAt(ranked, 0)
}

// Next advances through the queue held by the last spin without
// re-shuffling. An exhausted queue (or no prior spin) triggers a fresh
// spin with the given parameters.
func (u *Usecase) Next(s *usecase_session.Session, source Source, filter TypeFilter) SpinResult {
	u.mu.Lock()
	state, ok := u.spins[s.ID()]
	if ok && state.source == source && state.filter == filter && state.pos+1 < len(state.queue) {
		state.pos++
		queue, pos := state.queue, state.pos
		u.mu.Unlock()
		return u.resultAt(queue, pos)
	}
	u.mu.Unlock()

	return u.Spin(s, source, filter)
}

func (u *Usecase) resultAt(queue []Recommendation, pos int) SpinResult {
	pick := queue[pos]
	alternates := queue[pos+1:]
	if len(alternates) > alternatesShown {
		alternates = alternates[:alternatesShown]
	}
	out := make([]Recommendation, len(alternates))
	copy(out, alternates)
	return SpinResult{Pick: &pick, Alternates: out}
}

func emptyPoolMessage(source Source) string {
	switch source {
	case SourceFriends:
		return "Your friends haven't rated anything you've missed. Time to lead for once."
	default:
		return "You've rated everything we've got. Impressive, honestly."
	}
}

type candidate struct {
	rec     Recommendation
	primary string
}

// rank builds the ordered candidate list for a source. Already-rated
// titles are excluded by content id.
func (u *Usecase) rank(s *usecase_session.Session, source Source, filter TypeFilter) []Recommendation {
	rated := ratedIDs(s)
	var cands []candidate

	type communityInfo struct {
		rating float64
		raters int
	}
	info := map[model.ContentRef]communityInfo{}

	if filter == FilterMovie || filter == FilterBoth {
		for _, m := range u.catalog.Movies() {
			if rated[m.Ref()] {
				continue
			}
			cands = append(cands, candidate{
				rec: Recommendation{
					Ref:    m.Ref(),
					Title:  m.Title,
					Year:   m.Year,
					Genres: m.Genres,
					Poster: m.PosterLink,
				},
				primary: m.PrimaryGenre(),
			})
			info[m.Ref()] = communityInfo{rating: m.CommunityRating, raters: m.RaterCount}
		}
	}
	if filter == FilterShow || filter == FilterBoth {
		for _, sh := range u.catalog.Shows() {
			if rated[sh.Ref()] {
				continue
			}
			cands = append(cands, candidate{
				rec: Recommendation{
					Ref:    sh.Ref(),
					Title:  sh.Title,
					Year:   sh.Year,
					Genres: sh.Genres,
					Poster: sh.PosterLink,
				},
				primary: sh.PrimaryGenre(),
			})
			info[sh.Ref()] = communityInfo{rating: sh.CommunityRating, raters: sh.RaterCount}
		}
	}

	switch source {
	case SourceTaste:
		return u.rankByTaste(s, cands)
	case SourceFriends:
		return u.rankByFriends(s, cands)
	default:
		return rankByCommunity(cands, func(ref model.ContentRef) (float64, int) {
			ci := info[ref]
			return ci.rating, ci.raters
		})
	}
}

func ratedIDs(s *usecase_session.Session) map[model.ContentRef]bool {
	rated := map[model.ContentRef]bool{}
	for _, r := range s.MovieRatings() {
		rated[model.ContentRef{Type: model.ContentMovie, ID: r.MovieID}] = true
	}
	for _, r := range s.ShowRatings() {
		rated[model.ContentRef{Type: model.ContentShow, ID: r.ShowID}] = true
	}
	return rated
}
