package usecase_recommend

import (
	"fmt"
	"sort"

	"github.com/reeltaste/core/internal/model"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
)

// genreAffinity averages the user's own scores grouped by each rated
// title's primary genre.
func (u *Usecase) genreAffinity(s *usecase_session.Session) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}

	movieGenre := map[string]string{}
	for _, m := range u.catalog.Movies() {
		movieGenre[m.ID.String()] = m.PrimaryGenre()
	}
	showGenre := map[string]string{}
	for _, sh := range u.catalog.Shows() {
		showGenre[sh.ID.String()] = sh.PrimaryGenre()
	}

	for _, r := range s.MovieRatings() {
		if g := movieGenre[r.MovieID.String()]; g != "" {
			sums[g] += r.Score
			counts[g]++
		}
	}
	for _, r := range s.ShowRatings() {
		if g := showGenre[r.ShowID.String()]; g != "" {
			sums[g] += r.Score
			counts[g]++
		}
	}

	affinity := make(map[string]float64, len(sums))
	for g, sum := range sums {
		affinity[g] = sum / float64(counts[g])
	}
	return affinity
}

// rankByTaste sorts by the affinity of each candidate's primary genre,
// descending, genres the user never scored last.
func (u *Usecase) rankByTaste(s *usecase_session.Session, cands []candidate) []Recommendation {
	affinity := u.genreAffinity(s)

	sort.SliceStable(cands, func(i, j int) bool {
		ai, iok := affinity[cands[i].primary]
		aj, jok := affinity[cands[j].primary]
		if iok != jok {
			return iok
		}
		return ai > aj
	})

	out := make([]Recommendation, len(cands))
	for i, c := range cands {
		rec := c.rec
		if avg, ok := affinity[c.primary]; ok {
			rec.Reason = fmt.Sprintf("Because you rate %s %.1f on average", c.primary, avg)
		} else {
			rec.Reason = "Time to explore something new"
		}
		out[i] = rec
	}
	return out
}

// rankByFriends keeps only candidates an actual friend has rated in the
// activity stream, sorted by the best friend score, descending.
func (u *Usecase) rankByFriends(s *usecase_session.Session, cands []candidate) []Recommendation {
	type friendScore struct {
		name  string
		score float64
	}
	best := map[model.ContentRef]friendScore{}

	friendNames := map[string]string{}
	for _, f := range s.Friends() {
		friendNames[f.ID.String()] = f.DisplayName
	}

	for _, a := range s.Feed() {
		name, isFriend := friendNames[a.UserID.String()]
		if !isFriend {
			continue
		}
		if cur, ok := best[a.Ref]; !ok || a.Score > cur.score {
			best[a.Ref] = friendScore{name: name, score: a.Score}
		}
	}

	var out []Recommendation
	for _, c := range cands {
		fs, ok := best[c.rec.Ref]
		if !ok {
			continue
		}
		rec := c.rec
		rec.Reason = fmt.Sprintf("%s rated it %.1f", fs.name, fs.score)
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return best[out[i].Ref].score > best[out[j].Ref].score
	})
	return out
}

// rankByCommunity sorts by community average, descending.
func rankByCommunity(cands []candidate, lookup func(model.ContentRef) (float64, int)) []Recommendation {
	sort.SliceStable(cands, func(i, j int) bool {
		ri, _ := lookup(cands[i].rec.Ref)
		rj, _ := lookup(cands[j].rec.Ref)
		return ri > rj
	})

	out := make([]Recommendation, len(cands))
	for i, c := range cands {
		rating, raters := lookup(c.rec.Ref)
		rec := c.rec
		rec.Reason = fmt.Sprintf("Community average %.1f from %d ratings", rating, raters)
		out[i] = rec
	}
	return out
}
