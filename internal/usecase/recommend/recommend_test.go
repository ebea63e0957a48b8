package usecase_recommend

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/reeltaste/core/internal/model"
	"github.com/reeltaste/core/internal/seed"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
	"github.com/stretchr/testify/assert"
)

type RecommendSuite struct {
	suite.Suite
}

type stubCatalog struct {
	movies []model.Movie
	shows  []model.Show
}

func (c stubCatalog) Movies() []model.Movie { return c.movies }
func (c stubCatalog) Shows() []model.Show   { return c.shows }

func seededCatalog() stubCatalog {
	data := seed.Load()
	return stubCatalog{movies: data.Movies, shows: data.Shows}
}

func seededSession() *usecase_session.Session {
	return usecase_session.New(uuid.New().String(), seed.Load())
}

// identityShuffle keeps the ranked order, so picks are deterministic.
func identityShuffle(n int, swap func(i, j int)) {}

func (suite *RecommendSuite) TestSpinExcludesRated(t provider.T) {
	t.Parallel()

	s := seededSession()
	uc := New(seededCatalog(), WithShuffle(identityShuffle))

	rated := map[model.ContentRef]bool{}
	for _, r := range s.MovieRatings() {
		rated[model.ContentRef{Type: model.ContentMovie, ID: r.MovieID}] = true
	}
	for _, r := range s.ShowRatings() {
		rated[model.ContentRef{Type: model.ContentShow, ID: r.ShowID}] = true
	}

	res := uc.Spin(s, SourceCommunity, FilterBoth)

	assert.NotNil(t, res.Pick)
	assert.False(t, rated[res.Pick.Ref])
	for _, alt := range res.Alternates {
		assert.False(t, rated[alt.Ref])
	}
}

func (suite *RecommendSuite) TestSpinEmptyPool(t provider.T) {
	t.Parallel()

	only := model.Movie{ID: uuid.New(), Title: "The Only One", Genres: []string{"Drama"}}
	data := seed.Load()
	s := usecase_session.New(uuid.New().String(), data)
	s.AddMovieRating(model.MovieRating{MovieID: only.ID, Score: 8.0})

	uc := New(stubCatalog{movies: []model.Movie{only}}, WithShuffle(identityShuffle))

	res := uc.Spin(s, SourceTaste, FilterMovie)

	assert.Nil(t, res.Pick)
	assert.Empty(t, res.Alternates)
	assert.NotEmpty(t, res.Message)
}

func (suite *RecommendSuite) TestTypeFilter(t provider.T) {
	t.Parallel()

	s := seededSession()
	uc := New(seededCatalog(), WithShuffle(identityShuffle))

	res := uc.Spin(s, SourceCommunity, FilterShow)

	assert.NotNil(t, res.Pick)
	assert.Equal(t, model.ContentShow, res.Pick.Ref.Type)
	for _, alt := range res.Alternates {
		assert.Equal(t, model.ContentShow, alt.Ref.Type)
	}
}

func (suite *RecommendSuite) TestCommunityRanking(t provider.T) {
	t.Parallel()

	s := seededSession()
	uc := New(seededCatalog(), WithShuffle(identityShuffle))

	// Interstellar leads the community table but is already rated;
	// the top unrated movie takes the pick.
	res := uc.Spin(s, SourceCommunity, FilterMovie)

	assert.NotNil(t, res.Pick)
	assert.Equal(t, "Dune: Part Two", res.Pick.Title)
	assert.Contains(t, res.Pick.Reason, "Community average")
}

func (suite *RecommendSuite) TestFriendsRanking(t provider.T) {
	t.Parallel()

	s := seededSession()
	uc := New(seededCatalog(), WithShuffle(identityShuffle))

	res := uc.Spin(s, SourceFriends, FilterBoth)

	assert.NotNil(t, res.Pick)
	assert.Equal(t, "Everything Everywhere All at Once", res.Pick.Title)
	assert.Contains(t, res.Pick.Reason, "Priya Nair rated it 9.6")

	// The user's own feed posts never count as friend signal.
	for _, alt := range res.Alternates {
		assert.NotEqual(t, "Knives Out", alt.Title)
	}
}

func (suite *RecommendSuite) TestTasteReasons(t provider.T) {
	t.Parallel()

	s := seededSession()
	uc := New(seededCatalog(), WithShuffle(identityShuffle))

	res := uc.Spin(s, SourceTaste, FilterMovie)

	assert.NotNil(t, res.Pick)
	assert.Contains(t, res.Pick.Reason, "Because you rate")
}

func (suite *RecommendSuite) TestNextAdvancesWithoutReshuffle(t provider.T) {
	t.Parallel()

	s := seededSession()
	uc := New(seededCatalog(), WithShuffle(identityShuffle))

	first := uc.Spin(s, SourceCommunity, FilterMovie)
	second := uc.Next(s, SourceCommunity, FilterMovie)

	assert.NotNil(t, first.Pick)
	assert.NotNil(t, second.Pick)
	assert.NotEqual(t, first.Pick.Ref, second.Pick.Ref)
	// With a stable order, the next pick is the first result's top
	// alternate.
	assert.Equal(t, first.Alternates[0].Ref, second.Pick.Ref)
}

func (suite *RecommendSuite) TestNextWithChangedSourceRespins(t provider.T) {
	t.Parallel()

	s := seededSession()
	uc := New(seededCatalog(), WithShuffle(identityShuffle))

	uc.Spin(s, SourceCommunity, FilterMovie)
	res := uc.Next(s, SourceFriends, FilterBoth)

	assert.NotNil(t, res.Pick)
	// Fresh spin for the new source starts at the top of its own order.
	assert.Equal(t, "Everything Everywhere All at Once", res.Pick.Title)
}

func (suite *RecommendSuite) TestNextWithoutPriorSpin(t provider.T) {
	t.Parallel()

	s := seededSession()
	uc := New(seededCatalog(), WithShuffle(identityShuffle))

	res := uc.Next(s, SourceCommunity, FilterMovie)

	assert.NotNil(t, res.Pick)
	assert.Equal(t, "Dune: Part Two", res.Pick.Title)
}

func (suite *RecommendSuite) TestAlternatesCapped(t provider.T) {
	t.Parallel()

	s := seededSession()
	uc := New(seededCatalog(), WithShuffle(identityShuffle))

	res := uc.Spin(s, SourceCommunity, FilterBoth)

	assert.NotNil(t, res.Pick)
	assert.LessOrEqual(t, len(res.Alternates), alternatesShown)
}

func TestRecommendSuite(t *testing.T) {
	suite.RunSuite(t, new(RecommendSuite))
}
