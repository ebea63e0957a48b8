// Package seed holds the static demo dataset a fresh session starts from.
// IDs are derived with uuid.NewSHA1 over stable names so tests and clients
// can refer to seeded entities without round-tripping a listing first.
package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/reeltaste/core/internal/model"
)

var namespace = uuid.MustParse("8f1f4c3a-2a65-4d73-9c9e-5b33a1f0d9b2")

// ID builds the deterministic uuid for a seeded entity.
func ID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(kind+":"+name))
}

type Data struct {
	Users         []model.User
	Movies        []model.Movie
	Shows         []model.Show
	MovieRatings  []model.MovieRating
	ShowRatings   []model.ShowRating
	Watchlist     []model.WatchlistItem
	Feed          []model.FeedActivity
	Clubs         []model.Club
	Notifications []model.Notification

	DefaultUserID uuid.UUID
}

var epoch = time.Date(2026, time.January, 10, 18, 0, 0, 0, time.UTC)

func at(day int, hour int) time.Time {
	return epoch.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)
}

// Load returns a fresh copy of the dataset. Callers own the result and are
// free to mutate it.
func Load() *Data {
	d := &Data{DefaultUserID: ID("user", "mara")}
	d.Users = users()
	d.Movies = movies()
	d.Shows = shows()
	d.MovieRatings = movieRatings()
	d.ShowRatings = showRatings()
	d.Watchlist = watchlist()
	d.Feed = feed()
	d.Clubs = clubs()
	d.Notifications = notifications()
	return d
}

func users() []model.User {
	friendsOf := func(handles ...string) []model.Friend {
		matches := map[string]int{"mara": 100, "theo": 87, "june": 74, "priya": 91, "sam": 63, "alex": 58}
		fs := make([]model.Friend, 0, len(handles))
		for _, h := range handles {
			fs = append(fs, model.Friend{UserID: ID("user", h), TasteMatch: matches[h]})
		}
		return fs
	}

	return []model.User{
		{
			ID:          ID("user", "mara"),
			Handle:      "mara",
			DisplayName: "Mara Voss",
			Bio:         "Sci-fi first, everything else second.",
			AvatarColor: "#7c5cff",
			MountRushmore: []model.ContentRef{
				{Type: model.ContentMovie, ID: ID("movie", "Interstellar")},
				{Type: model.ContentMovie, ID: ID("movie", "Whiplash")},
				{Type: model.ContentShow, ID: ID("show", "Severance")},
			},
			Friends: friendsOf("theo", "june", "priya", "sam"),
		},
		{
			ID:          ID("user", "theo"),
			Handle:      "theo",
			DisplayName: "Theo Marsh",
			Bio:         "Will defend three-hour runtimes.",
			AvatarColor: "#ff8a3d",
			Friends:     friendsOf("mara", "june", "alex"),
		},
		{
			ID:          ID("user", "june"),
			Handle:      "june",
			DisplayName: "June Okafor",
			Bio:         "Comfort rewatcher.",
			AvatarColor: "#2dd4bf",
			Friends:     friendsOf("mara", "theo"),
		},
		{
			ID:          ID("user", "priya"),
			Handle:      "priya",
			DisplayName: "Priya Nair",
			Bio:         "A24 completionist.",
			AvatarColor: "#f43f5e",
			Friends:     friendsOf("mara", "sam"),
		},
		{
			ID:          ID("user", "sam"),
			Handle:      "sam",
			DisplayName: "Sam Reyes",
			Bio:         "Horror at noon only.",
			AvatarColor: "#fbbf24",
			Friends:     friendsOf("mara", "priya"),
		},
		{
			ID:          ID("user", "alex"),
			Handle:      "alex",
			DisplayName: "Alex Kim",
			Bio:         "",
			AvatarColor: "#60a5fa",
			Friends:     friendsOf("theo"),
		},
	}
}

func movies() []model.Movie {
	mk := func(title string, year int, rating float64, raters int, genres ...string) model.Movie {
		return model.Movie{
			ID:              ID("movie", title),
			Title:           title,
			Year:            year,
			Genres:          genres,
			PosterLink:      "/posters/" + ID("movie", title).String() + ".jpg",
			CommunityRating: rating,
			RaterCount:      raters,
		}
	}

	return []model.Movie{
		mk("Interstellar", 2014, 8.9, 412, "Sci-Fi", "Drama"),
		mk("Dune: Part Two", 2024, 8.7, 356, "Sci-Fi", "Adventure"),
		mk("Whiplash", 2014, 8.6, 298, "Drama", "Music"),
		mk("The Grand Budapest Hotel", 2014, 8.2, 241, "Comedy"),
		mk("Parasite", 2019, 8.8, 389, "Thriller", "Drama"),
		mk("Arrival", 2016, 8.3, 267, "Sci-Fi", "Drama"),
		mk("Mad Max: Fury Road", 2015, 8.4, 302, "Action"),
		mk("La La Land", 2016, 8.0, 278, "Romance", "Music"),
		mk("Get Out", 2017, 8.1, 244, "Horror", "Thriller"),
		mk("Knives Out", 2019, 8.0, 255, "Mystery", "Comedy"),
		mk("The Social Network", 2010, 8.2, 231, "Drama"),
		mk("Blade Runner 2049", 2017, 8.3, 289, "Sci-Fi"),
		mk("Everything Everywhere All at Once", 2022, 8.5, 334, "Sci-Fi", "Comedy"),
		mk("Oppenheimer", 2023, 8.6, 367, "Drama", "History"),
		mk("Past Lives", 2023, 8.1, 198, "Romance", "Drama"),
		mk("Hereditary", 2018, 7.9, 212, "Horror"),
		mk("Spider-Man: Into the Spider-Verse", 2018, 8.4, 276, "Animation", "Action"),
		mk("The Banshees of Inisherin", 2022, 7.8, 187, "Comedy", "Drama"),
	}
}

func shows() []model.Show {
	mk := func(title string, year, seasons int, rating float64, raters int, genres ...string) model.Show {
		return model.Show{
			ID:              ID("show", title),
			Title:           title,
			Year:            year,
			Genres:          genres,
			PosterLink:      "/posters/" + ID("show", title).String() + ".jpg",
			Seasons:         seasons,
			CommunityRating: rating,
			RaterCount:      raters,
		}
	}

	return []model.Show{
		mk("Severance", 2022, 2, 8.9, 311, "Sci-Fi", "Thriller"),
		mk("The Bear", 2022, 3, 8.5, 287, "Drama", "Comedy"),
		mk("Succession", 2018, 4, 8.8, 325, "Drama"),
		mk("Andor", 2022, 2, 8.6, 268, "Sci-Fi"),
		mk("True Detective", 2014, 4, 8.3, 243, "Crime", "Drama"),
		mk("The Last of Us", 2023, 2, 8.4, 291, "Drama", "Horror"),
		mk("Fleabag", 2016, 2, 8.7, 256, "Comedy", "Drama"),
		mk("Better Call Saul", 2015, 6, 8.9, 302, "Crime", "Drama"),
		mk("Dark", 2017, 3, 8.5, 221, "Sci-Fi", "Mystery"),
		mk("Fargo", 2014, 5, 8.6, 234, "Crime"),
	}
}

func movieRatings() []model.MovieRating {
	mk := func(title string, score float64, day int) model.MovieRating {
		return model.MovieRating{
			ID:      ID("movie_rating", title),
			MovieID: ID("movie", title),
			Score:   score,
			RatedAt: at(day, 20),
		}
	}

	r := []model.MovieRating{
		mk("Interstellar", 9.8, -30),
		mk("Whiplash", 9.2, -24),
		mk("Parasite", 9.0, -18),
		mk("Arrival", 8.8, -12),
		mk("Knives Out", 7.9, -6),
	}
	r[0].Favorite = true
	r[0].Review = "Docking scene. That's the review."
	return r
}

func showRatings() []model.ShowRating {
	return []model.ShowRating{
		{
			ID:           ID("show_rating", "Severance"),
			ShowID:       ID("show", "Severance"),
			Score:        9.4,
			Favorite:     true,
			RatedAt:      at(-15, 21),
			SeasonScores: []float64{9.5, 9.3},
		},
		{
			ID:           ID("show_rating", "The Bear"),
			ShowID:       ID("show", "The Bear"),
			Score:        8.7,
			RatedAt:      at(-8, 21),
			SeasonScores: []float64{8.9, 9.1, 8.2},
		},
	}
}

func watchlist() []model.WatchlistItem {
	return []model.WatchlistItem{
		{
			ID:            ID("watchlist", "Dune: Part Two"),
			Ref:           model.ContentRef{Type: model.ContentMovie, ID: ID("movie", "Dune: Part Two")},
			Title:         "Dune: Part Two",
			AddedAt:       at(-5, 9),
			RecommendedBy: ID("user", "theo"),
		},
		{
			ID:      ID("watchlist", "Andor"),
			Ref:     model.ContentRef{Type: model.ContentShow, ID: ID("show", "Andor")},
			Title:   "Andor",
			AddedAt: at(-3, 22),
		},
	}
}

func feed() []model.FeedActivity {
	mk := func(handle string, t model.ContentType, title string, score float64, comment string, day int) model.FeedActivity {
		kind := "movie"
		if t == model.ContentShow {
			kind = "show"
		}
		return model.FeedActivity{
			ID:        ID("activity", handle+":"+title),
			UserID:    ID("user", handle),
			Ref:       model.ContentRef{Type: t, ID: ID(kind, title)},
			Title:     title,
			Score:     score,
			Comment:   comment,
			Reactions: map[model.ReactionKind][]uuid.UUID{},
			PostedAt:  at(day, 19),
		}
	}

	acts := []model.FeedActivity{
		mk("theo", model.ContentMovie, "Dune: Part Two", 9.1, "Sandworm IMAX supremacy.", -4),
		mk("june", model.ContentMovie, "Blade Runner 2049", 8.4, "", -7),
		mk("priya", model.ContentMovie, "Everything Everywhere All at Once", 9.6, "Cried at the rocks. Again.", -9),
		mk("theo", model.ContentShow, "Succession", 9.0, "", -11),
		mk("june", model.ContentShow, "Fleabag", 9.2, "Season two is a perfect object.", -13),
		mk("sam", model.ContentMovie, "Oppenheimer", 8.9, "", -14),
		mk("sam", model.ContentMovie, "Hereditary", 8.8, "Never sleeping again, 9/10.", -16),
		mk("priya", model.ContentShow, "Better Call Saul", 9.3, "", -17),
		mk("mara", model.ContentMovie, "Knives Out", 7.9, "Doughnut hole inside a doughnut's hole.", -6),
		mk("mara", model.ContentMovie, "Arrival", 8.8, "", -12),
	}

	// A few pre-seeded reactions so the feed is not sterile.
	acts[0].Reactions[model.ReactionFire] = []uuid.UUID{ID("user", "mara"), ID("user", "june")}
	acts[0].TaggedUsers = []uuid.UUID{ID("user", "mara")}
	acts[2].Reactions[model.ReactionLike] = []uuid.UUID{ID("user", "sam")}
	acts[2].Reactions[model.ReactionClap] = []uuid.UUID{ID("user", "mara")}
	acts[8].Reactions[model.ReactionLike] = []uuid.UUID{ID("user", "theo")}
	return acts
}

func clubs() []model.Club {
	clubID := ID("club", "severance-sundays")
	msg := func(handle, text string, day int, spoiler bool) model.ClubMessage {
		return model.ClubMessage{
			ID:        ID("message", handle+":"+text),
			AuthorID:  ID("user", handle),
			Text:      text,
			Spoiler:   spoiler,
			SentAt:    at(day, 21),
			Reactions: map[string][]uuid.UUID{},
		}
	}

	m1 := msg("theo", "Tonight 9pm, usual thread. No skipping the intro.", -2, false)
	m2 := msg("mara", "The goat room means something, I can feel it.", -2, true)
	m2.Reactions["😂"] = []uuid.UUID{ID("user", "theo"), ID("user", "june")}
	m3 := msg("june", "Calling it now: Milchick gets an arc.", -1, false)
	m3.Ref = &model.ContentRef{Type: model.ContentShow, ID: ID("show", "Severance")}

	poll := model.Poll{
		ID:       ID("poll", "finale-night"),
		AuthorID: ID("user", "theo"),
		Question: "Finale watch party at whose place?",
		Options: []model.PollOption{
			{ID: ID("poll_option", "finale-night:theo"), Text: "Theo's", Voters: []uuid.UUID{ID("user", "theo"), ID("user", "june")}},
			{ID: ID("poll_option", "finale-night:mara"), Text: "Mara's", Voters: []uuid.UUID{ID("user", "mara")}},
		},
		ClosesAt: at(3, 12),
		PostedAt: at(-2, 10),
	}

	sevRef := model.ContentRef{Type: model.ContentShow, ID: ID("show", "Severance")}
	predictions := []model.Prediction{
		{
			ID:       ID("prediction", "mara:goat-room"),
			AuthorID: ID("user", "mara"),
			Ref:      sevRef,
			Text:     "The goats are a severance test group.",
			Status:   model.PredictionDraft,
			MadeAt:   at(-2, 22),
		},
		{
			ID:       ID("prediction", "theo:board"),
			AuthorID: ID("user", "theo"),
			Ref:      sevRef,
			Text:     "The board is one person with a voice modulator.",
			Status:   model.PredictionLocked,
			MadeAt:   at(-6, 20),
			LockedAt: at(-5, 9),
		},
		{
			ID:         ID("prediction", "june:helly"),
			AuthorID:   ID("user", "june"),
			Ref:        sevRef,
			Text:       "Helly's outie is an Eagan.",
			Status:     model.PredictionRevealed,
			MadeAt:     at(-40, 20),
			LockedAt:   at(-39, 9),
			RevealedAt: at(-20, 22),
			Result:     "Called it: confirmed in the season one finale.",
			Upvotes:    []uuid.UUID{ID("user", "mara"), ID("user", "theo")},
			Downvotes:  []uuid.UUID{ID("user", "sam")},
		},
	}

	return []model.Club{
		{
			ID:          clubID,
			Name:        "Severance Sundays",
			Description: "Weekly watch, wild theories, no outie talk.",
			Members: []uuid.UUID{
				ID("user", "mara"), ID("user", "theo"),
				ID("user", "june"), ID("user", "sam"),
			},
			Messages:    []model.ClubMessage{m1, m2, m3},
			Polls:       []model.Poll{poll},
			Predictions: predictions,
			CreatedAt:   at(-60, 12),
		},
	}
}

func notifications() []model.Notification {
	duneRef := model.ContentRef{Type: model.ContentMovie, ID: ID("movie", "Dune: Part Two")}
	knivesRef := model.ContentRef{Type: model.ContentMovie, ID: ID("movie", "Knives Out")}

	return []model.Notification{
		{
			ID:        ID("notification", "theo:dune-reco"),
			Kind:      model.NotificationRecommendation,
			ActorID:   ID("user", "theo"),
			Subject:   &duneRef,
			Message:   "Theo thinks you'd rate Dune: Part Two high",
			CreatedAt: at(-5, 9),
		},
		{
			ID:        ID("notification", "theo:knives-like"),
			Kind:      model.NotificationReaction,
			ActorID:   ID("user", "theo"),
			Subject:   &knivesRef,
			Message:   "Theo liked your Knives Out rating",
			CreatedAt: at(-5, 20),
		},
		{
			ID:        ID("notification", "priya:knives-comment"),
			Kind:      model.NotificationComment,
			ActorID:   ID("user", "priya"),
			Subject:   &knivesRef,
			Message:   "Priya commented: \"the sweaters alone deserve a 10\"",
			CreatedAt: at(-4, 11),
		},
		{
			ID:        ID("notification", "alex:follow"),
			Kind:      model.NotificationFollow,
			ActorID:   ID("user", "alex"),
			Message:   "Alex started following you",
			CreatedAt: at(-1, 15),
			Seen:      true,
		},
	}
}
