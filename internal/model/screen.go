package model

import "github.com/google/uuid"

// Screen is the closed set of navigation descriptors. Each destination is
// its own variant carrying only the parameters it needs, so a descriptor
// can never be missing a required id.
type Screen interface {
	Kind() ScreenKind
	screen()
}

type ScreenKind string

const (
	ScreenMovieDetail ScreenKind = "movie_detail"
	ScreenShowDetail  ScreenKind = "show_detail"
	ScreenProfile     ScreenKind = "profile"
	ScreenProfileEdit ScreenKind = "profile_edit"
	ScreenAuth        ScreenKind = "auth"
	ScreenSearch      ScreenKind = "search"
	ScreenSettings    ScreenKind = "settings"
)

type MovieDetailScreen struct {
	MovieID uuid.UUID
}

type ShowDetailScreen struct {
	ShowID uuid.UUID
}

type ProfileScreen struct {
	UserID uuid.UUID
}

type ProfileEditScreen struct{}

type AuthScreen struct{}

type SearchScreen struct {
	Query string
}

type SettingsScreen struct{}

func (MovieDetailScreen) Kind() ScreenKind { return ScreenMovieDetail }
func (ShowDetailScreen) Kind() ScreenKind  { return ScreenShowDetail }
func (ProfileScreen) Kind() ScreenKind     { return ScreenProfile }
func (ProfileEditScreen) Kind() ScreenKind { return ScreenProfileEdit }
func (AuthScreen) Kind() ScreenKind        { return ScreenAuth }
func (SearchScreen) Kind() ScreenKind      { return ScreenSearch }
func (SettingsScreen) Kind() ScreenKind    { return ScreenSettings }

func (MovieDetailScreen) screen() {}
func (ShowDetailScreen) screen()  {}
func (ProfileScreen) screen()     {}
func (ProfileEditScreen) screen() {}
func (AuthScreen) screen()        {}
func (SearchScreen) screen()      {}
func (SettingsScreen) screen()    {}
