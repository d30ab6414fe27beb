package models

// OwnedGame is one game of the user's owned Steam library, as persisted by
// the sync command.
type OwnedGame struct {
	AppID           int64  `json:"app_id" db:"app_id"`
	Name            string `json:"name" db:"name"`
	PlaytimeForever int64  `json:"playtime_forever" db:"playtime_forever"`
	LastPlayed      int64  `json:"last_played" db:"last_played"`
	Installed       bool   `json:"installed" db:"installed"`
}
