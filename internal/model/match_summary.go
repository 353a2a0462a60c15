package model

// ActorSummary is the final tally of one hero.
type ActorSummary struct {
	Actor   ActorID `json:"actor"`
	Name    string  `json:"name"`
	Kit     KitID   `json:"kit"`
	Team    Team    `json:"team"`
	Level   int32   `json:"level"`
	Gold    int32   `json:"gold"`
	Kills   int32   `json:"kills"`
	Deaths  int32   `json:"deaths"`
	Assists int32   `json:"assists"`
}

// MatchSummary is the persisted outcome of a finished match.
// Winner is TeamNone when the match ran out of ticks.
type MatchSummary struct {
	ID       string         `json:"id"`
	Scenario string         `json:"scenario,omitempty"`
	Winner   Team           `json:"winner"`
	Ticks    int64          `json:"ticks"`
	Blue     TeamState      `json:"blue"`
	Red      TeamState      `json:"red"`
	Rejected int32          `json:"rejected"`
	Actors   []ActorSummary `json:"actors"`
}
