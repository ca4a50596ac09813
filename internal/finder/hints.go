package finder

// styleHints is the curated song id to style mapping.
var styleHints = map[string][]Style{
	"ham-2": {StyleUptempo, StyleDramatic},
	"ham-3": {StyleUptempo},
	"ham-4": {StyleUptempo, StyleDramatic},
	"ham-5": {StyleBallad, StyleDramatic},
	"ham-7": {StyleBallad, StyleDramatic},
	"wic-2": {StyleBallad, StyleDramatic},
	"wic-3": {StyleComedic, StyleUptempo},
	"wic-4": {StyleDramatic, StyleUptempo},
	"wic-5": {StyleBallad},
	"wic-6": {StyleDramatic},
	"pha-1": {StyleBallad, StyleLegit},
	"pha-2": {StyleBallad, StyleDramatic},
	"pha-3": {StyleBallad},
	"pha-5": {StyleBallad, StyleDramatic},
	"les-1": {StyleBallad, StyleDramatic},
	"les-2": {StyleBallad, StyleDramatic},
	"les-3": {StyleBallad, StyleDramatic},
	"les-4": {StyleBallad},
	"chi-1": {StyleUptempo},
	"chi-3": {StyleComedic, StyleUptempo},
	"chi-4": {StyleComedic, StyleUptempo},
	"ren-2": {StyleBallad, StyleDramatic},
	"ren-3": {StyleUptempo},
	"deh-1": {StyleUptempo, StyleDramatic},
	"deh-3": {StyleBallad, StyleDramatic},
	"deh-4": {StyleBallad},
	"swe-2": {StyleDramatic},
	"swe-5": {StyleComedic, StyleUptempo},
	"swe-4": {StyleBallad},
	"itw-2": {StyleUptempo},
	"itw-3": {StyleBallad},
	"itw-4": {StyleDramatic},
	"com-2": {StyleBallad, StyleDramatic},
	"com-3": {StyleComedic, StyleDramatic},
	"com-4": {StyleComedic, StyleUptempo},
	"six-2": {StyleUptempo},
	"six-3": {StyleComedic, StyleUptempo},
	"six-4": {StyleBallad},
	"had-2": {StyleBallad, StyleDramatic},
	"had-3": {StyleBallad},
	"had-5": {StyleBallad, StyleDramatic},
}

var beltSongs = set(
	"wic-4", "wic-6", "wic-2", "ham-2", "ham-4", "chi-1", "chi-4",
	"ren-3", "deh-1", "six-2", "six-3", "itw-4", "swe-2",
)

var legitSongs = set(
	"pha-1", "pha-2", "pha-3", "pha-5", "les-4", "itw-3", "swe-4",
	"wic-5", "com-2", "had-3",
)

func set(ids ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

// HasStyle reports whether songID is curated with style.
func HasStyle(songID string, style Style) bool {
	for _, s := range styleHints[songID] {
		if s == style {
			return true
		}
	}
	return false
}

// IsBeltShowcase reports whether songID is in the curated belt set.
func IsBeltShowcase(songID string) bool {
	_, ok := beltSongs[songID]
	return ok
}

// IsLegitShowcase reports whether songID is in the curated legit set.
func IsLegitShowcase(songID string) bool {
	_, ok := legitSongs[songID]
	return ok
}
