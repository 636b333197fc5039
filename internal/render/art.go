package render

import "strings"

const artSunny = `
    \   /
     .-.
  ‒ (   ) ‒
     ` + "`-'" + `
    /   \
`

const artCloudy = `
     .--.
  .-(    ).
 (___.__)__)
`

const artRainy = `
     .--.
  .-(    ).
 (___.__)__)
  ʻ ʻ ʻ ʻ
 ʻ ʻ ʻ ʻ
`

const artStormy = `
     .--.
  .-(    ).
 (___.__)__)
    * *
  * * *
`

const artSnowy = `
     .--.
  .-(    ).
 (___.__)__)
   * * *
  * * *
`

const artFoggy = `
     .--.
  .-(    ).
 (___.__)__)
 ≡ ≡ ≡ ≡ ≡
≡ ≡ ≡ ≡ ≡ ≡
`

const artNight = `
      *
   *     *
 *    (   *
   *     *
      *
`

// artByKeyword is matched by substring against the lowercased condition, in
// order, so "clear" wins over "cloudy" for "clear sky".
var artByKeyword = []struct {
	keyword string
	art     string
}{
	{"clear", artSunny},
	{"sunny", artSunny},
	{"rain", artRainy},
	{"storm", artStormy},
	{"snow", artSnowy},
	{"fog", artFoggy},
	{"cloudy", artCloudy},
	{"overcast", artCloudy},
}

var iconByKeyword = []struct {
	keyword string
	icon    string
}{
	{"clear", "[SUN]"},
	{"sunny", "[SUN]"},
	{"rain", "[RAIN]"},
	{"storm", "[STORM]"},
	{"snow", "[SNOW]"},
	{"fog", "[FOG]"},
	{"cloudy", "[CLOUD]"},
	{"overcast", "[CLOUD]"},
}

// Art returns the ASCII art block for a condition. Clear skies at night get
// the starfield variant.
func Art(condition string, isNight bool) string {
	condition = strings.ToLower(condition)
	if isNight && (condition == "clear" || condition == "sunny") {
		return artNight
	}
	for _, entry := range artByKeyword {
		if strings.Contains(condition, entry.keyword) {
			return entry.art
		}
	}
	return artCloudy
}

// MiniIcon returns the inline icon tag for a condition.
func MiniIcon(condition string) string {
	condition = strings.ToLower(condition)
	for _, entry := range iconByKeyword {
		if strings.Contains(condition, entry.keyword) {
			return entry.icon
		}
	}
	return "[CLOUD]"
}
