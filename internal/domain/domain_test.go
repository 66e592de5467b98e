package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsEncode_OmitsEmptyAndNil(t *testing.T) {
	var missing *string
	empty := ""
	value := "curiosity"

	p := Params{
		"start_date": "2024-01-01",
		"end_date":   "",
		"q":          nil,
		"rover":      &value,
		"camera":     missing,
		"blank":      &empty,
		"sol":        1000,
	}

	assert.Equal(t, "rover=curiosity&sol=1000&start_date=2024-01-01", p.Encode())
	assert.Empty(t, Params{}.Encode())
	assert.Empty(t, Params{"a": "", "b": nil}.Encode())
}

func TestLanguageToggle(t *testing.T) {
	assert.Equal(t, LanguageSecondary, LanguagePrimary.Toggle())
	assert.Equal(t, LanguagePrimary, LanguagePrimary.Toggle().Toggle())

	l, err := ParseLanguage("")
	require.NoError(t, err)
	assert.Equal(t, LanguagePrimary, l)

	_, err = ParseLanguage("english")
	assert.Error(t, err)
}

func TestAPODLocalized(t *testing.T) {
	a := APOD{Title: "Moon", Explanation: "Bright", TitleES: "Luna", ExplanationES: "Brillante"}

	title, expl := a.Localized(LanguageSecondary)
	assert.Equal(t, "Luna", title)
	assert.Equal(t, "Brillante", expl)

	title, _ = a.Localized(LanguagePrimary)
	assert.Equal(t, "Moon", title)

	partial := APOD{Title: "Moon", Explanation: "Bright", TitleES: "Luna"}
	title, expl = partial.Localized(LanguageSecondary)
	assert.Equal(t, "Moon", title)
	assert.Equal(t, "Bright", expl)
}

func TestAsteroidFeed_KeyedObject(t *testing.T) {
	payload := `{
		"element_count": 3,
		"near_earth_objects": {
			"2024-01-02": [{"name": "B", "is_potentially_hazardous_asteroid": true,
				"close_approach_data": [{"miss_distance": {"kilometers": "12345.6"}}]}],
			"2024-01-01": [{"name": "A"}, {"name": "C", "close_approach_data": []}]
		}
	}`

	var feed AsteroidFeed
	require.NoError(t, json.Unmarshal([]byte(payload), &feed))

	require.Len(t, feed.Objects, 3)
	assert.Equal(t, "A", feed.Objects[0].Name)
	assert.Equal(t, "B", feed.Objects[2].Name)
	assert.Equal(t, 1, feed.HazardousCount())

	km, ok := feed.Objects[2].MissDistanceKm()
	assert.True(t, ok)
	assert.Equal(t, "12345.6", km)

	_, ok = feed.Objects[1].MissDistanceKm()
	assert.False(t, ok)
}

func TestAsteroidFeed_ArrayAndMissing(t *testing.T) {
	var feed AsteroidFeed
	require.NoError(t, json.Unmarshal([]byte(`{"near_earth_objects": [{"name": "X",
		"close_approach_data": [{"miss_distance": {"kilometers": 42.5}}]}]}`), &feed))
	require.Len(t, feed.Objects, 1)
	km, _ := feed.Objects[0].MissDistanceKm()
	assert.Equal(t, "42.5", km)

	var empty AsteroidFeed
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.Empty(t, empty.Objects)

	var bad AsteroidFeed
	assert.Error(t, json.Unmarshal([]byte(`{"near_earth_objects": "nope"}`), &bad))
}

func TestMarsWeather_Shapes(t *testing.T) {
	var keyed MarsWeather
	require.NoError(t, json.Unmarshal([]byte(`{
		"sol_keys": ["674", "675"],
		"674": {"AT": {"av": -60.1}},
		"675": {"AT": {"av": -62.3}, "PRE": {"av": "750.2"}, "First_UTC": "2020-10-19T18:32:20Z"},
		"validity_checks": {}
	}`), &keyed))

	sol, latest := keyed.Latest()
	assert.Equal(t, "675", sol)
	require.NotNil(t, latest)
	assert.Equal(t, "-62.3", latest.Temperature.Average.String())
	assert.Equal(t, "750.2", latest.Pressure.Average.String())
	assert.Nil(t, latest.WindSpeed)

	var list MarsWeather
	require.NoError(t, json.Unmarshal([]byte(`[{"sol": "10"}, {"sol": "11", "Season": "fall"}]`), &list))
	sol, latest = list.Latest()
	assert.Equal(t, "11", sol)
	assert.Equal(t, "fall", latest.Season)

	var numeric MarsWeather
	require.NoError(t, json.Unmarshal([]byte(`[{"sol": 674}, {"sol": 675, "AT": {"av": -60}}]`), &numeric))
	sol, latest = numeric.Latest()
	assert.Equal(t, []string{"674", "675"}, numeric.SolKeys)
	assert.Equal(t, "675", sol)
	require.NotNil(t, latest)
	assert.Equal(t, "-60", latest.Temperature.Average.String())

	var empty MarsWeather
	require.NoError(t, json.Unmarshal([]byte(`{"sol_keys": []}`), &empty))
	sol, latest = empty.Latest()
	assert.Empty(t, sol)
	assert.Nil(t, latest)

	var dangling MarsWeather
	require.NoError(t, json.Unmarshal([]byte(`{"sol_keys": [700]}`), &dangling))
	sol, latest = dangling.Latest()
	assert.Equal(t, "700", sol)
	assert.Nil(t, latest)

	var failed MarsWeather
	require.NoError(t, json.Unmarshal([]byte(`{"error": "Data unavailable", "message": "InSight offline"}`), &failed))
	assert.Equal(t, "Data unavailable", failed.Error)
	assert.Equal(t, "InSight offline", failed.Message)
}

func TestEPICImageURL(t *testing.T) {
	e := EPICImage{Image: "epic_1b_20240102001303", Date: "2024-01-02 00:13:03"}
	url, ok := e.ImageURL("https://epic.gsfc.nasa.gov/archive/natural/")
	require.True(t, ok)
	assert.Equal(t, "https://epic.gsfc.nasa.gov/archive/natural/2024/01/02/png/epic_1b_20240102001303.png", url)

	_, ok = EPICImage{Image: "x", Date: "garbage"}.ImageURL("http://a")
	assert.False(t, ok)
}

func TestImageCollection(t *testing.T) {
	var c ImageCollection
	require.NoError(t, json.Unmarshal([]byte(`{"collection": {
		"metadata": {"total_hits": 99},
		"items": [
			{"data": [{"nasa_id": "PIA1", "title": "Crater", "media_type": "image"}],
			 "links": [{"href": "http://a/thumb.jpg", "rel": "preview", "render": "image"}]},
			{"links": [{"href": "http://b/first"}]},
			{}
		]}}`), &c))

	assert.True(t, c.Present)
	assert.Equal(t, 99, c.TotalHits)
	require.Len(t, c.Items, 3)
	assert.Equal(t, "PIA1", c.Items[0].NASAID)
	assert.Equal(t, "http://a/thumb.jpg", c.Items[0].PreviewURL())
	assert.Equal(t, "http://b/first", c.Items[1].PreviewURL())
	assert.Empty(t, c.Items[2].PreviewURL())

	var none ImageCollection
	require.NoError(t, json.Unmarshal([]byte(`{}`), &none))
	assert.False(t, none.Present)
}

func TestCacheStatsHitRate(t *testing.T) {
	rate, ok := CacheStats{Hits: 3, Misses: 1}.HitRate()
	assert.True(t, ok)
	assert.InDelta(t, 75.0, rate, 0.001)

	_, ok = CacheStats{}.HitRate()
	assert.False(t, ok)
}

func TestRegionIDs(t *testing.T) {
	ids := RegionIDs()
	assert.Len(t, ids, len(Categories)*2)
	assert.Contains(t, ids, "apod-loading")
	assert.Contains(t, ids, "stats-results")
}
