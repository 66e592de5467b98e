package view

import (
	"strings"
	"testing"

	"space/explorer/internal/domain"
	"space/explorer/internal/localization"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tr = localization.MustNew("en")

func parse(t *testing.T, n Node) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(Render(n)))
	require.NoError(t, err)
	return doc
}

func TestRender_EscapesPayloadText(t *testing.T) {
	apod := &domain.APOD{Title: `<script>alert("x")</script>`, Explanation: "a & b", URL: `http://x/"onerror=`}
	out := Render(APOD(apod, domain.LanguagePrimary, tr))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "a &amp; b")
	assert.Contains(t, out, `src="http://x/&#34;onerror="`)
}

func TestErrorBox(t *testing.T) {
	doc := parse(t, ErrorBox("boom"))
	assert.Equal(t, "⚠️ boom", doc.Find(".error").Text())
}

func TestAPOD_Languages(t *testing.T) {
	apod := &domain.APOD{
		Date: "2024-01-01", Title: "Moon", Explanation: "Bright",
		TitleES: "Luna", ExplanationES: "Brillante", URL: "http://img", MediaType: "image",
	}

	primary := parse(t, APOD(apod, domain.LanguagePrimary, tr))
	assert.Equal(t, "Moon", primary.Find(".result-title").Text())
	assert.Contains(t, primary.Find("button").Text(), "View in Spanish")

	secondary := parse(t, APOD(apod, domain.LanguageSecondary, tr))
	assert.Equal(t, "Luna", secondary.Find(".result-title").Text())
	assert.Equal(t, "Brillante", secondary.Find(".result-explanation").Text())
	assert.Contains(t, secondary.Find("button").Text(), "View in English")
}

func TestAPOD_NoSecondaryFields(t *testing.T) {
	apod := &domain.APOD{Title: "Moon", Explanation: "Bright", URL: "http://v", MediaType: "video", Copyright: "Jane"}

	doc := parse(t, APOD(apod, domain.LanguageSecondary, tr))
	assert.Equal(t, "Moon", doc.Find(".result-title").Text())
	assert.Equal(t, 0, doc.Find("button").Length())
	assert.Equal(t, 1, doc.Find("video source").Length())
	assert.Equal(t, "© Jane", doc.Find(".copyright").Text())
	assert.Equal(t, "Date not available", doc.Find(".result-date").Text())
}

func TestAPOD_Nil(t *testing.T) {
	doc := parse(t, APOD(nil, domain.LanguagePrimary, tr))
	assert.Equal(t, "No data available", doc.Find(".empty").Text())
}

func TestAPODGallery(t *testing.T) {
	doc := parse(t, APODGallery([]domain.APOD{
		{Title: "A", URL: "http://a", Date: "d1"},
		{Title: "", Date: "d2"},
	}, tr))
	assert.Equal(t, 2, doc.Find(".gallery-item").Length())
	assert.Equal(t, 1, doc.Find("img").Length())
	assert.Equal(t, "Untitled", doc.Find(".gallery-title").Last().Text())

	empty := parse(t, APODGallery(nil, tr))
	assert.Equal(t, "No images in the gallery", empty.Find(".empty").Text())
}

func TestAsteroids(t *testing.T) {
	objects := make([]domain.NearEarthObject, 0, 8)
	for i := 0; i < 8; i++ {
		objects = append(objects, domain.NearEarthObject{Name: "Rock", Hazardous: i == 0})
	}
	objects[1].CloseApproachData = []domain.CloseApproach{{MissDistance: domain.MissDistance{Kilometers: "1000.5"}}}

	doc := parse(t, Asteroids(&domain.AsteroidFeed{Objects: objects}, tr))

	values := doc.Find(".stat-value")
	assert.Equal(t, "8", values.Eq(0).Text())
	assert.Equal(t, "1", values.Eq(1).Text())
	assert.Equal(t, asteroidTiles, doc.Find(".gallery-item").Length())
	assert.Equal(t, 1, doc.Find(".badge.hazardous").Length())
	assert.Equal(t, "Distance: Not available km", doc.Find(".gallery-date").Eq(0).Text())
	assert.Equal(t, "Distance: 1000.5 km", doc.Find(".gallery-date").Eq(1).Text())

	empty := parse(t, Asteroids(&domain.AsteroidFeed{}, tr))
	assert.Equal(t, 0, empty.Find(".gallery").Length())
}

func TestImagesByCategory_EmptyItems(t *testing.T) {
	res := &domain.ImageCollection{Present: true}
	doc := parse(t, ImagesByCategory(res, "mars", tr))

	assert.Contains(t, doc.Find(".error").Text(), "No images found for category mars")
	assert.Equal(t, 0, doc.Find(".gallery").Length())
	assert.Equal(t, 1, doc.Find(`button[data-action="/api/load/images"]`).Length())
}

func TestImagesByCategory_Items(t *testing.T) {
	res := &domain.ImageCollection{Present: true, TotalHits: 120, Items: []domain.ImageItem{
		{NASAID: "PIA1", Title: "Crater", MediaType: "image", DateCreated: "2020-01-01",
			Links: []domain.ImageLink{{Href: "http://thumb", Render: "image"}}},
		{MediaType: "video"},
	}}
	doc := parse(t, ImagesByCategory(res, "mars", tr))

	assert.Equal(t, "Images of Mars", doc.Find(".result-title").Text())
	assert.Equal(t, "Found 120 results. Showing 2 images:", doc.Find(".result-explanation").Text())
	assert.Equal(t, 2, doc.Find(".gallery-item").Length())
	assert.Equal(t, 1, doc.Find(`button[data-action="/api/images/asset/PIA1"]`).Length())
	assert.Equal(t, "🎥 Video", doc.Find(".media-type").Last().Text())
	assert.Equal(t, "Date not available", doc.Find(".gallery-date").Last().Text())
}

func TestImagesByCategory_EscapesAssetAction(t *testing.T) {
	res := &domain.ImageCollection{Present: true, Items: []domain.ImageItem{
		{NASAID: "a/b?c d", Title: "Odd id"},
	}}
	doc := parse(t, ImagesByCategory(res, "mars", tr))

	action, ok := doc.Find(".gallery-item button").Attr("data-action")
	require.True(t, ok)
	assert.Equal(t, "/api/images/asset/a%2Fb%3Fc%20d", action)
}

func TestImageCategories(t *testing.T) {
	doc := parse(t, ImageCategories(tr))
	assert.Equal(t, len(domain.ImageTopics), doc.Find(".place-btn").Length())
	assert.Equal(t, "Planet Mars", doc.Find(`[data-action="/api/images/category/mars"] span`).Text())
}

func TestSearchResults_Empty(t *testing.T) {
	doc := parse(t, SearchResults(&domain.ImageCollection{}, "quasar", tr))
	assert.Contains(t, doc.Find(".error").Text(), `No images found for "quasar"`)
}

func TestAssetDetails(t *testing.T) {
	missing := parse(t, AssetDetails(&domain.ImageCollection{}, tr))
	assert.Contains(t, missing.Find(".error").Text(), "Could not fetch the asset details")

	notFound := parse(t, AssetDetails(&domain.ImageCollection{Present: true}, tr))
	assert.Contains(t, notFound.Find(".error").Text(), "Asset not found")

	links := []domain.ImageLink{
		{Href: "1", Render: "image"}, {Href: "2", Render: "image"}, {Href: "3", Render: "image"},
		{Href: "4", Render: "image"}, {Href: "v1", Render: "video", Rel: "orig"},
	}
	keywords := make([]string, 15)
	for i := range keywords {
		keywords[i] = "k"
	}
	doc := parse(t, AssetDetails(&domain.ImageCollection{Present: true, Items: []domain.ImageItem{
		{NASAID: "PIA1", Title: "T", Links: links, Keywords: keywords},
	}}, tr))

	assert.Equal(t, assetImageLinks, doc.Find("img").Length())
	assert.Equal(t, 1, doc.Find("video").Length())
	assert.Equal(t, assetKeywords, doc.Find(".keyword").Length())
	assert.Equal(t, "No description", doc.Find(".result-explanation").Text())
}

func TestMarsWeather(t *testing.T) {
	noKeys := parse(t, MarsWeather(&domain.MarsWeather{}, tr))
	assert.Contains(t, noKeys.Find(".error").Text(), "No recent data")

	nilWeather := parse(t, MarsWeather(nil, tr))
	assert.Contains(t, nilWeather.Find(".error").Text(), "Could not fetch Martian weather data")

	dangling := parse(t, MarsWeather(&domain.MarsWeather{SolKeys: []string{"9"}}, tr))
	assert.Contains(t, dangling.Find(".error").Text(), "Martian weather data not available")

	weather := &domain.MarsWeather{
		SolKeys: []string{"674", "675"},
		Sols: map[string]domain.SolWeather{
			"675": {Temperature: &domain.Measurement{Average: "-62.3"}, FirstUTC: "2020-10-19"},
		},
	}
	doc := parse(t, MarsWeather(weather, tr))
	values := doc.Find(".stat-value")
	assert.Equal(t, "-62.3°C", values.Eq(0).Text())
	assert.Equal(t, "Not available", values.Eq(1).Text())
	assert.Equal(t, "Not available", values.Eq(2).Text())
	assert.Contains(t, doc.Find(".result-explanation").Text(), "Sol 675")
	assert.Equal(t, "Last update: 2020-10-19", doc.Find(".updated").Text())
	assert.Equal(t, 0, doc.Find(".error").Length())
}

func TestEPIC(t *testing.T) {
	doc := parse(t, EPIC([]domain.EPICImage{
		{Image: "epic_1", Date: "2024-01-02 00:13:03"},
		{Image: "epic_2", Date: "bad"},
	}, "https://epic.test/archive/natural", tr))

	src, _ := doc.Find("img").Attr("src")
	assert.Equal(t, "https://epic.test/archive/natural/2024/01/02/png/epic_1.png", src)
	assert.Equal(t, 1, doc.Find(".gallery-placeholder").Length())

	empty := parse(t, EPIC(nil, "", tr))
	assert.Equal(t, "No EPIC images available", empty.Find(".empty").Text())
}

func TestRoverPhotos(t *testing.T) {
	doc := parse(t, RoverPhotos(&domain.RoverPhotos{Photos: []domain.RoverPhoto{
		{Sol: 1000, ImgSrc: "http://p", Rover: domain.Rover{Name: "Curiosity"}, Camera: domain.RoverCamera{Name: "FHAZ"}},
	}}, tr))
	assert.Equal(t, "Curiosity", doc.Find(".gallery-title").Text())
	assert.Equal(t, "Sol 1000 - FHAZ", doc.Find(".gallery-date").Text())

	empty := parse(t, RoverPhotos(&domain.RoverPhotos{}, tr))
	assert.Equal(t, "No rover photos available", empty.Find(".empty").Text())
}

func TestCacheStats(t *testing.T) {
	doc := parse(t, CacheStats(&domain.CacheStats{Keys: 4, Hits: 3, Misses: 1}, tr))
	assert.Equal(t, "75.0%", doc.Find(".stat-value").Last().Text())

	zero := parse(t, CacheStats(&domain.CacheStats{}, tr))
	assert.Equal(t, "Not available", zero.Find(".stat-value").Last().Text())
}

func TestPage(t *testing.T) {
	regions := map[string]RegionState{
		"apod-results": {ID: "apod-results", Visible: true, Content: Render(ErrorBox("down"))},
	}
	out := Render(Page(regions, tr))
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	_, hidden := doc.Find("#apod-results").Attr("hidden")
	assert.False(t, hidden)
	assert.Equal(t, "⚠️ down", doc.Find("#apod-results .error").Text())

	_, hidden = doc.Find("#mars-loading").Attr("hidden")
	assert.True(t, hidden)
	assert.Equal(t, len(domain.Categories), doc.Find("section.category").Length())
}
