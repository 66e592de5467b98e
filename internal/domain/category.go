package domain

type Category string

func (c Category) String() string {
	return string(c)
}

const (
	CategoryAPOD      Category = "apod"      // Picture of the day
	CategoryAsteroids Category = "asteroids" // Near-earth objects
	CategoryMars      Category = "mars"      // InSight weather
	CategoryEPIC      Category = "epic"      // DSCOVR earth imagery
	CategoryRover     Category = "rover"     // Mars rover photos
	CategoryImages    Category = "images"    // Image and video library
	CategoryGallery   Category = "gallery"   // APOD gallery
	CategoryStats     Category = "stats"     // Upstream cache statistics
)

var Categories = []Category{
	CategoryAPOD,
	CategoryAsteroids,
	CategoryMars,
	CategoryEPIC,
	CategoryRover,
	CategoryImages,
	CategoryGallery,
	CategoryStats,
}

// LoadingRegion names the region holding the category's loading indicator.
func (c Category) LoadingRegion() string {
	return string(c) + "-loading"
}

// ResultsRegion names the region holding the category's rendered output.
func (c Category) ResultsRegion() string {
	return string(c) + "-results"
}

func (c Category) GetCategoryName() string {
	switch c {
	case CategoryAPOD:
		return "Astronomy Picture of the Day"
	case CategoryAsteroids:
		return "Asteroids"
	case CategoryMars:
		return "Mars Weather"
	case CategoryEPIC:
		return "EPIC Earth Imagery"
	case CategoryRover:
		return "Rover Photos"
	case CategoryImages:
		return "Image Library"
	case CategoryGallery:
		return "Gallery"
	case CategoryStats:
		return "Cache Statistics"
	default:
		return "Unknown"
	}
}

// RegionIDs lists every region a dashboard board must provide.
func RegionIDs() []string {
	ids := make([]string, 0, len(Categories)*2)
	for _, c := range Categories {
		ids = append(ids, c.LoadingRegion(), c.ResultsRegion())
	}
	return ids
}

// ImageTopic is one of the fixed image-library browse categories.
type ImageTopic struct {
	Query string
	Icon  string
}

var ImageTopics = []ImageTopic{
	{Query: "space", Icon: "fa-rocket"},
	{Query: "earth", Icon: "fa-globe-americas"},
	{Query: "mars", Icon: "fa-mars"},
	{Query: "galaxy", Icon: "fa-galaxy"},
	{Query: "nebula", Icon: "fa-star"},
	{Query: "astronaut", Icon: "fa-user-astronaut"},
	{Query: "satellite", Icon: "fa-satellite"},
	{Query: "telescope", Icon: "fa-telescope"},
}
