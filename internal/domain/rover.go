package domain

type RoverCamera struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

type Rover struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type RoverPhoto struct {
	ID        int         `json:"id"`
	Sol       int         `json:"sol"`
	ImgSrc    string      `json:"img_src"`
	EarthDate string      `json:"earth_date"`
	Camera    RoverCamera `json:"camera"`
	Rover     Rover       `json:"rover"`
}

type RoverPhotos struct {
	Photos []RoverPhoto `json:"photos"`
}
