package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

type MissDistance struct {
	Kilometers FlexString `json:"kilometers"`
	Lunar      FlexString `json:"lunar"`
}

type CloseApproach struct {
	Date         string       `json:"close_approach_date"`
	MissDistance MissDistance `json:"miss_distance"`
	OrbitingBody string       `json:"orbiting_body"`
}

type NearEarthObject struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Hazardous          bool            `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData  []CloseApproach `json:"close_approach_data"`
	AbsoluteMagnitudeH float64         `json:"absolute_magnitude_h"`
}

// MissDistanceKm returns the first close approach miss distance, if any.
func (n NearEarthObject) MissDistanceKm() (string, bool) {
	if len(n.CloseApproachData) == 0 || n.CloseApproachData[0].MissDistance.Kilometers == "" {
		return "", false
	}
	return n.CloseApproachData[0].MissDistance.Kilometers.String(), true
}

// AsteroidFeed flattens near_earth_objects, which the API delivers either as
// an object keyed by date or as a plain array.
type AsteroidFeed struct {
	ElementCount int               `json:"element_count"`
	Objects      []NearEarthObject `json:"-"`
}

func (f *AsteroidFeed) UnmarshalJSON(data []byte) error {
	var raw struct {
		ElementCount int             `json:"element_count"`
		Objects      json.RawMessage `json:"near_earth_objects"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	f.ElementCount = raw.ElementCount
	f.Objects = nil

	body := bytes.TrimSpace(raw.Objects)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil
	}

	switch body[0] {
	case '[':
		if err := json.Unmarshal(body, &f.Objects); err != nil {
			return fmt.Errorf("near_earth_objects array: %w", err)
		}
	case '{':
		byDate := map[string][]NearEarthObject{}
		if err := json.Unmarshal(body, &byDate); err != nil {
			return fmt.Errorf("near_earth_objects object: %w", err)
		}
		dates := make([]string, 0, len(byDate))
		for d := range byDate {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			f.Objects = append(f.Objects, byDate[d]...)
		}
	default:
		return fmt.Errorf("near_earth_objects: unexpected JSON %q", body[:1])
	}
	return nil
}

// HazardousCount counts potentially hazardous objects.
func (f AsteroidFeed) HazardousCount() int {
	n := 0
	for _, o := range f.Objects {
		if o.Hazardous {
			n++
		}
	}
	return n
}
