package domain

import "encoding/json"

type ImageLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel,omitempty"`
	Render string `json:"render,omitempty"`
}

// ImageItem is one image-library asset with its first metadata block
// flattened in.
type ImageItem struct {
	NASAID      string
	Title       string
	Description string
	DateCreated string
	MediaType   string
	Keywords    []string
	Links       []ImageLink
}

// PreviewURL picks the first link rendered as an image, else the first link.
func (i ImageItem) PreviewURL() string {
	for _, l := range i.Links {
		if l.Render == "image" && l.Href != "" {
			return l.Href
		}
	}
	if len(i.Links) > 0 {
		return i.Links[0].Href
	}
	return ""
}

// LinksByRender filters links by their render hint ("image", "video").
func (i ImageItem) LinksByRender(render string) []ImageLink {
	var out []ImageLink
	for _, l := range i.Links {
		if l.Render == render {
			out = append(out, l)
		}
	}
	return out
}

// ImageCollection is a search or asset lookup result. Present is false when
// the payload had no collection at all.
type ImageCollection struct {
	Present   bool
	TotalHits int
	Items     []ImageItem
}

type wireImageCollection struct {
	Collection *struct {
		Items []struct {
			Data []struct {
				NASAID      string   `json:"nasa_id"`
				Title       string   `json:"title"`
				Description string   `json:"description"`
				DateCreated string   `json:"date_created"`
				MediaType   string   `json:"media_type"`
				Keywords    []string `json:"keywords"`
			} `json:"data"`
			Links []ImageLink `json:"links"`
		} `json:"items"`
		Metadata *struct {
			TotalHits int `json:"total_hits"`
		} `json:"metadata"`
	} `json:"collection"`
}

func (c *ImageCollection) UnmarshalJSON(data []byte) error {
	var wire wireImageCollection
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*c = ImageCollection{}
	if wire.Collection == nil {
		return nil
	}

	c.Present = true
	if wire.Collection.Metadata != nil {
		c.TotalHits = wire.Collection.Metadata.TotalHits
	}
	for _, it := range wire.Collection.Items {
		item := ImageItem{Links: it.Links}
		if len(it.Data) > 0 {
			d := it.Data[0]
			item.NASAID = d.NASAID
			item.Title = d.Title
			item.Description = d.Description
			item.DateCreated = d.DateCreated
			item.MediaType = d.MediaType
			item.Keywords = d.Keywords
		}
		c.Items = append(c.Items, item)
	}
	return nil
}
