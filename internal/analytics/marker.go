package analytics

import (
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

// Project maps geolocatable records to dashboard map markers. Records
// missing either coordinate are dropped; they still count toward every
// other metric. Coincident markers are not deduplicated.
func Project(records []model.Complaint) []model.MapMarker {
	markers := make([]model.MapMarker, 0, len(records))
	for _, rec := range records {
		if !rec.Geolocatable() {
			continue
		}
		markers = append(markers, model.MapMarker{
			Latitude:    *rec.Latitude,
			Longitude:   *rec.Longitude,
			Label:       markerLabel(rec),
			PriorityTag: rec.Priority,
		})
	}
	return markers
}

// markerLabel composes the human-readable marker text from title and
// category. The priority rides separately as the marker tag.
func markerLabel(rec model.Complaint) string {
	switch {
	case rec.Title == "":
		return rec.Category
	case rec.Category == "":
		return rec.Title
	default:
		return rec.Title + " [" + rec.Category + "]"
	}
}
