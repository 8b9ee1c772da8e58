package models_test

import (
	"encoding/json"
	"testing"

	"github.com/myrjola/dharohar/internal/models"
	"github.com/stretchr/testify/require"
)

func TestMonument_tolerantDecoding(t *testing.T) {
	input := `{
		"id": "padmanabhaswamy",
		"state": "kerala",
		"type": "Temple",
		"name": "Padmanabhaswamy Temple",
		"location": "Thiruvananthapuram, Kerala",
		"image": "",
		"description": "Dedicated to Vishnu.",
		"amenities": ["Cloak room", "Footwear stand"],
		"seaLevel": 5,
		"restrooms": true,
		"website": null,
		"nearbyHotels": "Hotel Chaithram",
		"facilities": ["Parking", "", "Queue complex"]
	}`

	var m models.Monument
	require.NoError(t, json.Unmarshal([]byte(input), &m))
	require.Equal(t, "Temple", m.Type)
	require.Equal(t, models.Text("Cloak room, Footwear stand"), m.Amenities)
	require.Equal(t, models.Text("5"), m.SeaLevel)
	require.Equal(t, models.Text("true"), m.Restrooms)
	require.Empty(t, m.Website)
	require.Equal(t, models.TextList{"Hotel Chaithram"}, m.NearbyHotels)
	require.Equal(t, models.TextList{"Parking", "Queue complex"}, m.Facilities)
	require.Equal(t, "Parking, Queue complex", m.Facilities.String())
}

func TestText_rejectsObjects(t *testing.T) {
	var m models.Monument
	err := json.Unmarshal([]byte(`{"id": "x", "timings": {"open": "6"}}`), &m)
	require.ErrorIs(t, err, models.ErrUnsupportedJSON)
}
