package models

// Monument is a heritage site record.
//
// Only the first block of fields is required by the browser. The rest are optional descriptive fields that the
// renderer substitutes with fallback text when they are empty.
type Monument struct {
	ID          string `json:"id"`
	State       string `json:"state"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Description string `json:"description"`

	// Visiting information.
	Timings     Text     `json:"timings,omitempty"`
	EntryFee    Text     `json:"entryFee,omitempty"`
	BestTime    Text     `json:"bestTime,omitempty"`
	Facilities  TextList `json:"facilities,omitempty"`
	Address     Text     `json:"address,omitempty"`
	HowToReach  Text     `json:"howToReach,omitempty"`
	Photography Text     `json:"photography,omitempty"`
	Festivals   Text     `json:"festivals,omitempty"`

	// Temple and pilgrimage details.
	MainPrasad      Text `json:"mainPrasad,omitempty"`
	PrayersTiming   Text `json:"prayersTiming,omitempty"`
	OtherDeities    Text `json:"otherDeities,omitempty"`
	Amenities       Text `json:"amenities,omitempty"`
	DrinkingWater   Text `json:"drinkingWater,omitempty"`
	PoojaItemsShops Text `json:"poojaItemsShops,omitempty"`
	Restrooms       Text `json:"restrooms,omitempty"`
	Marriage        Text `json:"marriage,omitempty"`
	Education       Text `json:"education,omitempty"`
	DaanDakshina    Text `json:"daanDakshina,omitempty"`
	Flowers         Text `json:"flowers,omitempty"`
	FoodAvailable   Text `json:"foodAvailable,omitempty"`
	VideoLinks      Text `json:"videoLinks,omitempty"`

	// Location and surroundings.
	GoogleMaps            Text     `json:"googleMaps,omitempty"`
	WeatherDetails        Text     `json:"weatherDetails,omitempty"`
	SeaLevel              Text     `json:"seaLevel,omitempty"`
	NearestBusStation     Text     `json:"nearestBusStation,omitempty"`
	NearestRailwayStation Text     `json:"nearestRailwayStation,omitempty"`
	NearestAirport        Text     `json:"nearestAirport,omitempty"`
	NearbyRestaurants     Text     `json:"nearbyRestaurants,omitempty"`
	NearbyHotels          TextList `json:"nearbyHotels,omitempty"`
	NearbyPlaces          Text     `json:"nearbyPlaces,omitempty"`
	FamousFood            Text     `json:"famousFood,omitempty"`
	ContactDetails        Text     `json:"contactDetails,omitempty"`
	Website               Text     `json:"website,omitempty"`
}
