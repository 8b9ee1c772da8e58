package catalog

import (
	"github.com/myrjola/dharohar/internal/models"
)

// Fallback returns the built-in sample catalog used when the data files can't be loaded.
func Fallback() *Catalog {
	return New(FallbackStates(), FallbackMonuments())
}

// FallbackStates returns a fresh copy of the sample states.
func FallbackStates() []models.State {
	return []models.State{
		{
			ID:   "rajasthan",
			Name: "Rajasthan",
			Image: "https://images.pexels.com/photos/3581368/pexels-photo-3581368.jpeg" +
				"?auto=compress&cs=tinysrgb&w=800",
			Description:   "The land of kings, featuring magnificent palaces, forts, and temples.",
			MonumentCount: 15, //nolint:mnd // sample data
		},
		{
			ID:   "uttar-pradesh",
			Name: "Uttar Pradesh",
			Image: "https://images.pexels.com/photos/1583339/pexels-photo-1583339.jpeg" +
				"?auto=compress&cs=tinysrgb&w=800",
			Description:   "Home to the iconic Taj Mahal and numerous historical monuments.",
			MonumentCount: 20, //nolint:mnd // sample data
		},
		{
			ID:   "kerala",
			Name: "Kerala",
			Image: "https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg" +
				"?auto=compress&cs=tinysrgb&w=800",
			Description:   "Gods own country with beautiful temples and churches.",
			MonumentCount: 12, //nolint:mnd // sample data
		},
		{
			ID:   "tamil-nadu",
			Name: "Tamil Nadu",
			Image: "https://images.pexels.com/photos/3811082/pexels-photo-3811082.jpeg" +
				"?auto=compress&cs=tinysrgb&w=800",
			Description:   "Rich Dravidian architecture and ancient temples.",
			MonumentCount: 18, //nolint:mnd // sample data
		},
	}
}

// FallbackMonuments returns a fresh copy of the sample monuments.
func FallbackMonuments() []models.Monument {
	return []models.Monument{
		{ //nolint:exhaustruct // optional fields are rendered with fallbacks.
			ID:       "hawa-mahal",
			Name:     "Hawa Mahal",
			State:    "rajasthan",
			Type:     "palace",
			Location: "Jaipur, Rajasthan",
			Image: "https://images.pexels.com/photos/3581368/pexels-photo-3581368.jpeg" +
				"?auto=compress&cs=tinysrgb&w=800",
			Description: "The Palace of Winds, a stunning example of Rajput architecture.",
			Timings:     "9:00 AM - 4:30 PM",
			EntryFee:    "₹50 for Indians, ₹200 for foreigners",
			BestTime:    "October to March",
			Facilities:  models.TextList{"Parking", "Audio Guide", "Museum", "Cafeteria"},
			Address:     "Hawa Mahal Rd, Badi Choupad, J.D.A. Market, Pink City, Jaipur, Rajasthan 302002",
			HowToReach:  "Jaipur Airport is 13 km away. Well connected by road and rail.",
			NearbyHotels: models.TextList{
				"Taj Rambagh Palace", "The Oberoi Rajvilas", "Hotel Pearl Palace",
			},
			Festivals:   "Teej Festival, Gangaur Festival",
			Photography: "Photography allowed with additional charges",
		},
		{ //nolint:exhaustruct // optional fields are rendered with fallbacks.
			ID:       "taj-mahal",
			Name:     "Taj Mahal",
			State:    "uttar-pradesh",
			Type:     "mausoleum",
			Location: "Agra, Uttar Pradesh",
			Image: "https://images.pexels.com/photos/1583339/pexels-photo-1583339.jpeg" +
				"?auto=compress&cs=tinysrgb&w=800",
			Description: "A UNESCO World Heritage Site and symbol of eternal love.",
			Timings:     "Sunrise to Sunset (Closed on Fridays)",
			EntryFee:    "₹50 for Indians, ₹1100 for foreigners",
			BestTime:    "October to March",
			Facilities:  models.TextList{"Parking", "Security", "Audio Guide", "Battery Van"},
			Address:     "Dharmapuri, Forest Colony, Tajganj, Agra, Uttar Pradesh 282001",
			HowToReach:  "Agra Airport is 7 km away. Well connected by train and road.",
			NearbyHotels: models.TextList{
				"The Oberoi Amarvilas", "ITC Mughal", "Hotel Taj Resorts",
			},
			Festivals:   "Taj Mahotsav (February)",
			Photography: "Photography allowed, no tripods inside main mausoleum",
		},
	}
}
